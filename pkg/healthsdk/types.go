package healthsdk

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is a stable, machine-readable code (e.g. "not_found")
	Error string `json:"error" example:"conflict"`

	// Message is a human-readable explanation
	Message string `json:"message" example:"Program already exists"`
}

// MessageResponse is returned by operations that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message" example:"Program deleted"`
}

// ============================================================================
// Programs
// ============================================================================

// Program is a health program clients can be enrolled in.
type Program struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"TB"`
}

// CreateProgramRequest is the body of POST /programs.
type CreateProgramRequest struct {
	Name string `json:"name" validate:"required" example:"TB"`
}

// ============================================================================
// Clients
// ============================================================================

// Client is a registered client with the programs they are enrolled in.
type Client struct {
	ID       int64     `json:"id" example:"1"`
	Name     string    `json:"name" example:"Jane Doe"`
	Email    string    `json:"email" example:"jane@example.com"`
	Programs []Program `json:"programs"`
}

// CreateClientRequest is the body of POST /clients. Programs holds program
// ids; ids that do not exist are ignored.
type CreateClientRequest struct {
	Name     string  `json:"name" validate:"required" example:"Jane Doe"`
	Email    string  `json:"email" validate:"required" example:"jane@example.com"`
	Programs []int64 `json:"programs,omitempty" example:"1"`
}

// ClientProfile is the summary returned by GET /clients/{id}.
type ClientProfile struct {
	Name     string   `json:"name" example:"Jane Doe"`
	Email    string   `json:"email" example:"jane@example.com"`
	Programs []string `json:"programs" example:"TB"`
}

// ============================================================================
// Enrollment
// ============================================================================

// EnrollRequest is the body of POST /enroll. Programs holds program names;
// names that do not exist are ignored.
type EnrollRequest struct {
	Email    string   `json:"email" validate:"required" example:"jane@example.com"`
	Programs []string `json:"programs" example:"HIV"`
}

// EnrollResponse lists every program the client is enrolled in after the
// request.
type EnrollResponse struct {
	Message  string    `json:"message" example:"Client enrolled"`
	Programs []Program `json:"programs"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains detailed status of service dependencies (only in /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
