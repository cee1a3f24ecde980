package domain

// Enrollment links one client to one program. It has no attributes of its
// own and a pair exists at most once.
type Enrollment struct {
	ClientID int64
	Program  Program
}
