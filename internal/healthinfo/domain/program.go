package domain

// Program is a named health initiative clients can be enrolled in (e.g. TB,
// Malaria). Names are unique.
type Program struct {
	ID   int64
	Name string
}
