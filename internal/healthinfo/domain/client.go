package domain

// Client is a patient record, unique by email.
type Client struct {
	ID       int64
	Name     string
	Email    string
	Programs []Program // Enrolled programs, ordered by program id
}

// ProgramNames returns the names of the enrolled programs in order.
func (c Client) ProgramNames() []string {
	names := make([]string, len(c.Programs))
	for i, p := range c.Programs {
		names[i] = p.Name
	}
	return names
}
