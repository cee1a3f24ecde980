package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Sub-repositories are exposed as methods so a Tx-scoped Store hands out
// repositories bound to the transaction.
type Store interface {
	Programs() Programs
	Clients() Clients
	Enrollments() Enrollments

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Programs interface {
	// CreateProgram inserts a program. Returns ErrAlreadyExists if the name is taken.
	CreateProgram(ctx context.Context, name string) (domain.Program, error)

	GetProgramByID(ctx context.Context, id int64) (domain.Program, error)
	GetProgramByName(ctx context.Context, name string) (domain.Program, error)

	// ListPrograms returns every program in insertion order.
	ListPrograms(ctx context.Context) ([]domain.Program, error)

	// DeleteProgram cascades to enrollments (per schema). Returns ErrNotFound
	// if nothing was deleted.
	DeleteProgram(ctx context.Context, id int64) error
}

// Clients returns client rows without their programs; Enrollments fills those in.
type Clients interface {
	// CreateClient inserts a client. Returns ErrAlreadyExists if the email is taken.
	CreateClient(ctx context.Context, name, email string) (domain.Client, error)

	GetClientByID(ctx context.Context, id int64) (domain.Client, error)
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ListClients returns every client in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// SearchClients matches query as a case-insensitive substring of name or
	// email. An empty query matches everyone.
	SearchClients(ctx context.Context, query string) ([]domain.Client, error)

	// DeleteClient cascades to enrollments (per schema).
	DeleteClient(ctx context.Context, id int64) error
}

type Enrollments interface {
	// Enroll links a client to a program. Enrolling twice is a no-op. Returns
	// ErrNotFound if either side does not exist.
	Enroll(ctx context.Context, clientID, programID int64) error

	// ListClientPrograms returns the programs a client is enrolled in.
	ListClientPrograms(ctx context.Context, clientID int64) ([]domain.Program, error)

	// ListEnrollments returns every enrollment ordered by client then program.
	ListEnrollments(ctx context.Context) ([]domain.Enrollment, error)

	// CountEnrollments returns the number of association rows.
	CountEnrollments(ctx context.Context) (int64, error)
}
