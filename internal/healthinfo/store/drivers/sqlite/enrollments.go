package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type enrollmentsRepo struct {
	q *gen.Queries
}

func (r *enrollmentsRepo) Enroll(ctx context.Context, clientID, programID int64) error {
	err := r.q.Enroll(ctx, gen.EnrollParams{
		ClientID:  clientID,
		ProgramID: programID,
	})
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *enrollmentsRepo) ListClientPrograms(ctx context.Context, clientID int64) ([]domain.Program, error) {
	rows, err := r.q.ListClientPrograms(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return mapPrograms(rows), nil
}

func (r *enrollmentsRepo) ListEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	rows, err := r.q.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	enrollments := make([]domain.Enrollment, len(rows))
	for i, row := range rows {
		enrollments[i] = domain.Enrollment{
			ClientID: row.ClientID,
			Program:  domain.Program{ID: row.ID, Name: row.Name},
		}
	}
	return enrollments, nil
}

func (r *enrollmentsRepo) CountEnrollments(ctx context.Context) (int64, error) {
	return r.q.CountEnrollments(ctx)
}
