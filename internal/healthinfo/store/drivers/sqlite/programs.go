package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type programsRepo struct {
	q *gen.Queries
}

func (r *programsRepo) CreateProgram(ctx context.Context, name string) (domain.Program, error) {
	row, err := r.q.CreateProgram(ctx, name)
	if err != nil {
		return domain.Program{}, mapConstraint(err)
	}
	return mapProgram(row), nil
}

func (r *programsRepo) GetProgramByID(ctx context.Context, id int64) (domain.Program, error) {
	row, err := r.q.GetProgramByID(ctx, id)
	if err != nil {
		return domain.Program{}, mapNotFound(err)
	}
	return mapProgram(row), nil
}

func (r *programsRepo) GetProgramByName(ctx context.Context, name string) (domain.Program, error) {
	row, err := r.q.GetProgramByName(ctx, name)
	if err != nil {
		return domain.Program{}, mapNotFound(err)
	}
	return mapProgram(row), nil
}

func (r *programsRepo) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	rows, err := r.q.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return mapPrograms(rows), nil
}

func (r *programsRepo) DeleteProgram(ctx context.Context, id int64) error {
	return mapDeleted(r.q.DeleteProgram(ctx, id))
}
