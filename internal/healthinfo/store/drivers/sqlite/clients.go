package sqlite

import (
	"context"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite/gen"
)

type clientsRepo struct {
	q *gen.Queries
}

func (r *clientsRepo) CreateClient(ctx context.Context, name, email string) (domain.Client, error) {
	row, err := r.q.CreateClient(ctx, gen.CreateClientParams{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return domain.Client{}, mapConstraint(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row, err := r.q.GetClientByID(ctx, id)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row, err := r.q.GetClientByEmail(ctx, email)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return mapClient(row), nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.q.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}

func (r *clientsRepo) SearchClients(ctx context.Context, query string) ([]domain.Client, error) {
	rows, err := r.q.SearchClients(ctx, query)
	if err != nil {
		return nil, err
	}
	return mapClients(rows), nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id int64) error {
	return mapDeleted(r.q.DeleteClient(ctx, id))
}
