package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type ClientService struct {
	Store store.Store
}

// CreateClient registers a client and enrolls them in the given programs.
// Program ids that do not exist are skipped. The client row and its
// enrollments are committed together.
func (s *ClientService) CreateClient(
	ctx context.Context,
	name, email string,
	programIDs []int64,
) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return domain.Client{}, ErrClientFieldsRequired
	}

	var client domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Clients().GetClientByEmail(ctx, email); err == nil {
			return ErrClientExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		created, err := tx.Clients().CreateClient(ctx, name, email)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrClientExists
			}
			return err
		}

		for _, pid := range programIDs {
			if _, err := tx.Programs().GetProgramByID(ctx, pid); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					l.Debug("skipping unknown program", "program_id", pid)
					continue
				}
				return err
			}
			if err := tx.Enrollments().Enroll(ctx, created.ID, pid); err != nil {
				return err
			}
		}

		programs, err := tx.Enrollments().ListClientPrograms(ctx, created.ID)
		if err != nil {
			return err
		}
		created.Programs = programs
		client = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			l.Error("failed to create client", "error", err)
		}
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", client.ID, "programs", len(client.Programs))
	return client, nil
}

// ListClients returns every client with their programs.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		return nil, err
	}
	return s.attachPrograms(ctx, clients)
}

// SearchClients returns clients whose name or email contains query,
// ignoring case. An empty query returns everyone.
func (s *ClientService) SearchClients(ctx context.Context, query string) ([]domain.Client, error) {
	clients, err := s.Store.Clients().SearchClients(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.attachPrograms(ctx, clients)
}

// GetClient returns a single client with their programs.
func (s *ClientService) GetClient(ctx context.Context, id int64) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}

	programs, err := s.Store.Enrollments().ListClientPrograms(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	client.Programs = programs
	return client, nil
}

// DeleteClient removes a client and their enrollments.
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Clients().DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		l.Error("failed to delete client", "error", err, "client_id", id)
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}

// EnrollByEmail adds the named programs to the client with the given email.
// Unknown program names are skipped and existing enrollments are left as they
// are. Returns the client with their full, updated program list.
func (s *ClientService) EnrollByEmail(ctx context.Context, email string, programNames []string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(email) == "" {
		return domain.Client{}, ErrEmailRequired
	}

	var client domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Clients().GetClientByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrClientNotFound
			}
			return err
		}

		for _, name := range programNames {
			program, err := tx.Programs().GetProgramByName(ctx, name)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					l.Debug("skipping unknown program", "program", name)
					continue
				}
				return err
			}
			if err := tx.Enrollments().Enroll(ctx, c.ID, program.ID); err != nil {
				return err
			}
		}

		programs, err := tx.Enrollments().ListClientPrograms(ctx, c.ID)
		if err != nil {
			return err
		}
		c.Programs = programs
		client = c
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			l.Error("failed to enroll client", "error", err)
		}
		return domain.Client{}, err
	}

	l.Info("client enrolled", "client_id", client.ID, "programs", len(client.Programs))
	return client, nil
}

// attachPrograms fills in Programs for each client from a single pass over
// all enrollments.
func (s *ClientService) attachPrograms(ctx context.Context, clients []domain.Client) ([]domain.Client, error) {
	if len(clients) == 0 {
		return clients, nil
	}

	enrollments, err := s.Store.Enrollments().ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	byClient := make(map[int64][]domain.Program)
	for _, e := range enrollments {
		byClient[e.ClientID] = append(byClient[e.ClientID], e.Program)
	}

	for i := range clients {
		if programs, ok := byClient[clients[i].ID]; ok {
			clients[i].Programs = programs
		}
	}
	return clients, nil
}
