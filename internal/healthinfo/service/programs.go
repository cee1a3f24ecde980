package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/pkg/slogx"
)

type ProgramService struct {
	Store store.Store
}

// CreateProgram registers a new health program.
// Returns ErrProgramNameRequired for a blank name and ErrProgramExists if the
// name is already taken.
func (s *ProgramService) CreateProgram(ctx context.Context, name string) (domain.Program, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return domain.Program{}, ErrProgramNameRequired
	}

	// Pre-check keeps the common case cheap; the unique index settles races.
	if _, err := s.Store.Programs().GetProgramByName(ctx, name); err == nil {
		return domain.Program{}, ErrProgramExists
	} else if !errors.Is(err, store.ErrNotFound) {
		l.Error("failed to look up program", "error", err)
		return domain.Program{}, err
	}

	program, err := s.Store.Programs().CreateProgram(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Program{}, ErrProgramExists
		}
		l.Error("failed to create program", "error", err)
		return domain.Program{}, err
	}

	l.Info("program created", "program_id", program.ID, "name", program.Name)
	return program, nil
}

// ListPrograms returns every program in creation order.
func (s *ProgramService) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	return s.Store.Programs().ListPrograms(ctx)
}

// DeleteProgram removes a program and, through the schema, all of its
// enrollments.
func (s *ProgramService) DeleteProgram(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if err := s.Store.Programs().DeleteProgram(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProgramNotFound
		}
		l.Error("failed to delete program", "error", err, "program_id", id)
		return err
	}

	l.Info("program deleted", "program_id", id)
	return nil
}
