package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store"
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "health.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
}

func TestPrograms(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t)

	tb, err := st.Programs().CreateProgram(ctx, "TB")
	require.NoError(t, err)
	require.Equal(t, int64(1), tb.ID)
	require.Equal(t, "TB", tb.Name)

	_, err = st.Programs().CreateProgram(ctx, "TB")
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	malaria, err := st.Programs().CreateProgram(ctx, "Malaria")
	require.NoError(t, err)

	got, err := st.Programs().GetProgramByName(ctx, "Malaria")
	require.NoError(t, err)
	require.Equal(t, malaria, got)

	got, err = st.Programs().GetProgramByID(ctx, tb.ID)
	require.NoError(t, err)
	require.Equal(t, tb, got)

	_, err = st.Programs().GetProgramByID(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err := st.Programs().ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "TB", list[0].Name)
	require.Equal(t, "Malaria", list[1].Name)

	require.NoError(t, st.Programs().DeleteProgram(ctx, tb.ID))
	require.ErrorIs(t, st.Programs().DeleteProgram(ctx, tb.ID), store.ErrNotFound)
}

func TestClients(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t)

	jane, err := st.Clients().CreateClient(ctx, "Jane Doe", "jane@x.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), jane.ID)
	require.Empty(t, jane.Programs)

	_, err = st.Clients().CreateClient(ctx, "Other Jane", "jane@x.com")
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = st.Clients().CreateClient(ctx, "John Smith", "jsmith@clinic.org")
	require.NoError(t, err)

	got, err := st.Clients().GetClientByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	require.Equal(t, jane.ID, got.ID)

	_, err = st.Clients().GetClientByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	all, err := st.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.NoError(t, st.Clients().DeleteClient(ctx, jane.ID))
	require.ErrorIs(t, st.Clients().DeleteClient(ctx, jane.ID), store.ErrNotFound)
	_, err = st.Clients().GetClientByID(ctx, jane.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSearchClients(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t)

	for _, c := range []struct{ name, email string }{
		{"Jane Doe", "jane@x.com"},
		{"John Smith", "jsmith@clinic.org"},
		{"Amina Odhiambo", "amina@DOE-family.net"},
		{"Élise Martin", "elise@x.com"},
	} {
		_, err := st.Clients().CreateClient(ctx, c.name, c.email)
		require.NoError(t, err)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Jane Doe", "John Smith", "Amina Odhiambo", "Élise Martin"}},
		{"doe", []string{"Jane Doe", "Amina Odhiambo"}},
		{"JOHN", []string{"John Smith"}},
		{"clinic.org", []string{"John Smith"}},
		{"%", nil},
		{"_", nil},
		{"zzz", nil},
		// lower() folds ASCII only, so accented capitals must match exactly
		{"Élise", []string{"Élise Martin"}},
		{"élise", nil},
		{"LISE", []string{"Élise Martin"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := st.Clients().SearchClients(ctx, tt.query)
			require.NoError(t, err)

			var names []string
			for _, c := range got {
				names = append(names, c.Name)
			}
			require.Equal(t, tt.want, names)
		})
	}
}

func TestEnrollments(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t)

	tb, err := st.Programs().CreateProgram(ctx, "TB")
	require.NoError(t, err)
	hiv, err := st.Programs().CreateProgram(ctx, "HIV")
	require.NoError(t, err)
	jane, err := st.Clients().CreateClient(ctx, "Jane", "jane@x.com")
	require.NoError(t, err)
	john, err := st.Clients().CreateClient(ctx, "John", "john@x.com")
	require.NoError(t, err)

	require.NoError(t, st.Enrollments().Enroll(ctx, jane.ID, tb.ID))
	require.NoError(t, st.Enrollments().Enroll(ctx, jane.ID, hiv.ID))
	require.NoError(t, st.Enrollments().Enroll(ctx, john.ID, tb.ID))

	t.Run("re-enrolling is a no-op", func(t *testing.T) {
		require.NoError(t, st.Enrollments().Enroll(ctx, jane.ID, tb.ID))

		count, err := st.Enrollments().CountEnrollments(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
	})

	t.Run("unknown references are rejected", func(t *testing.T) {
		require.ErrorIs(t, st.Enrollments().Enroll(ctx, jane.ID, 999), store.ErrNotFound)
		require.ErrorIs(t, st.Enrollments().Enroll(ctx, 999, tb.ID), store.ErrNotFound)
	})

	t.Run("lists programs per client", func(t *testing.T) {
		programs, err := st.Enrollments().ListClientPrograms(ctx, jane.ID)
		require.NoError(t, err)
		require.Len(t, programs, 2)
		require.Equal(t, tb, programs[0])
		require.Equal(t, hiv, programs[1])

		all, err := st.Enrollments().ListEnrollments(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, jane.ID, all[0].ClientID)
		require.Equal(t, john.ID, all[2].ClientID)
	})

	t.Run("deleting a program clears its enrollments", func(t *testing.T) {
		require.NoError(t, st.Programs().DeleteProgram(ctx, tb.ID))

		count, err := st.Enrollments().CountEnrollments(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), count)

		programs, err := st.Enrollments().ListClientPrograms(ctx, john.ID)
		require.NoError(t, err)
		require.Empty(t, programs)
	})

	t.Run("deleting a client clears its enrollments", func(t *testing.T) {
		require.NoError(t, st.Clients().DeleteClient(ctx, jane.ID))

		count, err := st.Enrollments().CountEnrollments(ctx)
		require.NoError(t, err)
		require.Zero(t, count)
	})
}

func TestWithTx(t *testing.T) {
	ctx := t.Context()
	st := newTestStore(t)

	t.Run("commits on success", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Programs().CreateProgram(ctx, "Diabetes")
			return err
		})
		require.NoError(t, err)

		_, err = st.Programs().GetProgramByName(ctx, "Diabetes")
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Programs().CreateProgram(ctx, "Hypertension"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.Programs().GetProgramByName(ctx, "Hypertension")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(context.Background(), func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}
