package healthinfo_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
	"github.com/stretchr/testify/require"
)

func TestClientRegistrationAndEnrollment(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := newClient(baseURL)
	ctx := context.Background()

	tb, err := client.CreateProgram(ctx, "TB")
	require.NoError(t, err)
	hiv, err := client.CreateProgram(ctx, "HIV")
	require.NoError(t, err)

	jane, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Programs: []int64{tb.ID, 999},
	})
	require.NoError(t, err)
	require.Equal(t, []healthsdk.Program{*tb}, jane.Programs)

	_, err = client.CreateClient(ctx, healthsdk.CreateClientRequest{Name: "Impostor", Email: "jane@x.com"})
	require.True(t, healthsdk.IsConflict(err))

	_, err = client.CreateClient(ctx, healthsdk.CreateClientRequest{Name: "No Email"})
	var apiErr *healthsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Name and email are required", apiErr.Message)

	t.Run("enroll by name is idempotent", func(t *testing.T) {
		resp, err := client.Enroll(ctx, "jane@x.com", "HIV", "Polio")
		require.NoError(t, err)
		require.Equal(t, "Client enrolled", resp.Message)
		require.Equal(t, []healthsdk.Program{*tb, *hiv}, resp.Programs)

		resp, err = client.Enroll(ctx, "jane@x.com", "HIV")
		require.NoError(t, err)
		require.Len(t, resp.Programs, 2)

		_, err = client.Enroll(ctx, "ghost@x.com", "HIV")
		require.True(t, healthsdk.IsNotFound(err))
	})

	t.Run("profile and search", func(t *testing.T) {
		_, err := client.CreateClient(ctx, healthsdk.CreateClientRequest{Name: "John Smith", Email: "jsmith@clinic.org"})
		require.NoError(t, err)

		profile, err := client.GetClientProfile(ctx, jane.ID)
		require.NoError(t, err)
		require.Equal(t, healthsdk.ClientProfile{
			Name:     "Jane Doe",
			Email:    "jane@x.com",
			Programs: []string{"TB", "HIV"},
		}, *profile)

		found, err := client.SearchClients(ctx, "DOE")
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = client.SearchClients(ctx, "clinic.org")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, "John Smith", found[0].Name)

		found, err = client.SearchClients(ctx, "")
		require.NoError(t, err)
		require.Len(t, found, 2)
	})

	t.Run("deleting a program unenrolls clients", func(t *testing.T) {
		require.NoError(t, client.DeleteProgram(ctx, tb.ID))

		profile, err := client.GetClientProfile(ctx, jane.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"HIV"}, profile.Programs)
	})

	t.Run("deleting a client", func(t *testing.T) {
		require.NoError(t, client.DeleteClient(ctx, jane.ID))

		_, err := client.GetClientProfile(ctx, jane.ID)
		require.True(t, healthsdk.IsNotFound(err))

		clients, err := client.ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
	})
}
