package http

import (
	"github.com/aussiebroadwan/healthinfo/internal/healthinfo/domain"
	"github.com/aussiebroadwan/healthinfo/pkg/healthsdk"
)

func toSDKPrograms(programs []domain.Program) []healthsdk.Program {
	out := make([]healthsdk.Program, len(programs))
	for i, p := range programs {
		out[i] = healthsdk.Program{ID: p.ID, Name: p.Name}
	}
	return out
}

func toSDKClient(c domain.Client) healthsdk.Client {
	return healthsdk.Client{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Programs: toSDKPrograms(c.Programs),
	}
}

func toSDKClients(clients []domain.Client) []healthsdk.Client {
	out := make([]healthsdk.Client, len(clients))
	for i, c := range clients {
		out[i] = toSDKClient(c)
	}
	return out
}
