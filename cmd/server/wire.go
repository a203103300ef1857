//go:build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/janhq/agent-memory-store/internal/domain"
	"github.com/janhq/agent-memory-store/internal/infrastructure"
	"github.com/janhq/agent-memory-store/internal/interfaces"
)

func CreateApplication() (*Application, func(), error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		interfaces.InterfacesProvider,
		NewApplication,
	)
	return nil, nil, nil
}
