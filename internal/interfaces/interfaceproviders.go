package interfaces

import (
	"github.com/google/wire"

	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver"
	"github.com/janhq/agent-memory-store/internal/interfaces/httpserver/handlers"
	v1 "github.com/janhq/agent-memory-store/internal/interfaces/httpserver/routes/v1"
)

var InterfacesProvider = wire.NewSet(
	handlers.HandlerProvider,
	v1.NewV1Route,
	httpserver.NewHTTPServer,
)
