package client

import (
	"errors"
	"fmt"

	"github.com/hksalaudeen/bookman/internal/adapter"
	"github.com/hksalaudeen/bookman/internal/config"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/session"
)

// App bundles everything a CLI command needs: the server adapter, the
// persisted session, and a logger.
type App struct {
	adapter adapter.ServerAdapter
	session *session.Store
	logger  *logger.Logger
}

// NewApp constructs the client application from cfg. If a session was saved
// by a previous `login`, its token is loaded into the adapter so commands
// can authenticate immediately.
func NewApp(cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessionStore := session.NewStore(cfg.SessionFile)

	token, err := sessionStore.Load()
	switch {
	case err == nil:
		serverAdapter.SetToken(token)
	case errors.Is(err, session.ErrNoSession):
		// first run, commands requiring auth will say so
	default:
		logger.Err(err).Msg("could not load saved session")
	}

	return &App{
		adapter: serverAdapter,
		session: sessionStore,
		logger:  logger,
	}, nil
}
