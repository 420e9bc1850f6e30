package handler

import (
	"github.com/hksalaudeen/bookman/internal/config"
	"github.com/hksalaudeen/bookman/internal/handler/http"
	"github.com/hksalaudeen/bookman/internal/logger"
	"github.com/hksalaudeen/bookman/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
