package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SeedHandler exposes the demo fixture loader.
type SeedHandler struct {
	uc     usecase.SeedUsecase
	logger *slog.Logger
}

// NewSeedHandler is the constructor for SeedHandler, injected by Fx.
func NewSeedHandler(uc usecase.SeedUsecase, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{uc: uc, logger: logger}
}

// Seed loads the demo accounts and catalog. Idempotent.
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.uc.Seed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Seed completed")
}
