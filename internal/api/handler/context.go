package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/api/middleware"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// ctxPrincipal returns the Principal the Authenticate filter injected.
// When no credential was presented the zero Principal is returned; the
// services translate that into an unauthenticated outcome, so handlers
// never need to re-parse the token themselves.
func ctxPrincipal(c echo.Context) domain.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}
