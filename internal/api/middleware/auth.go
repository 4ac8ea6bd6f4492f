package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitlogapp/fitlog-api/internal/api/metrics"
	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// principalKey is the context key the resolved Principal is stored under.
const principalKey = "principal"

// Authenticate is the transport filter. It extracts the credential (Bearer
// header first, `jwt` cookie second) and resolves it into a Principal
// stored in the request context.
//
// A credential that is present but fails validation short-circuits the
// chain with 401 immediately. A request with no credential at all passes
// through unauthenticated; routes that need identity gate it with
// RequireAuth or the access policy, which also answer 401.
func Authenticate(resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := auth.ExtractCredential(c.Request())
			if !ok {
				return next(c)
			}

			p, err := resolver.Resolve(raw)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal injected by Authenticate, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok && !p.IsZero()
}
