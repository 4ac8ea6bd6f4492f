package service

import (
	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// outcomeError translates a policy outcome into the sentinel error the
// central HTTP error handler maps to a status code. notFound and gone are
// the resource-specific sentinels for those outcomes.
func outcomeError(o auth.Outcome, notFound, gone error) error {
	switch o {
	case auth.Allowed:
		return nil
	case auth.Unauthenticated:
		return domain.ErrMissingCredential
	case auth.NotFound:
		return notFound
	case auth.Gone:
		return gone
	default:
		return domain.ErrForbidden
	}
}
