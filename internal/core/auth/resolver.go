package auth

import "github.com/fitlogapp/fitlog-api/internal/core/domain"

// Resolver turns a raw credential into an authenticated Principal.
type Resolver struct {
	codec *TokenCodec
}

func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve decodes and verifies the credential. An empty credential yields
// domain.ErrMissingCredential, a failed decode domain.ErrInvalidToken.
// A missing or unrecognised role claim resolves to RoleNone — the request
// authenticates but carries no authority.
func (r *Resolver) Resolve(rawCredential string) (domain.Principal, error) {
	if rawCredential == "" {
		return domain.Principal{}, domain.ErrMissingCredential
	}

	claims, err := r.codec.Decode(rawCredential)
	if err != nil {
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   domain.ParseRole(claims.Role),
	}, nil
}
