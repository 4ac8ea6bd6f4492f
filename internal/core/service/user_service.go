package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fitlogapp/fitlog-api/internal/core/auth"
	"github.com/fitlogapp/fitlog-api/internal/core/domain"
	"github.com/fitlogapp/fitlog-api/internal/core/ports"
)

// UserService implements the administrative and self-service user
// operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context, p domain.Principal) ([]domain.User, error) {
	if err := outcomeError(auth.CanAdministerUsers(p), nil, nil); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, p domain.Principal, id string) (*domain.User, error) {
	if err := outcomeError(auth.CanReadUser(p, id), nil, nil); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := outcomeError(auth.CanAdministerUsers(p), nil, nil); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("deleted_by", p.UserID).Msg("user deleted")
	return nil
}

func (s *UserService) DeleteOwn(ctx context.Context, p domain.Principal) error {
	if p.IsZero() {
		return domain.ErrMissingCredential
	}
	if err := s.repo.Delete(ctx, p.UserID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", p.UserID).Msg("account self-deleted")
	return nil
}
