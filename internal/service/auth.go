package service

import (
	"context"
	"database/sql"
	"errors"

	"toolrent-backend/internal/domain"
	"toolrent-backend/internal/logger"
	"toolrent-backend/internal/repository"
	"toolrent-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	store  repository.Store
	tokens security.TokenManager
}

func NewAuthService(store repository.Store, tokens security.TokenManager) AuthService {
	return &authService{store: store, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.store.Users().GetByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, domain.Reject("invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.Reject("invalid credentials")
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	logger.InfoContext(ctx, "user logged in", "username", username, "role", user.Role)
	return token, user, nil
}

func (s *authService) EnsureUser(ctx context.Context, username, password string, role domain.Role) error {
	_, err := s.store.Users().GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return err
	}
	logger.Info("staff account created", "username", username, "role", role)
	return nil
}
