package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/casesync/internal/client/storage"
	"github.com/iudanet/casesync/internal/validation"
	"github.com/iudanet/casesync/pkg/api"
)

//go:generate moq -out loginapi_mock.go . LoginAPI

// LoginAPI запрос аутентификации на сервере
type LoginAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// Service предоставляет функции авторизации
type Service struct {
	apiClient   LoginAPI
	authStorage storage.AuthStorage
	session     *Session
	logger      *slog.Logger
	now         func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient LoginAPI, authStorage storage.AuthStorage, session *Session, logger *slog.Logger) *Service {
	return &Service{
		apiClient:   apiClient,
		authStorage: authStorage,
		session:     session,
		logger:      logger,
		now:         time.Now,
	}
}

// Login выполняет аутентификацию и сохраняет токен локально
func (s *Service) Login(ctx context.Context, username, password string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	data := storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}
	if err := s.authStorage.SaveAuth(ctx, &data); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	s.session.Authenticate(data)
	s.logger.Info("Logged in", "username", username)
	return nil
}

// Restore загружает сохраненную авторизацию в сессию.
// Возвращает false, если авторизации нет или токен истек.
func (s *Service) Restore(ctx context.Context) (bool, error) {
	data, err := s.authStorage.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get auth data: %w", err)
	}
	if data.Expired(s.now()) {
		s.logger.Debug("Stored token expired", "username", data.Username)
		return false, nil
	}

	s.session.Authenticate(*data)
	return true, nil
}

// Logout удаляет локальные данные авторизации
func (s *Service) Logout(ctx context.Context) error {
	s.session.Reset("")
	if err := s.deleteAuth(ctx); err != nil {
		return err
	}
	return nil
}

// Expire сбрасывает сессию после ответа 401: токен удаляется,
// пользователю показывается ExpiredMessage.
func (s *Service) Expire(ctx context.Context) error {
	s.logger.Warn("Authentication expired, resetting session", "username", s.session.Username())
	s.session.Reset(ExpiredMessage)
	return s.deleteAuth(ctx)
}

func (s *Service) deleteAuth(ctx context.Context) error {
	if err := s.authStorage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}
