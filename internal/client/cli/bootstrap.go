package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/casesync/internal/client/api"
	"github.com/iudanet/casesync/internal/client/auth"
	"github.com/iudanet/casesync/internal/client/engine"
	"github.com/iudanet/casesync/internal/client/storage/boltdb"
	"github.com/iudanet/casesync/internal/client/ws"
	"github.com/iudanet/casesync/internal/config"
)

// sessionAuth сервис входа вместе с состоянием сессии
type sessionAuth struct {
	*auth.Service
	*auth.Session
}

// Bootstrap собирает окружение команд: bbolt, API клиент, сессия, движок
func Bootstrap(ctx context.Context, cfg config.Client) (*Env, error) {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	db, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	session := auth.NewSession()
	apiClient := api.NewClient(cfg.ServerURL, session)
	authService := auth.NewService(apiClient, db, session, logger)

	if _, err := authService.Restore(ctx); err != nil {
		closeDB()
		return nil, err
	}

	eng, err := engine.New(ctx, engine.Deps{
		API:        apiClient,
		Cases:      db,
		Metadata:   db,
		Session:    authService,
		Logger:     logger,
		SessionID:  session.SessionID(),
		UserName:   session.Username,
		ClientType: cfg.ClientType,
		Debounce:   cfg.Debounce,
	})
	if err != nil {
		closeDB()
		return nil, err
	}

	watch := func(ctx context.Context) error {
		sub := ws.NewSubscriber(cfg.PushURL, session, eng.Listener(), logger)
		eng.Listener().SetTransport(sub)
		defer sub.Disconnect()

		err := sub.Run(ctx)
		if errors.Is(err, api.ErrUnauthenticated) {
			eng.Listener().HandleUnauthenticated(ctx)
			if msg := session.Err(); msg != "" {
				return errors.New(msg)
			}
		}
		return err
	}

	return &Env{
		Engine: eng,
		Auth:   sessionAuth{Service: authService, Session: session},
		Watch:  watch,
		Close: func() {
			eng.Close()
			closeDB()
		},
	}, nil
}
