// Package cli команды клиента casesync.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/casesync/internal/client/iocli"
	"github.com/iudanet/casesync/internal/client/store"
	"github.com/iudanet/casesync/internal/config"
	"github.com/iudanet/casesync/internal/models"
)

//go:generate moq -out engine_mock.go . Engine
//go:generate moq -out authenticator_mock.go . Authenticator

// Engine операции клиентского движка, доступные командам
type Engine interface {
	State() store.State
	Subscribe(l store.Listener) func()
	CreateCase(number *int) string
	ModifyCase(id string, changes models.CaseChanges) error
	ModifyPatientCustomField(id string, field models.CustomField) error
	RemoveCase(id string) error
	Fetch(ctx context.Context) error
	FetchDeleted(ctx context.Context) error
	Restore(ctx context.Context, id string) error
	Sync(ctx context.Context)
	LastSync(ctx context.Context) (time.Time, error)
}

// Authenticator вход на сервер и состояние сессии
type Authenticator interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Username() string
	IsAuthenticated() bool
	Err() string
}

// Env зависимости команд, собранные по конфигурации
type Env struct {
	Engine Engine
	Auth   Authenticator
	// Watch слушает push-уведомления до отмены ctx
	Watch func(ctx context.Context) error
	Close func()
	Now   func() time.Time
}

// Builder собирает окружение команд
type Builder func(ctx context.Context, cfg config.Client) (*Env, error)

// BuildInfo версия сборки
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// ErrNotAuthenticated команда требует входа на сервер
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'casesync login' first")

// RootOptions глобальные флаги
type RootOptions struct {
	ConfigPath string
}

type app struct {
	opts  *RootOptions
	build Builder
}

// command окружение выполняемой команды
type command struct {
	*Env
	io  iocli.IO
	cmd *cobra.Command
}

// NewRootCommand создает корневую команду клиента
func NewRootCommand(build Builder, info BuildInfo) *cobra.Command {
	a := &app{opts: &RootOptions{}, build: build}

	cmd := &cobra.Command{
		Use:           "casesync",
		Short:         "Casesync - shared case records with offline edits",
		Long:          "Edit cases locally and synchronize them with the casesync server.",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Casesync Client\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))

	cmd.PersistentFlags().StringVar(&a.opts.ConfigPath, "config", "", "Path to YAML config file")
	config.RegisterClientFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newStatusCommand(),
		a.newListCommand(),
		a.newDeletedCommand(),
		a.newShowCommand(),
		a.newCreateCommand(),
		a.newSetCommand(),
		a.newRemoveCommand(),
		a.newRestoreCommand(),
		a.newSyncCommand(),
		a.newWatchCommand(),
	)

	return cmd
}

// run загружает конфигурацию, собирает окружение и выполняет fn
func (a *app) run(fn func(ctx context.Context, c *command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadClient(a.opts.ConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		env, err := a.build(ctx, cfg)
		if err != nil {
			return err
		}
		if env.Close != nil {
			defer env.Close()
		}
		if env.Now == nil {
			env.Now = time.Now
		}

		c := &command{
			Env: env,
			io:  iocli.New(cmd.InOrStdin(), cmd.OutOrStdout()),
			cmd: cmd,
		}
		return fn(ctx, c, args)
	}
}

func (c *command) requireAuth() error {
	if !c.Auth.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// flush отправляет локальные изменения, если есть вход на сервер
func (c *command) flush(ctx context.Context) error {
	if !c.Auth.IsAuthenticated() {
		c.io.Println("Saved locally. Run 'casesync login' and 'casesync sync' to push changes.")
		return nil
	}

	c.Engine.Sync(ctx)
	return c.reportSync()
}

// reportSync печатает результат отправки по состоянию хранилища
func (c *command) reportSync() error {
	st := c.Engine.State()
	if msg := store.Error(st); msg != "" {
		return errors.New(msg)
	}
	if !c.Auth.IsAuthenticated() {
		// Сервер сбросил сессию во время отправки
		if msg := c.Auth.Err(); msg != "" {
			return errors.New(msg)
		}
		return ErrNotAuthenticated
	}
	if pending := store.PendingCount(st); pending > 0 {
		c.io.Printf("%d change(s) waiting for the server.\n", pending)
	}
	return nil
}
