package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/casesync/internal/config"
	"github.com/iudanet/casesync/internal/server"
	"github.com/iudanet/casesync/internal/server/handlers"
	"github.com/iudanet/casesync/internal/server/jwt"
	"github.com/iudanet/casesync/internal/server/push"
	"github.com/iudanet/casesync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	fs := flag.NewFlagSet("casesync-server", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "Show version information")
	configPath := fs.String("config", "", "Path to YAML config file")
	config.RegisterServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string, fs *flag.FlagSet) (config.Server, error) {
	cfg, err := config.LoadServer(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyFlags(fs); err != nil {
		return cfg, err
	}
	// Секрет можно не хранить в файле
	if secret := os.Getenv("CASESYNC_JWT_SECRET"); secret != "" && cfg.JWTSecret == "" {
		cfg.JWTSecret = secret
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cfg config.Server) error {
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if cfg.SeedUser != "" {
		if err := handlers.SeedUser(ctx, db, cfg.SeedUser, cfg.SeedPassword); err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	hub := push.NewHub(logger, push.DefaultConfig())
	// Shutdown не закрывает перехваченные WebSocket-соединения
	defer hub.Close()

	router := server.NewRouter(server.Deps{
		Logger:      logger,
		Users:       db,
		Cases:       db,
		Tokens:      jwt.NewService(cfg.JWTSecret, cfg.TokenTTL),
		Hub:         hub,
		DB:          db,
		Version:     Version,
		LoginRate:   cfg.LoginRate,
		LoginWindow: cfg.LoginWindow,
	})
	defer router.Close()

	logger.Info("Casesync server starting",
		"version", Version,
		"commit", GitCommit,
		"addr", cfg.Addr,
		"db", cfg.DBPath)

	return server.New(cfg.Addr, router, logger).Run(ctx)
}

func printVersion() {
	fmt.Printf("Casesync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
