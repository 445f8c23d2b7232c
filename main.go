package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bank-portal/cache"
	"bank-portal/clients"
	"bank-portal/confs"
	"bank-portal/db"
	"bank-portal/logging"
	"bank-portal/middleware"
	"bank-portal/repositories"
	"bank-portal/server"
	"bank-portal/services"
	"bank-portal/usecases"
	"bank-portal/ws"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	logging.Setup()

	root := &cobra.Command{
		Use:           "bank-portal",
		Short:         "SecureBank web portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the portal HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the session store tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				return migrate()
			},
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("bank-portal failed", "error", err)
		os.Exit(1)
	}
}

func migrate() error {
	if _, err := confs.LoadConfig(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	database, err := db.Connect()
	if err != nil {
		return err
	}
	defer closeDatabase(database)
	return db.Migrate(database)
}

func closeDatabase(database db.Database) {
	if closer, ok := database.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("closing session store", "error", err)
		}
	}
}

// openSessions picks the session store named by the config.
func openSessions(cfg *confs.Config) (repositories.SessionRepository, func(), error) {
	if cfg.SessionStore == "memory" {
		slog.Warn("using in-memory session store; sessions are lost on restart")
		return repositories.NewSessionMemRepository(), func() {}, nil
	}
	database, err := db.Connect()
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database); err != nil {
		closeDatabase(database)
		return nil, nil, err
	}
	return repositories.NewSessionPgRepository(database), func() { closeDatabase(database) }, nil
}

func serve(ctx context.Context) error {
	cfg, err := confs.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logging.LevelFromEnv() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions, closeSessions, err := openSessions(cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	authAPI := clients.NewAuthClient(cfg.AuthAPIURL, httpClient)
	customerAPI := clients.NewCustomerClient(cfg.CustomerAPIURL, httpClient)
	accountAPI := clients.NewAccountClient(cfg.AccountAPIURL, httpClient)
	employeeAPI := clients.NewEmployeeClient(cfg.EmployeeAPIURL, httpClient)

	queue := cache.NewNotificationQueue(cfg.NotificationTTL)
	hub := ws.NewManager()
	notifier := services.NewNotifier(queue, hub)
	services.NewSweeper(queue, sessions, cfg.SweepInterval).Start(ctx)

	auth := usecases.NewAuthUseCase(authAPI, customerAPI, sessions, notifier, cfg.SessionTTL)
	tokens := middleware.NewSessionTokens(cfg.SessionSecret, cfg.SessionTTL)

	srv, err := server.NewServer(cfg, server.Deps{
		Auth:     auth,
		Customer: usecases.NewCustomerDashboard(customerAPI, accountAPI, notifier),
		Desk:     usecases.NewEmployeeDesk(authAPI, customerAPI, notifier, cfg.PageSize),
		Manager:  usecases.NewManagerDashboard(customerAPI, employeeAPI, notifier, cfg.PageSize),
		Notifier: notifier,
		Hub:      hub,
		Guard:    middleware.NewGuard(tokens, auth, cfg.CookieSecure),
		ToastTTL: cfg.NotificationTTL,
	})
	if err != nil {
		return err
	}
	return srv.Start(ctx)
}
