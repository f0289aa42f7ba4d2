package main

//
//  @title           finmetrics API
//  @version         1.0
//  @description     Command bridge serving financial metrics for a ticker and period.
//  @termsOfService  https://github.com/guttosm/finmetrics
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/finmetrics
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        commands
//  @tag.description Command dispatch over HTTP and websocket
//
//  @tag.name        metrics
//  @tag.description Financial metrics lookup
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/finmetrics/config"
	_ "github.com/guttosm/finmetrics/docs" // swagger docs
	"github.com/guttosm/finmetrics/internal/app"
	"github.com/guttosm/finmetrics/internal/logger"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// newRootCmd assembles the CLI.
//
// Subcommands:
//   - serve:    Starts the HTTP/websocket command bridge.
//   - invoke:   Runs one command locally and prints its JSON result.
//   - commands: Lists registered commands.
//   - version:  Prints build information.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "finmetrics",
		Short:         "Financial metrics command bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts := logger.Options{Level: config.AppConfig.Log.Level, Pretty: config.AppConfig.Log.Pretty}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				opts.Level = lvl
			}
			// Only serve logs to stdout; the other commands print results there.
			if cmd.Name() != "serve" {
				logger.SetOutput(cmd.ErrOrStderr())
			}
			logger.Init(opts)
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newServeCmd(), newInvokeCmd(), newCommandsCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and websocket command bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = config.AppConfig.Server.Port
			}

			router, cleanup, err := app.InitializeApp()
			if err != nil {
				return fmt.Errorf("app init error: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, newServer(router, port), config.AppConfig.Server.ShutdownTimeout, cleanup)
		},
	}
	cmd.Flags().String("port", "", "port to listen on (default: SERVER_PORT)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "finmetrics %s (commit %s)\n", version, commit)
		},
	}
}

// newServer builds the HTTP server with the service's timeouts.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance (not yet listening).
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
//
// Behavior:
//   - Listens in one goroutine and waits for ctx in another, both under an errgroup.
//   - A listen failure cancels the group and is returned.
//   - On cancellation, in-flight requests get shutdownTimeout to finish, then
//     cleanup runs.
//
// Parameters:
//   - ctx (context.Context): cancelled on SIGINT/SIGTERM.
//   - server (*http.Server): server to run.
//   - shutdownTimeout (time.Duration): grace period for in-flight requests.
//   - cleanup (func()): releases application resources after shutdown.
func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration, cleanup func()) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		if cleanup != nil {
			cleanup()
		}
		if err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		logger.L().Info().Msg("server exited gracefully")
		return nil
	})

	return g.Wait()
}
