// cmd/server/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-dashboard/internal/config"
	"github.com/unclebandit/campaign-dashboard/internal/controller"
	"github.com/unclebandit/campaign-dashboard/internal/logging"
	"github.com/unclebandit/campaign-dashboard/internal/metrics"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

var (
	envFile string
	cfg     *config.Config
	logger  *zap.Logger

	listStatus  string
	listOwner   string
	listChannel string
	listPage    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Campaign dashboard API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		if !cfg.EnvFileLoaded {
			logger.Info("no .env file found, relying on OS environment variables")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the dashboard summary as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd.Context(), func(svc *service.DashboardService) error {
			summary, err := svc.Summary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(summary)
		})
	},
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Print one page of campaign cards as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := service.ViewState{Status: listStatus, Owner: listOwner, Channel: listChannel, Page: listPage}
		return withService(cmd.Context(), func(svc *service.DashboardService) error {
			view, err := svc.ListCampaigns(cmd.Context(), state)
			if err != nil {
				return err
			}
			return printJSON(view)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env file")

	campaignsCmd.Flags().StringVar(&listStatus, "status", service.FilterAll, "status filter")
	campaignsCmd.Flags().StringVar(&listOwner, "owner", service.FilterAll, "owner name filter")
	campaignsCmd.Flags().StringVar(&listChannel, "channel", service.FilterAll, "channel filter")
	campaignsCmd.Flags().IntVar(&listPage, "page", 1, "page number")

	rootCmd.AddCommand(serveCmd, statsCmd, campaignsCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           controller.NewRouter(a.Service, metrics.New(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("port", cfg.Port), zap.String("data_source", cfg.DataSource))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func withService(ctx context.Context, fn func(*service.DashboardService) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a.Service)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
