package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/auth"
	"github.com/DhavalSuthar-24/livescore/internal/realtime"
	"github.com/DhavalSuthar-24/livescore/internal/team"
	"github.com/DhavalSuthar-24/livescore/routes"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the live update socket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.App.Port = port
			}

			hub := realtime.NewHub(cfg.Realtime.SendBuffer, cfg.WriteTimeout())
			defer hub.Shutdown()

			authController, err := auth.NewAuthController(cfg)
			if err != nil {
				return err
			}

			router := routes.SetupRoutes(routes.Dependencies{
				Config:  cfg,
				Teams:   team.NewTeamRepository(db),
				Matches: newMatchService(cfg, db, hub),
				Hub:     hub,
				Auth:    authController,
			})

			srv := &http.Server{
				Addr:              ":" + cfg.App.Port,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("failed to run server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			log.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
