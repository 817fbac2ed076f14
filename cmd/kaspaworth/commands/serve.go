package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"KaspaWorth/internal/i18n"
	"KaspaWorth/internal/scheduler"
	"KaspaWorth/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Println("[INFO] KaspaWorth starting...")
			a, err := newApp(cfg, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a.widget.Init(i18n.DetectSystemLocale())

			sched := scheduler.NewScheduler(ctx, a.widget, cfg.PriceSource.Timeout)
			if err := sched.Register(cfg.Refresh.Interval, cfg.Refresh.Cron); err != nil {
				return err
			}
			sched.RunNow()
			sched.Start()
			defer sched.Stop()

			srv, err := server.New(a.widget, a.metrics.Handler())
			if err != nil {
				return err
			}
			httpSrv := &http.Server{
				Addr:         cfg.Server.ListenAddress,
				Handler:      srv.Router(),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("[INFO] listening on %s", cfg.Server.ListenAddress)
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Printf("[FATAL] listen: %v", err)
					return err
				}
			case <-ctx.Done():
				log.Println("[INFO] shutdown signal received, stopping...")
			}

			shutdownCtx, done := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer done()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				log.Printf("[WARN] http shutdown: %v", err)
			}
			log.Println("[INFO] KaspaWorth stopped")
			return nil
		},
	}
}
