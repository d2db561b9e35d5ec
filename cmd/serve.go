package main

import (
	"brandkit/internal/api"
	"brandkit/internal/api/handler/v1handler"
	"brandkit/internal/config"
	"brandkit/internal/provisioner"
	"brandkit/internal/worker"
	"brandkit/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, closeServices := getServices(ctx, cfg)
			defer closeServices()

			prov := provisioner.New(strg, provisioner.Services{
				Registrar: svc.registrar,
				Contacts:  svc.contacts,
				Domains:   svc.domains,
				DNS:       svc.dns,
			}, provisioner.NewOptions(cfg))

			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
				Domains:     svc.domains,
				Contacts:    svc.contacts,
				DNS:         svc.dns,
				Brand:       svc.brand,
				Provisioner: prov,
			}}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, prov, worker.Options{MaxWorkers: cfg.Worker.MaxWorkers})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed webserver
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server exited", zap.Error(err))
			}
		},
	}

	return cmd
}
