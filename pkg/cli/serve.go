package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/copycat/pkg/controller/server"
	"github.com/m-mizutani/copycat/pkg/utils/errutil"
	"github.com/m-mizutani/copycat/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func serveCommand() *cli.Command {
	var (
		addr string
		env  environment
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("COPYCAT_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the HTTP API with the scan worker",
		Flags:   slice.Flatten(serveFlags, env.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve", slog.String("addr", addr))

			rt, err := env.setup(ctx, localQueue)
			if err != nil {
				return err
			}
			defer rt.close(ctx)

			workerCtx, stopWorkers := context.WithCancel(ctx)
			defer stopWorkers()

			var workers errgroup.Group
			workers.Go(func() error {
				return rt.queue.Run(workerCtx, rt.uc.HandleScanJob)
			})

			if env.kafka.Enabled() {
				consumer, err := env.kafka.NewConsumer()
				if err != nil {
					return err
				}
				defer func() {
					if err := consumer.Close(); err != nil {
						logging.Default().Warn("failed to close kafka consumer", slog.Any("error", err))
					}
				}()

				workers.Go(func() error {
					if err := consumer.Run(workerCtx, rt.queue); err != nil {
						errutil.HandleError(workerCtx, "kafka consumer stopped", err)
						return err
					}
					return nil
				})
			}

			s := server.New(rt.uc, server.WithGitHubWebhookSecret(env.github.WebhookSecret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// Blacklist refresh checks accounts one by one within a request
				WriteTimeout: 10 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				stopWorkers()
				_ = workers.Wait()
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			stopWorkers()
			if err := workers.Wait(); err != nil {
				return goerr.Wrap(err, "worker stopped with error")
			}
			return nil
		},
	}
}
