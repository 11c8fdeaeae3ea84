package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-dashboard/api"
	"github.com/carson-networks/finance-dashboard/internal/auth"
	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/operator"
	"github.com/carson-networks/finance-dashboard/internal/service"
	"github.com/carson-networks/finance-dashboard/internal/storage"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	env, logger, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("finance-dashboard starting")

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	publisher, closePublisher, err := newPublisher(env, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store.Reader, delegator, publisher, env.Location(), logger)

	rest := api.Rest{
		Logger:   logger,
		Port:     env.Port,
		DB:       store,
		Service:  svc,
		Verifier: auth.NewJWTVerifier([]byte(env.AuthSigningKey), env.AuthIssuer),
		Location: env.Location(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rest.Serve(gctx)
	})
	if amqpPublisher, ok := publisher.(*events.AMQPPublisher); ok {
		closed := amqpPublisher.NotifyClose()
		g.Go(func() error {
			select {
			case amqpErr, ok := <-closed:
				if ok && amqpErr != nil {
					// Events are best effort, the API keeps serving without them.
					logger.WithError(amqpErr).Error("commands.serve.amqp connection lost")
				}
			case <-gctx.Done():
			}
			return nil
		})
	}

	err = g.Wait()
	logger.Info("finance-dashboard stopped")
	return err
}
