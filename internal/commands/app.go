package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-dashboard/internal/config"
	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/logging"
)

func loadConfig() (*config.Config, *logrus.Logger, error) {
	logger := logging.SetupLogging()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, logger, fmt.Errorf("load config: %w", err)
	}
	logging.SetLevel(logger, env.LogLevel)

	return env, logger, nil
}

// newPublisher connects to the broker when AMQP_URL is set. Without it change
// events are dropped.
func newPublisher(env *config.Config, logger *logrus.Logger) (events.Publisher, func() error, error) {
	if env.AMQPURL == "" {
		logger.Info("commands.newPublisher.amqp disabled")
		return events.NopPublisher{}, func() error { return nil }, nil
	}

	publisher, err := events.NewAMQPPublisher(env.AMQPURL, env.AMQPExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connect amqp: %w", err)
	}
	logger.WithField("exchange", env.AMQPExchange).Info("commands.newPublisher.amqp connected")
	return publisher, publisher.Close, nil
}
