package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	// AuthSigningKey is the shared HS256 secret of the identity provider's session tokens.
	AuthSigningKey string
	AuthIssuer     string

	// TimeZone is the fixed zone used for calendar-day filtering and bucketing.
	TimeZone string

	AMQPURL      string
	AMQPExchange string

	OperatorWorkers int
	LogLevel        string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		AuthSigningKey:   "development-signing-key-change-me",
		TimeZone:         "UTC",
		AMQPExchange:     "finance.events",
		OperatorWorkers:  4,
		LogLevel:         "info",
	}

	overrides := map[string]*string{
		"PORT":              &env.Port,
		"POSTGRES_ADDRESS":  &env.PostgresAddress,
		"POSTGRES_PORT":     &env.PostgresPort,
		"POSTGRES_DB":       &env.PostgresDB,
		"POSTGRES_USERNAME": &env.PostgresUsername,
		"POSTGRES_PASSWORD": &env.PostgresPassword,
		"AUTH_SIGNING_KEY":  &env.AuthSigningKey,
		"AUTH_ISSUER":       &env.AuthIssuer,
		"TIME_ZONE":         &env.TimeZone,
		"AMQP_URL":          &env.AMQPURL,
		"AMQP_EXCHANGE":     &env.AMQPExchange,
		"LOG_LEVEL":         &env.LogLevel,
	}
	for key, target := range overrides {
		if value := os.Getenv(key); len(value) != 0 {
			*target = value
		}
	}

	if workers := os.Getenv("OPERATOR_WORKERS"); len(workers) != 0 {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", workers, err)
		}
		env.OperatorWorkers = n
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %q", c.Port))
	}
	if len(c.AuthSigningKey) < 16 {
		problems = append(problems, "auth signing key must be at least 16 bytes")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid time zone %q", c.TimeZone))
	}
	if c.OperatorWorkers < 1 {
		problems = append(problems, "operator workers must be at least 1")
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Location returns the configured fixed time zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// PostgresURL is the connection string for lib/pq and the migrate driver.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
