package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-dashboard/internal/storage"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}
	cmd.AddCommand(newMigrateDownCommand())
	return cmd
}

func newMigrateDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			return runMigrateDown(steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func runMigrate() error {
	env, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := storage.Migrate(store.DB)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
	return nil
}

func runMigrateDown(steps int) error {
	env, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := storage.MigrateDown(store.DB, steps); err != nil {
		return err
	}
	logger.WithField("steps", steps).Info("Migration rolled back")
	return nil
}
