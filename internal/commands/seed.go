package commands

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-dashboard/internal/auth"
	"github.com/carson-networks/finance-dashboard/internal/events"
	"github.com/carson-networks/finance-dashboard/internal/money"
	"github.com/carson-networks/finance-dashboard/internal/operator"
	"github.com/carson-networks/finance-dashboard/internal/series"
	"github.com/carson-networks/finance-dashboard/internal/service"
	"github.com/carson-networks/finance-dashboard/internal/storage"
)

const (
	seedPayee = "Merchant"
	seedNotes = "Seed data"
)

// seedCategory draws amounts uniformly from [min, min+spread).
type seedCategory struct {
	name   string
	min    float64
	spread float64
}

var (
	seedCategories = []seedCategory{
		{name: "Food", min: 10, spread: 20},
		{name: "Rent", min: 100, spread: 500},
		{name: "Utilities", min: 50, spread: 200},
		{name: "Clothing", min: 20, spread: 100},
	}
	seedAccounts = []string{"Checking", "Savings"}
)

type seedTransaction struct {
	Date     time.Time
	Category int
	Amount   int64
}

func newSeedCommand() *cobra.Command {
	var userID string
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace a user's data with random sample transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			return runSeed(cmd.Context(), userID, days)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to seed (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().IntVar(&days, "days", 60, "number of days before today to fill")

	return cmd
}

func runSeed(ctx context.Context, userID string, days int) error {
	env, logger, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		return err
	}
	defer store.Close()

	delegator := operator.NewOperatorDelegator(store, env.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(store.Reader, delegator, events.NopPublisher{}, env.Location(), logger)

	to := series.StartOfDay(time.Now(), env.Location())
	from := to.AddDate(0, 0, -days)
	plan := generateSeedTransactions(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), from, to)

	return seedUser(auth.WithUserID(ctx, userID), svc, plan, logger)
}

// generateSeedTransactions returns one to four transactions for every day in
// [from, to], each randomly an expense or income.
func generateSeedTransactions(rng *rand.Rand, from, to time.Time) []seedTransaction {
	var plan []seedTransaction
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		count := rng.IntN(4) + 1
		for range count {
			category := rng.IntN(len(seedCategories))
			amount := seedCategories[category].min + rng.Float64()*seedCategories[category].spread
			if rng.Float64() > 0.5 {
				amount = -amount
			}
			plan = append(plan, seedTransaction{
				Date:     day,
				Category: category,
				Amount:   money.FloatToMilliunits(amount),
			})
		}
	}
	return plan
}

// seedUser deletes the user's accounts and categories, which takes their
// transactions with them, then writes the sample data. ctx carries the user.
func seedUser(ctx context.Context, svc *service.Service, plan []seedTransaction, logger *logrus.Logger) error {
	if err := clearUser(ctx, svc); err != nil {
		return err
	}

	categoryIDs := make([]string, len(seedCategories))
	for i, c := range seedCategories {
		created, err := svc.Category.Create(ctx, c.name)
		if err != nil {
			return fmt.Errorf("create category %s: %w", c.name, err)
		}
		categoryIDs[i] = created.ID
	}

	var checkingID string
	for i, name := range seedAccounts {
		created, err := svc.Account.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("create account %s: %w", name, err)
		}
		if i == 0 {
			checkingID = created.ID
		}
	}

	notes := seedNotes
	for _, txn := range plan {
		categoryID := categoryIDs[txn.Category]
		_, err := svc.Transaction.Create(ctx, service.TransactionInput{
			Date:       txn.Date,
			Payee:      seedPayee,
			Amount:     txn.Amount,
			Notes:      &notes,
			AccountID:  checkingID,
			CategoryID: &categoryID,
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
	}

	logger.WithFields(logrus.Fields{
		"accounts":     len(seedAccounts),
		"categories":   len(seedCategories),
		"transactions": len(plan),
	}).Info("commands.seed.complete")
	return nil
}

func clearUser(ctx context.Context, svc *service.Service) error {
	accounts, err := svc.Account.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	accountIDs := make([]string, len(accounts))
	for i := range accounts {
		accountIDs[i] = accounts[i].ID
	}
	if _, err := svc.Account.BulkDelete(ctx, accountIDs); err != nil {
		return fmt.Errorf("delete accounts: %w", err)
	}

	categories, err := svc.Category.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	categoryIDs := make([]string, len(categories))
	for i := range categories {
		categoryIDs[i] = categories[i].ID
	}
	if _, err := svc.Category.BulkDelete(ctx, categoryIDs); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}
