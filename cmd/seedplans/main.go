// Command seedplans populates the subscription_plans table of the hosted
// backend's Postgres database with the three catalog tiers. It is a one-shot
// script: run it once against a fresh project, rerunning is a no-op.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/serenus-health/wellness-admin-go/internal/config"
	"github.com/serenus-health/wellness-admin-go/internal/fixtures"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if err := seed(ctx, conn, logger); err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, conn *pgx.Conn, logger *slog.Logger) error {
	var count int
	err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM subscription_plans`).Scan(&count)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			return fmt.Errorf("table subscription_plans does not exist; create it in the backend dashboard first: %w", err)
		}
		return err
	}

	if count > 0 {
		logger.Info("Plans already seeded, nothing to do", "count", count)
		return nil
	}

	for _, p := range fixtures.GetDefaultPlans() {
		features, err := json.Marshal(p.Features)
		if err != nil {
			return err
		}

		_, err = conn.Exec(ctx, `
			INSERT INTO subscription_plans (id, name, value, periodicity, features, is_active, created_at, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.ID, p.Name, p.Value, string(p.Periodicity), features, p.IsActive, p.CreatedAt, p.Description)
		if err != nil {
			return fmt.Errorf("insert plan %s: %w", p.ID, err)
		}
		logger.Info("Seeded plan", "id", p.ID, "name", p.Name)
	}

	return nil
}
