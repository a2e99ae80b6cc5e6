package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/gst_compliance/internal/app"
	"github.com/kurochkinivan/gst_compliance/internal/config"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/repository/postgresql"
	"github.com/kurochkinivan/gst_compliance/migrations"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

func cmd() *cli.Command {
	var configFile string

	return &cli.Command{
		Name:           "gst_compliance",
		Usage:          "GST compliance service",
		Version:        version,
		Flags:          commonFlags(&configFile),
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API and watch the returns inbox",
				Flags:  serveFlags(&configFile),
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Apply database migrations",
				Commands: []*cli.Command{
					{
						Name:   migrationTypeUp,
						Usage:  "Apply all up migrations",
						Action: migrateAction(migrationTypeUp),
					},
					{
						Name:   migrationTypeDown,
						Usage:  "Apply all down migrations",
						Action: migrateAction(migrationTypeDown),
					},
				},
			},
			{
				Name:      "import-returns",
				Usage:     "Reconcile filed logs with a returns file",
				ArgsUsage: "FILE",
				Action:    importReturns,
			},
			{
				Name:   "advance-report",
				Usage:  "Write the GST advance detail report",
				Flags:  advanceReportFlags(),
				Action: advanceReport,
			},
		},
	}
}

func loggerFrom(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFrom(ctx)
	if err != nil {
		return err
	}

	return app.New(log, config.Load(cmd)).Run(ctx)
}

func importReturns(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFrom(ctx)
	if err != nil {
		return err
	}

	filename := cmd.Args().First()
	if filename == "" {
		return errors.New("returns file is required")
	}

	cfg := &config.Config{PostgreSQL: config.LoadPostgreSQL(cmd)}

	return app.New(log, cfg).ImportReturns(ctx, filename)
}

func advanceReport(ctx context.Context, cmd *cli.Command) error {
	log, err := loggerFrom(ctx)
	if err != nil {
		return err
	}

	filters := &domain.AdvanceFilters{
		Company:       cmd.String("company"),
		Customer:      cmd.String("customer"),
		Account:       cmd.String("account"),
		ShowForPeriod: cmd.Bool("show-for-period"),
	}

	if filters.FromDate, err = parseDate(cmd.String("from-date")); err != nil {
		return err
	}

	if filters.ToDate, err = parseDate(cmd.String("to-date")); err != nil {
		return err
	}

	format := cmd.String("format")

	output := cmd.String("output")
	if output == "" {
		output = "gst_advance_detail." + format
	}

	cfg := &config.Config{PostgreSQL: config.LoadPostgreSQL(cmd)}

	return app.New(log, cfg).AdvanceReport(ctx, filters, format, output)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return &t, nil
}

func migrateAction(migrationType string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) (err error) {
		log, err := loggerFrom(ctx)
		if err != nil {
			return err
		}

		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return fmt.Errorf("failed to create migrations source: %w", err)
		}

		migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.URL(config.LoadPostgreSQL(cmd)))
		if err != nil {
			return fmt.Errorf("failed to create migrator: %w", err)
		}
		defer func() {
			srcErr, dbErr := migrator.Close()
			err = errors.Join(err, srcErr, dbErr)
		}()

		if err := applyMigration(migrator, migrationType); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.InfoContext(ctx, "no migrations to apply")
				return nil
			}

			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		log.InfoContext(ctx, "migrations applied successfully", slog.String("type", migrationType))

		return nil
	}
}

func applyMigration(migrator *migrate.Migrate, migrationType string) error {
	switch migrationType {
	case migrationTypeUp:
		return migrator.Up()
	case migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}
