package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/gst_compliance/internal/config"
	v1 "github.com/kurochkinivan/gst_compliance/internal/controller/http/v1"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
	"github.com/kurochkinivan/gst_compliance/internal/filedlog"
	"github.com/kurochkinivan/gst_compliance/internal/filing"
	"github.com/kurochkinivan/gst_compliance/internal/infrastructure/blobstore"
	"github.com/kurochkinivan/gst_compliance/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/gst_compliance/internal/pipeline"
	"github.com/kurochkinivan/gst_compliance/internal/report"
	"github.com/kurochkinivan/gst_compliance/internal/repository/postgresql"
	"github.com/kurochkinivan/gst_compliance/internal/repository/redis"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	batchesBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// Run serves the HTTP API and the returns inbox pipeline until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
	)

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	a.log.InfoContext(ctx, "connecting to object storage",
		slog.String("endpoint", a.cfg.Storage.Endpoint),
		slog.String("bucket", a.cfg.Storage.Bucket),
	)

	blobs, err := blobstore.NewMinioStore(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create object storage client: %w", err)
	}

	if err := blobs.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to prepare bucket: %w", err)
	}

	redisClient := redis.NewClient(a.cfg.Redis)
	defer redisClient.Close()

	filedLogsRepository := postgresql.NewFiledLogsRepository(pool)
	importFilesRepository := postgresql.NewImportFilesRepository(pool)
	settingsRepository := postgresql.NewSettingsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	settings := redis.NewSettingsCache(a.log, redisClient, settingsRepository, a.cfg.Redis.SettingsTTL)

	filedLogs := filedlog.NewService(
		a.log,
		filedLogsRepository,
		postgresql.NewAttachmentsRepository(pool),
		blobs,
		settings,
		txManager,
	)
	reconciler := filing.NewReconciler(a.log, filedLogsRepository, txManager)
	advance := report.NewService(a.log, settingsRepository, postgresql.NewLedgerRepository(pool))
	generator := report_generator.NewGenerator()

	if err := importFilesRepository.ResetProcessingFiles(ctx); err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	server := v1.NewServer(a.cfg.HTTP, a.log, v1.Services{
		FiledLogs:    filedLogs,
		FiledLogRepo: filedLogsRepository,
		Returns:      reconciler,
		Advance:      advance,
		PDF:          generator,
	})

	files := make(chan string, filesBuffer)
	batches := make(chan *domain.ReturnsBatch, batchesBuffer)
	reports := make(chan *domain.ReturnsBatch, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.DirectoryScanInterval,
		files,
		importFilesRepository,
		importFilesRepository,
	)
	parser := pipeline.NewParser(a.log, files, batches)
	writer := pipeline.NewWriter(a.log, batches, reports, importFilesRepository, reconciler, txManager)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, filedLogsRepository, generator)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

// ImportReturns reconciles filed logs with a single returns file named
// <gstin>_*.json or <gstin>_*.tsv.
func (a *App) ImportReturns(ctx context.Context, filename string) error {
	gstin, ok := pipeline.GSTINFromFilename(filepath.Base(filename))
	if !ok {
		return fmt.Errorf("%q is not named <gstin>_*.json or <gstin>_*.tsv", filename)
	}

	info, err := pipeline.NewParser(a.log, nil, nil).ParseFile(filename)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", filename, err)
	}

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	reconciler := filing.NewReconciler(a.log, postgresql.NewFiledLogsRepository(pool), postgresql.NewTxManager(pool))

	result, err := reconciler.Process(ctx, gstin, info)
	if err != nil {
		return fmt.Errorf("failed to reconcile returns: %w", err)
	}

	a.log.InfoContext(ctx, "returns imported",
		slog.String("filename", filename),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
	)

	return nil
}

// AdvanceReport writes the GST advance detail report to output as xlsx or pdf.
func (a *App) AdvanceReport(ctx context.Context, filters *domain.AdvanceFilters, format, output string) (err error) {
	if format != FormatXLSX && format != FormatPDF {
		return fmt.Errorf("unknown report format %q", format)
	}

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	advance := report.NewService(a.log, postgresql.NewSettingsRepository(pool), postgresql.NewLedgerRepository(pool))

	columns, entries, err := advance.Execute(ctx, filters)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", output, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if format == FormatXLSX {
		err = report.WriteXLSX(f, filters, columns, entries)
	} else {
		var content []byte
		content, err = report_generator.NewGenerator().AdvanceReport(filters, columns, entries)
		if err == nil {
			_, err = f.Write(content)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.log.InfoContext(ctx, "advance report written",
		slog.String("output", output),
		slog.Int("rows", len(entries)),
	)

	return nil
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}
