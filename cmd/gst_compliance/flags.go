package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func yamlSource(key string, config *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))
}

// commonFlags are shared by every subcommand.
func commonFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: config,
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  yamlSource("postgresql.host", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  yamlSource("postgresql.port", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  yamlSource("postgresql.username", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  yamlSource("postgresql.password", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "gst_compliance",
			Sources:  yamlSource("postgresql.dbname", config),
			Required: true,
		},
	}
}

func serveFlags(config *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set directory to watch for returns files",
			Value:     "input",
			Sources:   yamlSource("app.watch_dir", config),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write filing summaries to",
			Value:     "output",
			Sources:   yamlSource("app.reports_dir", config),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:     "scan-interval",
			Aliases:  []string{"s"},
			Value:    3 * time.Second,
			Usage:    "Set directory scan interval",
			Sources:  yamlSource("app.scan_interval", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: yamlSource("http.host", config),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: yamlSource("http.port", config),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: yamlSource("http.idle_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: yamlSource("http.read_timeout", config),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: yamlSource("http.write_timeout", config),
		},
		&cli.StringFlag{
			Name:     "minio-endpoint",
			Usage:    "Set MinIO endpoint",
			Value:    "localhost:9000",
			Sources:  yamlSource("storage.endpoint", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "minio-access-key",
			Usage:    "Set MinIO access key",
			Sources:  yamlSource("storage.access_key", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "minio-secret-key",
			Usage:    "Set MinIO secret key",
			Sources:  yamlSource("storage.secret_key", config),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Usage:   "Set bucket holding attachment contents",
			Value:   "gst-compliance",
			Sources: yamlSource("storage.bucket", config),
		},
		&cli.BoolFlag{
			Name:    "minio-use-ssl",
			Usage:   "Connect to MinIO over TLS",
			Sources: yamlSource("storage.use_ssl", config),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address",
			Value:   "localhost:6379",
			Sources: yamlSource("redis.addr", config),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: yamlSource("redis.password", config),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database",
			Sources: yamlSource("redis.db", config),
		},
		&cli.DurationFlag{
			Name:    "settings-cache-ttl",
			Usage:   "Set how long GST settings stay cached",
			Value:   5 * time.Minute,
			Sources: yamlSource("redis.settings_ttl", config),
		},
	}
}

func advanceReportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "company",
			Usage:    "Set company to report on",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "customer",
			Usage: "Only include payments of the customer",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "Only include payments received from the account",
		},
		&cli.BoolFlag{
			Name:  "show-for-period",
			Usage: "Apply --from-date",
		},
		&cli.StringFlag{
			Name:  "from-date",
			Usage: "Set first posting date as YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  "to-date",
			Usage: "Set last posting date as YYYY-MM-DD",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Set report format: xlsx or pdf",
			Value: "xlsx",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write report to `FILE` (default gst_advance_detail.<format>)",
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
