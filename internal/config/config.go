package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Storage
	Redis
}

type App struct {
	WatchDirectory        string
	ReportsDirectory      string
	DirectoryScanInterval time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Storage is the MinIO bucket holding attachment contents.
type Storage struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Redis struct {
	Addr        string
	Password    string
	DB          int
	SettingsTTL time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			WatchDirectory:        cmd.String("watch-dir"),
			ReportsDirectory:      cmd.String("reports-dir"),
			DirectoryScanInterval: cmd.Duration("scan-interval"),
		},
		PostgreSQL: LoadPostgreSQL(cmd),
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Storage: LoadStorage(cmd),
		Redis: Redis{
			Addr:        cmd.String("redis-addr"),
			Password:    cmd.String("redis-password"),
			DB:          int(cmd.Int("redis-db")),
			SettingsTTL: cmd.Duration("settings-cache-ttl"),
		},
	}
}

func LoadPostgreSQL(cmd *cli.Command) PostgreSQL {
	return PostgreSQL{
		Host:     cmd.String("pg-host"),
		Port:     cmd.String("pg-port"),
		Username: cmd.String("pg-username"),
		Password: cmd.String("pg-password"),
		DBName:   cmd.String("pg-dbname"),
	}
}

func LoadStorage(cmd *cli.Command) Storage {
	return Storage{
		Endpoint:  cmd.String("minio-endpoint"),
		AccessKey: cmd.String("minio-access-key"),
		SecretKey: cmd.String("minio-secret-key"),
		Bucket:    cmd.String("minio-bucket"),
		UseSSL:    cmd.Bool("minio-use-ssl"),
	}
}
