package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorageFilesystem = "filesystem"
	StorageGCS        = "gcs"
)

type Config struct {
	App
	Storage
	PostgreSQL
	HTTP
}

type App struct {
	ConvertTimeout time.Duration
	ConvertDelay   time.Duration
	SessionTTL     time.Duration
}

type Storage struct {
	Backend   string
	Directory string
	GCSBucket string
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

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ConvertTimeout: cmd.Duration("convert-timeout"),
			ConvertDelay:   cmd.Duration("convert-delay"),
			SessionTTL:     cmd.Duration("session-ttl"),
		},
		Storage: Storage{
			Backend:   cmd.String("storage-backend"),
			Directory: cmd.String("storage-dir"),
			GCSBucket: cmd.String("gcs-bucket"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
