package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tareas/task-lifecycle-api/internal/config"
	"github.com/tareas/task-lifecycle-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by cfg.DBDriver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := NewGormConfig(GormLogLevel(cfg.LogLevel))

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBSSLMode,
		)
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBName,
		)
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	case "sqlite":
		db, err = OpenSQLite(cfg.SQLitePath, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established", slog.String("driver", cfg.DBDriver))
	return db, nil
}

// OpenSQLite opens a SQLite database with foreign keys enforced. The pool is
// limited to one connection so that ":memory:" databases are shared.
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=1"
	} else {
		dsn += "?_foreign_keys=1"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// NewGormConfig returns the gorm settings shared by every dialect: UTC
// timestamps and translated driver errors.
func NewGormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// GormLogLevel maps the application log level onto gorm's SQL logger.
func GormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}

// Migrate creates or updates the schema and secondary indexes.
func Migrate(db *gorm.DB) error {
	slog.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db); err != nil {
		return err
	}

	slog.Info("database migrations completed")
	return nil
}
