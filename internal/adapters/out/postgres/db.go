package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"shipmate/internal/adapters/out/postgres/complaintrepo"
	"shipmate/internal/adapters/out/postgres/orderrepo"
	"shipmate/internal/adapters/out/postgres/senderrepo"
	"shipmate/internal/adapters/out/postgres/travellerrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionParams identifies the PostgreSQL database the service stores its state in.
type ConnectionParams struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the parameters as a lib/pq connection URL.
func (p ConnectionParams) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   p.Host + ":" + p.Port,
		Path:   "/" + p.DBName,
	}
	q := url.Values{}
	if p.SSLMode != "" {
		q.Set("sslmode", p.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Open connects GORM to PostgreSQL through the lib/pq driver and pings the server.
func Open(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	dialector := gormpg.New(gormpg.Config{
		DriverName: "postgres",
		DSN:        dsn,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(slogWriter{log: log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database handle: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// slogWriter routes GORM's slow query and error lines into the service logger.
type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...any) {
	w.log.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

// Migrate creates or updates the tables of every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&senderrepo.SenderDTO{},
		&travellerrepo.TravellerDTO{},
		&orderrepo.OrderDTO{},
		&complaintrepo.ComplaintDTO{},
	)
}
