package db

import (
	"context"
	"database/sql"
)

type Database interface {
	Connect() error
	Close() error
	Ping(ctx context.Context) error
	DB() *sql.DB
}
