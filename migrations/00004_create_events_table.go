package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateEventsTable, downCreateEventsTable)
}

func upCreateEventsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE events (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  title TEXT NOT NULL,
	  description TEXT NOT NULL,
	  date TIMESTAMP WITH TIME ZONE NOT NULL,
	  location TEXT NOT NULL,
	  image_url TEXT,
	  featured BOOLEAN NOT NULL DEFAULT FALSE,
	  artisan_id UUID NOT NULL REFERENCES artisans(id) ON DELETE CASCADE,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_events_date ON events(date);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateEventsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS events;`)
	if err != nil {
		return err
	}
	return nil
}
