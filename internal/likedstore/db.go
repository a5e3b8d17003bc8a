package likedstore

import (
	"context"
	"fmt"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type dbConfig struct {
	DSN string `json:"dsn"`
}

// dbStore persists the liked set in a Postgres table. Save replaces
// the whole set transactionally so a crash can never leave a partial
// slot behind.
type dbStore struct {
	db *sqlx.DB
}

func init() {
	Register("db", createDBStore)
}

func createDBStore(args interface{}) (Store, error) {
	config := &dbConfig{}
	if err := decodeConfig(args, config); err != nil {
		return nil, err
	}
	if config.DSN == "" {
		return nil, fmt.Errorf("db store dsn is required")
	}
	db, err := sqlx.Connect("postgres", config.DSN)
	if err != nil {
		return nil, fmt.Errorf("open liked store db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS liked_memes (meme_id TEXT PRIMARY KEY)`); err != nil {
		return nil, fmt.Errorf("init liked store table: %w", err)
	}
	return &dbStore{db: db}, nil
}

func (s *dbStore) Save(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM liked_memes`); err != nil {
		return err
	}
	if len(ids) > 0 {
		rows := make([]map[string]interface{}, 0, len(ids))
		for _, id := range ids {
			rows = append(rows, map[string]interface{}{"meme_id": id})
		}
		query, args, err := builder.BuildInsert("liked_memes", rows)
		if err != nil {
			return err
		}
		query = sqlx.Rebind(sqlx.DOLLAR, query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load returns the empty set when the table has no rows; real
// database failures do propagate.
func (s *dbStore) Load(ctx context.Context) ([]string, error) {
	ids := []string{}
	if err := s.db.SelectContext(ctx, &ids, `SELECT meme_id FROM liked_memes ORDER BY meme_id`); err != nil {
		return nil, err
	}
	return ids, nil
}
