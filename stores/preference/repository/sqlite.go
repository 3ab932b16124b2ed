package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	name  TEXT PRIMARY KEY,
	value INTEGER NOT NULL
)`

type sqliteRepo struct {
	db *sqlx.DB
}

// NewSqliteRepo opens (and migrates) the preference database at path.
// Use ":memory:" for an ephemeral one.
func NewSqliteRepo(path string) (domain.PreferenceRepo, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteRepo{db: db}, nil
}

func (r *sqliteRepo) GetBool(c bCtx.Ctx, name string) (bool, error) {
	var value bool
	err := r.db.GetContext(c, &value, `SELECT value FROM preferences WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return false, domain.ErrNotFound
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("preference select failed")
		return false, err
	}
	return value, nil
}

func (r *sqliteRepo) SetBool(c bCtx.Ctx, name string, value bool) error {
	_, err := r.db.ExecContext(c,
		`INSERT INTO preferences (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("preference upsert failed")
		return err
	}
	return nil
}
