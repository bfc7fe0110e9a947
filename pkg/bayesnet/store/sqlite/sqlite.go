// Package sqlite persists datasets in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS datasets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS attributes (
	dataset_id INTEGER NOT NULL,
	attr_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	PRIMARY KEY(dataset_id, attr_id),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS attribute_values (
	dataset_id INTEGER NOT NULL,
	attr_id INTEGER NOT NULL,
	value_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY(dataset_id, attr_id, value_id),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS instance_values (
	dataset_id INTEGER NOT NULL,
	row_idx INTEGER NOT NULL,
	attr_id INTEGER NOT NULL,
	value REAL NOT NULL,
	PRIMARY KEY(dataset_id, row_idx, attr_id),
	FOREIGN KEY(dataset_id) REFERENCES datasets(id) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDataSet stores a dataset under name, replacing any previous
// dataset with that name.
func (s *sqliteStore) SaveDataSet(ctx context.Context, name string, ds *data.DataSet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `INSERT INTO datasets(name) VALUES (?)`, name)
	if err != nil {
		return err
	}
	dsID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, a := range ds.Attributes() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO attributes(dataset_id, attr_id, name, type) VALUES (?, ?, ?, ?)`,
			dsID, a.ID(), a.Name(), a.Type().String()); err != nil {
			return err
		}
		for valueID, valueName := range a.Values() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO attribute_values(dataset_id, attr_id, value_id, name) VALUES (?, ?, ?, ?)`,
				dsID, a.ID(), valueID, valueName); err != nil {
				return err
			}
		}
	}

	for row, in := range ds.Instances() {
		for attrID, value := range in.Values {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO instance_values(dataset_id, row_idx, attr_id, value) VALUES (?, ?, ?, ?)`,
				dsID, row, attrID, value); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadDataSet reconstructs the named dataset.
func (s *sqliteStore) LoadDataSet(ctx context.Context, name string) (*data.DataSet, bool, error) {
	var dsID int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM datasets WHERE name = ?`, name).Scan(&dsID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	attributes, err := s.loadAttributes(ctx, dsID)
	if err != nil {
		return nil, false, err
	}

	ds, err := data.NewDataSet(attributes)
	if err != nil {
		return nil, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT row_idx, attr_id, value FROM instance_values WHERE dataset_id = ? ORDER BY row_idx, attr_id`, dsID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	current := -1
	var values []float64
	flush := func() error {
		if current < 0 {
			return nil
		}
		return ds.AddInstance(data.Instance{Values: values})
	}
	for rows.Next() {
		var rowIdx, attrID int
		var value float64
		if err := rows.Scan(&rowIdx, &attrID, &value); err != nil {
			return nil, false, err
		}
		if rowIdx != current {
			if err := flush(); err != nil {
				return nil, false, err
			}
			current = rowIdx
			values = make([]float64, len(attributes))
		}
		if attrID < 0 || attrID >= len(attributes) {
			return nil, false, fmt.Errorf("dataset %q row %d references attribute %d: %w",
				name, rowIdx, attrID, internalerr.ErrInvalidInput)
		}
		values[attrID] = value
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if err := flush(); err != nil {
		return nil, false, err
	}

	return ds, true, nil
}

func (s *sqliteStore) loadAttributes(ctx context.Context, dsID int64) ([]*data.Attribute, error) {
	type attrRow struct {
		id   int
		name string
		typ  string
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT attr_id, name, type FROM attributes WHERE dataset_id = ? ORDER BY attr_id`, dsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attrRows []attrRow
	for rows.Next() {
		var ar attrRow
		if err := rows.Scan(&ar.id, &ar.name, &ar.typ); err != nil {
			return nil, err
		}
		attrRows = append(attrRows, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	attributes := make([]*data.Attribute, 0, len(attrRows))
	for _, ar := range attrRows {
		switch ar.typ {
		case data.Continuous.String():
			a, err := data.NewContinuous(ar.name, ar.id)
			if err != nil {
				return nil, err
			}
			attributes = append(attributes, a)
		case data.Nominal.String():
			values, err := s.loadValues(ctx, dsID, ar.id)
			if err != nil {
				return nil, err
			}
			a, err := data.NewNominal(ar.name, ar.id, values)
			if err != nil {
				return nil, err
			}
			attributes = append(attributes, a)
		default:
			return nil, fmt.Errorf("attribute %q has unknown type %q: %w",
				ar.name, ar.typ, internalerr.ErrInvalidInput)
		}
	}
	return attributes, nil
}

func (s *sqliteStore) loadValues(ctx context.Context, dsID int64, attrID int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM attribute_values WHERE dataset_id = ? AND attr_id = ? ORDER BY value_id`, dsID, attrID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// ListDataSets returns the stored dataset names in sorted order.
func (s *sqliteStore) ListDataSets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// DeleteDataSet removes the named dataset and its rows.
func (s *sqliteStore) DeleteDataSet(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
	return err
}
