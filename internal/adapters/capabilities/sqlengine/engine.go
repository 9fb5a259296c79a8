// Package sqlengine implements ports.SQLEngine for the embedded (SQLite),
// analytical (DuckDB), and server (PostgreSQL) databases. All three share one
// database/sql runner: the connection is opened for a single query and closed
// before Query returns.
package sqlengine

import (
	"context"
	"database/sql"
	"fmt"

	// Register the database/sql drivers used by the engines below.
	_ "github.com/lib/pq"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/dataworks/internal/domain/task"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// Engine names reported by Name.
const (
	NameSQLite   = "sqlite"
	NameDuckDB   = "duckdb"
	NamePostgres = "postgres"
)

var (
	_ ports.SQLEngine = (*Engine)(nil)
)

// Engine runs queries through a database/sql driver.
type Engine struct {
	name   string
	driver string
}

// NewSQLite returns the embedded engine. The dsn is a database file path;
// a missing file is created by the driver.
func NewSQLite() *Engine {
	return &Engine{name: NameSQLite, driver: "sqlite3"}
}

// NewDuckDB returns the analytical engine. The dsn is a database file path;
// an empty path opens an in-memory database.
func NewDuckDB() *Engine {
	return &Engine{name: NameDuckDB, driver: "duckdb"}
}

// NewPostgres returns the server engine. The dsn is a postgres:// URL.
func NewPostgres() *Engine {
	return &Engine{name: NamePostgres, driver: "postgres"}
}

// Name identifies the engine in logs.
func (e *Engine) Name() string {
	return e.name
}

// Query opens dsn, runs query, and returns every row. Statements that return
// no rows yield empty results and column names.
func (e *Engine) Query(ctx context.Context, dsn, query string) (*task.QueryResult, error) {
	db, err := sql.Open(e.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", e.name, err)
	}
	defer func() { _ = db.Close() }()

	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s query: %w", e.name, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s columns: %w", e.name, err)
	}

	results := make([][]any, 0)
	for rows.Next() {
		row, err := scanRow(rows, len(cols))
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", e.name, err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", e.name, err)
	}

	if cols == nil {
		cols = []string{}
	}
	return &task.QueryResult{Query: query, Results: results, ColumnNames: cols}, nil
}

func scanRow(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	for i, v := range values {
		// Text and blob cells arrive as []byte, which encoding/json would
		// base64-encode.
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}
