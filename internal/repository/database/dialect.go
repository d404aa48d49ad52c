package database

import (
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/errors"
)

// Dialect identifies the SQL engine behind a repository.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect accepts the driver names users commonly type for the supported engines.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", errors.NewInvalidInputError("database driver", name, "must be sqlite or postgres")
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into the dialect's positional form.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TimeValue converts a timestamp into the value bound for the dialect's column type.
// SQLite stores timestamps as fixed-width UTC text so that ORDER BY sorts chronologically.
func (d Dialect) TimeValue(t time.Time) interface{} {
	if d == DialectPostgres {
		return t.UTC()
	}
	return FormatTimeForDB(t)
}
