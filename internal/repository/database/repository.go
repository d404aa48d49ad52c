package database

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository/database/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for task persistence.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	SchemaVersion(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
	Close() error
}

// SQLRepository implements the Repository interface on top of database/sql
type SQLRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// Option configures an SQLRepository.
type Option func(*SQLRepository)

// WithClock overrides the clock used to stamp created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *SQLRepository) {
		r.now = now
	}
}

// New creates a new SQLite repository instance
func New(dbPath string, opts ...Option) (*SQLRepository, error) {
	return Open(DialectSQLite, dbPath, opts...)
}

// Open connects to the database described by dsn and brings its schema up to date.
func Open(dialect Dialect, dsn string, opts ...Option) (*SQLRepository, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err).With("driver", dialect.DriverName())
	}

	// SQLite allows a single writer, and every :memory: connection is a separate database.
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(context.Background(), db, string(dialect)); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err).With("dialect", string(dialect))
	}

	repo := &SQLRepository{db: db, dialect: dialect, now: time.Now}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Dialect reports which SQL engine the repository talks to.
func (r *SQLRepository) Dialect() Dialect {
	return r.dialect
}

// DB exposes the underlying handle for schema tooling.
func (r *SQLRepository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Ping verifies the database is reachable
func (r *SQLRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// SchemaVersion returns the latest applied migration version
func (r *SQLRepository) SchemaVersion(ctx context.Context) (int, error) {
	version, err := migrations.CurrentVersion(ctx, r.db)
	if err != nil {
		return 0, HandleDatabaseError("read schema version", err)
	}
	return version, nil
}

// timestamp returns the current time at the precision every supported engine can store.
func (r *SQLRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

// CreateTask inserts a task; id, created_at and updated_at are assigned here.
func (r *SQLRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (title, description, completed, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	RETURNING id`

	now := r.timestamp()
	id, err := InsertReturningID(ctx, r.db, r.dialect.Rebind(query),
		task.Title, task.Description, task.Completed, r.dialect.TimeValue(now), r.dialect.TimeValue(now))
	if err != nil {
		return err
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, title, description, completed, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, r.dialect.Rebind(query), ScanTask, "task", strconv.FormatInt(id, 10), id)
}

// ListTasks retrieves every task, newest first
func (r *SQLRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, title, description, completed, created_at, updated_at
	FROM tasks
	ORDER BY created_at DESC, id DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask writes the mutable fields of a task and refreshes updated_at.
// created_at is never written.
func (r *SQLRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET title = ?, description = ?, completed = ?, updated_at = ?
	WHERE id = ?`

	now := r.timestamp()
	err := ExecuteWithRowsAffected(ctx, r.db, r.dialect.Rebind(query), "task", strconv.FormatInt(task.ID, 10),
		task.Title, task.Description, task.Completed, r.dialect.TimeValue(now), task.ID)
	if err != nil {
		return err
	}

	task.UpdatedAt = now
	return nil
}

// DeleteTask deletes a task by ID
func (r *SQLRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, r.dialect.Rebind(query), "task", strconv.FormatInt(id, 10), id)
}
