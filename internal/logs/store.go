package logs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/robmck/fitlife/internal/telemetry/tracing"
	"github.com/robmck/fitlife/pkg"
)

var (
	ErrLogNotFound  = errors.New("log entry not found")
	ErrDuplicateLog = errors.New("log entry with that id already exists")
)

// Store is the per-kind persistence layer. Log IDs are caller-supplied;
// a duplicate insert fails with ErrDuplicateLog, it never overwrites.
type Store[T Log] struct {
	db   *pgxpool.Pool
	kind Kind[T]
}

func NewStore[T Log](db *pgxpool.Pool, kind Kind[T]) *Store[T] {
	return &Store[T]{
		db:   db,
		kind: kind,
	}
}

// List returns all entries, newest date first. A nil userID returns the
// entries of all users - the dashboard "all users" views rely on that.
func (s *Store[T]) List(ctx context.Context, userID *int) (_ []T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+s.kind.Name+".list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if userID != nil {
		span.SetAttributes(attribute.Int("user_id", *userID))
	}

	rows, err := s.db.Query(
		ctx,
		fmt.Sprintf(`
			SELECT %s FROM %s
				WHERE ($1::int IS NULL OR user_id = $1)
			ORDER BY date DESC;`,
			strings.Join(s.kind.Columns, ", "), s.kind.Table,
		),
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return s.rows2logs(rows)
}

func (s *Store[T]) Get(ctx context.Context, logID int) (_ *T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+s.kind.Name+".get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log_id", logID))

	rows, err := s.db.Query(
		ctx,
		fmt.Sprintf(
			`SELECT %s FROM %s WHERE log_id = $1;`,
			strings.Join(s.kind.Columns, ", "), s.kind.Table,
		),
		logID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	entries, err := s.rows2logs(rows)
	if err != nil {
		return nil, err
	}

	if len(entries) != 1 {
		return nil, ErrLogNotFound
	}

	return &entries[0], nil
}

func (s *Store[T]) Create(ctx context.Context, rec T) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+s.kind.Name+".create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log_id", rec.ID()))

	_, err = s.db.Exec(
		ctx,
		fmt.Sprintf(
			`INSERT INTO %s (%s) VALUES (%s);`,
			s.kind.Table,
			strings.Join(s.kind.Columns, ", "),
			placeholders(len(s.kind.Columns)),
		),
		s.kind.Args(rec)...,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateLog
		}
		return fmt.Errorf("insert: %w", err)
	}

	return nil
}

// Update replaces all fields of the entry with the given log id in one statement.
func (s *Store[T]) Update(ctx context.Context, logID int, rec T) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+s.kind.Name+".update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log_id", logID))

	// columns[0] is log_id, the key - everything after it is mutable
	setClauses := make([]string, 0, len(s.kind.Columns)-1)
	for i, col := range s.kind.Columns[1:] {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+2))
	}

	args := append([]any{logID}, s.kind.Args(rec)[1:]...)
	tag, err := s.db.Exec(
		ctx,
		fmt.Sprintf(
			`UPDATE %s SET %s WHERE log_id = $1;`,
			s.kind.Table, strings.Join(setClauses, ", "),
		),
		args...,
	)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}

	return nil
}

func (s *Store[T]) Delete(ctx context.Context, logID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store."+s.kind.Name+".delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log_id", logID))

	tag, err := s.db.Exec(
		ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE log_id = $1;`, s.kind.Table),
		logID,
	)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (s *Store[T]) rows2logs(rows pgx.Rows) ([]T, error) {
	entries := make([]T, 0)
	for rows.Next() {
		e, err := s.kind.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return entries, nil
}

func placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ps, ", ")
}
