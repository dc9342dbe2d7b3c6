package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeQuerier answers every Query with rows and every QueryRow with row,
// recording the statements it was given.
type fakeQuerier struct {
	calls []call

	rows    [][]any
	row     fakeRow
	tag     pgconn.CommandTag
	execErr error
}

type call struct {
	query string
	args  []any
}

func (q *fakeQuerier) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	q.calls = append(q.calls, call{query, args})
	return q.tag, q.execErr
}

func (q *fakeQuerier) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	q.calls = append(q.calls, call{query, args})
	return &fakeRows{data: q.rows}, nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	q.calls = append(q.calls, call{query, args})
	return q.row
}

func (q *fakeQuerier) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("copy is not supported")
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

type fakeRows struct {
	data [][]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(r.data[r.pos-1], dest)
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

// assign copies values into scan destinations. A nil value zeroes the
// destination, which leaves pointer fields nil like a SQL NULL.
func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan %d values into %d destinations", len(values), len(dest))
	}

	for i, d := range dest {
		dv := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			dv.SetZero()
			continue
		}

		v := reflect.ValueOf(values[i])
		if dv.Kind() == reflect.Pointer {
			p := reflect.New(dv.Type().Elem())
			p.Elem().Set(v.Convert(dv.Type().Elem()))
			dv.Set(p)
			continue
		}
		dv.Set(v.Convert(dv.Type()))
	}
	return nil
}
