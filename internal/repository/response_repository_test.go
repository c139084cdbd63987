package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows имитирует pgx.Rows: отдаёт подготовленные строки,
// а после них ошибку итерации, если она задана.
type fakeRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Err() error {
	return r.err
}

func (r *fakeRows) Next() bool {
	if r.idx < len(r.rows) {
		r.idx++
		return true
	}
	return false
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			*d = row[i].(string)
		case *[]string:
			*d = row[i].([]string)
		case *time.Time:
			*d = row[i].(time.Time)
		}
	}
	return nil
}

func responseRow(id string) []any {
	return []any{
		id,
		"demo-slug",
		"Анна",
		"anna@example.com",
		[]string{"2025-03-10-540"},
		"device00000001",
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

// Ошибка, возникшая посреди чтения строк, не должна превращать
// обрезанный список в успешный результат.
func TestScanResponsesIterationError(t *testing.T) {
	rows := &fakeRows{
		rows: [][]any{responseRow("resp00000001")},
		err:  errors.New("connection reset"),
	}

	responses, err := scanResponses(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterate responses")
	assert.Nil(t, responses)
}

func TestScanResponsesReadsAllRows(t *testing.T) {
	rows := &fakeRows{
		rows: [][]any{responseRow("resp00000001"), responseRow("resp00000002")},
	}

	responses, err := scanResponses(rows)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "resp00000001", responses[0].ID)
	assert.Equal(t, "resp00000002", responses[1].ID)
	assert.Equal(t, []string{"2025-03-10-540"}, responses[1].SlotIDs)
}
