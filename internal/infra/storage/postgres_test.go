//go:build unit

package storage

import (
	"context"
	"errors"
	"testing"

	"fieldbook/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type stubRow struct {
	data []byte
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.data
	return nil
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load hit", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, selectBlob, []any{"k"}).Return(stubRow{data: []byte(`{}`)})

		data, err := NewPostgresStore(db).Load(ctx, "k")
		assert.NoError(t, err)
		assert.Equal(t, []byte(`{}`), data)
		db.AssertExpectations(t)
	})

	t.Run("load miss is not found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", ctx, selectBlob, []any{"k"}).Return(stubRow{err: pgx.ErrNoRows})

		_, err := NewPostgresStore(db).Load(ctx, "k")
		assert.True(t, IsNotFound(err))
	})

	t.Run("save failure is a db failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, upsertBlob, []any{"k", []byte(`[]`)}).Return(pgconn.CommandTag{}, errors.New("connection reset"))

		err := NewPostgresStore(db).Save(ctx, "k", []byte(`[]`))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		db.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", ctx, deleteBlob, []any{"k"}).Return(pgconn.NewCommandTag("DELETE 1"), nil)

		assert.NoError(t, NewPostgresStore(db).Delete(ctx, "k"))
		db.AssertExpectations(t)
	})
}
