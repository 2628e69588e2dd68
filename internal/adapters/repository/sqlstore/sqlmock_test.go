package sqlstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/projectvote/internal/core/domain"
	"github.com/vncsmyrnk/projectvote/internal/core/ports"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(db, DialectPostgres), mock
}

func TestWithinTx_CounterFailureRollsBack(t *testing.T) {
	store, mock := newMockStore(t)
	boom := errors.New("disk full")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO votes (identity,project_id,created_at) VALUES ($1,$2,$3)")).
		WithArgs("voter-1", int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET votes = votes + 1 WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := store.WithinTx(context.Background(), func(ctx context.Context, repos ports.Repositories) error {
		vote := &domain.Vote{Identity: "voter-1", ProjectID: 7, CreatedAt: time.Now()}
		if err := repos.Votes().SaveVote(ctx, vote); err != nil {
			return err
		}
		return repos.Projects().IncrementVotes(ctx, 7)
	})

	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_Commit(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET votes = votes + 1 WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithinTx(context.Background(), func(ctx context.Context, repos ports.Repositories) error {
		return repos.Projects().IncrementVotes(ctx, 1)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := store.WithinTx(context.Background(), func(ctx context.Context, repos ports.Repositories) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVote_UniqueViolationFromDrivers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		already bool
	}{
		{"lib/pq unique", &pq.Error{Code: "23505"}, true},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, true},
		{"lib/pq foreign key", &pq.Error{Code: "23503"}, false},
		{"other", errors.New("broken pipe"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO votes")).WillReturnError(tt.err)

			err := store.Votes().SaveVote(context.Background(), &domain.Vote{Identity: "x", ProjectID: 1})
			require.Error(t, err)
			if tt.already {
				assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
			} else {
				assert.NotErrorIs(t, err, domain.ErrAlreadyVoted)
				assert.ErrorIs(t, err, tt.err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecountVotes_SingleStatement(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE projects SET votes = (SELECT COUNT(*) FROM votes WHERE project_id = $1) WHERE id = $2",
	)).
		WithArgs(int64(3), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Projects().RecountVotes(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NoRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, link, author, votes, created_at FROM projects WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(projectColumns))

	_, err := store.Projects().GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_WrapsDriverError(t *testing.T) {
	store, mock := newMockStore(t)
	boom := errors.New("timeout")

	mock.ExpectQuery(regexp.QuoteMeta("FROM projects ORDER BY votes DESC, id ASC")).WillReturnError(boom)

	_, err := store.Projects().ListByVotes(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to list projects")
}
