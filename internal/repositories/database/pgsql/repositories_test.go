package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoriesTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	ctx  context.Context
}

func (s *RepositoriesTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	s.Require().NoError(err)
	s.mock = mock
	s.ctx = context.Background()
}

func (s *RepositoriesTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.mock.Close()
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

func (s *RepositoriesTestSuite) TestWalletExistsByOwner() {
	repo := newPgxWalletRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM wallets WHERE owner_id = $1)")).
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByOwner(s.ctx, "owner-1")
	s.NoError(err)
	s.True(exists)
}

func (s *RepositoriesTestSuite) TestWalletFindByID_NotFound() {
	repo := newPgxWalletRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM wallets WHERE wallet_id = $1;")).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "owner_id", "balance", "status", "created_at", "updated_at"}))

	w, err := repo.FindByID(s.ctx, "missing")
	s.Nil(w)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoriesTestSuite) TestWalletFindByIDForUpdate_LockTimeout() {
	repo := newPgxWalletRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("w-1").
		WillReturnError(&pgconn.PgError{Code: pgLockNotAvailable})

	_, err := repo.FindByIDForUpdate(s.ctx, "w-1")
	s.ErrorIs(err, apperrors.ErrContention)
}

func (s *RepositoriesTestSuite) TestLedgerAppend() {
	repo := newPgxLedgerRepository(s.mock)
	entry := domain.NewPixDebitEntry("w-1", "E2E-1", money("10.00"), money("90.00"))

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ledger_entries")).
		WithArgs(entry.EntryID, "w-1", pgxmock.AnyArg(), string(domain.OperationPixDebit), pgxmock.AnyArg(), pgxmock.AnyArg(), entry.OccurredAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Append(s.ctx, entry)
	s.NoError(err)
	s.Equal(entry.EntryID, saved.EntryID)
}

func (s *RepositoriesTestSuite) TestLedgerListByWallet_InvalidToken() {
	repo := newPgxLedgerRepository(s.mock)
	bad := "%%%not-base64"

	entries, next, err := repo.ListByWallet(s.ctx, "w-1", 10, &bad)
	s.Nil(entries)
	s.Nil(next)
	s.ErrorIs(err, apperrors.ErrValidation)

	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(400, appErr.Code)
}

func (s *RepositoriesTestSuite) TestTransferSave_DuplicateIdempotencyKey() {
	repo := newPgxPixTransferRepository(s.mock)
	transfer := domain.NewPixTransfer("w-1", "w-2", money("5.00"), "idem-1", "E2E-1")

	s.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO pix_transfers")).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintTransferIdempotencyKey})

	_, err := repo.Save(s.ctx, transfer)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositoriesTestSuite) TestTransferFindByCorrelationID_Missing() {
	repo := newPgxPixTransferRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM pix_transfers WHERE end_to_end_id = $1")).
		WithArgs("E2E-unknown").
		WillReturnRows(pgxmock.NewRows([]string{"transfer_id", "from_wallet_id", "to_wallet_id", "amount", "status", "end_to_end_id", "idempotency_key", "created_at"}))

	t, err := repo.FindByCorrelationID(s.ctx, "E2E-unknown")
	s.NoError(err)
	s.Nil(t)
}

func (s *RepositoriesTestSuite) TestWebhookFindByEventID() {
	repo := newPgxPixWebhookEventRepository(s.mock)
	occurred := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	processed := occurred.Add(time.Second)

	s.mock.ExpectQuery(regexp.QuoteMeta("FROM pix_webhook_events WHERE event_id = $1")).
		WithArgs("evt-1").
		WillReturnRows(pgxmock.NewRows([]string{"webhook_event_id", "event_id", "end_to_end_id", "event_type", "occurred_at", "processed_at"}).
			AddRow("wh-1", "evt-1", "E2E-1", "CREDIT_CONFIRMED", occurred, processed))

	e, err := repo.FindByEventID(s.ctx, "evt-1")
	s.Require().NoError(err)
	s.Equal("wh-1", e.WebhookEventID)
	s.Equal(domain.WebhookCreditConfirmed, e.EventType)
	s.Equal(processed, e.ProcessedAt)
}

func (s *RepositoriesTestSuite) TestWebhookFindByEventID_Missing() {
	repo := newPgxPixWebhookEventRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM pix_webhook_events WHERE event_id = $1")).
		WithArgs("evt-x").
		WillReturnRows(pgxmock.NewRows([]string{"webhook_event_id", "event_id", "end_to_end_id", "event_type", "occurred_at", "processed_at"}))

	e, err := repo.FindByEventID(s.ctx, "evt-x")
	s.NoError(err)
	s.Nil(e)
}

func (s *RepositoriesTestSuite) TestPixKeyExistsByKeyValue() {
	repo := newPgxPixKeyRepository(s.mock)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM pix_keys WHERE key_value = $1")).
		WithArgs("a@b.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByKeyValue(s.ctx, "a@b.com")
	s.NoError(err)
	s.False(exists)
}

func (s *RepositoriesTestSuite) TestUserFindByUsername() {
	repo := newPgxUserRepository(s.mock)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "username", "password_hash", "roles", "created_at"}).
			AddRow("u-1", "admin", "hash", []string{"ADMIN"}, created))

	u, err := repo.FindByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal("u-1", u.UserID)
	s.True(u.HasRole(domain.RoleAdmin))
}

func (s *RepositoriesTestSuite) TestUserSave_Duplicate() {
	repo := newPgxUserRepository(s.mock)
	user := domain.NewUserAccount("admin", "hash", []domain.UserRole{domain.RoleAdmin})

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.UserID, "admin", "hash", []string{"ADMIN"}, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := repo.Save(s.ctx, user)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func TestTxManager(t *testing.T) {
	ctx := context.Background()
	deadlock := &pgconn.PgError{Code: pgDeadlockDetected}

	t.Run("commits on success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("SET LOCAL lock_timeout = '250ms'")).WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectCommit()

		m := NewTxManager(mock, WithLockTimeout(250*time.Millisecond))
		calls := 0
		err = m.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			calls++
			assert.NotNil(t, repos.Wallets)
			assert.NotNil(t, repos.Ledger)
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and does not retry business errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectRollback()

		m := NewTxManager(mock, WithRetries(3, time.Millisecond))
		calls := 0
		err = m.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			calls++
			return apperrors.ErrInsufficientBalance
		})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays the unit after a deadlock", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectCommit()

		m := NewTxManager(mock, WithRetries(3, time.Millisecond))
		calls := 0
		err = m.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			calls++
			if calls == 1 {
				return deadlock
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports contention once retries are exhausted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		for i := 0; i < 2; i++ {
			mock.ExpectBegin()
			mock.ExpectExec("SET LOCAL lock_timeout").WillReturnResult(pgxmock.NewResult("SET", 0))
			mock.ExpectRollback()
		}

		m := NewTxManager(mock, WithRetries(1, time.Millisecond))
		err = m.WithinTransaction(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
			return deadlock
		})
		assert.ErrorIs(t, err, apperrors.ErrContention)
		assert.True(t, errors.As(err, new(*pgconn.PgError)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func money(s string) domain.Money {
	m, err := domain.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func TestMapPgError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: apperrors.ErrNotFound},
		{name: "unique", err: &pgconn.PgError{Code: pgUniqueViolation}, want: apperrors.ErrDuplicate},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgLockNotAvailable}, want: apperrors.ErrContention},
		{name: "malformed uuid", err: &pgconn.PgError{Code: pgInvalidText}, want: apperrors.ErrNotFound},
		{name: "check constraint", err: &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "chk_ledger_amount_positive"}, want: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapPgError(tt.err, "op")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	other := errors.New("boom")
	assert.ErrorIs(t, mapPgError(other, "op"), other)
}
