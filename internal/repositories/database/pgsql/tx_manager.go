package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/pix_wallet/internal/middleware"
)

// TxManager runs units of work in a Postgres transaction. Deadlocks and
// serialization failures replay the whole unit with exponential backoff.
type TxManager struct {
	BaseRepository
	db          TxBeginner
	lockTimeout time.Duration
	maxRetries  int
	baseDelay   time.Duration
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithLockTimeout bounds how long a statement waits for a row lock.
func WithLockTimeout(d time.Duration) TxOption {
	return func(m *TxManager) { m.lockTimeout = d }
}

// WithRetries sets how many times a deadlocked unit is replayed and the first backoff.
func WithRetries(maxRetries int, baseDelay time.Duration) TxOption {
	return func(m *TxManager) {
		m.maxRetries = maxRetries
		m.baseDelay = baseDelay
	}
}

// NewTxManager creates a TxManager on top of a pool.
func NewTxManager(db TxBeginner, opts ...TxOption) *TxManager {
	m := &TxManager{
		BaseRepository: BaseRepository{DB: db},
		db:             db,
		lockTimeout:    5 * time.Second,
		maxRetries:     3,
		baseDelay:      20 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

// WithinTransaction implements portsrepo.TransactionManager.
func (m *TxManager) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	for attempt := 0; ; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt >= m.maxRetries {
			logger.Warn("Transaction retries exhausted", slog.Int("attempts", attempt+1), slog.String("error", err.Error()))
			return fmt.Errorf("transaction gave up after %d attempts: %w: %w", attempt+1, apperrors.ErrContention, err)
		}

		delay := m.baseDelay << attempt
		delay += time.Duration(rand.Int63n(int64(delay) + 1))
		logger.Debug("Retrying transaction after conflict",
			slog.Int("attempt", attempt+1),
			slog.Duration("backoff", delay),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (m *TxManager) runOnce(ctx context.Context, fn portsrepo.TxFunc) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = m.Rollback(ctx, tx)
		}
	}()

	if m.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err = tx.Exec(ctx, stmt); err != nil {
			return mapPgError(err, "failed to set lock timeout")
		}
	}

	if err = fn(ctx, newTxRepositories(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return mapPgError(err, "failed to commit transaction")
	}
	return nil
}

func newTxRepositories(tx DBTX) portsrepo.TxRepositories {
	return portsrepo.TxRepositories{
		Wallets:   newPgxWalletRepository(tx),
		Ledger:    newPgxLedgerRepository(tx),
		Transfers: newPgxPixTransferRepository(tx),
		Webhooks:  newPgxPixWebhookEventRepository(tx),
		PixKeys:   newPgxPixKeyRepository(tx),
	}
}
