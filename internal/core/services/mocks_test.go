package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/pix_wallet/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Wallet ---

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ExistsByOwner(ctx context.Context, ownerID string) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletRepository) FindByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Save(ctx context.Context, wallet *domain.Wallet) (*domain.Wallet, error) {
	args := m.Called(ctx, wallet)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Wallet) *domain.Wallet); ok {
		return fn(ctx, wallet), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

// --- Ledger ---

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindByWallet(ctx context.Context, walletID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindByWalletBefore(ctx context.Context, walletID string, at time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, walletID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindLastBefore(ctx context.Context, walletID string, at time.Time) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, walletID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) ListByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, walletID, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), token, args.Error(2)
}

func (m *MockLedgerRepository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if fn, ok := args.Get(0).(func(context.Context, *domain.LedgerEntry) *domain.LedgerEntry); ok {
		return fn(ctx, entry), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

// --- Pix transfers ---

type MockPixTransferRepository struct {
	mock.Mock
}

func (m *MockPixTransferRepository) Save(ctx context.Context, transfer *domain.PixTransfer) (*domain.PixTransfer, error) {
	args := m.Called(ctx, transfer)
	if fn, ok := args.Get(0).(func(context.Context, *domain.PixTransfer) *domain.PixTransfer); ok {
		return fn(ctx, transfer), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixTransfer), args.Error(1)
}

func (m *MockPixTransferRepository) FindByCorrelationID(ctx context.Context, endToEndID string) (*domain.PixTransfer, error) {
	args := m.Called(ctx, endToEndID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixTransfer), args.Error(1)
}

func (m *MockPixTransferRepository) FindByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixTransfer), args.Error(1)
}

func (m *MockPixTransferRepository) ExistsByIdempotencyKey(ctx context.Context, idempotencyKey string) (bool, error) {
	args := m.Called(ctx, idempotencyKey)
	return args.Bool(0), args.Error(1)
}

// --- Webhook events ---

type MockPixWebhookEventRepository struct {
	mock.Mock
}

func (m *MockPixWebhookEventRepository) Save(ctx context.Context, event *domain.PixWebhookEvent) (*domain.PixWebhookEvent, error) {
	args := m.Called(ctx, event)
	if fn, ok := args.Get(0).(func(context.Context, *domain.PixWebhookEvent) *domain.PixWebhookEvent); ok {
		return fn(ctx, event), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixWebhookEvent), args.Error(1)
}

func (m *MockPixWebhookEventRepository) FindByEventID(ctx context.Context, eventID string) (*domain.PixWebhookEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixWebhookEvent), args.Error(1)
}

func (m *MockPixWebhookEventRepository) ExistsByEventID(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

// --- Pix keys ---

type MockPixKeyRepository struct {
	mock.Mock
}

func (m *MockPixKeyRepository) Save(ctx context.Context, key *domain.PixKey) (*domain.PixKey, error) {
	args := m.Called(ctx, key)
	if fn, ok := args.Get(0).(func(context.Context, *domain.PixKey) *domain.PixKey); ok {
		return fn(ctx, key), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixKey), args.Error(1)
}

func (m *MockPixKeyRepository) ExistsByKeyValue(ctx context.Context, keyValue string) (bool, error) {
	args := m.Called(ctx, keyValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockPixKeyRepository) ListByWallet(ctx context.Context, walletID string) ([]domain.PixKey, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PixKey), args.Error(1)
}

// --- Users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.UserAccount) (*domain.UserAccount, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, *domain.UserAccount) *domain.UserAccount); ok {
		return fn(ctx, user), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

// --- Cache ---

type MockBalanceCache struct {
	mock.Mock
}

func (m *MockBalanceCache) Get(ctx context.Context, walletID string) (domain.Money, bool, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(domain.Money), args.Bool(1), args.Error(2)
}

func (m *MockBalanceCache) Generation(ctx context.Context, walletID string) (int64, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceCache) Fill(ctx context.Context, walletID string, generation int64, balance domain.Money) error {
	args := m.Called(ctx, walletID, generation, balance)
	return args.Error(0)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, walletIDs ...string) error {
	args := m.Called(ctx, walletIDs)
	return args.Error(0)
}

// passthroughTxManager runs the unit of work once against the mocks, without
// any transactional behaviour.
type passthroughTxManager struct {
	repos portsrepo.TxRepositories
	calls int
}

func (m *passthroughTxManager) WithinTransaction(ctx context.Context, fn portsrepo.TxFunc) error {
	m.calls++
	return fn(ctx, m.repos)
}
