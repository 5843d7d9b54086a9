package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) GetBalance(ctx context.Context, walletID string, at *time.Time) (domain.Money, error) {
	args := m.Called(ctx, walletID, at)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockWalletService) ListLedger(ctx context.Context, walletID string, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	args := m.Called(ctx, walletID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerResponse), args.Error(1)
}

func (m *MockWalletService) OpenWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) Deposit(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletService) Withdraw(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock PixTransferService ---
type MockPixTransferService struct {
	mock.Mock
}

func (m *MockPixTransferService) CreateTransfer(ctx context.Context, cmd portssvc.CreateTransferCommand) (*domain.PixTransfer, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixTransfer), args.Error(1)
}

func (m *MockPixTransferService) GetTransferByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.PixTransfer, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixTransfer), args.Error(1)
}

var _ portssvc.PixTransferSvcFacade = (*MockPixTransferService)(nil)

// --- Mock PixWebhookService ---
type MockPixWebhookService struct {
	mock.Mock
}

func (m *MockPixWebhookService) HandleEvent(ctx context.Context, cmd portssvc.HandleWebhookCommand) (*domain.PixWebhookEvent, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixWebhookEvent), args.Error(1)
}

var _ portssvc.PixWebhookSvcFacade = (*MockPixWebhookService)(nil)

// --- Mock PixKeyService ---
type MockPixKeyService struct {
	mock.Mock
}

func (m *MockPixKeyService) RegisterPixKey(ctx context.Context, walletID, keyType, keyValue string) (*domain.PixKey, error) {
	args := m.Called(ctx, walletID, keyType, keyValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixKey), args.Error(1)
}

func (m *MockPixKeyService) ListPixKeys(ctx context.Context, walletID string) ([]domain.PixKey, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PixKey), args.Error(1)
}

var _ portssvc.PixKeySvcFacade = (*MockPixKeyService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterUser(ctx context.Context, username, password string, roles []string) (*domain.UserAccount, error) {
	args := m.Called(ctx, username, password, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*portssvc.AuthToken, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthToken), args.Error(1)
}

func (m *MockAuthService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
