package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PixKeyServiceTestSuite struct {
	suite.Suite
	pixKeyRepo *MockPixKeyRepository
	walletRepo *MockWalletRepository
	service    portssvc.PixKeySvcFacade
	wallet     *domain.Wallet
}

func (suite *PixKeyServiceTestSuite) SetupTest() {
	suite.pixKeyRepo = new(MockPixKeyRepository)
	suite.walletRepo = new(MockWalletRepository)
	suite.service = services.NewPixKeyService(suite.pixKeyRepo, suite.walletRepo)
	suite.wallet = walletWithBalance("0.00")
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_Success() {
	ctx := context.Background()
	suite.walletRepo.On("FindByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.pixKeyRepo.On("ExistsByKeyValue", ctx, "ana@example.com").Return(false, nil).Once()
	suite.pixKeyRepo.On("Save", ctx, mock.AnythingOfType("*domain.PixKey")).
		Return(func(_ context.Context, k *domain.PixKey) *domain.PixKey { return k }, nil).Once()

	key, err := suite.service.RegisterPixKey(ctx, suite.wallet.WalletID, "email", "ana@example.com")

	suite.Require().NoError(err)
	suite.NotEmpty(key.PixKeyID)
	suite.Equal(domain.PixKeyEmail, key.KeyType)
	suite.pixKeyRepo.AssertExpectations(suite.T())
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_UnknownType() {
	_, err := suite.service.RegisterPixKey(context.Background(), suite.wallet.WalletID, "IBAN", "x")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.walletRepo.AssertNotCalled(suite.T(), "FindByID", mock.Anything, mock.Anything)
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_UnknownWallet() {
	ctx := context.Background()
	suite.walletRepo.On("FindByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RegisterPixKey(ctx, "missing", "CPF", "52998224725")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_InvalidValue() {
	ctx := context.Background()
	suite.walletRepo.On("FindByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()

	_, err := suite.service.RegisterPixKey(ctx, suite.wallet.WalletID, "CPF", "11111111111")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("'keyValue' is not a valid CPF", apperrors.ViolationsOf(err)[0].Message)
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_AlreadyRegistered() {
	ctx := context.Background()
	suite.walletRepo.On("FindByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.pixKeyRepo.On("ExistsByKeyValue", ctx, "+5511987654321").Return(true, nil).Once()

	_, err := suite.service.RegisterPixKey(ctx, suite.wallet.WalletID, "PHONE", "+5511987654321")

	suite.ErrorIs(err, apperrors.ErrBusinessRule)
	suite.Equal("Pix key already registered", apperrors.ViolationsOf(err)[0].Message)
	suite.pixKeyRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *PixKeyServiceTestSuite) TestRegisterPixKey_UniqueViolation() {
	ctx := context.Background()
	suite.walletRepo.On("FindByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.pixKeyRepo.On("ExistsByKeyValue", ctx, "52998224725").Return(false, nil).Once()
	suite.pixKeyRepo.On("Save", ctx, mock.Anything).Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterPixKey(ctx, suite.wallet.WalletID, "CPF", "52998224725")

	suite.ErrorIs(err, apperrors.ErrBusinessRule)
}

func (suite *PixKeyServiceTestSuite) TestListPixKeys() {
	ctx := context.Background()
	keys := []domain.PixKey{*domain.NewPixKey(suite.wallet.WalletID, domain.PixKeyCPF, "52998224725")}
	suite.walletRepo.On("FindByID", ctx, suite.wallet.WalletID).Return(suite.wallet, nil).Once()
	suite.pixKeyRepo.On("ListByWallet", ctx, suite.wallet.WalletID).Return(keys, nil).Once()

	got, err := suite.service.ListPixKeys(ctx, suite.wallet.WalletID)

	suite.Require().NoError(err)
	suite.Equal(keys, got)
}

func TestPixKeyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PixKeyServiceTestSuite))
}
