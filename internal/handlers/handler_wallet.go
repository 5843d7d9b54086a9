package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/SscSPs/pix_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets and their balances.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers the wallet routes. Opening a wallet is reserved to admins.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade, pixKeyService portssvc.PixKeySvcFacade) {
	h := newWalletHandler(walletService)
	lh := newLedgerHandler(walletService)
	kh := newPixKeyHandler(pixKeyService)

	wallets := rg.Group("/wallets")
	wallets.POST("", middleware.RequireRoles(string(domain.RoleAdmin)), h.createWallet)

	wallet := wallets.Group("/:id", middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RoleOperator)))
	{
		wallet.GET("/balance", h.getBalance)
		wallet.POST("/deposit", h.deposit)
		wallet.POST("/withdraw", h.withdraw)
		wallet.GET("/ledger", lh.listLedger)
		wallet.POST("/pix-keys", kh.registerPixKey)
		wallet.GET("/pix-keys", kh.listPixKeys)
	}
}

// createWallet godoc
// @Summary Open a wallet
// @Description Opens a zero-balance wallet. An owner can hold only one wallet.
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   wallet body dto.CreateWalletRequest true "Wallet owner"
// @Success 201 {object} dto.CreateWalletResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Insufficient permissions"
// @Failure 422 {object} dto.ErrorResponse "Owner already has a wallet"
// @Failure 500 {object} dto.ErrorResponse "Failed to open wallet"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	wallet, err := h.walletService.OpenWallet(c.Request.Context(), req.OwnerID)
	if err != nil {
		respondError(c, err, "Failed to open wallet")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateWalletResponse(wallet))
}

// getBalance godoc
// @Summary Get a wallet balance
// @Description Returns the live balance, or the balance the ledger shows at the given instant.
// @Tags wallets
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   at query string false "RFC3339 instant for a historical balance"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid 'at' parameter"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get balance"
// @Security BearerAuth
// @Router /wallets/{id}/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	walletID := c.Param("id")

	var at *time.Time
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid 'at' parameter, expected RFC3339"})
			return
		}
		at = &parsed
	}

	balance, err := h.walletService.GetBalance(c.Request.Context(), walletID, at)
	if err != nil {
		respondError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{WalletID: walletID, CurrentBalance: balance.Decimal(), At: at})
}

// deposit godoc
// @Summary Deposit into a wallet
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   amount body dto.AmountRequest true "Amount to deposit"
// @Success 200 {object} dto.BalanceChangeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 409 {object} dto.ErrorResponse "Wallet is busy"
// @Failure 500 {object} dto.ErrorResponse "Failed to deposit"
// @Security BearerAuth
// @Router /wallets/{id}/deposit [post]
func (h *walletHandler) deposit(c *gin.Context) {
	h.changeBalance(c, "deposit", h.walletService.Deposit)
}

// withdraw godoc
// @Summary Withdraw from a wallet
// @Tags wallets
// @Accept  json
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   amount body dto.AmountRequest true "Amount to withdraw"
// @Success 200 {object} dto.BalanceChangeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 409 {object} dto.ErrorResponse "Wallet is busy"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to withdraw"
// @Security BearerAuth
// @Router /wallets/{id}/withdraw [post]
func (h *walletHandler) withdraw(c *gin.Context) {
	h.changeBalance(c, "withdraw", h.walletService.Withdraw)
}

func (h *walletHandler) changeBalance(c *gin.Context, operation string, apply func(ctx context.Context, walletID string, amount domain.Money) (*domain.Wallet, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("id")

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	amount, err := domain.NewMoney(req.Amount)
	if err != nil {
		respondError(c, err, "Invalid amount")
		return
	}

	logger.Info("Received balance change", slog.String("operation", operation), slog.String("wallet_id", walletID), slog.String("amount", amount.String()))

	wallet, err := apply(c.Request.Context(), walletID, amount)
	if err != nil {
		respondError(c, err, "Failed to "+operation)
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceChangeResponse(wallet))
}
