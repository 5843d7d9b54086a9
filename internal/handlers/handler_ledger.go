package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the wallet statement.
type ledgerHandler struct {
	walletService portssvc.WalletReaderSvc
}

func newLedgerHandler(ws portssvc.WalletReaderSvc) *ledgerHandler {
	return &ledgerHandler{walletService: ws}
}

// listLedger godoc
// @Summary List a wallet's ledger
// @Description Returns ledger entries newest first. Pass nextToken from a previous page to continue.
// @Tags ledger
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list ledger"
// @Security BearerAuth
// @Router /wallets/{id}/ledger [get]
func (h *ledgerHandler) listLedger(c *gin.Context) {
	var params dto.ListLedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.walletService.ListLedger(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, err, "Failed to list ledger")
		return
	}

	c.JSON(http.StatusOK, resp)
}
