package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pix_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/SscSPs/pix_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pixHandler handles Pix transfers and settlement webhooks.
type pixHandler struct {
	transferService portssvc.PixTransferSvcFacade
	webhookService  portssvc.PixWebhookSvcFacade
}

func newPixHandler(ts portssvc.PixTransferSvcFacade, ws portssvc.PixWebhookSvcFacade) *pixHandler {
	return &pixHandler{transferService: ts, webhookService: ws}
}

func registerPixRoutes(rg *gin.RouterGroup, transferService portssvc.PixTransferSvcFacade, webhookService portssvc.PixWebhookSvcFacade) {
	h := newPixHandler(transferService, webhookService)

	pix := rg.Group("/pix", middleware.RequireRoles(string(domain.RoleAdmin), string(domain.RoleOperator)))
	{
		pix.POST("/transfers", h.createTransfer)
		pix.GET("/transfers/:idempotencyKey", h.getTransfer)
		pix.POST("/webhooks", h.handleWebhook)
	}
}

// createTransfer godoc
// @Summary Create a Pix transfer
// @Description Moves funds between two wallets. Reusing an idempotency key returns 409 and changes nothing.
// @Tags pix
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreatePixTransferRequest true "Transfer details"
// @Success 201 {object} dto.PixTransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate request or wallet busy"
// @Failure 422 {object} dto.ErrorResponse "Validation failed or insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transfer"
// @Security BearerAuth
// @Router /pix/transfers [post]
func (h *pixHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePixTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	amount, err := domain.NewMoney(req.Amount)
	if err != nil {
		respondError(c, err, "Invalid amount")
		return
	}

	logger.Info("Received Pix transfer",
		slog.String("idempotency_key", req.IdempotencyKey),
		slog.String("end_to_end_id", req.EndToEndID))

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), portssvc.CreateTransferCommand{
		FromWalletID:   req.FromWalletID,
		ToWalletID:     req.ToWalletID,
		Amount:         amount,
		IdempotencyKey: req.IdempotencyKey,
		EndToEndID:     req.EndToEndID,
	})
	if err != nil {
		respondError(c, err, "Failed to create transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPixTransferResponse(transfer))
}

// getTransfer godoc
// @Summary Get a Pix transfer by idempotency key
// @Description Lets a client that got a duplicate response fetch the original result.
// @Tags pix
// @Produce  json
// @Param   idempotencyKey path string true "Idempotency key"
// @Success 200 {object} dto.PixTransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to get transfer"
// @Security BearerAuth
// @Router /pix/transfers/{idempotencyKey} [get]
func (h *pixHandler) getTransfer(c *gin.Context) {
	transfer, err := h.transferService.GetTransferByIdempotencyKey(c.Request.Context(), c.Param("idempotencyKey"))
	if err != nil {
		respondError(c, err, "Failed to get transfer")
		return
	}
	c.JSON(http.StatusOK, dto.ToPixTransferResponse(transfer))
}

// handleWebhook godoc
// @Summary Receive a Pix settlement event
// @Description Stores the event once per eventId. Replays return the stored event.
// @Tags pix
// @Accept  json
// @Produce  json
// @Param   event body dto.PixWebhookRequest true "Settlement event"
// @Success 200 {object} dto.PixWebhookResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "No transfer for endToEndId"
// @Failure 422 {object} dto.ErrorResponse "Unknown event type"
// @Failure 500 {object} dto.ErrorResponse "Failed to process webhook"
// @Security BearerAuth
// @Router /pix/webhooks [post]
func (h *pixHandler) handleWebhook(c *gin.Context) {
	var req dto.PixWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := h.webhookService.HandleEvent(c.Request.Context(), portssvc.HandleWebhookCommand{
		EventID:    req.EventID,
		EndToEndID: req.EndToEndID,
		EventType:  req.EventType,
		OccurredAt: req.OccurredAt,
	})
	if err != nil {
		respondError(c, err, "Failed to process webhook")
		return
	}

	c.JSON(http.StatusOK, dto.ToPixWebhookResponse(event))
}
