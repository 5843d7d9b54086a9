package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pix_wallet/internal/core/ports/services"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/gin-gonic/gin"
)

type pixKeyHandler struct {
	pixKeyService portssvc.PixKeySvcFacade
}

func newPixKeyHandler(ks portssvc.PixKeySvcFacade) *pixKeyHandler {
	return &pixKeyHandler{pixKeyService: ks}
}

// registerPixKey godoc
// @Summary Register a Pix key
// @Description Binds an EMAIL, PHONE, CPF or EVP key to the wallet. Key values are unique.
// @Tags pix-keys
// @Accept  json
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Param   key body dto.RegisterPixKeyRequest true "Key details"
// @Success 201 {object} dto.PixKeyResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid key or already registered"
// @Failure 500 {object} dto.ErrorResponse "Failed to register Pix key"
// @Security BearerAuth
// @Router /wallets/{id}/pix-keys [post]
func (h *pixKeyHandler) registerPixKey(c *gin.Context) {
	var req dto.RegisterPixKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	key, err := h.pixKeyService.RegisterPixKey(c.Request.Context(), c.Param("id"), req.KeyType, req.KeyValue)
	if err != nil {
		respondError(c, err, "Failed to register Pix key")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPixKeyResponse(key))
}

// listPixKeys godoc
// @Summary List a wallet's Pix keys
// @Tags pix-keys
// @Produce  json
// @Param   id path string true "Wallet ID"
// @Success 200 {array} dto.PixKeyResponse
// @Failure 404 {object} dto.ErrorResponse "Wallet not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list Pix keys"
// @Security BearerAuth
// @Router /wallets/{id}/pix-keys [get]
func (h *pixKeyHandler) listPixKeys(c *gin.Context) {
	keys, err := h.pixKeyService.ListPixKeys(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list Pix keys")
		return
	}

	resp := make([]dto.PixKeyResponse, len(keys))
	for i := range keys {
		resp[i] = dto.ToPixKeyResponse(&keys[i])
	}
	c.JSON(http.StatusOK, resp)
}
