package handler

import (
	"safe-wallet-service/internal/adapter/http/dto"
	"safe-wallet-service/internal/adapter/http/middleware"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles token minting.
type TokenHandler struct {
	walletSvc ports.WalletService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(walletSvc ports.WalletService) *TokenHandler {
	return &TokenHandler{walletSvc: walletSvc}
}

// Mint handles POST /api/v1/tokens/mint. The request body is ignored.
func (h *TokenHandler) Mint(c *gin.Context) {
	hash, err := h.walletSvc.Mint(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, hash)
	response.Created(c, dto.MintResponse{TransactionHash: hash})
}
