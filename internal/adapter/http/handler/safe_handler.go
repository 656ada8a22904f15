package handler

import (
	"safe-wallet-service/internal/adapter/http/dto"
	"safe-wallet-service/internal/adapter/http/middleware"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/apperror"
	"safe-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// SafeHandler handles Safe deployment.
type SafeHandler struct {
	walletSvc ports.WalletService
}

// NewSafeHandler creates a new SafeHandler.
func NewSafeHandler(walletSvc ports.WalletService) *SafeHandler {
	return &SafeHandler{walletSvc: walletSvc}
}

// Deploy handles POST /api/v1/safes.
func (h *SafeHandler) Deploy(c *gin.Context) {
	var req dto.DeploySafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("owner_address must be a 0x-prefixed 20-byte hex address"))
		return
	}

	address, err := h.walletSvc.Deploy(c.Request.Context(), req.OwnerAddress)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, address)
	response.Created(c, dto.DeploySafeResponse{Address: address})
}
