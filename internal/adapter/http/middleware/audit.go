package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const anonymousActor = "anonymous"

// AuditLog records successful write operations after the handler ran.
// Handlers publish the affected resource under CtxResourceID.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}
		if c.Writer.Header().Get(HeaderReplayed) != "" {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		actor := c.GetString(CtxOperator)
		if actor == "" {
			actor = anonymousActor
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Actor:        actor,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.GetString(CtxResourceID),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/safes":
		return domain.AuditActionDeploySafe, "safe"
	case "/api/v1/tokens/mint":
		return domain.AuditActionMintToken, "transaction"
	}
	return "", ""
}
