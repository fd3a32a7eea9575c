package helpers

import (
	"errors"
	"net/http"

	model "repair-auctions/internal/models"
	"repair-auctions/utils"

	"github.com/gin-gonic/gin"
)

var (
	errMissingIdentity = errors.New("no identity attached to request")
	errWrongRole       = errors.New("caller role not allowed for this operation")
)

// IdentityContextKey is where the identity middleware parks the caller fact.
const IdentityContextKey = "caller_identity"

// CallerIdentity returns the authenticated caller attached by the identity
// middleware.
func CallerIdentity(c *gin.Context) (model.Identity, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := value.(model.Identity)
	return identity, ok
}

// RequireRole returns the caller identity if it carries the given role,
// otherwise it writes the error response and reports false.
func RequireRole(c *gin.Context, handlerName string, role model.Role) (model.Identity, bool) {
	identity, ok := CallerIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errMissingIdentity, "missing caller identity")
		utils.Warn(handlerName+": missing caller identity", map[string]any{"path": c.Request.URL.Path})
		return model.Identity{}, false
	}
	if identity.Role != role {
		utils.JSONError(c, http.StatusForbidden, errWrongRole, "operation requires role "+string(role))
		utils.Warn(handlerName+": wrong caller role", map[string]any{
			"caller_id": identity.ID,
			"role":      string(identity.Role),
			"required":  string(role),
		})
		return model.Identity{}, false
	}
	return identity, true
}
