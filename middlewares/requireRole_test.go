package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func roleContext(role string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if role != "" {
		ctx.Set("user", jwt.MapClaims{"role": role})
	}
	return ctx, recorder
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	for _, role := range []string{"employee", "admin"} {
		ctx, _ := roleContext(role)
		RequireRole("employee", "admin")(ctx)
		assert.False(t, ctx.IsAborted(), "role %s should pass", role)
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	ctx, recorder := roleContext("customer")
	RequireRole("employee", "admin")(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRoleRejectsMissingClaims(t *testing.T) {
	ctx, recorder := roleContext("")
	RequireRole("employee", "admin")(ctx)
	assert.True(t, ctx.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
