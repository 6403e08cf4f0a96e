package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirehub_backend/internal/model"
	"hirehub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func roleRouter(role model.UserRole, gate gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded",
		func(c *gin.Context) { c.Set("user", &util.Claims{Role: role}) },
		gate,
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRoleMiddleware_WrongRoleForbidden(t *testing.T) {
	r := roleRouter(model.RoleCandidate, RoleMiddleware(model.RoleRecruiter))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	var body util.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != util.ErrPermissionDenied.Error() {
		t.Fatalf("expected permission-denied message, got %q", body.Message)
	}
}

func TestRoleMiddleware_AllowedRolePasses(t *testing.T) {
	r := roleRouter(model.RoleRecruiter, RoleMiddleware(model.RoleRecruiter))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("recruiter must pass the recruiter gate, got %d", w.Code)
	}
}

func TestRoleMiddleware_AdminPassesEveryGate(t *testing.T) {
	r := roleRouter(model.RoleAdmin, RoleMiddleware(model.RoleRecruiter))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("admin must pass every gate, got %d", w.Code)
	}
}
