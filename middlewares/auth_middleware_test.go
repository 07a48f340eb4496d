package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *services.MemoryTokenStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := services.NewMemoryTokenStore()
	// The middleware never talks to the backend; a dead address proves it.
	client := services.NewBackendClient("http://127.0.0.1:1", time.Second)
	sessions := services.NewSessionService(client, store)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("userID"),
			"token":   c.GetString("accessToken"),
		})
	})
	return r, store
}

func TestAuthMiddlewareRequiresBearerHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tt.name, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsUnknownToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer unknown-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAttachesSession(t *testing.T) {
	router, store := newAuthRouter(t)
	store.Set(context.Background(), &models.AuthSession{
		AccessTokenID: "at-42",
		User:          models.User{ID: 42, Email: "c@example.com"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer at-42")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"token":"at-42","user_id":42}` {
		t.Errorf("body = %s, want resolved session values", body)
	}
}
