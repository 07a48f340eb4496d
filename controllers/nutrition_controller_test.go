package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/momokapoolz/calories-app-gateway/models"
	"github.com/momokapoolz/calories-app-gateway/services"
)

// newNutritionRouter wires the nutrition routes against a fake backend, with
// a stub auth middleware standing in for session resolution.
func newNutritionRouter(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		backend(w, r)
	}))
	t.Cleanup(server.Close)

	svc := services.NewNutritionService(services.NewBackendClient(server.URL, 5*time.Second))
	ctrl := NewNutritionController(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("accessToken", "tok")
		c.Next()
	})
	r.GET("/api/nutrition/date/:date", ctrl.GetDaily)
	r.GET("/api/nutrition/week", ctrl.GetWeek)
	return r, &hits
}

func TestGetDailyRejectsMalformedDateBeforeNetwork(t *testing.T) {
	router, hits := newNutritionRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.DailyNutritionSummary{})
	})

	for _, date := range []string{"03-10-2024", "2024-02-30", "garbage"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/nutrition/date/"+date, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("date %q: status = %d, want 400", date, w.Code)
		}
	}
	if n := atomic.LoadInt64(hits); n != 0 {
		t.Errorf("backend hits = %d, want 0 (validation must precede any network call)", n)
	}
}

func TestGetDailyProxiesSummary(t *testing.T) {
	router, hits := newNutritionRouter(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.DailyNutritionSummary{
			Date:          "2024-03-10",
			UserID:        1,
			TotalCalories: 1750,
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nutrition/date/2024-03-10", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	var summary models.DailyNutritionSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary.TotalCalories != 1750 {
		t.Errorf("TotalCalories = %v, want 1750", summary.TotalCalories)
	}
	if n := atomic.LoadInt64(hits); n != 1 {
		t.Errorf("backend hits = %d, want 1", n)
	}
}

func TestConcurrentDailyRequestsShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	router, hits := newNutritionRouter(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode(models.DailyNutritionSummary{Date: "2024-03-10"})
	})

	const clients = 5
	var wg sync.WaitGroup
	codes := make([]int, clients)
	wg.Add(clients)
	for i := 0; i < clients; i++ {
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/nutrition/date/2024-03-10", nil)
			router.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusOK {
			t.Errorf("client %d: status = %d, want 200", i, code)
		}
	}
	if n := atomic.LoadInt64(hits); n != 1 {
		t.Errorf("backend hits = %d, want 1 for concurrent identical requests", n)
	}
}

func TestGetWeekForwardsBackendFailure(t *testing.T) {
	router, _ := newNutritionRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"backend exploded"}`))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nutrition/week", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 forwarded from backend", w.Code)
	}
	if body := w.Body.String(); body != `{"message":"backend exploded"}` {
		t.Errorf("body = %q, want backend error body forwarded verbatim", body)
	}
}
