package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momokapoolz/calories-app-gateway/models"
)

func TestReduceMealTotals(t *testing.T) {
	tests := []struct {
		name  string
		meals []models.MealBreakdown
		want  models.MacroTotals
	}{
		{
			name:  "empty input yields zeros",
			meals: nil,
			want:  models.MacroTotals{},
		},
		{
			name: "sums across meals",
			meals: []models.MealBreakdown{
				{TotalCalories: 500, TotalProtein: 30, TotalCarbs: 50, TotalFat: 20},
				{TotalCalories: 300, TotalProtein: 10, TotalCarbs: 40, TotalFat: 5},
			},
			want: models.MacroTotals{Calories: 800, Protein: 40, Carbs: 90, Fat: 25},
		},
		{
			name: "zero-value fields contribute nothing",
			meals: []models.MealBreakdown{
				{TotalCalories: 250},
				{TotalProtein: 15},
			},
			want: models.MacroTotals{Calories: 250, Protein: 15},
		},
	}

	for _, tt := range tests {
		got := ReduceMealTotals(tt.meals)
		if got != tt.want {
			t.Errorf("%s: ReduceMealTotals() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestReduceMealTotalsMissingJSONFields(t *testing.T) {
	// Backend responses may omit total_* fields entirely; they must decode
	// to zero and reduce without error.
	payload := `[{"meal_log_id":1,"meal_type":"Lunch","total_calories":400},{"meal_log_id":2,"meal_type":"Snacks"}]`
	var meals []models.MealBreakdown
	if err := json.Unmarshal([]byte(payload), &meals); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	got := ReduceMealTotals(meals)
	want := models.MacroTotals{Calories: 400}
	if got != want {
		t.Errorf("ReduceMealTotals() = %+v, want %+v", got, want)
	}
}

func newNutritionFixture(t *testing.T, handler http.HandlerFunc) (*NutritionService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewBackendClient(server.URL, 5*time.Second)
	return NewNutritionService(client), server
}

func dailyPayload(date string, calories float64) models.DailyNutritionSummary {
	return models.DailyNutritionSummary{
		Date:          date,
		TotalCalories: calories,
		MealBreakdown: []models.MealBreakdown{
			{MealLogID: 1, MealType: models.MealTypeLunch, TotalCalories: calories, TotalProtein: 30, TotalCarbs: 45, TotalFat: 10},
		},
	}
}

func TestDailyDeduplicatesConcurrentFetches(t *testing.T) {
	var hits int64
	release := make(chan struct{})
	svc, _ := newNutritionFixture(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		<-release
		json.NewEncoder(w).Encode(dailyPayload("2024-03-10", 1800))
	})

	const callers = 10
	var wg sync.WaitGroup
	var started sync.WaitGroup
	errs := make([]error, callers)
	started.Add(callers)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			started.Done()
			_, errs[i] = svc.Daily(context.Background(), "tok", 1, "2024-03-10")
		}(i)
	}
	started.Wait()
	// Give every goroutine time to reach the dedup gate before the single
	// in-flight request is allowed to settle.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, err)
		}
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("backend hits = %d, want 1", n)
	}
}

func TestDailyCachesSuccessPerUser(t *testing.T) {
	var hits int64
	svc, _ := newNutritionFixture(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		json.NewEncoder(w).Encode(dailyPayload("2024-03-10", 1800))
	})

	for i := 0; i < 3; i++ {
		if _, err := svc.Daily(context.Background(), "tok", 1, "2024-03-10"); err != nil {
			t.Fatalf("fetch %d: %v", i, err)
		}
	}
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Errorf("backend hits = %d, want 1 (summary should be cached)", n)
	}
}

func TestDailyFailureIsNotCached(t *testing.T) {
	var hits int64
	svc, _ := newNutritionFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"backend exploded"}`))
			return
		}
		json.NewEncoder(w).Encode(dailyPayload("2024-03-10", 1800))
	})

	if _, err := svc.Daily(context.Background(), "tok", 1, "2024-03-10"); err == nil {
		t.Fatal("expected first fetch to fail")
	}
	if _, err := svc.Daily(context.Background(), "tok", 1, "2024-03-10"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if n := atomic.LoadInt64(&hits); n != 2 {
		t.Errorf("backend hits = %d, want 2 (failure must clear the dedup key)", n)
	}
}

func TestUserChangeInvalidatesCache(t *testing.T) {
	var hits int64
	svc, _ := newNutritionFixture(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		json.NewEncoder(w).Encode(dailyPayload("2024-03-10", 1800))
	})

	fetch := func(userID uint) {
		t.Helper()
		if _, err := svc.Daily(context.Background(), "tok", userID, "2024-03-10"); err != nil {
			t.Fatalf("user %d: %v", userID, err)
		}
	}

	fetch(1)
	fetch(1) // cached
	if n := atomic.LoadInt64(&hits); n != 1 {
		t.Fatalf("backend hits = %d, want 1", n)
	}

	fetch(2) // user switch drops everything cached for user 1
	if n := atomic.LoadInt64(&hits); n != 2 {
		t.Fatalf("backend hits after user switch = %d, want 2", n)
	}

	fetch(1) // switching back must not resurrect user 1's old cache
	if n := atomic.LoadInt64(&hits); n != 3 {
		t.Errorf("backend hits after switching back = %d, want 3", n)
	}
}

func weekHandler(notFound map[string]bool, fail map[string]bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(r.URL.Path, "/")
		date := parts[len(parts)-1]
		if notFound[date] {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"no data for date"}`))
			return
		}
		if fail[date] {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"backend exploded"}`))
			return
		}
		json.NewEncoder(w).Encode(dailyPayload(date, 2000))
	}
}

func TestWeekReturnsSevenDaysAscending(t *testing.T) {
	svc, _ := newNutritionFixture(t, weekHandler(nil, nil))

	today := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	week, err := svc.Week(context.Background(), "tok", 1, today)
	if err != nil {
		t.Fatalf("Week() error: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}

	wantDates := []string{
		"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07",
		"2024-03-08", "2024-03-09", "2024-03-10",
	}
	for i, day := range week {
		if day.Date != wantDates[i] {
			t.Errorf("week[%d].Date = %q, want %q", i, day.Date, wantDates[i])
		}
		if day.TotalCalories != 2000 {
			t.Errorf("week[%d].TotalCalories = %v, want 2000", i, day.TotalCalories)
		}
		if day.Protein != 30 || day.Carbs != 45 || day.Fat != 10 {
			t.Errorf("week[%d] macros = %+v, want 30/45/10", i, day)
		}
	}
}

func TestWeekSubstitutesZeroForNotFoundDays(t *testing.T) {
	svc, _ := newNutritionFixture(t, weekHandler(map[string]bool{
		"2024-03-06": true,
		"2024-03-09": true,
	}, nil))

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	week, err := svc.Week(context.Background(), "tok", 1, today)
	if err != nil {
		t.Fatalf("Week() error: %v", err)
	}

	for _, day := range week {
		missing := day.Date == "2024-03-06" || day.Date == "2024-03-09"
		if missing && day.TotalCalories != 0 {
			t.Errorf("%s: TotalCalories = %v, want 0 for a 404 day", day.Date, day.TotalCalories)
		}
		if !missing && day.TotalCalories != 2000 {
			t.Errorf("%s: TotalCalories = %v, want 2000", day.Date, day.TotalCalories)
		}
	}
}

func TestWeekAllDaysMissing(t *testing.T) {
	notFound := map[string]bool{}
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		notFound[today.AddDate(0, 0, -i).Format("2006-01-02")] = true
	}
	svc, _ := newNutritionFixture(t, weekHandler(notFound, nil))

	week, err := svc.Week(context.Background(), "tok", 1, today)
	if err != nil {
		t.Fatalf("Week() error: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	for i, day := range week {
		if day.TotalCalories != 0 || day.Protein != 0 || day.Carbs != 0 || day.Fat != 0 {
			t.Errorf("week[%d] = %+v, want all-zero entry", i, day)
		}
		if day.Date == "" {
			t.Errorf("week[%d].Date is empty, zero entries must keep their date", i)
		}
	}
}

func TestWeekFailsOnNonNotFoundError(t *testing.T) {
	svc, _ := newNutritionFixture(t, weekHandler(nil, map[string]bool{
		"2024-03-08": true,
	}))

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Week(context.Background(), "tok", 1, today); err == nil {
		t.Fatal("expected Week() to fail when a day returns a non-404 error")
	}
}
