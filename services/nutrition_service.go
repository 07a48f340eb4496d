package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/momokapoolz/calories-app-gateway/models"
)

// NutritionService fetches and memoizes nutrition aggregates from the
// backend. It collapses concurrent fetches for the same (operation, date/id,
// user) key into one upstream call and caches successful daily and per-meal
// summaries until the active user changes.
//
// All state belongs to one instance; independent instances share nothing.
type NutritionService struct {
	client *BackendClient

	mu            sync.Mutex
	currentUserID uint
	flight        *singleflight.Group
	daily         map[string]*models.DailyNutritionSummary
	meals         map[uint]*models.MealNutritionSummary
}

func NewNutritionService(client *BackendClient) *NutritionService {
	return &NutritionService{
		client: client,
		flight: new(singleflight.Group),
		daily:  make(map[string]*models.DailyNutritionSummary),
		meals:  make(map[uint]*models.MealNutritionSummary),
	}
}

// adoptUser compares userID against the user the cached state was computed
// for. On mismatch it drops every cached summary and abandons the in-flight
// group, so nothing computed for the previous user can be observed again.
// Callers must hold s.mu.
func (s *NutritionService) adoptUser(userID uint) {
	if s.currentUserID == userID {
		return
	}
	s.currentUserID = userID
	s.flight = new(singleflight.Group)
	s.daily = make(map[string]*models.DailyNutritionSummary)
	s.meals = make(map[uint]*models.MealNutritionSummary)
}

func dedupKey(op, id string, userID uint) string {
	return fmt.Sprintf("%s:%s:%d", op, id, userID)
}

// Daily returns the nutrition summary for one date. Concurrent callers for
// the same date and user share a single backend request; the dedup entry is
// dropped on settlement either way, so a failed fetch can be retried
// immediately.
func (s *NutritionService) Daily(ctx context.Context, token string, userID uint, date string) (*models.DailyNutritionSummary, error) {
	s.mu.Lock()
	s.adoptUser(userID)
	if cached, ok := s.daily[date]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	flight := s.flight
	s.mu.Unlock()

	v, err, _ := flight.Do(dedupKey("daily", date, userID), func() (any, error) {
		return s.client.DailyNutrition(ctx, token, date)
	})
	if err != nil {
		return nil, err
	}
	summary := v.(*models.DailyNutritionSummary)

	s.mu.Lock()
	// Only commit if no user switch happened while the fetch was in flight.
	if s.flight == flight && s.currentUserID == userID {
		s.daily[date] = summary
	}
	s.mu.Unlock()
	return summary, nil
}

// Meal returns the aggregate for a single meal log, with the same dedup and
// caching behavior as Daily.
func (s *NutritionService) Meal(ctx context.Context, token string, userID, mealLogID uint) (*models.MealNutritionSummary, error) {
	s.mu.Lock()
	s.adoptUser(userID)
	if cached, ok := s.meals[mealLogID]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	flight := s.flight
	s.mu.Unlock()

	v, err, _ := flight.Do(dedupKey("meal", fmt.Sprint(mealLogID), userID), func() (any, error) {
		return s.client.MealNutrition(ctx, token, mealLogID)
	})
	if err != nil {
		return nil, err
	}
	summary := v.(*models.MealNutritionSummary)

	s.mu.Lock()
	if s.flight == flight && s.currentUserID == userID {
		s.meals[mealLogID] = summary
	}
	s.mu.Unlock()
	return summary, nil
}

// Week returns seven daily entries ending at today, oldest first. Days are
// fetched in parallel; a 404 for one day yields a zero-value entry for that
// day only, while any other failure aborts the whole batch. Output order is
// fixed by index assignment, never by completion order.
func (s *NutritionService) Week(ctx context.Context, token string, userID uint, today time.Time) ([]models.WeeklyNutritionData, error) {
	out := make([]models.WeeklyNutritionData, 7)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 7; i++ {
		i := i
		date := today.AddDate(0, 0, i-6).Format("2006-01-02")
		g.Go(func() error {
			summary, err := s.Daily(gctx, token, userID, date)
			if err != nil {
				if IsNotFound(err) {
					out[i] = models.WeeklyNutritionData{Date: date}
					return nil
				}
				return err
			}
			totals := ReduceMealTotals(summary.MealBreakdown)
			out[i] = models.WeeklyNutritionData{
				Date:          date,
				TotalCalories: summary.TotalCalories,
				Protein:       totals.Protein,
				Carbs:         totals.Carbs,
				Fat:           totals.Fat,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceMealTotals sums calorie and macro totals over a list of meal
// aggregates. Fields absent from a backend response decode to zero, so a
// sparse input simply contributes nothing; empty input yields all zeros.
func ReduceMealTotals(meals []models.MealBreakdown) models.MacroTotals {
	var totals models.MacroTotals
	for _, m := range meals {
		totals.Calories += m.TotalCalories
		totals.Protein += m.TotalProtein
		totals.Carbs += m.TotalCarbs
		totals.Fat += m.TotalFat
	}
	return totals
}
