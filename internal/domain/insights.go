package domain

import (
	"context"
	"sort"
	"strings"
	"time"
)

// DashboardSummary is the derived overview computed fresh on every request.
type DashboardSummary struct {
	WorkoutsThisWeek      int
	CaloriesToday         int
	StreakDays            int
	EnergyLevel           string
	TotalWorkouts         int
	TotalMeals            int
	TotalCaloriesConsumed int
	TotalCaloriesBurned   int
}

// ProgressSummary aggregates a user's full workout history.
type ProgressSummary struct {
	TotalWorkouts       int
	TotalCaloriesBurned int
	LongestStreak       int
	AvgEchoScore        int
}

// TrendPoint is one day's accumulated training score.
type TrendPoint struct {
	Date  string
	Score int
}

// PersonalRecord is the heaviest logged weight for one exercise name.
type PersonalRecord struct {
	ID     string
	Name   string
	Date   string
	Weight float64
	Unit   string
}

// InsightsService computes derived metrics from raw logged records. All
// computations are synchronous folds over data fetched for the request; nothing
// is cached or persisted.
type InsightsService struct {
	workouts WorkoutRepository
	meals    MealRepository
}

// NewInsightsService constructs an InsightsService.
func NewInsightsService(workouts WorkoutRepository, meals MealRepository) *InsightsService {
	return &InsightsService{workouts: workouts, meals: meals}
}

// Dashboard computes the dashboard summary relative to the wall-clock date in now.
func (s *InsightsService) Dashboard(ctx context.Context, userID string, now time.Time) (*DashboardSummary, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	meals, err := s.meals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := buildDashboard(workouts, meals, now)
	return &summary, nil
}

// Progress computes the progress summary over the user's full workout history.
func (s *InsightsService) Progress(ctx context.Context, userID string) (*ProgressSummary, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := buildProgress(workouts)
	return &summary, nil
}

// Trend computes the per-day score series, ascending by date.
func (s *InsightsService) Trend(ctx context.Context, userID string) ([]TrendPoint, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildTrend(workouts), nil
}

// Records computes one personal record per distinct exercise name.
func (s *InsightsService) Records(ctx context.Context, userID string) ([]PersonalRecord, error) {
	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildRecords(workouts), nil
}

func buildDashboard(workouts []Workout, meals []Meal, now time.Time) DashboardSummary {
	today := calendarDate(now)
	weekCutoff := today.AddDate(0, 0, -7)

	summary := DashboardSummary{
		TotalWorkouts: len(workouts),
		TotalMeals:    len(meals),
		// Placeholders until a dedicated mood/streak tracking feature exists.
		StreakDays:  5,
		EnergyLevel: "High",
	}

	for _, w := range workouts {
		summary.TotalCaloriesBurned += w.CaloriesBurned
		// Strictly after today-7: a workout exactly seven days ago is excluded.
		if w.Date != nil && calendarDate(*w.Date).After(weekCutoff) {
			summary.WorkoutsThisWeek++
		}
	}

	for _, m := range meals {
		summary.TotalCaloriesConsumed += m.Calories
		if m.DateTime != nil && calendarDate(*m.DateTime).Equal(today) {
			summary.CaloriesToday += m.Calories
		}
	}

	return summary
}

func buildProgress(workouts []Workout) ProgressSummary {
	summary := ProgressSummary{TotalWorkouts: len(workouts)}
	for _, w := range workouts {
		summary.TotalCaloriesBurned += w.CaloriesBurned
	}
	summary.LongestStreak = longestStreak(workouts)

	score := 60 + len(workouts)/2
	if score > 100 {
		score = 100
	}
	summary.AvgEchoScore = score

	return summary
}

// longestStreak returns the longest run of calendar-consecutive days with at
// least one workout — ever observed, not the streak ending today.
func longestStreak(workouts []Workout) int {
	seen := make(map[time.Time]struct{})
	dates := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		if w.Date == nil {
			continue
		}
		day := calendarDate(*w.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		dates = append(dates, day)
	}

	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	maxStreak := 0
	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if dates[i].AddDate(0, 0, 1).Equal(dates[i+1]) {
			streak++
			continue
		}
		if streak > maxStreak {
			maxStreak = streak
		}
		streak = 1
	}
	if streak > maxStreak {
		maxStreak = streak
	}
	return maxStreak
}

func buildTrend(workouts []Workout) []TrendPoint {
	daily := make(map[string]int)
	for _, w := range workouts {
		if w.Date == nil {
			continue
		}
		points := 10 + w.CaloriesBurned/50
		daily[w.Date.Format("2006-01-02")] += points
	}

	out := make([]TrendPoint, 0, len(daily))
	for date, score := range daily {
		if score > 100 {
			score = 100
		}
		out = append(out, TrendPoint{Date: date, Score: score})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func buildRecords(workouts []Workout) []PersonalRecord {
	best := make(map[string]Workout)
	for _, w := range workouts {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			continue
		}
		// Only a strictly greater weight replaces the holder: first wins ties.
		if current, ok := best[name]; !ok || w.Weight > current.Weight {
			best[name] = w
		}
	}

	out := make([]PersonalRecord, 0, len(best))
	for _, w := range best {
		date := ""
		if w.Date != nil {
			date = w.Date.Format(time.RFC3339)
		}
		out = append(out, PersonalRecord{
			ID:     w.ID,
			Name:   w.Name,
			Date:   date,
			Weight: w.Weight,
			Unit:   "kg",
		})
	}
	return out
}

// calendarDate reduces a timestamp to its calendar day.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
