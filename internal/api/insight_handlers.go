package api

import (
	"net/http"
	"time"
)

// DashboardSummaryView is the wire form of the dashboard summary.
type DashboardSummaryView struct {
	WorkoutsThisWeek      int    `json:"workoutsThisWeek"`
	CaloriesToday         int    `json:"caloriesToday"`
	StreakDays            int    `json:"streakDays"`
	EnergyLevel           string `json:"energyLevel"`
	TotalWorkouts         int    `json:"totalWorkouts"`
	TotalMeals            int    `json:"totalMeals"`
	TotalCaloriesConsumed int    `json:"totalCaloriesConsumed"`
	TotalCaloriesBurned   int    `json:"totalCaloriesBurned"`
}

// ProgressSummaryView is the wire form of the progress summary.
type ProgressSummaryView struct {
	TotalWorkouts       int `json:"totalWorkouts"`
	TotalCaloriesBurned int `json:"totalCaloriesBurned"`
	LongestStreak       int `json:"longestStreak"`
	AvgEchoScore        int `json:"avgEchoScore"`
}

// TrendPointView is one entry of the trend series.
type TrendPointView struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// PersonalRecordView is the wire form of a personal record.
type PersonalRecordView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (h *Handler) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	summary, err := h.insights.Dashboard(r.Context(), userID, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, DashboardSummaryView{
		WorkoutsThisWeek:      summary.WorkoutsThisWeek,
		CaloriesToday:         summary.CaloriesToday,
		StreakDays:            summary.StreakDays,
		EnergyLevel:           summary.EnergyLevel,
		TotalWorkouts:         summary.TotalWorkouts,
		TotalMeals:            summary.TotalMeals,
		TotalCaloriesConsumed: summary.TotalCaloriesConsumed,
		TotalCaloriesBurned:   summary.TotalCaloriesBurned,
	})
}

func (h *Handler) progressSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	summary, err := h.insights.Progress(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ProgressSummaryView{
		TotalWorkouts:       summary.TotalWorkouts,
		TotalCaloriesBurned: summary.TotalCaloriesBurned,
		LongestStreak:       summary.LongestStreak,
		AvgEchoScore:        summary.AvgEchoScore,
	})
}

func (h *Handler) progressTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	trend, err := h.insights.Trend(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	views := make([]TrendPointView, 0, len(trend))
	for _, point := range trend {
		views = append(views, TrendPointView{Date: point.Date, Score: point.Score})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) progressRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	records, err := h.insights.Records(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	views := make([]PersonalRecordView, 0, len(records))
	for _, record := range records {
		views = append(views, PersonalRecordView{
			ID:    record.ID,
			Name:  record.Name,
			Date:  record.Date,
			Value: record.Weight,
			Unit:  record.Unit,
		})
	}
	writeJSON(w, http.StatusOK, views)
}
