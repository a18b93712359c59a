package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"example.com/echobody/internal/domain"
)

// WorkoutView is the wire form of a workout record.
type WorkoutView struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Name           string     `json:"name"`
	MuscleGroup    string     `json:"muscleGroup"`
	Sets           int        `json:"sets"`
	Reps           int        `json:"reps"`
	Weight         float64    `json:"weight"`
	CaloriesBurned int        `json:"caloriesBurned"`
	Notes          string     `json:"notes"`
	Date           *time.Time `json:"date"`
}

// WorkoutRequest is the payload for creating or updating a workout.
type WorkoutRequest struct {
	Name           string     `json:"name"`
	MuscleGroup    string     `json:"muscleGroup"`
	Sets           int        `json:"sets"`
	Reps           int        `json:"reps"`
	Weight         float64    `json:"weight"`
	CaloriesBurned int        `json:"caloriesBurned"`
	Notes          string     `json:"notes"`
	Date           *time.Time `json:"date"`
}

func toWorkoutView(w domain.Workout) WorkoutView {
	return WorkoutView{
		ID:             w.ID,
		UserID:         w.UserID,
		Name:           w.Name,
		MuscleGroup:    w.MuscleGroup,
		Sets:           w.Sets,
		Reps:           w.Reps,
		Weight:         w.Weight,
		CaloriesBurned: w.CaloriesBurned,
		Notes:          w.Notes,
		Date:           w.Date,
	}
}

// MealView is the wire form of a meal record.
type MealView struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	ShortDesc string     `json:"shortDesc"`
	Calories  int        `json:"calories"`
	Protein   int        `json:"protein"`
	Carbs     int        `json:"carbs"`
	Fat       int        `json:"fat"`
	Type      string     `json:"type"`
	Notes     string     `json:"notes"`
	DateTime  *time.Time `json:"dateTime"`
}

// MealRequest is the payload for creating or updating a meal.
type MealRequest struct {
	Title     string     `json:"title"`
	ShortDesc string     `json:"shortDesc"`
	Calories  int        `json:"calories"`
	Protein   int        `json:"protein"`
	Carbs     int        `json:"carbs"`
	Fat       int        `json:"fat"`
	Type      string     `json:"type"`
	Notes     string     `json:"notes"`
	DateTime  *time.Time `json:"dateTime"`
}

func toMealView(m domain.Meal) MealView {
	return MealView{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		ShortDesc: m.ShortDesc,
		Calories:  m.Calories,
		Protein:   m.Protein,
		Carbs:     m.Carbs,
		Fat:       m.Fat,
		Type:      m.Type,
		Notes:     m.Notes,
		DateTime:  m.DateTime,
	}
}

// MoodView is the wire form of a mood entry.
type MoodView struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Mood   string     `json:"mood"`
	Energy int        `json:"energy"`
	Notes  string     `json:"notes"`
	Date   *time.Time `json:"date"`
}

// MoodRequest is the payload for creating a mood entry.
type MoodRequest struct {
	Mood   string     `json:"mood"`
	Energy int        `json:"energy"`
	Notes  string     `json:"notes"`
	Date   *time.Time `json:"date"`
}

func toMoodView(e domain.MoodEntry) MoodView {
	return MoodView{
		ID:     e.ID,
		UserID: e.UserID,
		Mood:   e.Mood,
		Energy: e.Energy,
		Notes:  e.Notes,
		Date:   e.Date,
	}
}

// writeOutcome maps a mutation outcome to a response. NotOwner deliberately
// answers the same as NotFound so record existence is never leaked.
func writeOutcome(w http.ResponseWriter, outcome domain.MutationOutcome) bool {
	switch outcome {
	case domain.MutationApplied:
		return true
	case domain.MutationNotOwner, domain.MutationNotFound:
		writeError(w, http.StatusNotFound, "not_found", "record not found")
	}
	return false
}

func pathID(r *http.Request, prefix string) string {
	return strings.TrimPrefix(r.URL.Path, prefix)
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		workouts, err := h.records.ListWorkouts(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		views := make([]WorkoutView, 0, len(workouts))
		for _, workout := range workouts {
			views = append(views, toWorkoutView(workout))
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var req WorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		logged, err := h.records.LogWorkout(r.Context(), userID, domain.Workout{
			Name:           req.Name,
			MuscleGroup:    req.MuscleGroup,
			Sets:           req.Sets,
			Reps:           req.Reps,
			Weight:         req.Weight,
			CaloriesBurned: req.CaloriesBurned,
			Notes:          req.Notes,
			Date:           req.Date,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toWorkoutView(*logged))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) workoutByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id := pathID(r, "/api/workouts/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing workout id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req WorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		updated, outcome, err := h.records.UpdateWorkout(r.Context(), userID, id, domain.Workout{
			Name:           req.Name,
			MuscleGroup:    req.MuscleGroup,
			Sets:           req.Sets,
			Reps:           req.Reps,
			Weight:         req.Weight,
			CaloriesBurned: req.CaloriesBurned,
			Notes:          req.Notes,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !writeOutcome(w, outcome) {
			return
		}
		writeJSON(w, http.StatusOK, toWorkoutView(*updated))
	case http.MethodDelete:
		outcome, err := h.records.DeleteWorkout(r.Context(), userID, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !writeOutcome(w, outcome) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) meals(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		meals, err := h.records.ListMeals(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		views := make([]MealView, 0, len(meals))
		for _, meal := range meals {
			views = append(views, toMealView(meal))
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var req MealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		logged, err := h.records.LogMeal(r.Context(), userID, domain.Meal{
			Title:     req.Title,
			ShortDesc: req.ShortDesc,
			Calories:  req.Calories,
			Protein:   req.Protein,
			Carbs:     req.Carbs,
			Fat:       req.Fat,
			Type:      req.Type,
			Notes:     req.Notes,
			DateTime:  req.DateTime,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toMealView(*logged))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) mealByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id := pathID(r, "/api/meals/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing meal id")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req MealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		updated, outcome, err := h.records.UpdateMeal(r.Context(), userID, id, domain.Meal{
			Title:     req.Title,
			ShortDesc: req.ShortDesc,
			Calories:  req.Calories,
			Protein:   req.Protein,
			Carbs:     req.Carbs,
			Fat:       req.Fat,
			Type:      req.Type,
			Notes:     req.Notes,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !writeOutcome(w, outcome) {
			return
		}
		writeJSON(w, http.StatusOK, toMealView(*updated))
	case http.MethodDelete:
		outcome, err := h.records.DeleteMeal(r.Context(), userID, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !writeOutcome(w, outcome) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) moods(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		entries, err := h.records.ListMoods(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		views := make([]MoodView, 0, len(entries))
		for _, entry := range entries {
			views = append(views, toMoodView(entry))
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var req MoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		logged, err := h.records.LogMood(r.Context(), userID, domain.MoodEntry{
			Mood:   req.Mood,
			Energy: req.Energy,
			Notes:  req.Notes,
			Date:   req.Date,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toMoodView(*logged))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) moodByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id := pathID(r, "/api/mood/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing entry id")
		return
	}

	switch r.Method {
	case http.MethodDelete:
		outcome, err := h.records.DeleteMood(r.Context(), userID, id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !writeOutcome(w, outcome) {
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}
