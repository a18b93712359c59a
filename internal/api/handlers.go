// Package api exposes the HTTP handlers for the fitness backend.
package api

import (
	"encoding/json"
	"net/http"

	"example.com/echobody/internal/auth"
	"example.com/echobody/internal/domain"
)

// Handler coordinates HTTP requests with the domain services.
type Handler struct {
	accounts *domain.AccountService
	records  *domain.RecordService
	insights *domain.InsightsService
	authCfg  auth.Config
}

// NewHandler builds a Handler.
func NewHandler(accounts *domain.AccountService, records *domain.RecordService, insights *domain.InsightsService, authCfg auth.Config) *Handler {
	return &Handler{accounts: accounts, records: records, insights: insights, authCfg: authCfg}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", h.register)
	mux.HandleFunc("/api/auth/login", h.login)
	mux.HandleFunc("/api/auth/me", h.me)
	mux.HandleFunc("/api/users/profile", h.profile)
	mux.HandleFunc("/api/workouts", h.workouts)
	mux.HandleFunc("/api/workouts/", h.workoutByID)
	mux.HandleFunc("/api/meals", h.meals)
	mux.HandleFunc("/api/meals/", h.mealByID)
	mux.HandleFunc("/api/mood", h.moods)
	mux.HandleFunc("/api/mood/", h.moodByID)
	mux.HandleFunc("/api/dashboard/summary", h.dashboardSummary)
	mux.HandleFunc("/api/progress/summary", h.progressSummary)
	mux.HandleFunc("/api/progress/trend", h.progressTrend)
	mux.HandleFunc("/api/progress/records", h.progressRecords)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// callerID extracts the verified user ID placed on the context by the auth
// middleware. Every protected handler resolves identity through this and
// passes it to the domain explicitly.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok || claims.Subject == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return "", false
	}
	return claims.Subject, true
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

// writeMessage emits the {"message": ...} body the auth endpoints are
// documented to return.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
