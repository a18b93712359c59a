package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/echobody/internal/auth"
	"example.com/echobody/internal/domain"
)

func newTestHandler() (*Handler, *memoryStore) {
	store := newMemoryStore()
	accounts := domain.NewAccountService(store.users)
	records := domain.NewRecordService(store.workouts, store.meals, store.moods)
	insights := domain.NewInsightsService(store.workouts, store.meals)
	cfg := auth.Config{Secret: "test-secret", Issuer: "echobody.test", TokenTTL: time.Hour}
	return NewHandler(accounts, records, insights, cfg), store
}

func authed(req *http.Request, userID string) *http.Request {
	claims := &auth.Claims{Subject: userID, ExpiresAt: time.Now().Add(time.Hour)}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	handler, _ := newTestHandler()

	body := `{"name":"Test","email":"test@example.com","password":"secretpass","age":30,"height_cm":180,"weight_kg":80,"goal":"strength","gender":"other"}`

	rr := httptest.NewRecorder()
	handler.register(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	handler.register(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "Email is already taken!" {
		t.Fatalf("unexpected message %q", resp["message"])
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	handler, _ := newTestHandler()

	register := `{"name":"Test","email":"test@example.com","password":"secretpass"}`
	rr := httptest.NewRecorder()
	handler.register(rr, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(register)))
	if rr.Code != http.StatusOK {
		t.Fatalf("register failed: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	login := `{"email":"test@example.com","password":"secretpass"}`
	handler.login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(login)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Email != "test@example.com" || resp.ID == "" || resp.Token == "" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	claims, err := auth.Parse(resp.Token, handler.authCfg)
	if err != nil {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	if claims.Subject != resp.ID {
		t.Fatalf("token subject %q does not match user id %q", claims.Subject, resp.ID)
	}

	rr = httptest.NewRecorder()
	bad := `{"email":"test@example.com","password":"wrong"}`
	handler.login(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(bad)))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestWorkoutCreateDefaultsTimestamp(t *testing.T) {
	handler, _ := newTestHandler()

	body := `{"name":"Squat","muscleGroup":"legs","sets":5,"reps":5,"weight":100,"caloriesBurned":250,"notes":""}`
	req := authed(httptest.NewRequest(http.MethodPost, "/api/workouts", strings.NewReader(body)), "user-1")

	rr := httptest.NewRecorder()
	handler.workouts(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var view WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.ID == "" || view.UserID != "user-1" {
		t.Fatalf("unexpected workout view: %+v", view)
	}
	if view.Date == nil {
		t.Fatal("expected server-side timestamp on workout logged without one")
	}
}

func TestWorkoutMutationsRequireOwnership(t *testing.T) {
	handler, _ := newTestHandler()

	body := `{"name":"Squat","weight":100}`
	req := authed(httptest.NewRequest(http.MethodPost, "/api/workouts", strings.NewReader(body)), "owner")
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("create failed: %d", rr.Code)
	}
	var created WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	update := `{"name":"Squat","weight":999}`
	req = authed(httptest.NewRequest(http.MethodPut, "/api/workouts/"+created.ID, strings.NewReader(update)), "intruder")
	rr = httptest.NewRecorder()
	handler.workoutByID(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner update, got %d", rr.Code)
	}

	req = authed(httptest.NewRequest(http.MethodDelete, "/api/workouts/"+created.ID, nil), "intruder")
	rr = httptest.NewRecorder()
	handler.workoutByID(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-owner delete, got %d", rr.Code)
	}

	req = authed(httptest.NewRequest(http.MethodDelete, "/api/workouts/"+created.ID, nil), "owner")
	rr = httptest.NewRecorder()
	handler.workoutByID(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner delete, got %d", rr.Code)
	}
}

func TestDashboardSummaryShape(t *testing.T) {
	handler, store := newTestHandler()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tenDaysAgo := now.AddDate(0, 0, -10)

	store.addWorkout(domain.Workout{ID: "w1", UserID: "user-1", Name: "Squat", CaloriesBurned: 300, Date: &yesterday})
	store.addWorkout(domain.Workout{ID: "w2", UserID: "user-1", Name: "Bench", CaloriesBurned: 200, Date: &tenDaysAgo})
	store.addMeal(domain.Meal{ID: "m1", UserID: "user-1", Calories: 500, DateTime: &now})
	store.addMeal(domain.Meal{ID: "m2", UserID: "user-1", Calories: 700, DateTime: &tenDaysAgo})

	req := authed(httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil), "user-1")
	rr := httptest.NewRecorder()
	handler.dashboardSummary(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp DashboardSummaryView
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.WorkoutsThisWeek != 1 {
		t.Fatalf("expected 1 workout this week, got %d", resp.WorkoutsThisWeek)
	}
	if resp.TotalWorkouts != 2 || resp.TotalCaloriesBurned != 500 {
		t.Fatalf("unexpected workout totals: %+v", resp)
	}
	if resp.CaloriesToday != 500 || resp.TotalCaloriesConsumed != 1200 {
		t.Fatalf("unexpected meal totals: %+v", resp)
	}
	if resp.StreakDays != 5 || resp.EnergyLevel != "High" {
		t.Fatalf("placeholder fields changed: %+v", resp)
	}
}

func TestDashboardRequiresClaims(t *testing.T) {
	handler, _ := newTestHandler()

	rr := httptest.NewRecorder()
	handler.dashboardSummary(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
}

func TestProgressRecordsFieldNames(t *testing.T) {
	handler, store := newTestHandler()

	when := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	store.addWorkout(domain.Workout{ID: "w1", UserID: "user-1", Name: "Squat", Weight: 120, Date: &when})

	req := authed(httptest.NewRequest(http.MethodGet, "/api/progress/records", nil), "user-1")
	rr := httptest.NewRecorder()
	handler.progressRecords(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 record, got %d", len(raw))
	}
	for _, key := range []string{"id", "name", "date", "value", "unit"} {
		if _, ok := raw[0][key]; !ok {
			t.Fatalf("record payload missing %q: %v", key, raw[0])
		}
	}
	if raw[0]["value"].(float64) != 120 {
		t.Fatalf("unexpected record value: %v", raw[0]["value"])
	}
}

// memoryStore bundles in-memory repositories for handler tests.
type memoryStore struct {
	users    *userStore
	workouts *workoutStore
	meals    *mealStore
	moods    *moodStore
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    &userStore{byID: make(map[string]domain.User)},
		workouts: &workoutStore{byID: make(map[string]domain.Workout)},
		meals:    &mealStore{byID: make(map[string]domain.Meal)},
		moods:    &moodStore{byID: make(map[string]domain.MoodEntry)},
	}
}

func (s *memoryStore) addWorkout(w domain.Workout) { s.workouts.byID[w.ID] = w }
func (s *memoryStore) addMeal(m domain.Meal)       { s.meals.byID[m.ID] = m }

type userStore struct {
	byID map[string]domain.User
}

func (s *userStore) Create(_ context.Context, user domain.User) error {
	s.byID[user.ID] = user
	return nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *userStore) GetByID(_ context.Context, userID string) (*domain.User, error) {
	if user, ok := s.byID[userID]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *userStore) UpdateProfile(_ context.Context, user domain.User) error {
	s.byID[user.ID] = user
	return nil
}

type workoutStore struct {
	byID map[string]domain.Workout
}

func (s *workoutStore) Create(_ context.Context, w domain.Workout) error {
	s.byID[w.ID] = w
	return nil
}

func (s *workoutStore) Get(_ context.Context, workoutID string) (*domain.Workout, error) {
	if w, ok := s.byID[workoutID]; ok {
		return &w, nil
	}
	return nil, nil
}

func (s *workoutStore) ListByUser(_ context.Context, userID string) ([]domain.Workout, error) {
	out := make([]domain.Workout, 0)
	for _, w := range s.byID {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *workoutStore) Update(_ context.Context, w domain.Workout) error {
	s.byID[w.ID] = w
	return nil
}

func (s *workoutStore) Delete(_ context.Context, workoutID string) error {
	delete(s.byID, workoutID)
	return nil
}

type mealStore struct {
	byID map[string]domain.Meal
}

func (s *mealStore) Create(_ context.Context, m domain.Meal) error {
	s.byID[m.ID] = m
	return nil
}

func (s *mealStore) Get(_ context.Context, mealID string) (*domain.Meal, error) {
	if m, ok := s.byID[mealID]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *mealStore) ListByUser(_ context.Context, userID string) ([]domain.Meal, error) {
	out := make([]domain.Meal, 0)
	for _, m := range s.byID {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *mealStore) Update(_ context.Context, m domain.Meal) error {
	s.byID[m.ID] = m
	return nil
}

func (s *mealStore) Delete(_ context.Context, mealID string) error {
	delete(s.byID, mealID)
	return nil
}

type moodStore struct {
	byID map[string]domain.MoodEntry
}

func (s *moodStore) Create(_ context.Context, e domain.MoodEntry) error {
	s.byID[e.ID] = e
	return nil
}

func (s *moodStore) Get(_ context.Context, entryID string) (*domain.MoodEntry, error) {
	if e, ok := s.byID[entryID]; ok {
		return &e, nil
	}
	return nil, nil
}

func (s *moodStore) ListByUser(_ context.Context, userID string) ([]domain.MoodEntry, error) {
	out := make([]domain.MoodEntry, 0)
	for _, e := range s.byID {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *moodStore) Delete(_ context.Context, entryID string) error {
	delete(s.byID, entryID)
	return nil
}
