package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/echobody/internal/auth"
	"example.com/echobody/internal/domain"
)

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	HeightCM int    `json:"height_cm"`
	WeightKG int    `json:"weight_kg"`
	Goal     string `json:"goal"`
	Gender   string `json:"gender"`
}

// Validate ensures request correctness.
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and basic identity.
type LoginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserView exposes the profile without credential material.
type UserView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	HeightCM int    `json:"height_cm"`
	WeightKG int    `json:"weight_kg"`
	Goal     string `json:"goal"`
	Gender   string `json:"gender"`
}

func toUserView(user domain.User) UserView {
	return UserView{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Age:      user.Age,
		HeightCM: user.HeightCM,
		WeightKG: user.WeightKG,
		Goal:     user.Goal,
		Gender:   user.Gender,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	_, err := h.accounts.Register(r.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Goal:     req.Goal,
		Gender:   req.Gender,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			writeMessage(w, http.StatusBadRequest, "Email is already taken!")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", "registration failed")
		return
	}

	writeMessage(w, http.StatusOK, "User registered successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", "login failed")
		return
	}

	token, err := auth.Issue(user.ID, user.Email, h.authCfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", "token issuance failed")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.accounts.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "unknown user")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toUserView(*user))
}

// ProfileUpdateRequest is the payload for PUT /api/users/profile.
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	HeightCM int    `json:"height_cm"`
	WeightKG int    `json:"weight_kg"`
	Goal     string `json:"goal"`
	Gender   string `json:"gender"`
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		user, err := h.accounts.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toUserView(*user))
	case http.MethodPut:
		var req ProfileUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
			return
		}
		user, err := h.accounts.UpdateProfile(r.Context(), userID, domain.ProfileUpdate{
			Name:     req.Name,
			Age:      req.Age,
			HeightCM: req.HeightCM,
			WeightKG: req.WeightKG,
			Goal:     req.Goal,
			Gender:   req.Gender,
		})
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "not_found", "user not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		writeJSON(w, http.StatusOK, toUserView(*user))
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}
