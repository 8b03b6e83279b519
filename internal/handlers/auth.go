package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/homestay/internal/jwt"
	"github.com/sbilibin2017/homestay/internal/models"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) (*models.UserDB, error)
}

// Signiner defines the interface that the signin service must implement.
type Signiner interface {
	Signin(ctx context.Context, email, password string) (string, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// default: Olivia
	Name string `json:"name"`

	// Email
	// required: true
	// default: olivia@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful signup
// swagger:model SignupResponse
type SignupResponse struct {
	// default: User created successfully
	Message string         `json:"message"`
	User    *models.UserDB `json:"user"`
}

// SigninRequest represents the JSON body for user signin
// swagger:model SigninRequest
type SigninRequest struct {
	// Email
	// required: true
	// default: olivia@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SigninResponse represents a successful signin
// swagger:model SigninResponse
type SigninResponse struct {
	// JWT token, also set as the session cookie
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary User signup
// @Description Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup Request"
// @Success 201 {object} handlers.SignupResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or missing fields"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, SignupResponse{
			Message: "User created successfully",
			User:    user,
		})
	}
}

// NewSigninHandler returns an HTTP handler for user signin. The token is
// returned in the body and as an HttpOnly session cookie living for ttl.
// @Summary User signin
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param signinRequest body handlers.SigninRequest true "Signin Request"
// @Success 200 {object} handlers.SigninResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signin [post]
func NewSigninHandler(svc Signiner, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.Signin(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.SessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, SigninResponse{Token: token})
	}
}
