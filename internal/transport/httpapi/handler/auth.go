package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/account"
)

// AccountServiceInterface defines the account operations needed by AuthHandler
type AccountServiceInterface interface {
	Register(ctx context.Context, email, password string) (*account.Account, error)
	Login(ctx context.Context, email, password string) (*account.Account, error)
}

// JWTServiceInterface defines the interface for JWT operations
type JWTServiceInterface interface {
	GenerateToken(accountID uuid.UUID, email string) (string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	accounts AccountServiceInterface
	jwt      JWTServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts AccountServiceInterface, jwt JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		jwt:      jwt,
	}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token   string       `json:"token"`
	Account *AccountInfo `json:"account"`
}

// AccountInfo represents account information without sensitive data
type AccountInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Register handles account registration (POST /auth/register)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		respondError(w, "email is required", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		respondError(w, "password is required", http.StatusBadRequest)
		return
	}

	registered, err := h.accounts.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountAlreadyExists):
			respondError(w, "account with this email already exists", http.StatusConflict)
		case errors.Is(err, account.ErrPasswordTooShort):
			respondError(w, "password must be at least 8 characters", http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidEmail):
			respondError(w, "invalid email address", http.StatusBadRequest)
		default:
			respondError(w, "failed to register account", http.StatusInternalServerError)
		}
		return
	}

	token, err := h.jwt.GenerateToken(registered.ID, registered.Email)
	if err != nil {
		respondError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, AuthResponse{
		Token: token,
		Account: &AccountInfo{
			ID:    registered.ID.String(),
			Email: registered.Email,
		},
	}, http.StatusCreated)
}

// Login handles account login (POST /auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" {
		respondError(w, "email is required", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		respondError(w, "password is required", http.StatusBadRequest)
		return
	}

	authenticated, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidPassword) {
			respondError(w, "invalid email or password", http.StatusUnauthorized)
			return
		}
		respondError(w, "failed to login", http.StatusInternalServerError)
		return
	}

	token, err := h.jwt.GenerateToken(authenticated.ID, authenticated.Email)
	if err != nil {
		respondError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	respondJSON(w, AuthResponse{
		Token: token,
		Account: &AccountInfo{
			ID:    authenticated.ID.String(),
			Email: authenticated.Email,
		},
	}, http.StatusOK)
}
