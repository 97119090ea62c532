package handlers

import (
	"net/http"

	"github.com/hongminglow/jobtracker-be/internal/accounts"
	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/http/respond"
	"github.com/hongminglow/jobtracker-be/internal/logging"
	"github.com/hongminglow/jobtracker-be/internal/models/dto"
)

// AuthHandler owns the register, login and profile update endpoints.
type AuthHandler struct {
	accounts *accounts.Service
	log      logging.Logger
}

func NewAuthHandler(svc *accounts.Service, log logging.Logger) *AuthHandler {
	return &AuthHandler{accounts: svc, log: log}
}

// Register attaches the public auth routes. protect wraps routes that need a
// verified identity.
func (h *AuthHandler) Register(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.Handle("PATCH /api/v1/auth/updateUser", protect(http.HandlerFunc(h.handleUpdateUser)))
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	res, err := h.accounts.Register(r.Context(), accounts.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, authResponse(res))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	res, err := h.accounts.Login(r.Context(), accounts.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, authResponse(res))
}

func (h *AuthHandler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	var req dto.UpdateUserRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	res, err := h.accounts.UpdateProfile(r.Context(), id, accounts.UpdateProfileInput{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Location: req.Location,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, authResponse(res))
}

func authResponse(res accounts.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{User: res.Account, Token: res.Token, Location: res.Account.Location}
}
