package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/unimarket-dev/unimarket/internal/httpapi"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/user/domain"
	"github.com/unimarket-dev/unimarket/internal/user/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/user/usecase/query"
	"github.com/unimarket-dev/unimarket/pkg/auth"
	"github.com/unimarket-dev/unimarket/pkg/logger"
)

// UserHandler handles HTTP requests for accounts and auth
type UserHandler struct {
	// Command handlers
	registerHandler *command.RegisterUserHandler
	loginHandler    *command.LoginUserHandler
	updateHandler   *command.UpdateProfileHandler
	deleteHandler   *command.DeleteUserHandler

	// Query handlers
	getUserHandler *query.GetUserHandler
	listHandler    *query.ListUsersHandler
	statsHandler   *query.GetStatsHandler

	gate *httpapi.Auth
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo domain.UserRepository, listings listingdomain.ListingRepository, gate *httpapi.Auth) *UserHandler {
	return &UserHandler{
		registerHandler: command.NewRegisterUserHandler(repo),
		loginHandler:    command.NewLoginUserHandler(repo),
		updateHandler:   command.NewUpdateProfileHandler(repo),
		deleteHandler:   command.NewDeleteUserHandler(repo),
		getUserHandler:  query.NewGetUserHandler(repo),
		listHandler:     query.NewListUsersHandler(repo),
		statsHandler:    query.NewGetStatsHandler(repo, listings),
		gate:            gate,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
		Role        string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.RegisterUserCommand{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	}

	user, err := h.registerHandler.Handle(cmd)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// New accounts are logged in immediately
	token, err := auth.GenerateToken(user.Username)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	logger.Info(r.Context()).
		Str("username", user.Username).
		Str("role", user.Role).
		Msg("User registered")

	httpapi.RespondJSON(w, http.StatusCreated, command.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// Login handles POST /auth/login with form-encoded credentials
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	cmd := command.LoginUserCommand{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		httpapi.RespondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	logger.Info(r.Context()).
		Str("username", cmd.Username).
		Msg("User logged in")

	httpapi.RespondJSON(w, http.StatusOK, response)
}

// GetProfile handles GET /auth/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PUT /auth/me
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Role        string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateProfileCommand{
		UserID:      current.ID,
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	}

	user, err := h.updateHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "User not found")
		default:
			httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListUsersQuery{
		Limit:  limit,
		Offset: offset,
		Role:   r.URL.Query().Get("role"),
	}

	users, err := h.listHandler.Handle(q)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, users)
}

// DeleteUser handles DELETE /admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: uint(id)}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetStats handles GET /admin/stats
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, stats)
}

// HealthCheck returns a handler that reports service and DB health
func (h *UserHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			httpapi.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		httpapi.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// RegisterRoutes registers auth and admin routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/register", httpapi.Metrics("/auth/register", h.Register)).Methods("POST")
	router.HandleFunc("/auth/login", httpapi.Metrics("/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/auth/me", httpapi.Metrics("/auth/me", h.gate.AuthMiddleware(h.GetProfile))).Methods("GET")
	router.HandleFunc("/auth/me", httpapi.Metrics("/auth/me", h.gate.AuthMiddleware(h.UpdateProfile))).Methods("PUT")

	router.HandleFunc("/admin/users", httpapi.Metrics("/admin/users", h.gate.AdminMiddleware(h.ListUsers))).Methods("GET")
	router.HandleFunc("/admin/users/{id}", httpapi.Metrics("/admin/users/{id}", h.gate.AdminMiddleware(h.DeleteUser))).Methods("DELETE")
	router.HandleFunc("/admin/stats", httpapi.Metrics("/admin/stats", h.gate.AdminMiddleware(h.GetStats))).Methods("GET")
}
