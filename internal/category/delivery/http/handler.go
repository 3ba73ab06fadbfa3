package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/internal/category/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/category/usecase/query"
	"github.com/unimarket-dev/unimarket/internal/httpapi"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler *command.CreateCategoryHandler
	listHandler   *query.ListCategoriesHandler
	getHandler    *query.GetCategoryHandler

	gate  *httpapi.Auth
	cache *httpapi.Cache
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(repo domain.CategoryRepository, gate *httpapi.Auth, cache *httpapi.Cache) *CategoryHandler {
	return &CategoryHandler{
		createHandler: command.NewCreateCategoryHandler(repo),
		listHandler:   query.NewListCategoriesHandler(repo),
		getHandler:    query.NewGetCategoryHandler(repo),
		gate:          gate,
		cache:         cache,
	}
}

// List handles GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listHandler.Handle(query.ListCategoriesQuery{})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, categories)
}

// Get handles GET /categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.getHandler.Handle(query.GetCategoryQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.RespondError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, category)
}

// Create handles POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	category, err := h.createHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrExists) {
			httpapi.RespondError(w, http.StatusBadRequest, "Category already exists")
			return
		}
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, category)
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/categories", httpapi.Metrics("/categories", h.cache.Middleware(h.List))).Methods("GET")
	router.HandleFunc("/categories", httpapi.Metrics("/categories", h.gate.AuthMiddleware(h.Create))).Methods("POST")
	router.HandleFunc("/categories/{id}", httpapi.Metrics("/categories/{id}", h.Get)).Methods("GET")
}
