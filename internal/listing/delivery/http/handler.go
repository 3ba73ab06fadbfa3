package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	"github.com/unimarket-dev/unimarket/internal/httpapi"
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/listing/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/listing/usecase/query"
	"github.com/unimarket-dev/unimarket/kafka"
	"github.com/unimarket-dev/unimarket/pkg/logger"
)

// ListingHandler handles HTTP requests for the catalog
type ListingHandler struct {
	// Command handlers
	createHandler *command.CreateListingHandler
	updateHandler *command.UpdateListingHandler
	deleteHandler *command.DeleteListingHandler

	// Query handlers
	searchHandler *query.SearchListingsHandler
	getHandler    *query.GetListingHandler
	sellerHandler *query.ListSellerListingsHandler

	gate      *httpapi.Auth
	cache     *httpapi.Cache
	publisher *kafka.Publisher // nil when Kafka is disabled
}

// NewListingHandler creates a new listing handler
func NewListingHandler(
	listings domain.ListingRepository,
	categories categorydomain.CategoryRepository,
	gate *httpapi.Auth,
	cache *httpapi.Cache,
	publisher *kafka.Publisher,
) *ListingHandler {
	return newListingHandler(
		command.NewCreateListingHandler(listings, categories),
		command.NewUpdateListingHandler(listings, categories),
		command.NewDeleteListingHandler(listings),
		query.NewSearchListingsHandler(listings),
		query.NewGetListingHandler(listings),
		query.NewListSellerListingsHandler(listings),
		gate, cache, publisher,
	)
}

// NewListingHandlerWithDI creates a new listing handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewListingHandlerWithDI(
	createHandler *command.CreateListingHandler,
	updateHandler *command.UpdateListingHandler,
	deleteHandler *command.DeleteListingHandler,
	searchHandler *query.SearchListingsHandler,
	getHandler *query.GetListingHandler,
	sellerHandler *query.ListSellerListingsHandler,
	gate *httpapi.Auth,
	cache *httpapi.Cache,
	publisher *kafka.Publisher,
) *ListingHandler {
	return newListingHandler(
		createHandler, updateHandler, deleteHandler,
		searchHandler, getHandler, sellerHandler,
		gate, cache, publisher,
	)
}

// newListingHandler is the internal constructor used by both manual and Wire DI
func newListingHandler(
	createHandler *command.CreateListingHandler,
	updateHandler *command.UpdateListingHandler,
	deleteHandler *command.DeleteListingHandler,
	searchHandler *query.SearchListingsHandler,
	getHandler *query.GetListingHandler,
	sellerHandler *query.ListSellerListingsHandler,
	gate *httpapi.Auth,
	cache *httpapi.Cache,
	publisher *kafka.Publisher,
) *ListingHandler {
	return &ListingHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		searchHandler: searchHandler,
		getHandler:    getHandler,
		sellerHandler: sellerHandler,
		gate:          gate,
		cache:         cache,
		publisher:     publisher,
	}
}

func parseFilter(r *http.Request) domain.SearchFilter {
	q := r.URL.Query()

	filter := domain.SearchFilter{
		Search:    q.Get("search"),
		Condition: q.Get("condition"),
		Status:    q.Get("status"),
		SortBy:    q.Get("sort_by"),
	}

	if v := q.Get("category_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}
	if v := q.Get("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := q.Get("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	return filter
}

// Search handles GET /listings
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	listings, err := h.searchHandler.Handle(query.SearchListingsQuery{Filter: parseFilter(r)})
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, listings)
}

// Get handles GET /listings/{id}
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	listing, err := h.getHandler.Handle(query.GetListingQuery{ID: uint(id)})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, listing)
}

// Create handles POST /listings
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		CategoryID  *uint   `json:"category_id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Condition   string  `json:"condition"`
		Quantity    int     `json:"quantity"`
		Status      string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateListingCommand{
		SellerID:    user.ID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Quantity:    req.Quantity,
		Status:      req.Status,
	}

	listing, err := h.createHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			httpapi.RespondError(w, http.StatusBadRequest, "Category does not exist")
			return
		}
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.Info(r.Context()).
		Uint("listing_id", listing.ID).
		Uint("seller_id", user.ID).
		Msg("Listing created")

	httpapi.RespondJSON(w, http.StatusCreated, listing)
}

// Update handles PUT /listings/{id}
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	var req struct {
		CategoryID  *uint    `json:"category_id"`
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Condition   *string  `json:"condition"`
		Quantity    *int     `json:"quantity"`
		Status      *string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateListingCommand{
		ListingID:   uint(id),
		ActorID:     user.ID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Quantity:    req.Quantity,
		Status:      req.Status,
	}

	listing, previousStatus, err := h.updateHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrNotOwner):
			httpapi.RespondError(w, http.StatusForbidden, "Not the owner of this listing")
		case errors.Is(err, domain.ErrInvalidCategory):
			httpapi.RespondError(w, http.StatusBadRequest, "Category does not exist")
		default:
			httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	if h.publisher != nil && previousStatus != domain.StatusSold && listing.Status == domain.StatusSold {
		event := kafka.ListingSoldEvent{
			ListingID: listing.ID,
			SellerID:  listing.SellerID,
			Title:     listing.Title,
			Price:     listing.Price,
		}
		if err := h.publisher.PublishListingSold(r.Context(), event); err != nil {
			// The update already committed; the event is best effort.
			logger.Error(r.Context()).
				Err(err).
				Uint("listing_id", listing.ID).
				Msg("Failed to publish listing sold event")
		}
	}

	httpapi.RespondJSON(w, http.StatusOK, listing)
}

// Delete handles DELETE /listings/{id}
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteListingCommand{ListingID: uint(id), ActorID: user.ID}); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrNotOwner):
			httpapi.RespondError(w, http.StatusForbidden, "Not the owner of this listing")
		default:
			httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SellerListings handles GET /listings/user/{user_id}
func (h *ListingHandler) SellerListings(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	h.respondSellerListings(w, r, uint(id))
}

// MyListings handles GET /listings/me/listings
func (h *ListingHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	h.respondSellerListings(w, r, user.ID)
}

func (h *ListingHandler) respondSellerListings(w http.ResponseWriter, r *http.Request, sellerID uint) {
	q := query.ListSellerListingsQuery{
		SellerID: sellerID,
		Status:   r.URL.Query().Get("status"),
	}

	listings, err := h.sellerHandler.Handle(q)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, listings)
}

// RegisterRoutes registers listing routes
func (h *ListingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/listings", httpapi.Metrics("/listings", h.cache.Middleware(h.Search))).Methods("GET")
	router.HandleFunc("/listings", httpapi.Metrics("/listings", h.gate.AuthMiddleware(h.Create))).Methods("POST")
	router.HandleFunc("/listings/me/listings", httpapi.Metrics("/listings/me/listings", h.gate.AuthMiddleware(h.MyListings))).Methods("GET")
	router.HandleFunc("/listings/user/{user_id}", httpapi.Metrics("/listings/user/{user_id}", h.SellerListings)).Methods("GET")
	router.HandleFunc("/listings/{id}", httpapi.Metrics("/listings/{id}", h.Get)).Methods("GET")
	router.HandleFunc("/listings/{id}", httpapi.Metrics("/listings/{id}", h.gate.AuthMiddleware(h.Update))).Methods("PUT")
	router.HandleFunc("/listings/{id}", httpapi.Metrics("/listings/{id}", h.gate.AuthMiddleware(h.Delete))).Methods("DELETE")
}
