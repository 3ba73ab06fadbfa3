package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/unimarket-dev/unimarket/internal/favorite/domain"
	"github.com/unimarket-dev/unimarket/internal/favorite/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/favorite/usecase/query"
	"github.com/unimarket-dev/unimarket/internal/httpapi"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
)

// FavoriteHandler handles HTTP requests for bookmarked listings
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
	checkHandler  *query.CheckFavoriteHandler

	gate *httpapi.Auth
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favorites domain.FavoriteRepository, listings listingdomain.ListingRepository, gate *httpapi.Auth) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:    command.NewAddFavoriteHandler(favorites, listings),
		removeHandler: command.NewRemoveFavoriteHandler(favorites),
		listHandler:   query.NewListFavoritesHandler(favorites),
		checkHandler:  query.NewCheckFavoriteHandler(favorites),
		gate:          gate,
	}
}

// List handles GET /favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	favorites, err := h.listHandler.Handle(query.ListFavoritesQuery{UserID: user.ID})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, favorites)
}

// Add handles POST /favorites
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		ListingID uint `json:"listing_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	favorite, err := h.addHandler.Handle(command.AddFavoriteCommand{UserID: user.ID, ListingID: req.ListingID})
	if err != nil {
		switch {
		case errors.Is(err, listingdomain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrDuplicate):
			httpapi.RespondError(w, http.StatusBadRequest, "Listing already favorited")
		default:
			httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, favorite)
}

// Remove handles DELETE /favorites/{listing_id}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	listingID, err := strconv.ParseUint(mux.Vars(r)["listing_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	if err := h.removeHandler.Handle(command.RemoveFavoriteCommand{UserID: user.ID, ListingID: uint(listingID)}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.RespondError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Check handles GET /favorites/check/{listing_id}
func (h *FavoriteHandler) Check(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	listingID, err := strconv.ParseUint(mux.Vars(r)["listing_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	isFavorite, err := h.checkHandler.Handle(query.CheckFavoriteQuery{UserID: user.ID, ListingID: uint(listingID)})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, map[string]bool{"is_favorite": isFavorite})
}

// RegisterRoutes registers favorite routes, all behind authentication
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/favorites", httpapi.Metrics("/favorites", h.gate.AuthMiddleware(h.List))).Methods("GET")
	router.HandleFunc("/favorites", httpapi.Metrics("/favorites", h.gate.AuthMiddleware(h.Add))).Methods("POST")
	router.HandleFunc("/favorites/check/{listing_id}", httpapi.Metrics("/favorites/check/{listing_id}", h.gate.AuthMiddleware(h.Check))).Methods("GET")
	router.HandleFunc("/favorites/{listing_id}", httpapi.Metrics("/favorites/{listing_id}", h.gate.AuthMiddleware(h.Remove))).Methods("DELETE")
}
