package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/unimarket-dev/unimarket/internal/httpapi"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/domain"
	"github.com/unimarket-dev/unimarket/internal/photo/storage"
	"github.com/unimarket-dev/unimarket/internal/photo/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/photo/usecase/query"
)

// maxUploadBytes bounds the multipart form kept in memory per upload.
const maxUploadBytes = 10 << 20

// PhotoHandler handles HTTP requests for listing photos
type PhotoHandler struct {
	uploadHandler *command.UploadPhotoHandler
	attachHandler *command.AttachPhotoHandler
	deleteHandler *command.DeletePhotoHandler
	listHandler   *query.ListPhotosHandler

	gate *httpapi.Auth
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(
	photos domain.PhotoRepository,
	listings listingdomain.ListingRepository,
	store *storage.DiskStore,
	gate *httpapi.Auth,
) *PhotoHandler {
	return &PhotoHandler{
		uploadHandler: command.NewUploadPhotoHandler(store),
		attachHandler: command.NewAttachPhotoHandler(photos, listings, store),
		deleteHandler: command.NewDeletePhotoHandler(photos, listings, store),
		listHandler:   query.NewListPhotosHandler(photos),
		gate:          gate,
	}
}

// Upload handles POST /photos/upload, a bare file upload
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	cmd := command.UploadPhotoCommand{
		Content:     file,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	result, err := h.uploadHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidType) {
			httpapi.RespondError(w, http.StatusBadRequest, "Unsupported image type")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, result)
}

// Attach handles POST /photos/listing/{listing_id}
func (h *PhotoHandler) Attach(w http.ResponseWriter, r *http.Request) {
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

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	cmd := command.AttachPhotoCommand{
		ListingID:   uint(listingID),
		ActorID:     user.ID,
		Content:     file,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	photo, err := h.attachHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, listingdomain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, domain.ErrNotAuthorized):
			httpapi.RespondError(w, http.StatusForbidden, "Not the owner of this listing")
		case errors.Is(err, domain.ErrInvalidType):
			httpapi.RespondError(w, http.StatusBadRequest, "Unsupported image type")
		default:
			httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, photo)
}

// List handles GET /photos/listing/{listing_id}
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseUint(mux.Vars(r)["listing_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
		return
	}

	photos, err := h.listHandler.Handle(query.ListPhotosQuery{ListingID: uint(listingID)})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, photos)
}

// Delete handles DELETE /photos/{photo_id}
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	photoID, err := strconv.ParseUint(mux.Vars(r)["photo_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid photo ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeletePhotoCommand{PhotoID: uint(photoID), ActorID: user.ID}); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, listingdomain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Photo not found")
		case errors.Is(err, domain.ErrNotAuthorized):
			httpapi.RespondError(w, http.StatusForbidden, "Not the owner of this listing")
		default:
			httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers photo routes
func (h *PhotoHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/photos/upload", httpapi.Metrics("/photos/upload", h.gate.AuthMiddleware(h.Upload))).Methods("POST")
	router.HandleFunc("/photos/listing/{listing_id}", httpapi.Metrics("/photos/listing/{listing_id}", h.gate.AuthMiddleware(h.Attach))).Methods("POST")
	router.HandleFunc("/photos/listing/{listing_id}", httpapi.Metrics("/photos/listing/{listing_id}", h.List)).Methods("GET")
	router.HandleFunc("/photos/{photo_id}", httpapi.Metrics("/photos/{photo_id}", h.gate.AuthMiddleware(h.Delete))).Methods("DELETE")
}
