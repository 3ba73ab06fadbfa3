package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/unimarket-dev/unimarket/internal/httpapi"
	listingdomain "github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/message/domain"
	"github.com/unimarket-dev/unimarket/internal/message/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/message/usecase/query"
	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
)

// MessageHandler handles HTTP requests for buyer/seller messaging
type MessageHandler struct {
	sendHandler          *command.SendMessageHandler
	markReadHandler      *command.MarkMessageReadHandler
	conversationsHandler *query.ListConversationsHandler
	threadHandler        *query.GetThreadHandler

	gate *httpapi.Auth
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(
	messages domain.MessageRepository,
	users userdomain.UserRepository,
	listings listingdomain.ListingRepository,
	gate *httpapi.Auth,
) *MessageHandler {
	return &MessageHandler{
		sendHandler:          command.NewSendMessageHandler(messages, users, listings),
		markReadHandler:      command.NewMarkMessageReadHandler(messages),
		conversationsHandler: query.NewListConversationsHandler(messages, users, listings),
		threadHandler:        query.NewGetThreadHandler(messages),
		gate:                 gate,
	}
}

// Send handles POST /messages
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req struct {
		ReceiverID uint   `json:"receiver_id"`
		ListingID  *uint  `json:"listing_id"`
		Body       string `json:"body"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.SendMessageCommand{
		SenderID:   user.ID,
		ReceiverID: req.ReceiverID,
		ListingID:  req.ListingID,
		Body:       req.Body,
	}

	message, err := h.sendHandler.Handle(cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfMessage):
			httpapi.RespondError(w, http.StatusBadRequest, "Cannot message yourself")
		case errors.Is(err, userdomain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Receiver not found")
		case errors.Is(err, listingdomain.ErrNotFound):
			httpapi.RespondError(w, http.StatusNotFound, "Listing not found")
		default:
			httpapi.RespondError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	httpapi.RespondJSON(w, http.StatusCreated, message)
}

// Conversations handles GET /messages/conversations
func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	conversations, err := h.conversationsHandler.Handle(query.ListConversationsQuery{UserID: user.ID})
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, conversations)
}

// Thread handles GET /messages/conversation/{user_id}
func (h *MessageHandler) Thread(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	otherID, err := strconv.ParseUint(mux.Vars(r)["user_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	q := query.GetThreadQuery{
		UserID:  user.ID,
		OtherID: uint(otherID),
	}
	if v := r.URL.Query().Get("listing_id"); v != "" {
		listingID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			httpapi.RespondError(w, http.StatusBadRequest, "Invalid listing ID")
			return
		}
		id := uint(listingID)
		q.ListingID = &id
	}
	q.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	messages, err := h.threadHandler.Handle(q)
	if err != nil {
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, messages)
}

// MarkRead handles PUT /messages/{message_id}/read
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := httpapi.CurrentUser(r)
	if !ok {
		httpapi.RespondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	messageID, err := strconv.ParseUint(mux.Vars(r)["message_id"], 10, 32)
	if err != nil {
		httpapi.RespondError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	message, err := h.markReadHandler.Handle(command.MarkMessageReadCommand{MessageID: uint(messageID), ReaderID: user.ID})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httpapi.RespondError(w, http.StatusNotFound, "Message not found")
			return
		}
		httpapi.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	httpapi.RespondJSON(w, http.StatusOK, message)
}

// RegisterRoutes registers message routes, all behind authentication
func (h *MessageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/messages", httpapi.Metrics("/messages", h.gate.AuthMiddleware(h.Send))).Methods("POST")
	router.HandleFunc("/messages/conversations", httpapi.Metrics("/messages/conversations", h.gate.AuthMiddleware(h.Conversations))).Methods("GET")
	router.HandleFunc("/messages/conversation/{user_id}", httpapi.Metrics("/messages/conversation/{user_id}", h.gate.AuthMiddleware(h.Thread))).Methods("GET")
	router.HandleFunc("/messages/{message_id}/read", httpapi.Metrics("/messages/{message_id}/read", h.gate.AuthMiddleware(h.MarkRead))).Methods("PUT")
}
