// Package handler exposes messaging over HTTP.
package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gatherchat/internal/chat/service"
	"gatherchat/internal/common"
)

type ChatHandler struct {
	chatService service.ChatService
	log         *zap.Logger
}

func NewChatHandler(chatService service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

// RegisterRoutes mounts the messaging routes on an authenticated router.
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/messages/unread-count", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/messages/{messageID}/read", h.MarkMessageAsRead).Methods(http.MethodPut)
	r.HandleFunc("/messages/{messageID}", h.DeleteMessage).Methods(http.MethodDelete)
	r.HandleFunc("/conversations", h.ListConversations).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{eventID}/{userID}", h.GetConversation).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{eventID}/{userID}/read", h.MarkConversationAsRead).Methods(http.MethodPut)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	var req service.SendMessageRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), userID, req)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{
		"count": h.chatService.UnreadMessageCount(r.Context(), userID),
	})
}

func (h *ChatHandler) MarkMessageAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	if err := h.chatService.MarkMessageAsRead(r.Context(), userID, mux.Vars(r)["messageID"]); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	if err := h.chatService.DeleteMessage(r.Context(), userID, mux.Vars(r)["messageID"]); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, h.chatService.FetchConversations(r.Context(), userID))
}

func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	vars := mux.Vars(r)
	common.WriteJSON(w, http.StatusOK, h.chatService.FetchConversation(r.Context(), userID, vars["eventID"], vars["userID"]))
}

func (h *ChatHandler) MarkConversationAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	vars := mux.Vars(r)
	if err := h.chatService.MarkConversationAsRead(r.Context(), userID, vars["eventID"], vars["userID"]); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
