package notif

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gatherchat/internal/common"
)

type ApplicationRequest struct {
	EventID           string `json:"event_id" validate:"required"`
	EventTitle        string `json:"event_title" validate:"required"`
	ApplicantUsername string `json:"applicant_username" validate:"required"`
}

type StatusChangeRequest struct {
	ApplicationID string `json:"application_id" validate:"required"`
	EventTitle    string `json:"event_title" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=approved rejected"`
	ApplicantID   string `json:"applicant_id" validate:"required"`
}

type DonationRequest struct {
	EventID       string `json:"event_id" validate:"required"`
	EventTitle    string `json:"event_title" validate:"required"`
	DonorUsername string `json:"donor_username" validate:"required"`
	Amount        int64  `json:"amount" validate:"gt=0"`
	RecipientID   string `json:"recipient_id" validate:"required"`
}

// SendNotificationRequest is the admin payload for arbitrary notifications.
type SendNotificationRequest struct {
	UserID    string                  `json:"user_id" validate:"required"`
	Type      string                  `json:"type" validate:"required"`
	Title     string                  `json:"title" validate:"required,max=255"`
	Message   string                  `json:"message" validate:"required"`
	RelatedID *string                 `json:"related_id,omitempty"`
	Data      common.NotificationData `json:"data,omitempty"`
}

type NotificationHandler struct {
	service Service
	log     *zap.Logger
}

func NewNotificationHandler(service Service, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes mounts the per-user notification routes on an authenticated router.
func (h *NotificationHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/notifications", h.List).Methods(http.MethodGet)
	r.HandleFunc("/notifications/unread-count", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/notifications/application", h.CreateApplication).Methods(http.MethodPost)
	r.HandleFunc("/notifications/status-change", h.CreateStatusChange).Methods(http.MethodPost)
	r.HandleFunc("/notifications/donation", h.CreateDonation).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{notificationID}/read", h.MarkAsRead).Methods(http.MethodPut)
	r.HandleFunc("/notifications/{notificationID}", h.Delete).Methods(http.MethodDelete)
}

// RegisterAdminRoutes mounts routes that must sit behind common.AdminOnly.
func (h *NotificationHandler) RegisterAdminRoutes(r *mux.Router) {
	r.HandleFunc("/notifications", h.Send).Methods(http.MethodPost)
}

// List supports limit/offset, or page/limit with page starting at 1.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	q := r.URL.Query()
	limit := queryInt(q.Get("limit"), 0)
	offset := queryInt(q.Get("offset"), 0)
	if page := queryInt(q.Get("page"), 0); page > 1 && limit > 0 {
		offset = (page - 1) * limit
	}

	common.WriteJSON(w, http.StatusOK, h.service.FetchUserNotifications(r.Context(), userID, limit, offset))
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{
		"count": h.service.UnreadCount(r.Context(), userID),
	})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), mux.Vars(r)["notificationID"], userID); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	if err := h.service.DeleteNotification(r.Context(), mux.Vars(r)["notificationID"], userID); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req ApplicationRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.service.CreateApplicationNotification(r.Context(), req.EventID, req.EventTitle, req.ApplicantUsername); err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *NotificationHandler) CreateStatusChange(w http.ResponseWriter, r *http.Request) {
	var req StatusChangeRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.service.CreateStatusChangeNotification(r.Context(),
		req.ApplicationID, req.EventTitle, common.ApplicationStatus(req.Status), req.ApplicantID)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *NotificationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	var req DonationRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.service.CreateDonationNotification(r.Context(),
		req.EventID, req.EventTitle, req.DonorUsername, req.Amount, req.RecipientID)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := h.service.CreateNotification(r.Context(), common.NotificationEvent{
		Type:      common.NotificationType(req.Type),
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		RelatedID: req.RelatedID,
		Data:      req.Data,
	})
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// decode reads and validates the JSON body, writing the error response itself.
func (h *NotificationHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := common.DecodeJSON(r, dst); err != nil {
		common.RespondError(w, h.log, err)
		return false
	}
	if err := common.Validate(dst); err != nil {
		common.RespondError(w, h.log, err)
		return false
	}
	return true
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
