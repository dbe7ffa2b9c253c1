package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gatherchat/internal/common"
)

const maxAvatarBytes = 5 << 20

// Handler exposes the caller's own profile over HTTP. Routes expect
// common.AuthMiddleware to have run.
type Handler struct {
	profiles ProfileService
	log      *zap.Logger
}

func NewHandler(profiles ProfileService, log *zap.Logger) *Handler {
	return &Handler{profiles: profiles, log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/auth/callback", h.AuthCallback).Methods(http.MethodPost)
	r.HandleFunc("/me", h.GetMe).Methods(http.MethodGet)
	r.HandleFunc("/me", h.UpdateMe).Methods(http.MethodPatch)
	r.HandleFunc("/me/avatar", h.UploadAvatar).Methods(http.MethodPost)
}

func (h *Handler) AuthCallback(w http.ResponseWriter, r *http.Request) {
	identity, ok := common.IdentityFromContext(r.Context())
	if !ok {
		common.RespondError(w, h.log, common.ErrNotAuthenticated)
		return
	}

	profile, err := h.profiles.HandleAuthCallback(r.Context(), identity)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	profile, err := h.profiles.GetCurrentUser(r.Context(), userID)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	var update ProfileUpdate
	if err := common.DecodeJSON(r, &update); err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	profile, err := h.profiles.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.WriteError(w, http.StatusRequestEntityTooLarge, "avatar too large")
			return
		}
		common.RespondError(w, h.log, fmt.Errorf("%w: avatar file required", common.ErrInvalidInput))
		return
	}
	defer file.Close()

	profile, err := h.profiles.UpdateAvatar(r.Context(), userID, header.Filename, file)
	if err != nil {
		common.RespondError(w, h.log, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile)
}
