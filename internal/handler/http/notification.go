package http

import (
	"encoding/json"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/notification"
	"github.com/emsuite/ems-backend-go/internal/handler/http/response"
	notificationservice "github.com/emsuite/ems-backend-go/internal/service/notification"
	"github.com/go-chi/chi/v5"
)

type NotificationHandler struct {
	notificationService *notificationservice.Service
}

func NewNotificationHandler(notificationService *notificationservice.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.notificationService.Feed(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if feed == nil {
		feed = []notification.Notification{}
	}
	response.Success(w, feed)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Notification ID is required", nil)
		return
	}

	var body struct {
		Read *bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	read := true
	if body.Read != nil {
		read = *body.Read
	}

	req := notification.MarkReadRequest{NotificationID: id, Read: read}
	if err := h.notificationService.MarkRead(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification updated successfully", nil)
}
