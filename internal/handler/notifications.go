package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AlexZinkM/walletd/internal/notify"
)

// NotificationHandler serves queued user-facing notifications
type NotificationHandler struct {
	notifier *notify.Notifier
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(n *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: n}
}

// Drain handles GET /notifications
// @Summary      Pending notifications
// @Description  Returns and clears queued notifications, oldest first
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  notify.Notification
// @Router       /notifications [get]
func (h *NotificationHandler) Drain(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, h.notifier.Drain())
}

// Stream handles GET /notifications/stream
// @Summary      Notification stream
// @Description  Server-sent events, one "notification" event per published notification
// @Tags         notifications
// @Produce      text/event-stream
// @Success      200
// @Router       /notifications/stream [get]
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	rc := http.NewResponseController(w)
	// The server write timeout must not end a long-lived stream
	_ = rc.SetWriteDeadline(time.Time{})

	id, events := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case note, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(note)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: notification\ndata: %s\n\n", note.ID, data)
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
