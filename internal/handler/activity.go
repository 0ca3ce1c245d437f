package handler

import (
	"errors"
	"net/http"

	"github.com/mergington/activities-api/internal/model"
	"github.com/mergington/activities-api/internal/service"
)

// ActivityHandler handles activity HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// List handles GET /activities - return the full registry as a
// name-to-record object
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities := h.svc.ListActivities(r.Context())
	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup?email= - register a student
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewBadRequestError("email query parameter is required"))
		return
	}

	message, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteMessage(w, message)
}

// Remove handles DELETE /activities/{name}/participants/{email} - remove
// a student from an activity
func (h *ActivityHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	message, err := h.svc.Remove(r.Context(), name, email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteMessage(w, message)
}

// handleError converts service errors to HTTP responses
func (h *ActivityHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		WriteError(w, model.NewNotFoundError("Activity not found"))
	case errors.Is(err, service.ErrAlreadyRegistered):
		WriteError(w, model.NewBadRequestError("Student already signed up"))
	case errors.Is(err, service.ErrParticipantNotFound):
		WriteError(w, model.NewNotFoundError("Student not found in activity"))
	default:
		WriteError(w, model.NewInternalError("an unexpected error occurred"))
	}
}
