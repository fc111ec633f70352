package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// status is a liveness probe. It answers on the root path without touching
// the database.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Message: "auth service running"}, http.StatusOK)
}
