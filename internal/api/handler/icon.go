package handler

import (
	"net/http"
	"strconv"

	"github.com/minewars/sessiontrack/internal/api/response"
	"github.com/minewars/sessiontrack/internal/services/catalog"
)

// IconHandler handles icon catalog endpoints
type IconHandler struct {
	catalogService *catalog.Service
}

// NewIconHandler creates a new icon handler
func NewIconHandler(catalogService *catalog.Service) *IconHandler {
	return &IconHandler{
		catalogService: catalogService,
	}
}

// Get handles GET /icons/GetIcon?id=
// With an id it returns that icon; without one it returns the full catalog.
func (h *IconHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			WriteError(w, NewInvalidRequestError("id must be an integer"))
			return
		}
		icon, err := h.catalogService.Icon(r.Context(), id)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, response.IconFromModel(icon))
		return
	}

	icons, err := h.catalogService.Icons(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Icon, len(icons))
	for i, icon := range icons {
		out[i] = response.IconFromModel(icon)
	}
	response.JSON(w, http.StatusOK, out)
}
