package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	directoryservice "github.com/soulconnect/backend/internal/service/directory"
	"github.com/soulconnect/backend/pkg/utils"
)

// Handler serves the static help-directory routes.
type Handler struct {
	directory *directoryservice.Service
}

// New creates the directory handler.
func New(svc *directoryservice.Service) *Handler {
	return &Handler{directory: svc}
}

// RegisterRoutes mounts the directory routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/crisis-resources", h.handleCrisisResources)
	r.Get("/find-doctors/{city}", h.handleFindDoctors)
	r.Get("/cities-with-doctors", h.handleCities)
}

func (h *Handler) handleCrisisResources(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.directory.Crisis())
}

func (h *Handler) handleFindDoctors(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	specialization := r.URL.Query().Get("specialization")
	if specialization == "" {
		specialization = "psychiatrist"
	}

	professionals := h.directory.FindProfessionals(city, specialization)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"city":           city,
		"specialization": specialization,
		"count":          len(professionals),
		"professionals":  professionals,
	})
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"cities": h.directory.Cities()})
}
