package dashboard

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/clearpath-aba/clearpath/pkg/adapters"
	"github.com/clearpath-aba/clearpath/pkg/models/api"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options := h.service.Options(r.Context())
	h.respond(w, r, http.StatusOK, adapters.MapFilterOptionsDomainToApi(options))
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients := h.service.Clients(r.Context())

	response := make([]api.Option, 0, len(clients))
	for _, client := range clients {
		response = append(response, api.Option{Value: client.ID, Label: client.Label})
	}
	h.respond(w, r, http.StatusOK, response)
}

func (h *Handler) QueryPrograms(w http.ResponseWriter, r *http.Request) {
	filters, ok := h.decodeFilters(w, r)
	if !ok {
		return
	}

	programs, err := h.service.QueryPrograms(r.Context(), filters)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, adapters.MapEnrichedProgramsDomainToApi(programs))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	filters, ok := h.decodeFilters(w, r)
	if !ok {
		return
	}

	metrics, err := h.service.Summary(r.Context(), filters)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, adapters.MapMetricsDomainToApi(metrics))
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	filters, ok := h.decodeFilters(w, r)
	if !ok {
		return
	}

	series, err := h.service.Series(r.Context(), filters)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, adapters.MapSeriesDomainToApi(series))
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	filters, ok := h.decodeFilters(w, r)
	if !ok {
		return
	}

	overview, err := h.service.Overview(r.Context(), filters)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, adapters.MapOverviewDomainToApi(overview))
}

func (h *Handler) GetProgramDetail(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, "program")

	detail, err := h.service.ProgramDetail(r.Context(), programID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respond(w, r, http.StatusOK, adapters.MapProgramDetailDomainToApi(detail))
}

// decodeFilters parses the request body into a domain Filters value. An
// empty body means the neutral default filters.
func (h *Handler) decodeFilters(w http.ResponseWriter, r *http.Request) (domain.Filters, bool) {
	var wire api.Filters
	err := json.NewDecoder(r.Body).Decode(&wire)
	if errors.Is(err, io.EOF) {
		return h.service.DefaultFilters(r.Context()), true
	}
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "malformed filters payload")
		return domain.Filters{}, false
	}

	filters, err := adapters.MapFiltersApiToDomain(wire)
	if err != nil {
		h.respondError(w, r, err)
		return domain.Filters{}, false
	}
	return filters, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var validation domain.ValidationError
	var integrity domain.DataIntegrityError

	switch {
	case errors.Is(err, dashboard.ErrProgramNotFound):
		h.writeError(w, r, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		h.writeError(w, r, http.StatusBadRequest, validation.Error())
	case errors.As(err, &integrity):
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("program", integrity.ProgramID).
			Msg("catalog integrity fault")
		h.writeError(w, r, http.StatusInternalServerError, integrity.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		h.writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respond(w, r, status, api.Error{Error: message})
}
