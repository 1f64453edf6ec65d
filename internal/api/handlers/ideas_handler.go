package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/routeburn/product-flow/internal/api/types"
	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/services"
	"github.com/routeburn/product-flow/internal/views"
	appErr "github.com/routeburn/product-flow/pkg/errors"
)

type IdeasHandler struct {
	ideas services.IdeaService
}

func NewIdeasHandler(ideas services.IdeaService) *IdeasHandler {
	return &IdeasHandler{ideas: ideas}
}

// List returns the backlog for one product, sorted and filtered per the
// sort and filter query parameters. Unrecognized values fall back to the
// defaults rather than erroring.
func (h *IdeasHandler) List(w http.ResponseWriter, r *http.Request) {
	pf := chi.URLParam(r, "portfolioCode")
	pc := chi.URLParam(r, "productCode")

	items, err := h.ideas.List(r.Context(), pf, pc)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	sortKey := views.ParseSortField(r.URL.Query().Get("sort"))
	filterKey := views.ParseFilterField(r.URL.Query().Get("filter"))
	items = views.SortIdeas(views.FilterIdeas(items, filterKey), sortKey)

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    items,
		Meta: &types.Meta{
			Sort:   string(sortKey),
			Filter: string(filterKey),
			Total:  int64(len(items)),
		},
	})
}

// Funnel groups the product's ideas into one bucket per validation status.
func (h *IdeasHandler) Funnel(w http.ResponseWriter, r *http.Request) {
	pf := chi.URLParam(r, "portfolioCode")
	pc := chi.URLParam(r, "productCode")

	items, err := h.ideas.List(r.Context(), pf, pc)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    views.GroupByValidationStatus(items),
	})
}

func (h *IdeasHandler) Get(w http.ResponseWriter, r *http.Request) {
	pf := chi.URLParam(r, "portfolioCode")
	pc := chi.URLParam(r, "productCode")
	n, err := strconv.Atoi(chi.URLParam(r, "ideaNumber"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "ideaNumber must be an integer")
		return
	}

	idea, err := h.ideas.GetByNumber(r.Context(), pf, pc, n)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: idea})
}

func (h *IdeasHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.IdeaCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	idea, err := h.ideas.Create(r.Context(), &services.CreateIdeaInput{
		PortfolioCode:    chi.URLParam(r, "portfolioCode"),
		ProductCode:      chi.URLParam(r, "productCode"),
		Name:             req.Name,
		Hypothesis:       req.Hypothesis,
		ValidationStatus: models.ValidationStatus(req.ValidationStatus),
		Source:           models.Source(req.Source),
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: idea})
}

func (h *IdeasHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var req types.IdeaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	patch := &services.UpdateIdeaInput{Name: req.Name, Hypothesis: req.Hypothesis}
	if req.ValidationStatus != nil {
		vs := models.ValidationStatus(*req.ValidationStatus)
		patch.ValidationStatus = &vs
	}
	if req.Source != nil {
		src := models.Source(*req.Source)
		patch.Source = &src
	}

	idea, err := h.ideas.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: idea})
}

func (h *IdeasHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid idea id")
		return
	}

	var req types.UpvoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ObservedUpvotes < 0 {
		writeErrorStr(w, http.StatusBadRequest, "observedUpvotes must not be negative")
		return
	}

	idea, err := h.ideas.Upvote(r.Context(), id, req.ObservedUpvotes)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: idea})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: "invalid", Message: msg}})
}

func statusFor(err error) int {
	switch {
	case appErr.IsCode(err, appErr.CodeInvalid):
		return http.StatusBadRequest
	case appErr.IsCode(err, appErr.CodeNotFound):
		return http.StatusNotFound
	case appErr.IsCode(err, appErr.CodeUnauthorized):
		return http.StatusUnauthorized
	case appErr.IsCode(err, appErr.CodeConflict):
		return http.StatusConflict
	case appErr.IsCode(err, appErr.CodeUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
