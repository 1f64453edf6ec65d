package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/routeburn/product-flow/internal/api/types"
	"github.com/routeburn/product-flow/internal/models"
	"github.com/routeburn/product-flow/internal/services"
)

type PortfoliosHandler struct {
	portfolios services.PortfolioService
}

func NewPortfoliosHandler(portfolios services.PortfolioService) *PortfoliosHandler {
	return &PortfoliosHandler{portfolios: portfolios}
}

func (h *PortfoliosHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.PortfolioCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	pf, err := h.portfolios.Create(r.Context(), &services.CreatePortfolioInput{
		Code:             req.Code,
		OrganizationName: req.OrganizationName,
		Name:             req.Name,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: pf})
}

func (h *PortfoliosHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolios.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data:    items,
		Meta:    &types.Meta{Total: int64(len(items))},
	})
}

func (h *PortfoliosHandler) Get(w http.ResponseWriter, r *http.Request) {
	pf, err := h.portfolios.Get(r.Context(), chi.URLParam(r, "portfolioCode"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: pf})
}

func (h *PortfoliosHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req types.ProductAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	pf, err := h.portfolios.AddProduct(r.Context(), chi.URLParam(r, "portfolioCode"), models.Product{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: pf})
}

func (h *PortfoliosHandler) AddOwner(w http.ResponseWriter, r *http.Request) {
	var req types.OwnerAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErrorStr(w, http.StatusBadRequest, "email is required")
		return
	}

	pf, err := h.portfolios.AddOwner(r.Context(), chi.URLParam(r, "portfolioCode"), req.Email)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: pf})
}
