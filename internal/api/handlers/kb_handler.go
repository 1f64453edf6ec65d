package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/routeburn/product-flow/internal/api/types"
	"github.com/routeburn/product-flow/internal/services"
)

type KBHandler struct {
	docs services.KBService
}

func NewKBHandler(docs services.KBService) *KBHandler {
	return &KBHandler{docs: docs}
}

func (h *KBHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.docs.List(r.Context(), chi.URLParam(r, "portfolioCode"), chi.URLParam(r, "productCode"))
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

func (h *KBHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.KBDocumentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	doc, err := h.docs.Create(r.Context(), &services.CreateKBInput{
		Title:         req.Title,
		Content:       req.Content,
		PortfolioCode: chi.URLParam(r, "portfolioCode"),
		ProductCode:   chi.URLParam(r, "productCode"),
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: doc})
}

func (h *KBHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}
	doc, err := h.docs.Get(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: doc})
}

func (h *KBHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}

	var req types.KBDocumentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	doc, err := h.docs.Update(r.Context(), id, &services.UpdateKBInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: doc})
}

func (h *KBHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid document id")
		return
	}
	if err := h.docs.Delete(r.Context(), id); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
