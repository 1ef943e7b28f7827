package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"homestock/internal/model"
	"homestock/internal/store"
)

// ViewsHandler handles saved inventory view endpoints.
type ViewsHandler struct {
	DB *sql.DB
}

type viewRequest struct {
	Name    string             `json:"name" validate:"required"`
	Type    string             `json:"type" validate:"omitempty,oneof=all low_stock custom"`
	Filters []model.FilterRule `json:"filters" validate:"dive"`
	Sort    *model.SortConfig  `json:"sort"`
	GroupBy string             `json:"group_by"`
}

func (req *viewRequest) toModel(householdID int64) *model.InventoryView {
	viewType := req.Type
	if viewType == "" {
		viewType = model.ViewTypeCustom
	}
	return &model.InventoryView{
		HouseholdID: householdID,
		Name:        req.Name,
		Type:        viewType,
		Filters:     req.Filters,
		Sort:        req.Sort,
		GroupBy:     req.GroupBy,
	}
}

// List handles GET /api/views.
func (h *ViewsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	views, err := store.ListViews(r.Context(), h.DB, claims.HouseholdID)
	if err != nil {
		slog.Error("failed to list views", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list views")
		return
	}
	if views == nil {
		views = []model.InventoryView{}
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/views.
func (h *ViewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req viewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := store.CreateView(r.Context(), h.DB, req.toModel(claims.HouseholdID))
	if err != nil {
		slog.Error("failed to create view", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create view")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/views/{id}.
func (h *ViewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid view id")
		return
	}

	v, err := store.GetView(r.Context(), h.DB, claims.HouseholdID, id)
	if err != nil {
		slog.Error("failed to get view", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get view")
		return
	}
	if v == nil {
		jsonError(w, http.StatusNotFound, "view not found")
		return
	}

	jsonResponse(w, http.StatusOK, v)
}

// Update handles PUT /api/views/{id}.
func (h *ViewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid view id")
		return
	}

	var req viewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := store.GetView(r.Context(), h.DB, claims.HouseholdID, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get view")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "view not found")
		return
	}

	v := req.toModel(claims.HouseholdID)
	v.ID = id
	if err := store.UpdateView(r.Context(), h.DB, v); err != nil {
		slog.Error("failed to update view", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update view")
		return
	}

	updated, _ := store.GetView(r.Context(), h.DB, claims.HouseholdID, id)
	jsonResponse(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/views/{id}.
func (h *ViewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid view id")
		return
	}

	if err := store.DeleteView(r.Context(), h.DB, claims.HouseholdID, id); err != nil {
		slog.Error("failed to delete view", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete view")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "view deleted"})
}
