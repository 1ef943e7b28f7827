package api

import (
	"database/sql"
	"net/http"

	"homestock/internal/engine"
	"homestock/internal/model"
	"homestock/internal/store"
)

// UpdatesHandler is the write-path entry point: it feeds batches of raw
// update requests into the reconciliation engine.
type UpdatesHandler struct {
	DB *sql.DB
}

type applyUpdatesRequest struct {
	Updates []model.UpdateRequest `json:"updates" validate:"required,min=1,max=500"`
	Source  string                `json:"source" validate:"required,oneof=manual text_parse image_scan agent"`
}

// Apply handles POST /api/updates. Per-item failures never produce an HTTP
// error: the batch result always comes back 200 with per-item outcomes.
func (h *UpdatesHandler) Apply(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req applyUpdatesRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	processor := engine.NewProcessor(
		&store.SQLCatalog{DB: h.DB},
		&store.SQLAuditSink{DB: h.DB},
	)
	result := processor.ApplyUpdates(r.Context(), claims.UserID, claims.HouseholdID, req.Updates, req.Source)

	jsonResponse(w, http.StatusOK, result)
}
