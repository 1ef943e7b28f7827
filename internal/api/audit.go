package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"homestock/internal/model"
	"homestock/internal/store"
)

// AuditHandler exposes the household's audit trail.
type AuditHandler struct {
	DB *sql.DB
}

// List handles GET /api/audit.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := store.ListAuditEntries(r.Context(), h.DB, claims.HouseholdID, limit)
	if err != nil {
		slog.Error("failed to list audit entries", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list audit entries")
		return
	}
	if entries == nil {
		entries = []model.AuditLogEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}
