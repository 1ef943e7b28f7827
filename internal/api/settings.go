package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"homestock/internal/store"
)

// SettingsHandler manages per-household settings.
type SettingsHandler struct {
	DB *sql.DB
}

type updateSettingsRequest struct {
	ExpiryWarnDays int `json:"expiry_warn_days" validate:"required,gt=0,lte=365"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	days, err := store.GetExpiryWarnDays(r.Context(), h.DB, claims.HouseholdID)
	if err != nil {
		slog.Error("failed to get settings", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get settings")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int{"expiry_warn_days": days})
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := store.SetSetting(r.Context(), h.DB, claims.HouseholdID,
		store.SettingExpiryWarnDays, strconv.Itoa(req.ExpiryWarnDays))
	if err != nil {
		slog.Error("failed to update settings", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int{"expiry_warn_days": req.ExpiryWarnDays})
}
