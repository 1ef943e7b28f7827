package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homestock/internal/imaging"
	"homestock/internal/model"
	"homestock/internal/store"
	"homestock/internal/view"
)

// ItemsHandler handles catalog read endpoints and item photos.
type ItemsHandler struct {
	DB *sql.DB
}

// List handles GET /api/items.
//
// Query parameters compose read-side transforms over the catalog snapshot:
// q (fuzzy name search), categories (comma-separated, OR semantics),
// view (saved view id, AND semantics across its rules), sort + order,
// and group_by. With group_by the response is {"groups": {...}}, otherwise
// a flat item list.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItems(r.Context(), h.DB, claims.HouseholdID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	query := r.URL.Query()

	if viewID := query.Get("view"); viewID != "" {
		id, err := strconv.ParseInt(viewID, 10, 64)
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
		items = view.ApplyView(items, *v)
		if v.GroupBy != "" && query.Get("group_by") == "" {
			query.Set("group_by", v.GroupBy)
		}
	}

	if q := query.Get("q"); q != "" {
		items = view.SearchItems(items, q)
	}

	if categories := query.Get("categories"); categories != "" {
		items = view.FilterByMultipleCategories(items, strings.Split(categories, ","))
	}

	if field := query.Get("sort"); field != "" {
		view.SortItems(items, model.SortConfig{
			Field:     field,
			Ascending: query.Get("order") != "desc",
		})
	}

	if items == nil {
		items = []model.InventoryItem{}
	}

	if field := query.Get("group_by"); field != "" {
		jsonResponse(w, http.StatusOK, map[string]any{
			"groups": view.GroupItems(items, field),
		})
		return
	}

	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, claims.HouseholdID, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item":   item,
		"status": item.StockStatus(),
	})
}

// Expiring handles GET /api/items/expiring: items whose expiration date
// falls within the household's configured warning window.
func (h *ItemsHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	days, err := store.GetExpiryWarnDays(r.Context(), h.DB, claims.HouseholdID)
	if err != nil {
		slog.Error("failed to get expiry window", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get expiry window")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, claims.HouseholdID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, days)
	expiring := make([]model.InventoryItem, 0)
	for _, item := range items {
		if item.ExpirationDate != nil && !item.ExpirationDate.After(cutoff) {
			expiring = append(expiring, item)
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"window_days": days,
		"items":       expiring,
	})
}

// UploadImage handles PUT /api/items/{id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, claims.HouseholdID, id)
	if err != nil || item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	processed, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, claims.HouseholdID, id, processed.Data, processed.MIME); err != nil {
		slog.Error("failed to save image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, claims.HouseholdID, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
