package api

import (
	"database/sql"
	"net/http"

	"homestock/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}
	updatesHandler := &UpdatesHandler{DB: db}
	viewsHandler := &ViewsHandler{DB: db}
	auditHandler := &AuditHandler{DB: db}
	settingsHandler := &SettingsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Catalog reads.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("GET /api/items/expiring", authMW(http.HandlerFunc(itemsHandler.Expiring)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))
	mux.Handle("GET /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.GetImage)))

	// Catalog writes go through the reconciliation engine.
	mux.Handle("POST /api/updates", authMW(http.HandlerFunc(updatesHandler.Apply)))

	// Saved views.
	mux.Handle("GET /api/views", authMW(http.HandlerFunc(viewsHandler.List)))
	mux.Handle("POST /api/views", authMW(http.HandlerFunc(viewsHandler.Create)))
	mux.Handle("GET /api/views/{id}", authMW(http.HandlerFunc(viewsHandler.Get)))
	mux.Handle("PUT /api/views/{id}", authMW(http.HandlerFunc(viewsHandler.Update)))
	mux.Handle("DELETE /api/views/{id}", authMW(http.HandlerFunc(viewsHandler.Delete)))

	// Audit trail.
	mux.Handle("GET /api/audit", authMW(http.HandlerFunc(auditHandler.List)))

	// Settings.
	mux.Handle("GET /api/settings", authMW(http.HandlerFunc(settingsHandler.Get)))
	mux.Handle("PUT /api/settings", authMW(http.HandlerFunc(settingsHandler.Update)))

	return mux
}
