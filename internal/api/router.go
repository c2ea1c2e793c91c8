package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/replydraft/internal/reply"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Generator *reply.Generator
}

// NewAPIRouter creates a chi sub-router for /api/v1. All routes return
// application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	r.Get("/scenarios", listScenarios)

	replies := &repliesAPIHandler{gen: deps.Generator}
	r.Post("/replies", replies.Create)

	return r
}

// jsonContentType sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
