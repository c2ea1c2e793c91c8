package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/replydraft/docs/swagger"
	"github.com/joestump/replydraft/internal/api"
	"github.com/joestump/replydraft/internal/reply"
	"github.com/joestump/replydraft/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Generator *reply.Generator
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static assets (embedded). fs.Sub so the file server sees css/app.css
	// directly, not static/css/app.css.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	themeHandler := NewThemeHandler()
	r.Post("/theme", themeHandler.Toggle)

	replies := NewReplyHandler(deps.Generator)
	r.Get("/", replies.Index)
	r.Get("/fields", replies.Fields)
	r.Post("/generate", replies.Generate)

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{Generator: deps.Generator}))

	return r
}
