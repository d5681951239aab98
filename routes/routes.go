package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rvledder/inspecto/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

// Mutating id-bearing endpoints carry the id in the JSON body, not the
// path, hence the POST .../get and .../update routes.
func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/templates", ListTemplates(app))
	api.Post("/templates", CreateTemplate(app))
	api.Post("/templates/get", GetTemplate(app))
	api.Delete("/templates", DeleteTemplate(app))

	api.Get("/objects", ListObjects(app))
	api.Post("/objects", CreateObject(app))
	api.Post("/objects/get", GetObject(app))
	api.Post("/objects/update", UpdateObject(app))
	api.Delete("/objects", DeleteObject(app))

	api.Get("/inspections", ListInspections(app))
	api.Post("/inspections", CreateInspection(app))
	api.Post("/inspections/get", GetInspection(app))
	api.Post("/inspections/update", UpdateInspection(app))
	api.Delete("/inspections", DeleteInspection(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
