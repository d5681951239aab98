package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/rvledder/inspecto/app"
	"github.com/rvledder/inspecto/httpx"
	"github.com/rvledder/inspecto/model"
)

func ListTemplates(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := app.Templates.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, "templates.list", "Failed to fetch templates", err)
			return
		}

		render.JSON(w, r, templates)
	}
}

func CreateTemplate(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.CreateTemplateRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.WriteBadRequest(w, r, "templates.create.parse_body", "Invalid request body")
			return
		}

		template, err := app.Templates.Create(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, "templates.create", "Failed to create template", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, template)
	}
}

func GetTemplate(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "templates.get.id", "Template ID is required in request body")
			return
		}

		template, err := app.Templates.ByID(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "templates.get", "Failed to fetch template", err)
			return
		}

		render.JSON(w, r, template)
	}
}

func DeleteTemplate(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "templates.delete.id", "Template ID is required in request body")
			return
		}

		err = app.Templates.Delete(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "templates.delete", "Failed to delete template", err)
			return
		}

		render.JSON(w, r, map[string]string{"message": "Template deleted successfully"})
	}
}
