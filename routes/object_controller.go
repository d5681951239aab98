package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/rvledder/inspecto/app"
	"github.com/rvledder/inspecto/httpx"
	"github.com/rvledder/inspecto/model"
)

func ListObjects(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		properties, err := app.Objects.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, "objects.list", "Failed to fetch objects", err)
			return
		}

		render.JSON(w, r, properties)
	}
}

func CreateObject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.CreatePropertyRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.WriteBadRequest(w, r, "objects.create.parse_body", "Invalid request body")
			return
		}

		property, err := app.Objects.Create(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, "objects.create", "Failed to create object", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, property)
	}
}

func GetObject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "objects.get.id", "Object ID is required in request body")
			return
		}

		property, err := app.Objects.ByID(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "objects.get", "Failed to fetch object", err)
			return
		}

		render.JSON(w, r, property)
	}
}

func UpdateObject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.UpdatePropertyRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.WriteBadRequest(w, r, "objects.update.parse_body", "Invalid request body")
			return
		}
		if req.ID == "" {
			httpx.WriteBadRequest(w, r, "objects.update.id", "Object ID is required in request body")
			return
		}

		property, err := app.Objects.Update(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, "objects.update", "Failed to update object", err)
			return
		}

		render.JSON(w, r, property)
	}
}

func DeleteObject(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "objects.delete.id", "Object ID is required in request body")
			return
		}

		err = app.Objects.Delete(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "objects.delete", "Failed to delete object", err)
			return
		}

		render.JSON(w, r, map[string]string{"message": "Object deleted successfully"})
	}
}
