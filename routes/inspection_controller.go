package routes

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/rvledder/inspecto/app"
	"github.com/rvledder/inspecto/httpx"
	"github.com/rvledder/inspecto/model"
)

func ListInspections(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inspections, err := app.Inspections.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, "inspections.list", "Failed to fetch inspections", err)
			return
		}

		render.JSON(w, r, inspections)
	}
}

func CreateInspection(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.CreateInspectionRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.WriteBadRequest(w, r, "inspections.create.parse_body", "Invalid request body")
			return
		}

		inspection, err := app.Inspections.Create(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, "inspections.create", "Failed to create inspection", err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, inspection)
	}
}

func GetInspection(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "inspections.get.id", "Inspection ID is required in request body")
			return
		}

		inspection, err := app.Inspections.ByID(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "inspections.get", "Failed to fetch inspection", err)
			return
		}

		render.JSON(w, r, inspection)
	}
}

func UpdateInspection(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.UpdateInspectionRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.WriteBadRequest(w, r, "inspections.update.parse_body", "Invalid request body")
			return
		}
		if req.ID == "" {
			httpx.WriteBadRequest(w, r, "inspections.update.id", "Inspection ID is required in request body")
			return
		}

		inspection, err := app.Inspections.Update(r.Context(), req)
		if err != nil {
			httpx.WriteError(w, r, "inspections.update", "Failed to update inspection", err)
			return
		}

		render.JSON(w, r, inspection)
	}
}

func DeleteInspection(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := model.IDRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil || req.ID == "" {
			httpx.WriteBadRequest(w, r, "inspections.delete.id", "Inspection ID is required in request body")
			return
		}

		err = app.Inspections.Delete(r.Context(), req.ID)
		if err != nil {
			httpx.WriteError(w, r, "inspections.delete", "Failed to delete inspection", err)
			return
		}

		render.JSON(w, r, map[string]string{"message": "Inspection deleted successfully"})
	}
}
