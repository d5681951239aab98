package app

import (
	"database/sql"

	"github.com/rvledder/inspecto/config"
	"github.com/rvledder/inspecto/service"
)

// App bundles everything the request handlers need. It is built once in
// main and injected into the router.
type App struct {
	DB          *sql.DB
	Templates   *service.TemplateService
	Objects     *service.PropertyService
	Inspections *service.InspectionService
	Config      config.Config
}

func New(db *sql.DB, cfg config.Config) App {
	return App{
		DB:          db,
		Templates:   service.NewTemplateService(db),
		Objects:     service.NewPropertyService(db),
		Inspections: service.NewInspectionService(db),
		Config:      cfg,
	}
}
