package api

import (
	"net/http"

	"github.com/docpipe/triage/internal/config"
	"github.com/docpipe/triage/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Pipeline.Handler().Routes(),
		newStorageHandler(
			runtime.Storage,
			runtime.Logger,
			int32(cfg.API.Pagination.MaxPageSize),
		).routes(),
	)
}
