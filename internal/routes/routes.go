package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/k8s-hands-on/backend/internal/http/greeting"
	"github.com/k8s-hands-on/backend/internal/http/health"
)

// APIConfig builds the huma configuration shared by the server and tests.
// The docs, OpenAPI, and schema endpoints stay unregistered: every path
// outside the documented routes must fall through to the JSON 404, and
// response bodies must carry no injected $schema key.
func APIConfig(version string) huma.Config {
	cfg := huma.DefaultConfig("backend", version)
	cfg.OpenAPIPath = ""
	cfg.DocsPath = ""
	cfg.SchemasPath = ""
	cfg.CreateHooks = nil
	return cfg
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	greeting.Register(api)
	health.Register(api)
}
