package greeting

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2"

	"github.com/k8s-hands-on/backend/internal/timeutil"
)

// serviceName identifies this component in response payloads.
const serviceName = "backend"

// GetOutput is the response wrapper for the root route.
type GetOutput struct {
	Body Data
}

// Register wires the greeting route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greet the caller and identify the serving host",
	}, getHandler)
}

// getHandler builds the greeting fresh per request. The hostname lookup is the
// only environment read; inside a pod it yields the pod name, which is what
// the scaling exercises observe.
func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve hostname: %w", err)
	}
	return &GetOutput{Body: Data{
		Message:   "Hola mundo",
		Timestamp: timeutil.NowMillis(),
		Service:   serviceName,
		Hostname:  host,
	}}, nil
}
