package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/k8s-hands-on/backend/internal/timeutil"
)

// serviceName identifies this component in response payloads.
const serviceName = "backend"

// GetOutput is the response wrapper for the health endpoint.
type GetOutput struct {
	Body HealthData
}

// Register wires the liveness route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/health", getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: HealthData{
		Status:    "OK",
		Service:   serviceName,
		Timestamp: timeutil.NowMillis(),
	}}, nil
}
