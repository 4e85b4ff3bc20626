package health

// HealthData models the liveness payload. Orchestrators only care about the status
// code, but the body identifies the component for humans probing by hand.
type HealthData struct {
	Status    string `json:"status" doc:"Liveness indicator" example:"OK"`
	Service   string `json:"service" doc:"Component identifier" example:"backend"`
	Timestamp string `json:"timestamp" doc:"Request time, RFC 3339 UTC" example:"2024-01-15T10:30:00.000Z"`
}
