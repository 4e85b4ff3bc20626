package greeting

// Data models the greeting payload returned from the root route. Field order
// is the wire order.
type Data struct {
	Message   string `json:"message" doc:"Greeting message" example:"Hola mundo"`
	Timestamp string `json:"timestamp" doc:"Request time, RFC 3339 UTC" example:"2024-01-15T10:30:00.000Z"`
	Service   string `json:"service" doc:"Component identifier" example:"backend"`
	Hostname  string `json:"hostname" doc:"Network name of the serving host" example:"backend-7d4b9c6f5-x2lqz"`
}
