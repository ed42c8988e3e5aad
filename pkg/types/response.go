package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the failure body: {"error": "<message>"} plus optional details.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// HealthStatus is written raw (no envelope) by the liveness checks.
type HealthStatus struct {
	Status string `json:"status"`
}
