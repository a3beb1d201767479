package events

// DecisionEvent records one gateway evaluation for downstream governance
// consumers.
type DecisionEvent struct {
	Timestamp  string `json:"timestamp"` // RFC3339 string
	RequestID  string `json:"request_id"`
	Identifier string `json:"identifier"`
	Kind       string `json:"kind"`   // blocked | delivered | error
	Reason     string `json:"reason"` // ALWAYS string ("" if none)
	PolicyID   string `json:"policy_id"`
	LatencyMs  int64  `json:"latency_ms"`
}
