package gate

// Decision represents the outcome of a successful rule evaluation.
type Decision struct {
	Allow       bool
	DenyReasons []string
}
