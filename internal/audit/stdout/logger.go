package stdout

import (
	"context"
	"log"

	"github.com/asimihsan/request_gateway/pkg/gate"
)

// Logger implements gate.AuditLogger with output to stdout.
type Logger struct{}

// New creates a new stdout logger.
func New() *Logger {
	return &Logger{}
}

// LogResult implements gate.AuditLogger.
func (l *Logger) LogResult(ctx context.Context, identifier string, result gate.Result, policyID string) error {
	log.Printf("[AUDIT RESULT] Identifier: %s, Kind: %s, Reason: %q, PolicyID: %s, Duration: %s\n",
		identifier, result.Kind, result.Reason, policyID, result.EvalDuration)

	return nil
}

// LogSystemError implements gate.AuditLogger.
func (l *Logger) LogSystemError(ctx context.Context, systemError error, identifier, policyID string) error {
	log.Printf("[AUDIT SYSTEM ERROR] Identifier: %s, PolicyID: %s, Error: %v\n",
		identifier, policyID, systemError)

	return nil
}
