package events

import (
	"encoding/json"
	"log"
)

type Emitter interface {
	Emit(event DecisionEvent)
}

type LogEmitter struct{}

func NewLogEmitter() *LogEmitter {
	return &LogEmitter{}
}

func (e *LogEmitter) Emit(event DecisionEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("event marshal failed: %v", err)
		return
	}
	log.Printf("DECISION EVENT: %s", string(b))
}
