package events

import (
	"context"
	"encoding/json"
	"log"

	"cloud.google.com/go/pubsub"
)

// PubSubEmitter publishes decision events to a Google Cloud Pub/Sub topic.
type PubSubEmitter struct {
	ctx    context.Context
	client *pubsub.Client
	topic  *pubsub.Topic
}

func NewPubSubEmitter(ctx context.Context, projectID, topicID string) (*PubSubEmitter, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &PubSubEmitter{
		ctx:    ctx,
		client: client,
		topic:  client.Topic(topicID),
	}, nil
}

func (e *PubSubEmitter) Emit(event DecisionEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("pubsub marshal failed: %v", err)
		return
	}

	res := e.topic.Publish(e.ctx, &pubsub.Message{
		Data: b,
		Attributes: map[string]string{
			"kind":      event.Kind,
			"policy_id": event.PolicyID,
		},
	})
	if _, err := res.Get(e.ctx); err != nil {
		log.Printf("pubsub publish failed: %v", err)
	}
}

// Close releases the underlying Pub/Sub client.
func (e *PubSubEmitter) Close() error {
	return e.client.Close()
}
