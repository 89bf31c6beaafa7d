package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"handcrafted-haven/internal/model"
)

type EventPublisher interface {
	PublishArtisanRegistered(artisan *model.Artisan) error
	PublishProductCreated(productID, artisanID uuid.UUID) error
	PublishProductUpdated(productID, artisanID uuid.UUID) error
	PublishProductDeleted(productID, artisanID uuid.UUID) error
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL)

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

type ArtisanRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	ArtisanID  uuid.UUID `json:"artisan_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ProductEvent struct {
	EventType  string    `json:"event_type"`
	ProductID  uuid.UUID `json:"product_id"`
	ArtisanID  uuid.UUID `json:"artisan_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *NatsPublisher) publish(subject string, event interface{}) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		slog.Error("Error marshalling event JSON", "subject", subject, "error", err)
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("Error publishing to NATS", "subject", subject, "error", err)
		return err
	}

	return nil
}

func (p *NatsPublisher) PublishArtisanRegistered(artisan *model.Artisan) error {
	return p.publish("artisan.registered", ArtisanRegisteredEvent{
		EventType:  "artisan.registered",
		ArtisanID:  artisan.ID,
		Email:      artisan.Email,
		Name:       artisan.Name,
		OccurredAt: time.Now(),
	})
}

func (p *NatsPublisher) PublishProductCreated(productID, artisanID uuid.UUID) error {
	return p.publish("product.created", ProductEvent{
		EventType:  "product.created",
		ProductID:  productID,
		ArtisanID:  artisanID,
		OccurredAt: time.Now(),
	})
}

func (p *NatsPublisher) PublishProductUpdated(productID, artisanID uuid.UUID) error {
	return p.publish("product.updated", ProductEvent{
		EventType:  "product.updated",
		ProductID:  productID,
		ArtisanID:  artisanID,
		OccurredAt: time.Now(),
	})
}

func (p *NatsPublisher) PublishProductDeleted(productID, artisanID uuid.UUID) error {
	return p.publish("product.deleted", ProductEvent{
		EventType:  "product.deleted",
		ProductID:  productID,
		ArtisanID:  artisanID,
		OccurredAt: time.Now(),
	})
}

// NoopPublisher stands in when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishArtisanRegistered(*model.Artisan) error { return nil }
func (NoopPublisher) PublishProductCreated(_, _ uuid.UUID) error    { return nil }
func (NoopPublisher) PublishProductUpdated(_, _ uuid.UUID) error    { return nil }
func (NoopPublisher) PublishProductDeleted(_, _ uuid.UUID) error    { return nil }
