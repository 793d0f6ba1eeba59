package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hackathon-registration-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/event_mocks.go -package=mocks

// Subjects published after a roster change commits
const (
	SubjectWildcard                = "hackathon.>"
	SubjectIndividualRegistered    = "hackathon.registration.individual"
	SubjectTeamRegistered          = "hackathon.registration.team"
	SubjectTemporaryTeamFormed     = "hackathon.team.formed"
	SubjectTemporaryTeamDissolved  = "hackathon.team.dissolved"
	SubjectTemporaryTeamConverted  = "hackathon.team.converted"
	SubjectApplicantReviewed       = "hackathon.applicant.reviewed"
	SubjectHackathonCapacityChange = "hackathon.capacity.updated"
)

// Event is the JSON payload of every roster notification
type Event struct {
	HackathonID uuid.UUID   `json:"hackathon_id"`
	ActorID     uuid.UUID   `json:"actor_id"`
	SubjectID   uuid.UUID   `json:"subject_id"`
	Status      string      `json:"status,omitempty"`
	Members     []uuid.UUID `json:"members,omitempty"`
	Slots       int         `json:"slots,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// Publisher delivers roster events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, subject string, event Event) error
}

// streamPublisher is the slice of jetstream.JetStream the publisher needs
type streamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamPublisher publishes events to a NATS JetStream stream
type JetStreamPublisher struct {
	js streamPublisher
}

// NewJetStreamPublisher creates a publisher over the client's JetStream context
func NewJetStreamPublisher(client *Client) *JetStreamPublisher {
	return &JetStreamPublisher{js: client.JetStream()}
}

// Publish marshals the event and publishes it on subject
func (p *JetStreamPublisher) Publish(ctx context.Context, subject string, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject":      subject,
		"hackathon_id": event.HackathonID.String(),
	}).Debug("Published roster event")
	return nil
}

// NoopPublisher drops every event; used when NATS is not configured
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, string, Event) error { return nil }
