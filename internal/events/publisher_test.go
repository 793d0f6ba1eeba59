package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMessage struct {
	subject string
	data    []byte
}

type fakeStream struct {
	messages []recordedMessage
	err      error
}

func (f *fakeStream) Publish(_ context.Context, subject string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.messages = append(f.messages, recordedMessage{subject: subject, data: data})
	return &jetstream.PubAck{Stream: "HACKATHON_EVENTS", Sequence: uint64(len(f.messages))}, nil
}

func TestJetStreamPublisher_Publish(t *testing.T) {
	stream := &fakeStream{}
	publisher := &JetStreamPublisher{js: stream}

	event := Event{
		HackathonID: uuid.New(),
		ActorID:     uuid.New(),
		SubjectID:   uuid.New(),
		Status:      "pending",
		Members:     []uuid.UUID{uuid.New(), uuid.New()},
		Slots:       2,
	}

	err := publisher.Publish(context.Background(), SubjectTeamRegistered, event)
	require.NoError(t, err)
	require.Len(t, stream.messages, 1)
	assert.Equal(t, SubjectTeamRegistered, stream.messages[0].subject)

	var decoded Event
	require.NoError(t, json.Unmarshal(stream.messages[0].data, &decoded))
	assert.Equal(t, event.HackathonID, decoded.HackathonID)
	assert.Equal(t, event.Members, decoded.Members)
	assert.Equal(t, 2, decoded.Slots)
	assert.False(t, decoded.OccurredAt.IsZero())
}

func TestJetStreamPublisher_KeepsOccurredAt(t *testing.T) {
	stream := &fakeStream{}
	publisher := &JetStreamPublisher{js: stream}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, publisher.Publish(context.Background(), SubjectApplicantReviewed, Event{OccurredAt: at}))

	var decoded Event
	require.NoError(t, json.Unmarshal(stream.messages[0].data, &decoded))
	assert.True(t, at.Equal(decoded.OccurredAt))
}

func TestJetStreamPublisher_PublishError(t *testing.T) {
	stream := &fakeStream{err: errors.New("no responders")}
	publisher := &JetStreamPublisher{js: stream}

	err := publisher.Publish(context.Background(), SubjectTemporaryTeamFormed, Event{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), SubjectTemporaryTeamFormed)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), SubjectIndividualRegistered, Event{}))
}
