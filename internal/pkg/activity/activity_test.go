package activity

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("write without deadline")
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, timeout: time.Second, logger: zerolog.Nop()}
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), Event{Type: DonationCreated, ActorID: "alumni-1", SubjectID: "d1", At: at})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "alumni-1", string(w.msgs[0].Key))

	var decoded Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &decoded))
	assert.Equal(t, DonationCreated, decoded.Type)
	assert.Equal(t, "d1", decoded.SubjectID)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &KafkaPublisher{writer: &fakeWriter{err: errors.New("broker down")}, timeout: time.Second, logger: zerolog.Nop()}
	err := p.Publish(context.Background(), Event{Type: MessageSent})
	assert.ErrorContains(t, err, "broker down")

	var nilPublisher *KafkaPublisher
	assert.NoError(t, nilPublisher.Publish(context.Background(), Event{}))
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.Publish(context.Background(), Event{Type: UserLoggedIn}))
	require.NoError(t, m.Publish(context.Background(), Event{Type: UserLoggedOut}))
	assert.Equal(t, []string{UserLoggedIn, UserLoggedOut}, m.Types())
	assert.NoError(t, Noop{}.Publish(context.Background(), Event{}))
}

type failingPublisher struct{ err error }

func (f failingPublisher) Publish(context.Context, Event) error { return f.err }
func (f failingPublisher) Close() error                         { return f.err }

func TestFanout(t *testing.T) {
	boom := errors.New("boom")
	mem := &Memory{}
	f := Fanout{failingPublisher{err: boom}, mem}

	err := f.Publish(context.Background(), Event{Type: DonationCreated})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{DonationCreated}, mem.Types(), "later publishers still receive the event")

	assert.ErrorIs(t, f.Close(), boom)
	assert.NoError(t, Fanout{mem, Noop{}}.Close())
}
