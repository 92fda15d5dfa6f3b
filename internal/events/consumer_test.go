package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Pasindu599/Fitness-App/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubReader struct {
	msgs        []kafka.Message
	idx         int
	commitCount int
	errAfter    error
}

func (r *stubReader) FetchMessage(context.Context) (kafka.Message, error) {
	if r.idx >= len(r.msgs) {
		return kafka.Message{}, r.errAfter
	}
	msg := r.msgs[r.idx]
	r.idx++
	return msg, nil
}

func (r *stubReader) CommitMessages(_ context.Context, _ ...kafka.Message) error {
	r.commitCount++
	return nil
}

func (r *stubReader) Close() error { return nil }

type recordingHandler struct {
	activities []*domain.Activity
	err        error
}

func (h *recordingHandler) Handle(_ context.Context, activity *domain.Activity) error {
	h.activities = append(h.activities, activity)
	return h.err
}

func activityMessage(t *testing.T, activity *domain.Activity) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(activity)
	require.NoError(t, err)
	return kafka.Message{
		Topic:  "fitness.activity",
		Offset: 7,
		Value:  payload,
		Time:   time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeActivityCreated)},
		},
	}
}

func TestConsumerDispatchesAndCommits(t *testing.T) {
	activity := &domain.Activity{
		ID:       primitive.NewObjectID(),
		UserID:   "user-1",
		Type:     domain.ActivityRunning,
		Duration: 30,
	}

	reader := &stubReader{
		msgs:     []kafka.Message{activityMessage(t, activity)},
		errAfter: context.Canceled,
	}
	handler := &recordingHandler{}
	consumer := NewConsumer(reader, handler)

	err := consumer.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, handler.activities, 1)
	require.Equal(t, activity.ID, handler.activities[0].ID)
	require.Equal(t, activity.UserID, handler.activities[0].UserID)
	require.Equal(t, 1, reader.commitCount)
}

func TestConsumerCommitsOnHandlerError(t *testing.T) {
	activity := &domain.Activity{ID: primitive.NewObjectID(), UserID: "user-1"}
	reader := &stubReader{
		msgs:     []kafka.Message{activityMessage(t, activity)},
		errAfter: context.Canceled,
	}
	handler := &recordingHandler{err: errors.New("store down")}
	consumer := NewConsumer(reader, handler)

	err := consumer.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	// The event is consumed at most once: a handler failure does not hold
	// the offset back.
	require.Equal(t, 1, reader.commitCount)
}

func TestConsumerSkipsUndecodableMessage(t *testing.T) {
	reader := &stubReader{
		msgs:     []kafka.Message{{Value: []byte("{broken"), Offset: 3}},
		errAfter: context.Canceled,
	}
	handler := &recordingHandler{}
	consumer := NewConsumer(reader, handler)

	err := consumer.Run(context.Background())
	require.ErrorIs(t, err, context.Canceled)

	require.Empty(t, handler.activities)
	require.Equal(t, 1, reader.commitCount)
}
