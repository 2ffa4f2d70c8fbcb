package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

func TestConsumerRecomputesTagStats(t *testing.T) {
	noteRepo := newFakeNoteRepository()
	noteRepo.notes = []*entity.Note{
		{Id: 1, UserId: 3, Tags: `["go","db"]`},
		{Id: 2, UserId: 3, Tags: `["go"]`},
		{Id: 3, UserId: 4, Tags: `["other"]`},
	}
	tagStatRepo := newFakeTagStatRepository()
	db := newFakeDB()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	consumer := NewConsumerService(pubSub, "note-changed", noteRepo, tagStatRepo, db)
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("note-changed", pubSub)
	payload, err := json.Marshal(dto.PublishNoteChangedMessage{UserId: 3})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	require.Eventually(t, func() bool {
		stats, _ := tagStatRepo.GetByUserId(context.Background(), 3)
		return len(stats) == 2
	}, 2*time.Second, 10*time.Millisecond)

	stats, err := tagStatRepo.GetByUserId(context.Background(), 3)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, s := range stats {
		counts[s.Name] = s.Count
	}
	require.Equal(t, map[string]int{"go": 2, "db": 1}, counts)
	require.True(t, db.tx.committed)
}
