package service

import (
	"context"
	"encoding/json"
	"sort"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/repository"
	"notehub-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2/log"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService rebuilds a user's tag usage rows whenever one of their
// notes changes. The whole recompute happens in one transaction so readers
// never observe a half-written table.
type consumerService struct {
	noteRepository    repository.INoteRepository
	tagStatRepository repository.ITagStatRepository
	pubSub            *gochannel.GoChannel
	topicName         string

	db database.TxBeginner
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	noteRepository repository.INoteRepository,
	tagStatRepository repository.ITagStatRepository,
	db database.TxBeginner) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		noteRepository:    noteRepository,
		tagStatRepository: tagStatRepository,
		db:                db,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) error {
	defer msg.Nack()

	defer func() {
		if e := recover(); e != nil {
			log.Errorf("[Panic Recovery] panic while recomputing tag stats: %v", e)
		}
	}()

	var payload dto.PublishNoteChangedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Errorf("[Consumer] failed to unmarshal payload: %v | Payload: %s", err, string(msg.Payload))
		return err
	}

	notes, err := cs.noteRepository.GetByUserId(ctx, payload.UserId, nil)
	if err != nil {
		log.Errorf("[Repo] failed to load notes for user %d: %v", payload.UserId, err)
		return err
	}

	counts := make(map[string]int)
	for _, note := range notes {
		for _, tag := range decodeTags(note.Tags) {
			counts[tag]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	tx, err := cs.db.BeginTx(ctx)
	if err != nil {
		log.Errorf("[DB] failed to begin transaction: %v", err)
		return err
	}
	defer tx.Rollback(ctx)

	repo := cs.tagStatRepository.UsingTx(ctx, tx)

	if err := repo.DeleteByUserId(ctx, payload.UserId); err != nil {
		log.Errorf("[DB] failed to clear tag stats for user %d: %v", payload.UserId, err)
		return err
	}

	for _, name := range names {
		if err := repo.Create(ctx, &entity.TagStat{
			UserId: payload.UserId,
			Name:   name,
			Count:  counts[name],
		}); err != nil {
			log.Errorf("[DB] failed to save tag stat %q for user %d: %v", name, payload.UserId, err)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Errorf("[DB] failed to commit tag stats: %v", err)
		return err
	}

	log.Infof("[Success] recomputed %d tag stats for user %d", len(names), payload.UserId)

	msg.Ack()
	return nil
}
