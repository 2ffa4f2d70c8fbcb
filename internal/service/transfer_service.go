package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"
	"notehub-be/pkg/database"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ITransferService is the bulk importer/exporter. Import persists a whole
// batch inside one transaction or nothing at all; Export materializes a
// user's notes into a re-importable document.
type ITransferService interface {
	Import(ctx context.Context, userId int64, document []byte) (*dto.ImportNotesResult, error)
	Export(ctx context.Context, userId int64, noteId *int64) ([]*dto.ExportedNote, error)
}

type transferService struct {
	noteRepository     repository.INoteRepository
	categoryRepository repository.ICategoryRepository
	publisherService   IPublisherService
	db                 database.TxBeginner
}

func NewTransferService(
	noteRepository repository.INoteRepository,
	categoryRepository repository.ICategoryRepository,
	publisherService IPublisherService,
	db database.TxBeginner,
) ITransferService {
	return &transferService{
		noteRepository:     noteRepository,
		categoryRepository: categoryRepository,
		publisherService:   publisherService,
		db:                 db,
	}
}

func (s *transferService) Import(ctx context.Context, userId int64, document []byte) (*dto.ImportNotesResult, error) {
	if !json.Valid(document) {
		return nil, serverutils.NewImportParseError()
	}

	trimmed := bytes.TrimLeft(document, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, serverutils.NewImportShapeError()
	}

	var records []dto.ImportNoteRecord
	if err := json.Unmarshal(document, &records); err != nil {
		return nil, serverutils.NewImportShapeError()
	}

	if len(records) == 0 {
		return nil, serverutils.NewImportEmptyBatchError()
	}

	batchId := uuid.NewString()
	log.Infof("[Import] batch %s: %d notes for user %d", batchId, len(records), userId)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, serverutils.NewImportPersistenceError(err)
	}
	defer tx.Rollback(ctx)

	noteRepository := s.noteRepository.UsingTx(ctx, tx)
	categoryRepository := s.categoryRepository.UsingTx(ctx, tx)

	// Validation is fail-fast: the first bad record aborts the transaction
	// and later records are never examined.
	for i, rec := range records {
		position := i + 1

		note, err := buildImportedNote(position, &rec)
		if err != nil {
			return nil, err
		}

		_, err = categoryRepository.GetById(ctx, note.CategoryId)
		if err != nil {
			if errors.Is(err, serverutils.ErrNotFound) {
				return nil, serverutils.NewImportUnknownCategoryError(position, note.CategoryId)
			}
			return nil, serverutils.NewImportPersistenceError(err)
		}

		note.UserId = userId
		note.CreatedAt = time.Now()

		if err := noteRepository.Create(ctx, note); err != nil {
			log.Errorf("[Import] batch %s: insert failed at note %d: %v", batchId, position, err)
			return nil, serverutils.NewImportPersistenceError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, serverutils.NewImportPersistenceError(err)
	}

	payload, _ := json.Marshal(dto.PublishNoteChangedMessage{UserId: userId})
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Errorf("[Import] batch %s: failed to publish note-changed event: %v", batchId, err)
	}

	log.Infof("[Import] batch %s: committed %d notes", batchId, len(records))

	return &dto.ImportNotesResult{Imported: len(records)}, nil
}

func (s *transferService) Export(ctx context.Context, userId int64, noteId *int64) ([]*dto.ExportedNote, error) {
	var notes []*entity.Note

	if noteId != nil {
		note, err := s.noteRepository.GetById(ctx, *noteId)
		if err != nil {
			return nil, err
		}
		if note.UserId != userId {
			return nil, serverutils.ErrNotFound
		}
		notes = []*entity.Note{note}
	} else {
		var err error
		notes, err = s.noteRepository.GetByUserId(ctx, userId, nil)
		if err != nil {
			return nil, err
		}
	}

	res := make([]*dto.ExportedNote, 0, len(notes))
	for _, n := range notes {
		res = append(res, &dto.ExportedNote{
			Id:         n.Id,
			Title:      n.Title,
			Content:    n.Content,
			Tags:       decodeTags(n.Tags),
			UserId:     n.UserId,
			CategoryId: n.CategoryId,
			CreatedAt:  n.CreatedAt,
		})
	}

	return res, nil
}

// buildImportedNote validates one record and reports every bad field at once,
// comma-joined, with the record's 1-based position.
func buildImportedNote(position int, rec *dto.ImportNoteRecord) (*entity.Note, error) {
	problems := make([]string, 0)

	if strings.TrimSpace(rec.Title) == "" {
		problems = append(problems, "title is required")
	}

	content := normalizeContent(rec.Content)
	if content == "" {
		problems = append(problems, "content is required")
	}

	var categoryId int64
	if len(rec.CategoryId) == 0 || string(rec.CategoryId) == "null" {
		problems = append(problems, "category_id is required")
	} else {
		var num float64
		if err := json.Unmarshal(rec.CategoryId, &num); err != nil {
			problems = append(problems, "category_id must be a number")
		} else {
			categoryId = int64(num)
		}
	}

	var tags []string
	if len(rec.Tags) > 0 && string(rec.Tags) != "null" {
		if err := json.Unmarshal(rec.Tags, &tags); err != nil {
			problems = append(problems, "tags must be an array of strings")
		}
	}

	if len(problems) > 0 {
		return nil, serverutils.NewImportFieldError(position, strings.Join(problems, ", "))
	}

	return &entity.Note{
		Title:      rec.Title,
		Content:    content,
		Tags:       encodeTags(tags),
		CategoryId: categoryId,
	}, nil
}
