package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"

	"github.com/gofiber/fiber/v2/log"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	List(ctx context.Context, userId int64, filter *dto.NoteFilter) ([]*dto.NoteResponse, error)
	ListByCategory(ctx context.Context, userId int64, categoryId int64) ([]*dto.NoteResponse, error)
	HomeFeed(ctx context.Context, userId int64) ([]*dto.HomeCategoryNotes, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, id int64) error
	CategoryStats(ctx context.Context, userId int64) ([]*dto.CategoryNotesStat, error)
	RecentStats(ctx context.Context, userId int64) ([]*dto.RecentNotesStat, error)
	TagStats(ctx context.Context, userId int64) ([]*dto.TagStatResponse, error)
}

type noteService struct {
	noteRepository     repository.INoteRepository
	categoryRepository repository.ICategoryRepository
	tagStatRepository  repository.ITagStatRepository
	publisherService   IPublisherService
}

func NewNoteService(
	noteRepository repository.INoteRepository,
	categoryRepository repository.ICategoryRepository,
	tagStatRepository repository.ITagStatRepository,
	publisherService IPublisherService,
) INoteService {
	return &noteService{
		noteRepository:     noteRepository,
		categoryRepository: categoryRepository,
		tagStatRepository:  tagStatRepository,
		publisherService:   publisherService,
	}
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {

	_, err := c.categoryRepository.GetById(ctx, req.CategoryId)
	if err != nil {
		return nil, err
	}

	note := entity.Note{
		Title:      req.Title,
		Content:    normalizeContent(req.Content),
		Tags:       encodeTags(req.Tags),
		UserId:     req.UserId,
		CategoryId: req.CategoryId,
		CreatedAt:  time.Now(),
	}

	err = c.noteRepository.Create(ctx, &note)
	if err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.PublishNoteChangedMessage{UserId: note.UserId})
	if err != nil {
		return nil, err
	}

	err = c.publisherService.Publish(ctx, msgJson)
	if err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{
		Id:         note.Id,
		UserId:     note.UserId,
		Title:      note.Title,
		Content:    note.Content,
		CategoryId: note.CategoryId,
		Tags:       decodeTags(note.Tags),
	}, nil
}

func (c *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {

	note, err := c.noteRepository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (c *noteService) List(ctx context.Context, userId int64, filter *dto.NoteFilter) ([]*dto.NoteResponse, error) {

	notes, err := c.noteRepository.GetByUserId(ctx, userId, filter)
	if err != nil {
		return nil, err
	}

	return toNoteResponses(notes), nil
}

func (c *noteService) ListByCategory(ctx context.Context, userId int64, categoryId int64) ([]*dto.NoteResponse, error) {

	notes, err := c.noteRepository.GetByUserAndCategory(ctx, userId, categoryId)
	if err != nil {
		return nil, err
	}

	return toNoteResponses(notes), nil
}

func (c *noteService) HomeFeed(ctx context.Context, userId int64) ([]*dto.HomeCategoryNotes, error) {

	categories, err := c.categoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.HomeCategoryNotes, 0, len(categories))
	for _, category := range categories {
		notes, err := c.noteRepository.GetByUserAndCategory(ctx, userId, category.Id)
		if err != nil {
			return nil, err
		}

		result = append(result, &dto.HomeCategoryNotes{
			Category: &dto.CategoryResponse{Id: category.Id, Name: category.Name},
			Notes:    toNoteResponses(notes),
		})
	}

	return result, nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {

	note, err := c.noteRepository.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	_, err = c.categoryRepository.GetById(ctx, req.CategoryId)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", req.CategoryId, serverutils.ErrBadRequest)
	}

	note.Title = req.Title
	note.Content = normalizeContent(req.Content)
	note.Tags = encodeTags(req.Tags)
	note.CategoryId = req.CategoryId

	err = c.noteRepository.Update(ctx, note)
	if err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.PublishNoteChangedMessage{UserId: note.UserId})
	if err != nil {
		return nil, err
	}

	err = c.publisherService.Publish(ctx, msgJson)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateNoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		CategoryId: note.CategoryId,
		Tags:       decodeTags(note.Tags),
	}, nil
}

func (c *noteService) Delete(ctx context.Context, id int64) error {

	note, err := c.noteRepository.GetById(ctx, id)
	if err != nil {
		return err
	}

	err = c.noteRepository.DeleteById(ctx, id)
	if err != nil {
		return err
	}

	msgJson, _ := json.Marshal(dto.PublishNoteChangedMessage{UserId: note.UserId})
	if err := c.publisherService.Publish(ctx, msgJson); err != nil {
		log.Errorf("[Note] failed to publish note-changed event after delete of %d: %v", id, err)
	}

	return nil
}

func (c *noteService) CategoryStats(ctx context.Context, userId int64) ([]*dto.CategoryNotesStat, error) {
	return c.noteRepository.CountByCategory(ctx, userId)
}

func (c *noteService) RecentStats(ctx context.Context, userId int64) ([]*dto.RecentNotesStat, error) {
	return c.noteRepository.CountRecent(ctx, userId)
}

func (c *noteService) TagStats(ctx context.Context, userId int64) ([]*dto.TagStatResponse, error) {

	stats, err := c.tagStatRepository.GetByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagStatResponse, 0, len(stats))
	for _, s := range stats {
		res = append(res, &dto.TagStatResponse{Name: s.Name, Count: s.Count})
	}

	return res, nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		Tags:       decodeTags(note.Tags),
		UserId:     note.UserId,
		CategoryId: note.CategoryId,
		CreatedAt:  note.CreatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	res := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, toNoteResponse(n))
	}
	return res
}
