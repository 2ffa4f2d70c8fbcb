package service

import (
	"context"
	"errors"
	"strings"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"
	"notehub-be/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx records the transaction outcome; the repositories under test keep
// their state in memory so the tx itself never touches data.
type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	begins   int
	beginErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (db *fakeDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (db *fakeDB) BeginTx(ctx context.Context) (database.DatabaseTx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	db.begins++
	return db.tx, nil
}

type fakeNoteRepository struct {
	notes     []*entity.Note
	nextId    int64
	createErr map[int]error // 1-based insert ordinal -> error
	creates   int
}

func newFakeNoteRepository() *fakeNoteRepository {
	return &fakeNoteRepository{nextId: 1}
}

func (r *fakeNoteRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) repository.INoteRepository {
	return r
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	r.creates++
	if err, ok := r.createErr[r.creates]; ok {
		return err
	}
	note.Id = r.nextId
	r.nextId++
	copied := *note
	r.notes = append(r.notes, &copied)
	return nil
}

func (r *fakeNoteRepository) GetById(ctx context.Context, id int64) (*entity.Note, error) {
	for _, n := range r.notes {
		if n.Id == id {
			copied := *n
			return &copied, nil
		}
	}
	return nil, serverutils.ErrNotFound
}

func (r *fakeNoteRepository) GetByUserId(ctx context.Context, userId int64, filter *dto.NoteFilter) ([]*entity.Note, error) {
	res := make([]*entity.Note, 0)
	for _, n := range r.notes {
		if n.UserId != userId {
			continue
		}
		if filter != nil && filter.Keyword != "" &&
			!strings.Contains(n.Title, filter.Keyword) && !strings.Contains(n.Content, filter.Keyword) {
			continue
		}
		if filter != nil && filter.CategoryId != 0 && n.CategoryId != filter.CategoryId {
			continue
		}
		copied := *n
		res = append(res, &copied)
	}
	return res, nil
}

func (r *fakeNoteRepository) GetByUserAndCategory(ctx context.Context, userId int64, categoryId int64) ([]*entity.Note, error) {
	res := make([]*entity.Note, 0)
	for _, n := range r.notes {
		if n.UserId == userId && n.CategoryId == categoryId {
			copied := *n
			res = append(res, &copied)
		}
	}
	return res, nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	for i, n := range r.notes {
		if n.Id == note.Id {
			copied := *note
			r.notes[i] = &copied
			return nil
		}
	}
	return serverutils.ErrNotFound
}

func (r *fakeNoteRepository) DeleteById(ctx context.Context, id int64) error {
	for i, n := range r.notes {
		if n.Id == id {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeNoteRepository) CountByCategory(ctx context.Context, userId int64) ([]*dto.CategoryNotesStat, error) {
	return []*dto.CategoryNotesStat{}, nil
}

func (r *fakeNoteRepository) CountRecent(ctx context.Context, userId int64) ([]*dto.RecentNotesStat, error) {
	return []*dto.RecentNotesStat{}, nil
}

type fakeCategoryRepository struct {
	categories map[int64]*entity.Category
}

func newFakeCategoryRepository(categories ...*entity.Category) *fakeCategoryRepository {
	m := make(map[int64]*entity.Category)
	for _, c := range categories {
		m[c.Id] = c
	}
	return &fakeCategoryRepository{categories: m}
}

func (r *fakeCategoryRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) repository.ICategoryRepository {
	return r
}

func (r *fakeCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	category.Id = int64(len(r.categories) + 1)
	r.categories[category.Id] = category
	return nil
}

func (r *fakeCategoryRepository) GetAll(ctx context.Context) ([]*entity.Category, error) {
	res := make([]*entity.Category, 0, len(r.categories))
	for i := int64(1); i <= int64(len(r.categories)); i++ {
		if c, ok := r.categories[i]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}

func (r *fakeCategoryRepository) GetById(ctx context.Context, id int64) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, serverutils.ErrNotFound
}

func (r *fakeCategoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, serverutils.ErrNotFound
}

func (r *fakeCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	r.categories[category.Id] = category
	return nil
}

func (r *fakeCategoryRepository) DeleteById(ctx context.Context, id int64) error {
	delete(r.categories, id)
	return nil
}

type fakeTagStatRepository struct {
	stats   map[int64][]*entity.TagStat
	deletes int
}

func newFakeTagStatRepository() *fakeTagStatRepository {
	return &fakeTagStatRepository{stats: make(map[int64][]*entity.TagStat)}
}

func (r *fakeTagStatRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) repository.ITagStatRepository {
	return r
}

func (r *fakeTagStatRepository) Create(ctx context.Context, stat *entity.TagStat) error {
	r.stats[stat.UserId] = append(r.stats[stat.UserId], stat)
	return nil
}

func (r *fakeTagStatRepository) DeleteByUserId(ctx context.Context, userId int64) error {
	r.deletes++
	r.stats[userId] = nil
	return nil
}

func (r *fakeTagStatRepository) GetByUserId(ctx context.Context, userId int64) ([]*entity.TagStat, error) {
	return r.stats[userId], nil
}

type fakeUserRepository struct {
	users  map[int64]*entity.User
	nextId int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]*entity.User), nextId: 1}
}

func (r *fakeUserRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) repository.IUserRepository {
	return r
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	user.Id = r.nextId
	r.nextId++
	copied := *user
	r.users[user.Id] = &copied
	return nil
}

func (r *fakeUserRepository) GetById(ctx context.Context, id int64) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, serverutils.ErrNotFound
}

func (r *fakeUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, serverutils.ErrNotFound
}

func (r *fakeUserRepository) UpdateSettings(ctx context.Context, req *dto.UpdateUserSettingsRequest) error {
	u, ok := r.users[req.Id]
	if !ok {
		return serverutils.ErrNotFound
	}
	if req.Theme != nil {
		u.ThemeId = *req.Theme
	}
	if req.NavbarPosition != nil {
		u.NavbarPosition = *req.NavbarPosition
	}
	if req.NavbarVisible != nil {
		u.NavbarVisible = *req.NavbarVisible
	}
	return nil
}

func (r *fakeUserRepository) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) error {
	u, ok := r.users[req.Id]
	if !ok {
		return serverutils.ErrNotFound
	}
	if req.Nickname != nil {
		u.Nickname = req.Nickname
	}
	if req.Password != nil {
		u.Password = *req.Password
	}
	if req.AvatarUrl != nil {
		u.AvatarUrl = req.AvatarUrl
	}
	return nil
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}
