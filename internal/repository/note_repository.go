package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notehub-be/internal/dto"
	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/pkg/database"

	"github.com/jackc/pgx/v5"
)

type INoteRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) INoteRepository
	Create(ctx context.Context, note *entity.Note) error
	GetById(ctx context.Context, id int64) (*entity.Note, error)
	GetByUserId(ctx context.Context, userId int64, filter *dto.NoteFilter) ([]*entity.Note, error)
	GetByUserAndCategory(ctx context.Context, userId int64, categoryId int64) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	DeleteById(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, userId int64) ([]*dto.CategoryNotesStat, error)
	CountRecent(ctx context.Context, userId int64) ([]*dto.RecentNotesStat, error)
}

type noteRepository struct {
	db database.DatabaseQueryer
}

func NewNoteRepository(db database.DatabaseQueryer) INoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) INoteRepository {
	return &noteRepository{db: tx}
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO notes (title, content, tags, user_id, category_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		note.Title,
		note.Content,
		note.Tags,
		note.UserId,
		note.CategoryId,
		note.CreatedAt,
	)
	return row.Scan(&note.Id)
}

func (r *noteRepository) GetById(ctx context.Context, id int64) (*entity.Note, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, title, content, tags, user_id, category_id, created_at
		 FROM notes
		 WHERE id = $1`,
		id,
	)

	var n entity.Note
	err := row.Scan(
		&n.Id,
		&n.Title,
		&n.Content,
		&n.Tags,
		&n.UserId,
		&n.CategoryId,
		&n.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// GetByUserId supports the list screen filters: keyword search over title and
// content, a category filter and created_at ordering.
func (r *noteRepository) GetByUserId(ctx context.Context, userId int64, filter *dto.NoteFilter) ([]*entity.Note, error) {
	query := `SELECT id, title, content, tags, user_id, category_id, created_at FROM notes WHERE user_id = $1`
	args := []any{userId}

	if filter != nil {
		if filter.Keyword != "" {
			term := "%" + filter.Keyword + "%"
			query += fmt.Sprintf(" AND (title ILIKE $%d OR content ILIKE $%d)", len(args)+1, len(args)+2)
			args = append(args, term, term)
		}

		if filter.CategoryId != 0 {
			query += fmt.Sprintf(" AND category_id = $%d", len(args)+1)
			args = append(args, filter.CategoryId)
		}

		if filter.SortOrder != "" {
			if strings.EqualFold(filter.SortOrder, "asc") {
				query += " ORDER BY created_at ASC"
			} else {
				query += " ORDER BY created_at DESC"
			}
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *noteRepository) GetByUserAndCategory(ctx context.Context, userId int64, categoryId int64) ([]*entity.Note, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, content, tags, user_id, category_id, created_at
		 FROM notes
		 WHERE user_id = $1 AND category_id = $2`,
		userId,
		categoryId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE notes SET title = $1, content = $2, tags = $3, category_id = $4 WHERE id = $5`,
		note.Title,
		note.Content,
		note.Tags,
		note.CategoryId,
		note.Id,
	)
	return err
}

func (r *noteRepository) DeleteById(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	return err
}

func (r *noteRepository) CountByCategory(ctx context.Context, userId int64) ([]*dto.CategoryNotesStat, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT c.id, c.name, COUNT(n.id) AS count
		 FROM categories c
		 LEFT JOIN notes n ON c.id = n.category_id AND n.user_id = $1
		 GROUP BY c.id, c.name
		 ORDER BY c.id`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*dto.CategoryNotesStat, 0)
	for rows.Next() {
		var s dto.CategoryNotesStat
		if err := rows.Scan(&s.Id, &s.Name, &s.Count); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *noteRepository) CountRecent(ctx context.Context, userId int64) ([]*dto.RecentNotesStat, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT DATE(created_at)::text AS date, COUNT(*) AS count
		 FROM notes
		 WHERE user_id = $1
		 AND created_at >= CURRENT_DATE - INTERVAL '6 days'
		 GROUP BY DATE(created_at)
		 ORDER BY date ASC`,
		userId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*dto.RecentNotesStat, 0)
	for rows.Next() {
		var s dto.RecentNotesStat
		if err := rows.Scan(&s.Date, &s.Count); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func scanNotes(rows pgx.Rows) ([]*entity.Note, error) {
	res := make([]*entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		err := rows.Scan(
			&n.Id,
			&n.Title,
			&n.Content,
			&n.Tags,
			&n.UserId,
			&n.CategoryId,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		res = append(res, &n)
	}

	return res, rows.Err()
}
