package repository

import (
	"context"
	"errors"

	"notehub-be/internal/entity"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/pkg/database"

	"github.com/jackc/pgx/v5"
)

type ICategoryRepository interface {
	UsingTx(ctx context.Context, tx database.DatabaseQueryer) ICategoryRepository
	Create(ctx context.Context, category *entity.Category) error
	GetAll(ctx context.Context) ([]*entity.Category, error)
	GetById(ctx context.Context, id int64) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	DeleteById(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db database.DatabaseQueryer
}

func NewCategoryRepository(db database.DatabaseQueryer) ICategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) UsingTx(ctx context.Context, tx database.DatabaseQueryer) ICategoryRepository {
	return &categoryRepository{db: tx}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		category.Name,
	)
	return row.Scan(&category.Id)
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.Id, &c.Name); err != nil {
			return nil, err
		}

		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *categoryRepository) GetById(ctx context.Context, id int64) (*entity.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)

	var c entity.Category
	err := row.Scan(&c.Id, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM categories WHERE name = $1`, name)

	var c entity.Category
	err := row.Scan(&c.Id, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serverutils.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`,
		category.Name,
		category.Id,
	)
	return err
}

func (r *categoryRepository) DeleteById(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
