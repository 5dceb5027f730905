package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogspace/internal/domain/entity"
	"blogspace/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if r.pool == nil {
		return repository.ErrUnavailable
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, image_path, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, deleted, created_at, updated_at
	`, p.Title, p.Content, nullable(p.ImagePath), p.AuthorID)

	return row.Scan(&p.ID, &p.Deleted, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if r.pool == nil {
		return nil, repository.ErrUnavailable
	}
	p := &entity.Post{}
	var image *string
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, image_path, author_id, deleted, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Title, &p.Content, &image, &p.AuthorID, &p.Deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if image != nil {
		p.ImagePath = *image
	}
	return p, nil
}

func (r *PostRepository) ListVisible(ctx context.Context, authorID string, limit, offset int) ([]*entity.Post, error) {
	if r.pool == nil {
		return nil, repository.ErrUnavailable
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var (
		rows pgx.Rows
		err  error
	)
	if authorID != "" {
		rows, err = r.pool.Query(ctx, `
			SELECT id, title, content, image_path, author_id, deleted, created_at, updated_at
			FROM posts
			WHERE deleted = FALSE AND author_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`, authorID, limit, offset)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, title, content, image_path, author_id, deleted, created_at, updated_at
			FROM posts
			WHERE deleted = FALSE
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepository) ListAll(ctx context.Context, includeDeleted bool) ([]*entity.Post, error) {
	if r.pool == nil {
		return nil, repository.ErrUnavailable
	}
	q := `
		SELECT id, title, content, image_path, author_id, deleted, created_at, updated_at
		FROM posts
		WHERE deleted = FALSE
		ORDER BY created_at DESC
	`
	if includeDeleted {
		q = `
			SELECT id, title, content, image_path, author_id, deleted, created_at, updated_at
			FROM posts
			ORDER BY created_at DESC
		`
	}
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	if r.pool == nil {
		return repository.ErrUnavailable
	}
	p.UpdatedAt = time.Now()
	tag, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, image_path = $3, deleted = $4, updated_at = $5
		WHERE id = $6
	`, p.Title, p.Content, nullable(p.ImagePath), p.Deleted, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPosts(rows pgx.Rows) ([]*entity.Post, error) {
	var posts []*entity.Post
	for rows.Next() {
		p := &entity.Post{}
		var image *string
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &image, &p.AuthorID, &p.Deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if image != nil {
			p.ImagePath = *image
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repository.PostRepository = (*PostRepository)(nil)
