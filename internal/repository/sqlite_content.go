package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
)

const contentColumns = `id, content_type, name, category, difficulty, duration_min, equipment,
	format, image_url, description, is_premium, is_visible, created_at`

// SQLiteContentRepo implements ContentRepo using a SQLite database.
type SQLiteContentRepo struct {
	db db.DBTX
}

func NewSQLiteContentRepo(conn db.DBTX) *SQLiteContentRepo {
	return &SQLiteContentRepo{db: conn}
}

func (r *SQLiteContentRepo) Create(ctx context.Context, c *domain.ContentItem) error {
	query := `INSERT INTO content_items (` + contentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		string(c.ContentType),
		c.Name,
		c.Category,
		string(c.Difficulty),
		c.DurationMin,
		string(c.Equipment),
		c.Format,
		c.ImageURL,
		c.Description,
		boolToInt(c.IsPremium),
		boolToInt(c.IsVisible),
		formatTime(c.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting content item: %w", err)
	}
	return nil
}

func (r *SQLiteContentRepo) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanContent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("content item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning content item: %w", err)
	}
	return item, nil
}

func (r *SQLiteContentRepo) ListVisible(ctx context.Context, contentType domain.ContentType) ([]domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items
		WHERE content_type = ? AND is_visible = 1
		ORDER BY created_at DESC, rowid`
	rows, err := r.db.QueryContext(ctx, query, string(contentType))
	if err != nil {
		return nil, fmt.Errorf("listing visible content: %w", err)
	}
	defer rows.Close()
	return scanContents(rows)
}

func (r *SQLiteContentRepo) List(ctx context.Context, includeHidden bool) ([]domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items`
	if !includeHidden {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY content_type, created_at DESC, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing content: %w", err)
	}
	defer rows.Close()
	return scanContents(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(s rowScanner) (*domain.ContentItem, error) {
	var c domain.ContentItem
	var contentType, difficulty, equipment, createdAt string
	var premium, visible int

	err := s.Scan(
		&c.ID, &contentType, &c.Name, &c.Category, &difficulty, &c.DurationMin, &equipment,
		&c.Format, &c.ImageURL, &c.Description, &premium, &visible, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	c.ContentType = domain.ContentType(contentType)
	c.Difficulty = domain.Difficulty(difficulty)
	c.Equipment = domain.Equipment(equipment)
	c.IsPremium = intToBool(premium)
	c.IsVisible = intToBool(visible)
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}

func scanContents(rows *sql.Rows) ([]domain.ContentItem, error) {
	var items []domain.ContentItem
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating content items: %w", err)
	}
	return items, nil
}
