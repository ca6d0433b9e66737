package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

var shortcutColumns = []string{"id", "name", "keys", "category", "difficulty"}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository implementation
func NewCatalogRepository(db *sql.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Upsert(ctx context.Context, shortcuts []models.Shortcut) error {
	log := logger.FromContext(ctx).WithPrefix("catalog_repo")
	log.Debug("upserting %d shortcuts", len(shortcuts))

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
INSERT INTO shortcuts (id, name, keys, category, difficulty)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    keys = excluded.keys,
    category = excluded.category,
    difficulty = excluded.difficulty
`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range shortcuts {
			if _, err := stmt.ExecContext(ctx, s.ID, s.Name, s.Keys, string(s.Category), string(s.Difficulty)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to upsert shortcuts: %v", err)
	}
	return err
}

func (r *catalogRepository) Lookup(ctx context.Context, ids []string) (map[string]models.Shortcut, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog_repo")

	out := make(map[string]models.Shortcut, len(ids))
	for _, chunk := range chunks(ids) {
		shortcuts, err := r.query(ctx, sqlBuilder.Select(shortcutColumns...).
			From("shortcuts").
			Where(squirrel.Eq{"id": chunk}))
		if err != nil {
			log.Error("failed to look up shortcuts: %v", err)
			return nil, err
		}
		for _, s := range shortcuts {
			out[s.ID] = s
		}
	}
	log.Debug("looked up %d of %d shortcuts", len(out), len(ids))
	return out, nil
}

func (r *catalogRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.Shortcut, error) {
	log := logger.FromContext(ctx).WithPrefix("catalog_repo")
	log.Debug("listing shortcuts: categories=%v, difficulties=%v", filter.Categories, filter.Difficulties)

	query := sqlBuilder.Select(shortcutColumns...).From("shortcuts")
	if len(filter.Categories) > 0 {
		query = query.Where(squirrel.Eq{"category": toStrings(filter.Categories)})
	}
	if len(filter.Difficulties) > 0 {
		query = query.Where(squirrel.Eq{"difficulty": toStrings(filter.Difficulties)})
	}

	shortcuts, err := r.query(ctx, query.OrderBy("id"))
	if err != nil {
		log.Error("failed to list shortcuts: %v", err)
		return nil, err
	}
	return shortcuts, nil
}

func (r *catalogRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Shortcut, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Shortcut
	for rows.Next() {
		var s models.Shortcut
		var category, difficulty string
		if err := rows.Scan(&s.ID, &s.Name, &s.Keys, &category, &difficulty); err != nil {
			return nil, err
		}
		s.Category = models.Category(category)
		s.Difficulty = models.Difficulty(difficulty)
		out = append(out, s)
	}
	return out, rows.Err()
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
