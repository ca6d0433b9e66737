package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/keydrill/internal/logger"
	"github.com/vytor/keydrill/internal/models"
	"github.com/vytor/keydrill/internal/repository"
)

// schemaVersion tags every persisted review item row.
const schemaVersion = 1

var itemColumns = []string{"item_id", "strength", "interval_days", "next_due_at"}

type reviewItemRepository struct {
	db *sql.DB
}

// NewReviewItemRepository creates a new ReviewItemRepository implementation
func NewReviewItemRepository(db *sql.DB) repository.ReviewItemRepository {
	return &reviewItemRepository{db: db}
}

func (r *reviewItemRepository) Get(ctx context.Context, itemID string) (*models.ReviewItem, error) {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")
	log.Debug("getting review item: item_id=%s", itemID)

	item, err := getItem(ctx, r.db, itemID)
	if err != nil {
		log.Error("failed to get review item: %v", err)
		return nil, err
	}
	if item == nil {
		log.Debug("review item not found: item_id=%s", itemID)
	}
	return item, nil
}

func (r *reviewItemRepository) Upsert(ctx context.Context, item models.ReviewItem) error {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")
	log.Debug("upserting review item: item_id=%s, interval=%d, strength=%.2f", item.ItemID, item.Interval, item.Strength)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		return putItem(ctx, tx, item)
	})
	if err != nil && !errors.Is(err, repository.ErrHistoryRewrite) {
		log.Error("failed to upsert review item: %v", err)
	}
	return err
}

func (r *reviewItemRepository) All(ctx context.Context) ([]models.ReviewItem, error) {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")

	items, err := r.selectItems(ctx, sqlBuilder.Select(itemColumns...).From("review_items").OrderBy("item_id"))
	if err != nil {
		log.Error("failed to list review items: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT item_id, rating, reviewed_at FROM review_history ORDER BY item_id, seq`)
	if err != nil {
		log.Error("failed to query review history: %v", err)
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]int, len(items))
	for i := range items {
		items[i].History = []models.ReviewEvent{}
		index[items[i].ItemID] = i
	}
	for rows.Next() {
		var itemID string
		ev, err := scanEvent(rows, &itemID)
		if err != nil {
			log.Error("failed to scan review history row: %v", err)
			return nil, err
		}
		if i, ok := index[itemID]; ok {
			items[i].History = append(items[i].History, ev)
		}
	}
	log.Debug("listed %d review items", len(items))
	return items, rows.Err()
}

func (r *reviewItemRepository) BulkInitialize(ctx context.Context, itemIDs []string, now time.Time) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")
	log.Debug("bulk initializing %d review items", len(itemIDs))

	created := 0
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		for _, chunk := range chunks(itemIDs) {
			insert := sqlBuilder.Insert("review_items").
				Columns("item_id", "schema_version", "strength", "interval_days", "next_due_at")
			for _, id := range chunk {
				insert = insert.Values(id, schemaVersion, models.InitialStrength, 0, toMillis(now))
			}
			query, args, err := insert.Suffix("ON CONFLICT(item_id) DO NOTHING").ToSql()
			if err != nil {
				return err
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			created += int(n)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to bulk initialize review items: %v", err)
		return 0, err
	}
	log.Debug("created %d new review items", created)
	return created, nil
}

func (r *reviewItemRepository) DueBefore(ctx context.Context, now time.Time) ([]models.ReviewItem, error) {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")

	query := sqlBuilder.Select(itemColumns...).
		From("review_items").
		Where(squirrel.LtOrEq{"next_due_at": toMillis(now)}).
		OrderBy("item_id")

	items, err := r.selectItems(ctx, query)
	if err != nil {
		log.Error("failed to query due review items: %v", err)
		return nil, err
	}
	log.Debug("found %d due review items", len(items))
	return items, nil
}

func (r *reviewItemRepository) Modify(ctx context.Context, itemID string, fn repository.ModifyFunc) (*models.ReviewItem, error) {
	log := logger.FromContext(ctx).WithPrefix("review_item_repo")

	var out *models.ReviewItem
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getItem(ctx, tx, itemID)
		if err != nil || current == nil {
			return err
		}
		next := fn(current.Clone())
		next.ItemID = itemID
		if err := putItem(ctx, tx, next); err != nil {
			return err
		}
		out = &next
		return nil
	})
	if err != nil {
		log.Error("failed to modify review item %s: %v", itemID, err)
		return nil, err
	}
	return out, nil
}

func (r *reviewItemRepository) selectItems(ctx context.Context, query squirrel.SelectBuilder) ([]models.ReviewItem, error) {
	stmt, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ReviewItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.ReviewItem, error) {
	var item models.ReviewItem
	var dueMs int64
	if err := row.Scan(&item.ItemID, &item.Strength, &item.Interval, &dueMs); err != nil {
		return models.ReviewItem{}, err
	}
	item.NextDueAt = fromMillis(dueMs)
	return item, nil
}

func scanEvent(row rowScanner, itemID *string) (models.ReviewEvent, error) {
	var rating string
	var reviewedMs int64
	if err := row.Scan(itemID, &rating, &reviewedMs); err != nil {
		return models.ReviewEvent{}, err
	}
	parsed, err := models.ParseRating(rating)
	if err != nil {
		return models.ReviewEvent{}, fmt.Errorf("review history of %s: %w", *itemID, err)
	}
	return models.ReviewEvent{ReviewedAt: fromMillis(reviewedMs), Rating: parsed}, nil
}

func getItem(ctx context.Context, q queryer, itemID string) (*models.ReviewItem, error) {
	item, err := scanItem(q.QueryRowContext(ctx, `
SELECT item_id, strength, interval_days, next_due_at
FROM review_items
WHERE item_id = ?
`, itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, `SELECT item_id, rating, reviewed_at FROM review_history WHERE item_id = ? ORDER BY seq`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	item.History = []models.ReviewEvent{}
	for rows.Next() {
		var id string
		ev, err := scanEvent(rows, &id)
		if err != nil {
			return nil, err
		}
		item.History = append(item.History, ev)
	}
	return &item, rows.Err()
}

// putItem writes the item row and appends history entries not yet stored.
func putItem(ctx context.Context, q queryer, item models.ReviewItem) error {
	var stored int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM review_history WHERE item_id = ?`, item.ItemID).Scan(&stored); err != nil {
		return err
	}
	if len(item.History) < stored {
		return fmt.Errorf("%w: %s has %d stored entries, got %d", repository.ErrHistoryRewrite, item.ItemID, stored, len(item.History))
	}

	_, err := q.ExecContext(ctx, `
INSERT INTO review_items (item_id, schema_version, strength, interval_days, next_due_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(item_id) DO UPDATE SET
    schema_version = excluded.schema_version,
    strength = excluded.strength,
    interval_days = excluded.interval_days,
    next_due_at = excluded.next_due_at,
    updated_at = CURRENT_TIMESTAMP
`, item.ItemID, schemaVersion, item.Strength, item.Interval, toMillis(item.NextDueAt))
	if err != nil {
		return err
	}

	for start := stored; start < len(item.History); start += chunkSize {
		end := start + chunkSize
		if end > len(item.History) {
			end = len(item.History)
		}
		insert := sqlBuilder.Insert("review_history").Columns("item_id", "seq", "rating", "reviewed_at")
		for seq := start; seq < end; seq++ {
			ev := item.History[seq]
			insert = insert.Values(item.ItemID, seq, ev.Rating.String(), toMillis(ev.ReviewedAt))
		}
		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}
