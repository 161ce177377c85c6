package activity

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, e *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, description, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.UserID, e.Action, e.EntityType, e.EntityID, e.Description, e.IPAddress)
	return err
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, size int) (*Page, error) {
	return r.listPage(ctx, `user_id = $1`, userID, page, size)
}

func (r *postgresRepo) ListByAction(ctx context.Context, action string, page, size int) (*Page, error) {
	return r.listPage(ctx, `action = $1`, action, page, size)
}

func (r *postgresRepo) listPage(ctx context.Context, where string, arg interface{}, page, size int) (*Page, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activity_logs WHERE `+where, arg).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, action, entity_type, entity_id, description, ip_address, created_at
		FROM activity_logs
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		arg, size, page*size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*Entry{}
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID,
			&e.Description, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Page{
		Content:       entries,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
	}, nil
}
