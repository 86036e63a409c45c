package postgres

import (
	"context"
	"database/sql"

	"olms-backend/internal/domain"
	"olms-backend/internal/repository"
)

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Note, error) {
	query := `SELECT n.id, n.customer_id, n.user_id, n.content, n.created_at, COALESCE(u.name, ''), COALESCE(u.username, '')
	          FROM customer_notes n LEFT JOIN users u ON u.id = n.user_id
	          WHERE n.customer_id = $1 ORDER BY n.created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, customerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.CustomerID, &n.UserID, &n.Content, &n.CreatedAt, &n.Author.Name, &n.Author.Username); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
