package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/smartly/internal/db"
	"github.com/alexanderramin/smartly/internal/domain"
)

// SQLiteInteractionRepo stores suggestion interaction logs. Questions and
// responses are kept as JSON text columns.
type SQLiteInteractionRepo struct {
	db db.DBTX
}

func NewSQLiteInteractionRepo(conn db.DBTX) *SQLiteInteractionRepo {
	return &SQLiteInteractionRepo{db: conn}
}

func (r *SQLiteInteractionRepo) Create(ctx context.Context, l *domain.InteractionLog) error {
	questions := l.QuestionsAsked
	if questions == nil {
		questions = []string{}
	}
	responses := l.UserResponses
	if responses == nil {
		responses = map[string]string{}
	}
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encoding questions asked: %w", err)
	}
	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("encoding user responses: %w", err)
	}

	query := `INSERT INTO suggestion_interactions
		(id, user_id, content_type, content_id, confidence_level, questions_asked, user_responses, action_taken, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		l.ID,
		nullableStringToValue(l.UserID),
		string(l.ContentType),
		l.ContentID,
		l.ConfidenceLevel,
		string(questionsJSON),
		string(responsesJSON),
		string(l.ActionTaken),
		formatTime(l.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting interaction log: %w", err)
	}
	return nil
}

// ListByUser returns the newest logs first. A non-positive limit means no limit.
func (r *SQLiteInteractionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.InteractionLog, error) {
	query := `SELECT id, user_id, content_type, content_id, confidence_level,
		questions_asked, user_responses, action_taken, created_at
		FROM suggestion_interactions
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing interaction logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.InteractionLog
	for rows.Next() {
		l, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interaction logs: %w", err)
	}
	return logs, nil
}

func scanInteraction(s rowScanner) (*domain.InteractionLog, error) {
	var l domain.InteractionLog
	var userID sql.NullString
	var contentType, questionsJSON, responsesJSON, action, createdAt string

	if err := s.Scan(&l.ID, &userID, &contentType, &l.ContentID, &l.ConfidenceLevel,
		&questionsJSON, &responsesJSON, &action, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning interaction log: %w", err)
	}

	if userID.Valid {
		id := userID.String
		l.UserID = &id
	}
	l.ContentType = domain.ContentType(contentType)
	l.ActionTaken = domain.InteractionAction(action)
	if err := json.Unmarshal([]byte(questionsJSON), &l.QuestionsAsked); err != nil {
		return nil, fmt.Errorf("decoding questions asked: %w", err)
	}
	if err := json.Unmarshal([]byte(responsesJSON), &l.UserResponses); err != nil {
		return nil, fmt.Errorf("decoding user responses: %w", err)
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing interaction created_at: %w", err)
	}
	l.CreatedAt = t
	return &l, nil
}
