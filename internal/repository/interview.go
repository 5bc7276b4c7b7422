package repository

import (
	"context"
	"fmt"

	"github.com/NeerajSh-16/ai-mock-interviews/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InterviewRepository struct {
	db *pgxpool.Pool
}

// Upsert writes an interview record keyed by its pre-assigned id. The write
// uses merge semantics so redelivery of the same logical request with the
// same id overwrites fields instead of duplicating the record.
func (r *InterviewRepository) Upsert(ctx context.Context, iv *model.Interview) error {
	const q = `
INSERT INTO interviews (
	interview_id, role, type, level, techstack, questions,
	user_id, finalized, cover_image, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (interview_id) DO UPDATE SET
	role = EXCLUDED.role,
	type = EXCLUDED.type,
	level = EXCLUDED.level,
	techstack = EXCLUDED.techstack,
	questions = EXCLUDED.questions,
	user_id = EXCLUDED.user_id,
	finalized = EXCLUDED.finalized,
	cover_image = EXCLUDED.cover_image,
	created_at = EXCLUDED.created_at
`
	_, err := r.db.Exec(ctx, q,
		iv.InterviewID, iv.Role, iv.Type, iv.Level, iv.Techstack, iv.Questions,
		iv.UserID, iv.Finalized, iv.CoverImage, iv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert interview: %w", err)
	}
	return nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, interviewID string) (*model.Interview, error) {
	const q = `
SELECT
	interview_id, role, type, level, techstack, questions,
	user_id, finalized, cover_image, created_at
FROM interviews WHERE interview_id = $1
`
	var iv model.Interview
	row := r.db.QueryRow(ctx, q, interviewID)
	err := row.Scan(
		&iv.InterviewID, &iv.Role, &iv.Type, &iv.Level, &iv.Techstack, &iv.Questions,
		&iv.UserID, &iv.Finalized, &iv.CoverImage, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Interview, int, error) {
	var total int
	const countQ = `SELECT COUNT(1) FROM interviews WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, countQ, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count interviews: %w", err)
	}

	const q = `
SELECT
	interview_id, role, type, level, techstack, questions,
	user_id, finalized, cover_image, created_at
FROM interviews WHERE user_id = $1
ORDER BY created_at DESC LIMIT $2 OFFSET $3
`
	rows, err := r.db.Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0, limit)
	for rows.Next() {
		var iv model.Interview
		if err := rows.Scan(
			&iv.InterviewID, &iv.Role, &iv.Type, &iv.Level, &iv.Techstack, &iv.Questions,
			&iv.UserID, &iv.Finalized, &iv.CoverImage, &iv.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

// Latest returns recent finalized interviews from users other than the caller.
func (r *InterviewRepository) Latest(ctx context.Context, excludeUserID string, limit int) ([]model.Interview, error) {
	const q = `
SELECT
	interview_id, role, type, level, techstack, questions,
	user_id, finalized, cover_image, created_at
FROM interviews WHERE finalized AND user_id <> $1
ORDER BY created_at DESC LIMIT $2
`
	rows, err := r.db.Query(ctx, q, excludeUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("query latest interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0, limit)
	for rows.Next() {
		var iv model.Interview
		if err := rows.Scan(
			&iv.InterviewID, &iv.Role, &iv.Type, &iv.Level, &iv.Techstack, &iv.Questions,
			&iv.UserID, &iv.Finalized, &iv.CoverImage, &iv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
