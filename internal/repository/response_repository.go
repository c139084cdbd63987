package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResponseRepository struct {
	base *base.Repository
}

func NewResponseRepository(pool *pgxpool.Pool) *ResponseRepository {
	return &ResponseRepository{base: base.NewRepository(pool)}
}

// Create добавляет ответ участника. Ответы только добавляются:
// ни изменения, ни удаления на этом уровне нет.
func (r *ResponseRepository) Create(ctx context.Context, response *model.MeetingResponse) error {
	query := `
		INSERT INTO meeting_responses (id, meeting_slug, name, email, slot_ids, device_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING submitted_at
	`

	err := r.base.QueryRow(
		ctx, query,
		response.ID,
		response.MeetingSlug,
		response.Name,
		response.Email,
		response.SlotIDs,
		response.DeviceID,
	).Scan(&response.SubmittedAt)

	if err != nil {
		return fmt.Errorf("create response: %w", err)
	}

	return nil
}

// ListByMeeting получает ответы встречи в порядке отправки.
// Этот порядок каноничен: и отображение, и агрегация опираются на него.
func (r *ResponseRepository) ListByMeeting(ctx context.Context, slug string) ([]*model.MeetingResponse, error) {
	query := `
		SELECT id, meeting_slug, name, email, slot_ids, device_id, submitted_at
		FROM meeting_responses
		WHERE meeting_slug = $1
		ORDER BY submitted_at, id
	`

	rows, err := r.base.Query(ctx, query, slug)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	defer rows.Close()

	return scanResponses(rows)
}

// scanResponses вычитывает все строки результата. Ошибка посреди
// итерации обязана всплыть: обрезанный список ответов как успешный
// результат хуже честной ошибки загрузки.
func scanResponses(rows pgx.Rows) ([]*model.MeetingResponse, error) {
	var responses []*model.MeetingResponse
	for rows.Next() {
		var response model.MeetingResponse
		err := rows.Scan(
			&response.ID,
			&response.MeetingSlug,
			&response.Name,
			&response.Email,
			&response.SlotIDs,
			&response.DeviceID,
			&response.SubmittedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		responses = append(responses, &response)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}

	return responses, nil
}

// CountByMeeting возвращает количество ответов встречи
func (r *ResponseRepository) CountByMeeting(ctx context.Context, slug string) (int, error) {
	query := `
		SELECT COUNT(*) FROM meeting_responses WHERE meeting_slug = $1
	`

	var count int
	if err := r.base.QueryRow(ctx, query, slug).Scan(&count); err != nil {
		return 0, fmt.Errorf("count responses: %w", err)
	}

	return count, nil
}
