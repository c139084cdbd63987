package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MeetingRepository struct {
	base *base.Repository
}

func NewMeetingRepository(pool *pgxpool.Pool) *MeetingRepository {
	return &MeetingRepository{base: base.NewRepository(pool)}
}

// Create сохраняет новую встречу. Уникальность slug дополнительно
// гарантирована constraint'ом в БД: гонка двух создателей с одинаковым
// slug завершится ошибкой записи, а не тихой перезаписью.
func (r *MeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	query := `
		INSERT INTO meetings (slug, title, description, time_zone, window_start, window_end, duration_minutes, dates, owner_device_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := r.base.QueryRow(
		ctx, query,
		meeting.Slug,
		meeting.Title,
		meeting.Description,
		meeting.TimeZone,
		meeting.WindowStart,
		meeting.WindowEnd,
		meeting.DurationMinutes,
		meeting.Dates,
		meeting.OwnerDeviceID,
	).Scan(&meeting.CreatedAt)

	if err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}

	return nil
}

// GetBySlug получает встречу по slug; (nil, nil) если встречи нет
func (r *MeetingRepository) GetBySlug(ctx context.Context, slug string) (*model.Meeting, error) {
	query := `
		SELECT slug, title, description, time_zone, window_start, window_end, duration_minutes, dates, owner_device_id, created_at
		FROM meetings
		WHERE slug = $1
	`

	var meeting model.Meeting
	err := r.base.QueryRow(ctx, query, slug).Scan(
		&meeting.Slug,
		&meeting.Title,
		&meeting.Description,
		&meeting.TimeZone,
		&meeting.WindowStart,
		&meeting.WindowEnd,
		&meeting.DurationMinutes,
		&meeting.Dates,
		&meeting.OwnerDeviceID,
		&meeting.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meeting by slug: %w", err)
	}

	return &meeting, nil
}

// Exists проверяет существование встречи с указанным slug
func (r *MeetingRepository) Exists(ctx context.Context, slug string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM meetings WHERE slug = $1
		)
	`

	exists, err := r.base.Exists(ctx, query, slug)
	if err != nil {
		return false, fmt.Errorf("check meeting exists: %w", err)
	}

	return exists, nil
}
