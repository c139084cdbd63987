package repository

import (
	"context"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store объединяет репозитории в единое хранилище документов.
// Удовлетворяет интерфейсу session.Store, поэтому клиентская сессия
// может работать напрямую поверх БД.
type Store struct {
	meetings  *MeetingRepository
	responses *ResponseRepository
}

// NewStore создаёт хранилище поверх пула соединений
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		meetings:  NewMeetingRepository(pool),
		responses: NewResponseRepository(pool),
	}
}

func (s *Store) GetMeeting(ctx context.Context, slug string) (*model.Meeting, error) {
	return s.meetings.GetBySlug(ctx, slug)
}

func (s *Store) MeetingExists(ctx context.Context, slug string) (bool, error) {
	return s.meetings.Exists(ctx, slug)
}

func (s *Store) CreateMeeting(ctx context.Context, meeting *model.Meeting) error {
	return s.meetings.Create(ctx, meeting)
}

func (s *Store) AddResponse(ctx context.Context, slug string, response *model.MeetingResponse) error {
	response.MeetingSlug = slug
	return s.responses.Create(ctx, response)
}

func (s *Store) ListResponses(ctx context.Context, slug string) ([]*model.MeetingResponse, error) {
	return s.responses.ListByMeeting(ctx, slug)
}
