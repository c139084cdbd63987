package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/repository"
	"github.com/Freeeeeet/meetpoll/internal/slug"
	"go.uber.org/zap"
)

// ErrMeetingNotFound встреча с указанным slug отсутствует в хранилище
var ErrMeetingNotFound = fmt.Errorf("meeting not found")

// Notifier получает событие о новом ответе участника.
// Ошибки уведомлений не влияют на результат записи.
type Notifier interface {
	NotifyNewResponse(ctx context.Context, meeting *model.Meeting, response *model.MeetingResponse, totalResponses int)
}

type MeetingService struct {
	meetingRepo  *repository.MeetingRepository
	responseRepo *repository.ResponseRepository
	notifier     Notifier
	logger       *zap.Logger
}

func NewMeetingService(
	meetingRepo *repository.MeetingRepository,
	responseRepo *repository.ResponseRepository,
	notifier Notifier,
	logger *zap.Logger,
) *MeetingService {
	return &MeetingService{
		meetingRepo:  meetingRepo,
		responseRepo: responseRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateMeeting валидирует черновик встречи, подбирает уникальный slug
// и сохраняет встречу. Slug в черновике игнорируется.
func (s *MeetingService) CreateMeeting(ctx context.Context, meeting *model.Meeting) (*model.Meeting, error) {
	meeting.Dates = model.NormalizeDates(meeting.Dates)

	// Валидация до любого обращения к хранилищу
	if err := meeting.Validate(); err != nil {
		return nil, err
	}

	// Подбираем свободный slug (до 7 попыток, затем запасной вариант)
	newSlug, err := slug.CreateUniqueMeetingSlug(ctx, s.meetingRepo.Exists)
	if err != nil {
		return nil, fmt.Errorf("create meeting slug: %w", err)
	}
	meeting.Slug = newSlug

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("create meeting: %w", err)
	}

	s.logger.Info("Meeting created",
		zap.String("slug", meeting.Slug),
		zap.String("title", meeting.Title),
		zap.Int("dates", len(meeting.Dates)),
		zap.Int("duration_minutes", meeting.DurationMinutes),
	)

	return meeting, nil
}

// GetMeeting получает встречу вместе с ответами участников.
// Отсутствие встречи возвращается как ErrMeetingNotFound и отличается
// от ошибки чтения хранилища.
func (s *MeetingService) GetMeeting(ctx context.Context, meetingSlug string) (*model.Meeting, []*model.MeetingResponse, error) {
	meeting, err := s.meetingRepo.GetBySlug(ctx, meetingSlug)
	if err != nil {
		return nil, nil, fmt.Errorf("get meeting: %w", err)
	}
	if meeting == nil {
		return nil, nil, ErrMeetingNotFound
	}

	responses, err := s.responseRepo.ListByMeeting(ctx, meetingSlug)
	if err != nil {
		return nil, nil, fmt.Errorf("list responses: %w", err)
	}

	return meeting, responses, nil
}

// SubmitResponse добавляет ответ участника к встрече.
// Ответ нормализуется (имя без пробелов по краям, email в нижнем
// регистре, слоты отсортированы), получает свежий идентификатор
// и добавляется без проверки конфликтов.
func (s *MeetingService) SubmitResponse(ctx context.Context, meetingSlug string, response *model.MeetingResponse) (*model.MeetingResponse, error) {
	response.Normalize()

	if err := response.Validate(); err != nil {
		return nil, err
	}

	meeting, err := s.meetingRepo.GetBySlug(ctx, meetingSlug)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	response.ID = slug.NewResponseID()
	response.MeetingSlug = meetingSlug

	if err := s.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("add response: %w", err)
	}

	total, err := s.responseRepo.CountByMeeting(ctx, meetingSlug)
	if err != nil {
		// Запись уже прошла, количество нужно только для уведомления
		s.logger.Warn("Count responses failed", zap.String("slug", meetingSlug), zap.Error(err))
		total = 0
	}

	s.logger.Info("Response submitted",
		zap.String("slug", meetingSlug),
		zap.String("response_id", response.ID),
		zap.String("name", response.Name),
		zap.Int("slots", len(response.SlotIDs)),
		zap.Int("total_responses", total),
	)

	if s.notifier != nil {
		s.notifier.NotifyNewResponse(ctx, meeting, response, total)
	}

	return response, nil
}
