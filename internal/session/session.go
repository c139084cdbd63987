package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/meetpoll/internal/identity"
	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/route"
	"github.com/Freeeeeet/meetpoll/internal/schedule"
	"github.com/Freeeeeet/meetpoll/internal/slug"
	"go.uber.org/zap"
)

// Store внешнее хранилище документов. Любой durable keyed-document
// backend подходит; в проде это репозитории поверх Postgres.
type Store interface {
	GetMeeting(ctx context.Context, slug string) (*model.Meeting, error)
	ListResponses(ctx context.Context, slug string) ([]*model.MeetingResponse, error)
	MeetingExists(ctx context.Context, slug string) (bool, error)
	CreateMeeting(ctx context.Context, meeting *model.Meeting) error
	AddResponse(ctx context.Context, slug string, response *model.MeetingResponse) error
}

// History коллаборатор истории навигации: текущий путь, переход на
// новый путь и реакция на back/forward снаружи (HandleHistoryChange)
type History interface {
	Path() string
	Push(path string)
}

// ViewStatus статус экрана. Загрузка, ошибка загрузки и "не найдено"
// это три разных состояния: "не найдено" не ошибка.
type ViewStatus string

const (
	StatusReady      ViewStatus = "ready"
	StatusLoading    ViewStatus = "loading"
	StatusLoaded     ViewStatus = "loaded"
	StatusLoadFailed ViewStatus = "load_failed"
	StatusNotFound   ViewStatus = "not_found"
)

// State снимок состояния сессии: текущий маршрут, статус экрана
// и загруженные данные встречи
type State struct {
	Route     route.Route
	Status    ViewStatus
	Meeting   *model.Meeting
	Responses []*model.MeetingResponse
	Slots     []model.SlotDefinition
}

// Session клиентская сессия: связывает маршрут, хранилище и
// идентичность устройства. Каждая асинхронная загрузка несёт
// номер поколения; если маршрут сменился до её завершения,
// устаревший результат отбрасывается по прибытии.
type Session struct {
	store    Store
	history  History
	identity *identity.Provider
	logger   *zap.Logger

	mu    sync.Mutex
	seq   uint64
	state State
}

func New(store Store, history History, identityProvider *identity.Provider, logger *zap.Logger) *Session {
	return &Session{
		store:    store,
		history:  history,
		identity: identityProvider,
		logger:   logger,
		state:    State{Route: route.Create(), Status: StatusReady},
	}
}

// State возвращает снимок текущего состояния
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Aggregation пересчитывает агрегированную статистику из текущего
// списка ответов. Никогда не кешируется.
func (s *Session) Aggregation() *schedule.Aggregation {
	state := s.State()
	return schedule.Aggregate(state.Slots, state.Responses)
}

// Start разбирает текущий путь истории и загружает начальный экран
func (s *Session) Start(ctx context.Context) {
	s.applyRoute(ctx, route.Parse(s.history.Path()))
}

// Navigate переходит на маршрут явным действием пользователя
func (s *Session) Navigate(ctx context.Context, r route.Route) {
	s.history.Push(route.Serialize(r))
	s.applyRoute(ctx, r)
}

// HandleHistoryChange реагирует на back/forward браузера:
// заново разбирает текущий путь
func (s *Session) HandleHistoryChange(ctx context.Context) {
	s.applyRoute(ctx, route.Parse(s.history.Path()))
}

// applyRoute переключает сессию на маршрут. Для respond/host
// запускает загрузку встречи с флагом отмены.
func (s *Session) applyRoute(ctx context.Context, r route.Route) {
	s.mu.Lock()
	s.seq++
	token := s.seq

	if r.Kind == route.KindCreate {
		s.state = State{Route: r, Status: StatusReady}
		s.mu.Unlock()
		return
	}

	s.state = State{Route: r, Status: StatusLoading}
	s.mu.Unlock()

	s.loadMeeting(ctx, token, r)
}

// loadMeeting загружает встречу и ответы для маршрута. Токен поколения
// проверяется после каждого обращения к хранилищу: устаревший
// результат не применяется.
func (s *Session) loadMeeting(ctx context.Context, token uint64, r route.Route) {
	meeting, err := s.store.GetMeeting(ctx, r.Slug)
	if err != nil {
		s.apply(token, func(state *State) {
			state.Status = StatusLoadFailed
		})
		return
	}
	if s.stale(token) {
		return
	}
	if meeting == nil {
		s.apply(token, func(state *State) {
			state.Status = StatusNotFound
		})
		return
	}

	responses, err := s.store.ListResponses(ctx, r.Slug)
	if err != nil {
		s.apply(token, func(state *State) {
			state.Status = StatusLoadFailed
		})
		return
	}

	applied := s.apply(token, func(state *State) {
		state.Status = StatusLoaded
		state.Meeting = meeting
		state.Responses = responses
		state.Slots = schedule.BuildSlots(meeting)
	})
	if !applied {
		s.logger.Debug("Stale meeting load discarded", zap.String("slug", r.Slug))
	}
}

// CreateMeeting создаёт встречу и переходит на её экран участника.
// При любой ошибке состояние сессии остаётся нетронутым, действие
// можно повторить вручную.
func (s *Session) CreateMeeting(ctx context.Context, draft *model.Meeting) (string, error) {
	draft.Dates = model.NormalizeDates(draft.Dates)
	if err := draft.Validate(); err != nil {
		return "", err
	}

	deviceID, err := s.identity.EnsureDeviceID()
	if err != nil {
		return "", fmt.Errorf("ensure device id: %w", err)
	}
	draft.OwnerDeviceID = deviceID

	newSlug, err := slug.CreateUniqueMeetingSlug(ctx, s.store.MeetingExists)
	if err != nil {
		return "", fmt.Errorf("create meeting slug: %w", err)
	}
	draft.Slug = newSlug
	draft.CreatedAt = time.Now()

	if err := s.store.CreateMeeting(ctx, draft); err != nil {
		return "", fmt.Errorf("create meeting: %w", err)
	}

	// Запись подтверждена: применяем результат локально без повторной
	// загрузки и переходим на экран участника
	r := route.Respond(newSlug)
	s.history.Push(route.Serialize(r))

	s.mu.Lock()
	s.seq++
	s.state = State{
		Route:   r,
		Status:  StatusLoaded,
		Meeting: draft,
		Slots:   schedule.BuildSlots(draft),
	}
	s.mu.Unlock()

	return newSlug, nil
}

// SubmitResponse отправляет ответ участника для загруженной встречи.
// Локальное состояние меняется только после успешной записи
// (optimistic-after-confirmation); при ошибке оно остаётся прежним.
func (s *Session) SubmitResponse(ctx context.Context, name, email string, slotIDs []string) (*model.MeetingResponse, error) {
	s.mu.Lock()
	token := s.seq
	state := s.state
	s.mu.Unlock()

	if state.Status != StatusLoaded || state.Meeting == nil {
		return nil, fmt.Errorf("no meeting loaded")
	}

	deviceID, err := s.identity.EnsureDeviceID()
	if err != nil {
		return nil, fmt.Errorf("ensure device id: %w", err)
	}

	response := &model.MeetingResponse{
		ID:          slug.NewResponseID(),
		MeetingSlug: state.Meeting.Slug,
		Name:        name,
		Email:       email,
		SlotIDs:     slotIDs,
		SubmittedAt: time.Now(),
		DeviceID:    deviceID,
	}
	response.Normalize()

	if err := response.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.AddResponse(ctx, state.Meeting.Slug, response); err != nil {
		return nil, fmt.Errorf("add response: %w", err)
	}

	s.apply(token, func(current *State) {
		*current = MergeResponse(*current, response)
	})

	return response, nil
}

// MergeResponse чистая функция слияния подтверждённого ответа
// в состояние сессии
func MergeResponse(prior State, response *model.MeetingResponse) State {
	next := prior
	next.Responses = append(append([]*model.MeetingResponse(nil), prior.Responses...), response)
	return next
}

// apply изменяет состояние, только если токен всё ещё актуален
func (s *Session) apply(token uint64, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	fn(&s.state)
	return true
}

// stale проверяет, не сменился ли маршрут с момента выдачи токена
func (s *Session) stale(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != s.seq
}
