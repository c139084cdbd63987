package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Freeeeeet/meetpoll/internal/heatmap"
	"github.com/Freeeeeet/meetpoll/internal/model"
	"github.com/Freeeeeet/meetpoll/internal/route"
	"github.com/Freeeeeet/meetpoll/internal/schedule"
	"github.com/Freeeeeet/meetpoll/internal/service"
	"go.uber.org/zap"
)

type HTTPController struct {
	meetingService *service.MeetingService
	logger         *zap.Logger
}

func NewHTTPController(meetingService *service.MeetingService, logger *zap.Logger) *HTTPController {
	return &HTTPController{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Routes собирает маршруты API и страниц
func (c *HTTPController) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/meetings", c.handleCreateMeeting)
	mux.HandleFunc("GET /api/meetings/{slug}", c.handleGetMeeting)
	mux.HandleFunc("POST /api/meetings/{slug}/responses", c.handleSubmitResponse)
	mux.HandleFunc("GET /api/meetings/{slug}/heatmap.png", c.handleHeatmap)

	// Страничные маршруты: /new, /m/<slug>, /host/<slug>,
	// всё нераспознанное - экран создания
	mux.HandleFunc("/", c.handlePage)

	return NewLoggingMiddleware(c.logger)(mux)
}

type meetingPayload struct {
	Meeting   *model.Meeting           `json:"meeting"`
	Slots     []model.SlotDefinition   `json:"slots"`
	Responses []*model.MeetingResponse `json:"responses"`
}

func (c *HTTPController) handleCreateMeeting(w http.ResponseWriter, r *http.Request) {
	var draft model.Meeting
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	meeting, err := c.meetingService.CreateMeeting(r.Context(), &draft)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, meetingPayload{
		Meeting: meeting,
		Slots:   schedule.BuildSlots(meeting),
	})
}

func (c *HTTPController) handleGetMeeting(w http.ResponseWriter, r *http.Request) {
	meeting, responses, err := c.meetingService.GetMeeting(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, meetingPayload{
		Meeting:   meeting,
		Slots:     schedule.BuildSlots(meeting),
		Responses: responses,
	})
}

func (c *HTTPController) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var draft model.MeetingResponse
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := c.meetingService.SubmitResponse(r.Context(), r.PathValue("slug"), &draft)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// handleHeatmap отдаёт тепловую карту доступности как PNG.
// Агрегация пересчитывается на каждый запрос из списка ответов.
func (c *HTTPController) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	meeting, responses, err := c.meetingService.GetMeeting(r.Context(), r.PathValue("slug"))
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	slots := schedule.BuildSlots(meeting)
	agg := schedule.Aggregate(slots, responses)

	png, err := heatmap.Render(meeting, slots, agg)
	if err != nil {
		c.logger.Error("Render heatmap failed", zap.String("slug", meeting.Slug), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render heatmap failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (c *HTTPController) handlePage(w http.ResponseWriter, r *http.Request) {
	parsed := route.Parse(r.URL.Path)

	switch parsed.Kind {
	case route.KindRespond, route.KindHost:
		// Экран организатора пока отдаёт те же данные, что и экран
		// участника: отдельного поведения у него нет
		meeting, responses, err := c.meetingService.GetMeeting(r.Context(), parsed.Slug)
		if err != nil {
			c.writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			View string `json:"view"`
			meetingPayload
		}{
			View: string(parsed.Kind),
			meetingPayload: meetingPayload{
				Meeting:   meeting,
				Slots:     schedule.BuildSlots(meeting),
				Responses: responses,
			},
		})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"view": string(route.KindCreate)})
	}
}

// writeServiceError переводит ошибку сервиса в HTTP-статус:
// валидация - 400, отсутствие встречи - 404, остальное - 500
func (c *HTTPController) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case model.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMeetingNotFound):
		writeError(w, http.StatusNotFound, "meeting not found")
	default:
		c.logger.Error("Request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
