package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-task-scheduler/internal/middleware"
	schedulerHTTP "smart-task-scheduler/internal/scheduler/delivery/http"
	schedulerRepo "smart-task-scheduler/internal/scheduler/repository/sqlite"
	schedulerUC "smart-task-scheduler/internal/scheduler/usecase"
	"smart-task-scheduler/pkg/datemath"
	"smart-task-scheduler/pkg/textclass"
)

// setupSchedulerDomain initializes the scheduler domain and registers its
// routes under /api/v1/tasks.
func (srv HTTPServer) setupSchedulerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := schedulerRepo.New(srv.db, srv.l)

	// 2. Collaborators
	recognizer, err := datemath.NewRecognizer(srv.config.Scheduler.Timezone)
	if err != nil {
		return err
	}
	priorityCls, err := textclass.New(textclass.DefaultPriority, textclass.PriorityCorpus)
	if err != nil {
		return err
	}
	categoryCls, err := textclass.New(textclass.DefaultCategory, textclass.CategoryCorpus)
	if err != nil {
		return err
	}

	// 3. UseCase
	uc := schedulerUC.New(srv.l, repo, recognizer, priorityCls, categoryCls, srv.calendar, schedulerUC.Options{
		Timezone:               srv.config.Scheduler.Timezone,
		DefaultDurationMinutes: srv.config.Scheduler.DefaultDurationMinutes,
		WorkdayStartHour:       srv.config.Scheduler.WorkdayStartHour,
		WorkdayEndHour:         srv.config.Scheduler.WorkdayEndHour,
		SlotStepMinutes:        srv.config.Scheduler.SlotStepMinutes,
		SuggestWindowDays:      srv.config.Scheduler.SuggestWindowDays,
		MaxSuggestions:         srv.config.Scheduler.MaxSuggestions,
		HorizonDays:            srv.config.Scheduler.HorizonDays,
		CalendarID:             srv.config.GoogleCalendar.CalendarID,
	})

	// 4. HTTP Handler + Routes: registers /api/v1/tasks
	h := schedulerHTTP.New(srv.l, uc)
	schedulerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Scheduler domain registered")
	return nil
}
