package http

import (
	"smart-task-scheduler/internal/scheduler"
	"smart-task-scheduler/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	Parse(c interface{})
	Conflicts(c interface{})
	Slots(c interface{})
	List(c interface{})
	Detail(c interface{})
	Update(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc scheduler.UseCase
}

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
