// Package notify schedules the one-shot local notification fired after a
// task is created. Fire-and-forget: no cancellation, no dedup, nothing
// survives a restart.
package notify

import (
	"time"

	"github.com/juju/clock"
	"github.com/rs/zerolog"
)

// CreationTitle is the fixed title of the new-task alert.
const CreationTitle = "Nova Tarefa!"

// Notification is one alert to deliver.
type Notification struct {
	Title string
	Body  string
}

// Sink delivers scheduled notifications to the platform.
type Sink interface {
	Deliver(n Notification)
}

var _ Sink = (*LogSink)(nil)

// LogSink writes notifications to the log. The dev server uses it in place
// of a platform notification service.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(n Notification) {
	s.log.Info().Str("title", n.Title).Str("body", n.Body).Msg("notification")
}

// Scheduler fires a notification a fixed short delay after each request.
type Scheduler struct {
	clock clock.Clock
	delay time.Duration
	sink  Sink
}

// SchedulerOption defines a function type to modify the Scheduler instance.
type SchedulerOption func(*Scheduler)

// WithClock sets the clock (primarily for testing)
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = c
	}
}

func NewScheduler(sink Sink, delay time.Duration, options ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		clock: clock.WallClock,
		delay: delay,
		sink:  sink,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// ScheduleCreationAlert arms a one-shot timer delivering the "new task"
// alert with the task text as body.
func (s *Scheduler) ScheduleCreationAlert(text string) {
	s.clock.AfterFunc(s.delay, func() {
		s.sink.Deliver(Notification{Title: CreationTitle, Body: text})
	})
}
