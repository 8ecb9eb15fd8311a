package script

import (
	"context"

	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/logging"
)

// Runner executes scripts through a dispatcher.
type Runner struct {
	dispatcher *dispatcher.Dispatcher
	logger     *logging.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(d *dispatcher.Dispatcher, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{dispatcher: d, logger: logger.WithComponent("script")}
}

// Dispatcher returns the runner's dispatcher.
func (r *Runner) Dispatcher() *dispatcher.Dispatcher {
	return r.dispatcher
}

// Run executes the steps of s in order and returns their results. It stops at
// the first failing step and returns a *StepError for it.
func (r *Runner) Run(ctx context.Context, h host.Host, s *Script) ([]handler.Result, error) {
	log := r.logger.WithField("script", s.Name)
	results := make([]handler.Result, 0, len(s.Steps))

	for i, req := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, &StepError{Index: i, Request: req, Err: err}
		}
		res := r.dispatcher.Execute(ctx, h, req)
		results = append(results, res)
		if res.IsError() {
			log.Warn("step %d failed: %v", i, res.Error)
			return results, &StepError{Index: i, Request: req, Err: res.Error}
		}
	}

	log.Debug("ran %d steps", len(results))
	return results, nil
}
