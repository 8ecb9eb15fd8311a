package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/logging"
	"github.com/dshills/motion/internal/motion"
)

// Dispatcher executes command requests against a host.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	resolver *motion.Resolver
	logger   *logging.Logger
	newID    func() string

	config  Config
	metrics *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithResolver replaces the resolver built from the config.
func WithResolver(r *motion.Resolver) Option {
	return func(d *Dispatcher) {
		d.resolver = r
	}
}

// WithIDGenerator sets the request id source. The default is a random UUID.
func WithIDGenerator(fn func() string) Option {
	return func(d *Dispatcher) {
		d.newID = fn
	}
}

// New creates a dispatcher with every built-in command registered.
func New(config Config, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		registry: NewRegistry(),
		logger:   logging.Nop(),
		newID:    uuid.NewString,
		config:   config,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.resolver == nil {
		r, err := config.Resolver()
		if err != nil {
			return nil, fmt.Errorf("dispatcher: %w", err)
		}
		d.resolver = r
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	d.registerBuiltins()
	return d, nil
}

// NewWithDefaults creates a dispatcher with the default configuration.
func NewWithDefaults(opts ...Option) *Dispatcher {
	d, err := New(DefaultConfig(), opts...)
	if err != nil {
		// The default word separators always compile.
		panic(err)
	}
	return d
}

func (d *Dispatcher) registerBuiltins() {
	builtins := map[command.Kind]handler.Handler{
		command.KindMove:      handler.Func(handleMove),
		command.KindSelect:    handler.Func(handleSelect),
		command.KindDelete:    handler.Func(handleDelete),
		command.KindCopy:      handler.Func(handleCopy),
		command.KindCursor:    handler.Func(d.handleCursor),
		command.KindIncrement: handler.Func(handleIncrement),
		command.KindDecrement: handler.Func(handleDecrement),
		command.KindCommands:  handler.Func(handleCommands),
	}
	for k, h := range builtins {
		_ = d.registry.Register(k, h)
	}
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Resolver returns the motion resolver.
func (d *Dispatcher) Resolver() *motion.Resolver {
	return d.resolver
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// RegisterHandler replaces the handler for a command kind.
func (d *Dispatcher) RegisterHandler(k command.Kind, h handler.Handler) error {
	return d.registry.Register(k, h)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// Run executes req and returns the resulting selection set. The commands
// passthrough returns nil selections.
func (d *Dispatcher) Run(ctx context.Context, h host.Host, req command.Request) ([]text.Selection, error) {
	result := d.Execute(ctx, h, req)
	if result.IsError() {
		return nil, result.Error
	}
	return result.Selections, nil
}

// Execute runs req against h. It never panics: invalid requests, handler
// errors and recovered panics are all reported in the result and logged.
func (d *Dispatcher) Execute(ctx context.Context, h host.Host, req command.Request) handler.Result {
	start := time.Now()
	id := d.newID()
	log := d.logger.WithFields(map[string]any{
		"request_id": id,
		"command":    string(req.Command),
	})

	result := d.execute(ctx, h, &req, id, log)
	result.Command = req.Command
	result.RequestID = id
	result.Duration = time.Since(start)

	if result.IsError() {
		log.Error("%s failed: %v", req.Command, result.Error)
	} else {
		log.Debug("%s", result)
	}
	if d.metrics != nil {
		d.metrics.RecordDispatch(req.Command, result.Duration, result.Status)
	}
	return result
}

func (d *Dispatcher) execute(ctx context.Context, h host.Host, req *command.Request, id string, log *logging.Logger) handler.Result {
	if h == nil {
		return handler.Error(ErrNilHost)
	}
	// Rejected here, before any host call.
	if err := req.Validate(); err != nil {
		return handler.Error(err)
	}

	ectx := execctx.New(ctx, h).
		WithResolver(d.resolver).
		WithLogger(log).
		WithRequestID(id).
		WithClipboardCommand(d.config.ClipboardCommand)

	log.Debug("dispatch %s", req)

	if !d.runPreHooks(req, ectx) {
		return handler.Error(ErrCancelled)
	}
	result := d.dispatch(ectx, *req)
	d.runPostHooks(req, ectx, &result)
	return result
}

// dispatch routes req to its handler. Fan-out calls it for nested actions.
func (d *Dispatcher) dispatch(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	h := d.registry.Get(req.Command)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrNoHandler, req.Command))
	}
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if err := ctx.Err(); err != nil {
		return handler.Error(err)
	}

	if d.config.RecoverFromPanic {
		return d.executeWithRecovery(h, ctx, req)
	}
	return h.Handle(ctx, req)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, ctx *execctx.ExecutionContext, req command.Request) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			ctx.Log().Error("panic in %s: %v\n%s", req.Command, r, stack[:n])
			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, req.Command, r))

			if d.metrics != nil {
				d.metrics.RecordPanic(req.Command)
			}
		}
	}()

	return h.Handle(ctx, req)
}

func (d *Dispatcher) runPreHooks(req *command.Request, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := slices.Clone(d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(req, ctx) {
			return false
		}
	}
	return true
}

func (d *Dispatcher) runPostHooks(req *command.Request, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := slices.Clone(d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(req, ctx, result)
	}
}
