package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dmitrymomot/apistarter/pkg/logger"
)

// DefaultShutdownTimeout bounds graceful shutdown unless overridden.
const DefaultShutdownTimeout = 30 * time.Second

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	signals         []os.Signal
	crashHandler    func(any)
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
}

func defaultConfig() *config {
	return &config{
		addr:            ":5001",
		shutdownTimeout: DefaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
		crashHandler:    func(any) { os.Exit(1) },
	}
}

// Server owns a single http.Server and drives it through the
// starting → running → closing → stopped lifecycle.
type Server struct {
	cfg *config

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	state    atomic.Int32

	stopOnce     sync.Once
	stopCh       chan struct{} // closed by Shutdown called before the listener exists
	failures     chan error
	shutdownOnce sync.Once
	shutdownErr  error
	done         chan struct{} // closed when the shutdown sequence has finished

	tasks       sync.WaitGroup
	tasksCtx    context.Context
	cancelTasks context.CancelFunc
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}

	tasksCtx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:         cfg,
		stopCh:      make(chan struct{}),
		failures:    make(chan error, 1),
		done:        make(chan struct{}),
		tasksCtx:    tasksCtx,
		cancelTasks: cancel,
	}
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return State(s.state.Load())
}

// Addr returns the bound listener address, or "" before the server is running.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run binds the listener, serves handler and blocks until shutdown.
//
// Shutdown is triggered by a termination signal, by ctx being cancelled, by
// Shutdown, or by a background failure reported through Fail or Go. Run
// returns nil for a clean signal- or context-initiated shutdown and an error
// otherwise:
//
//   - ErrStart when the listener cannot be bound (no retry);
//   - ErrUnhandledFailure when a background failure triggered the shutdown;
//   - ErrShutdown when closing the server reported an error;
//   - ErrForcedShutdown when shutdown exceeded the timeout or a second
//     termination signal arrived while closing.
//
// Use ExitCode to translate the result into a process exit code.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil || s.State() != StateStarting {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	if srv.ReadTimeout == 0 && cfg.readTimeout != 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 && cfg.writeTimeout != 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 && cfg.idleTimeout != 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	srv.Handler = handler
	s.srv = srv
	s.mu.Unlock()

	// Signals are observed before binding so an early request to stop is honoured.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, cfg.signals...)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		return s.stopBeforeStart("context cancelled", nil)
	case sig := <-sigCh:
		return s.stopBeforeStart("signal received", nil, slog.String("signal", sig.String()))
	case <-s.stopCh:
		return s.stopBeforeStart("shutdown requested", nil)
	case err := <-s.failures:
		return s.stopBeforeStart("background failure", errors.Join(ErrUnhandledFailure, err), logger.Error(err))
	default:
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.finish(StateStopped, nil)
		return errors.Join(ErrStart, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	s.state.Store(int32(StateRunning))

	cfg.logger.Info("server listening", logger.Addr(ln.Addr().String()), logger.Component("httpserver"))
	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	var cause error
	select {
	case <-ctx.Done():
		cfg.logger.Info("context cancelled, shutting down", logger.Component("httpserver"))
	case sig := <-sigCh:
		cfg.logger.Info("signal received, shutting down", slog.String("signal", sig.String()), logger.Component("httpserver"))
	case <-s.stopCh:
		cfg.logger.Info("shutdown requested", logger.Component("httpserver"))
	case err := <-s.failures:
		cfg.logger.Error("background failure, shutting down", logger.Error(err), logger.Component("httpserver"))
		cause = errors.Join(ErrUnhandledFailure, err)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			// Serve failed on its own; release everything and report it as a start failure.
			_ = ln.Close()
			s.cancelTasks()
			s.finish(StateStopped, nil)
			return errors.Join(ErrStart, err)
		}
		// Shutdown was called directly; wait for its sequence to complete.
		<-s.done
		return s.shutdownErr
	}

	shutdownErr := s.shutdownWithSignals(sigCh)
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		shutdownErr = errors.Join(shutdownErr, ErrShutdown, err)
	}

	if cause != nil || shutdownErr != nil {
		return errors.Join(cause, shutdownErr)
	}
	return nil
}

// Shutdown stops the server gracefully. It is safe for repeated calls.
// When the listener has not been bound yet, the pending Run returns
// immediately without serving. Errors are wrapped with ErrShutdown or
// ErrForcedShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.listener != nil
	s.mu.Unlock()

	if !started {
		s.stopOnce.Do(func() { close(s.stopCh) })
		return nil
	}
	return s.shutdown(ctx)
}

// Fail reports an unhandled failure from background work. The first failure
// triggers a graceful shutdown and makes Run return ErrUnhandledFailure;
// later failures are logged and dropped.
func (s *Server) Fail(err error) {
	if err == nil {
		return
	}
	select {
	case s.failures <- err:
	default:
		s.cfg.logger.Warn("dropping background failure, shutdown already pending",
			logger.Error(err), logger.Component("httpserver"))
	}
}

// Go runs fn in a goroutine tied to the server lifecycle. The context passed
// to fn is cancelled when shutdown begins, and shutdown waits for fn to
// return within the shutdown timeout.
//
// A non-nil error other than context.Canceled is reported through Fail.
// A panic is an uncaught failure: it is logged with its stack and the crash
// handler terminates the process without a graceful close.
func (s *Server) Go(fn func(ctx context.Context) error) {
	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()
		defer func() {
			if r := recover(); r != nil {
				s.crash(r, debug.Stack())
			}
		}()

		if err := fn(s.tasksCtx); err != nil && !errors.Is(err, context.Canceled) {
			s.Fail(err)
		}
	}()
}

func (s *Server) crash(recovered any, stack []byte) {
	s.state.Store(int32(StateCrashed))
	s.cfg.logger.Error("uncaught panic in background task, terminating",
		slog.String("panic", fmt.Sprint(recovered)),
		slog.String("stack", string(stack)),
		logger.Component("httpserver"),
	)
	s.cfg.crashHandler(recovered)
}

// shutdownWithSignals runs the shutdown sequence while watching for a second
// termination signal, which aborts the graceful wait.
func (s *Server) shutdownWithSignals(sigCh <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case sig := <-sigCh:
			s.cfg.logger.Warn("second signal received, forcing shutdown",
				slog.String("signal", sig.String()), logger.Component("httpserver"))
			cancel()
		case <-watchDone:
		}
	}()

	return s.shutdown(ctx)
}

func (s *Server) shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.state.CompareAndSwap(int32(StateRunning), int32(StateClosing))
		s.cfg.logger.Info("shutting down", logger.Component("httpserver"))

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()

		start := time.Now()
		s.cancelTasks()

		var result error
		if err := s.srv.Shutdown(ctx); err != nil {
			if ctx.Err() != nil {
				_ = s.srv.Close()
				result = errors.Join(ErrForcedShutdown, err)
			} else {
				result = errors.Join(ErrShutdown, err)
			}
		}
		if result == nil && !s.waitTasks(ctx) {
			result = errors.Join(ErrForcedShutdown, errors.New("background tasks did not finish"))
		}

		if result != nil {
			s.cfg.logger.Error("shutdown failed", logger.Error(result), logger.Duration(time.Since(start)), logger.Component("httpserver"))
		} else {
			s.cfg.logger.Info("server stopped", logger.Duration(time.Since(start)), logger.Component("httpserver"))
		}
		s.finish(StateStopped, result)
	})

	<-s.done
	return s.shutdownErr
}

func (s *Server) waitTasks(ctx context.Context) bool {
	finished := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-ctx.Done():
		return false
	}
}

// stopBeforeStart handles a stop request that arrives before the listener exists.
func (s *Server) stopBeforeStart(reason string, result error, attrs ...slog.Attr) error {
	attrs = append(attrs, slog.String("reason", reason), logger.Component("httpserver"))
	s.cfg.logger.LogAttrs(context.Background(), slog.LevelInfo, "stopping before listener was bound", attrs...)
	s.cancelTasks()
	s.finish(StateStopped, result)
	return result
}

// finish records the final state and releases waiters. Only the first call has effect.
func (s *Server) finish(state State, result error) {
	select {
	case <-s.done:
		return
	default:
	}
	if s.State() != StateCrashed {
		s.state.Store(int32(state))
	}
	s.shutdownErr = result
	for _, h := range s.cfg.stopHooks {
		h(s.cfg.logger)
	}
	close(s.done)
}
