package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultParseTimeout bounds a parse invocation when the caller does not
// configure one.
var DefaultParseTimeout = 2 * time.Minute

// ErrParseTimeout is returned when an invocation exceeds its wall-clock
// budget. The invocation is abandoned in its entirety; no partial result is
// delivered.
var ErrParseTimeout = errors.New("parse timed out")

// Service runs parse invocations off the caller's goroutine. Each invocation
// produces exactly one completion: a fresh Result or an error. Results from
// successive invocations are independent; the caller decides which one
// supersedes which via its result store.
type Service struct {
	timeout time.Duration

	mu     sync.RWMutex
	parses map[string]*activeParse
}

type activeParse struct {
	ID     string
	Cancel context.CancelFunc
	Done   chan struct{}

	// Result and Err are written once, before Done closes.
	Result *Result
	Err    error
}

// NewService creates a Service. A non-positive timeout falls back to
// DefaultParseTimeout.
func NewService(timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultParseTimeout
	}
	return &Service{
		timeout: timeout,
		parses:  make(map[string]*activeParse),
	}
}

// StartParse begins an asynchronous parse invocation and returns its ID
// immediately. Use Await to collect the single completion.
func (s *Service) StartParse(files []InputFile) string {
	parseID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)

	p := &activeParse{
		ID:     parseID,
		Cancel: cancel,
		Done:   make(chan struct{}),
	}

	s.mu.Lock()
	s.parses[parseID] = p
	s.mu.Unlock()

	go s.run(ctx, p, files)

	return parseID
}

func (s *Service) run(ctx context.Context, p *activeParse, files []InputFile) {
	defer func() {
		p.Cancel()
		close(p.Done)
		s.cleanup(p.ID, 5*time.Minute)
	}()

	res, err := Parse(ctx, files)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrParseTimeout
		}
		p.Err = err
		return
	}
	p.Result = res
}

// Await blocks until the invocation completes and returns its single
// outcome.
func (s *Service) Await(parseID string) (*Result, error) {
	s.mu.RLock()
	p, ok := s.parses[parseID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("parse not found: %s", parseID)
	}

	<-p.Done
	return p.Result, p.Err
}

// Cancel abandons an in-progress invocation. Abandonment is the only
// cancellation mechanism; the invocation finishes with an error and its
// partial work is discarded.
func (s *Service) Cancel(parseID string) error {
	s.mu.RLock()
	p, ok := s.parses[parseID]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("parse not found: %s", parseID)
	}

	p.Cancel()
	return nil
}

// Run is the synchronous convenience path: start, await, done.
func (s *Service) Run(files []InputFile) (*Result, error) {
	return s.Await(s.StartParse(files))
}

// cleanup drops a finished invocation from the table after a grace period
// so late Await callers still find it.
func (s *Service) cleanup(parseID string, after time.Duration) {
	time.AfterFunc(after, func() {
		s.mu.Lock()
		delete(s.parses, parseID)
		s.mu.Unlock()
	})
}
