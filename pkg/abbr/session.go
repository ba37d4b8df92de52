// session.go implements the as-you-type controller: re-expanding on every
// keystroke and replacing the previously applied output through a deferred,
// strictly ordered apply queue.
package abbr

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Applier applies expansion output to the host document. Undo removes the
// previously inserted expansion; Insert applies a new one. The pair is
// always scheduled together so the document never holds two generations of
// output at once.
type Applier interface {
	Undo()
	Insert(res *ExpansionResult)
}

// TaskQueue is a single-consumer FIFO queue of deferred apply steps. Hosts
// forbid re-entrant edits from within the event that produced new text, so
// sessions defer their applies here and the host drains the queue between
// events. Tasks always run in the order they were deferred.
type TaskQueue struct {
	tasks []func()
}

// Defer appends a task.
func (q *TaskQueue) Defer(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// Drain runs all pending tasks in issue order, including tasks deferred
// while draining.
func (q *TaskQueue) Drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[0:copy(q.tasks, q.tasks[1:])]
		fn()
	}
}

// Len reports the number of pending tasks.
func (q *TaskQueue) Len() int { return len(q.tasks) }

// Session drives one interactive expand-as-you-type or wrap-as-you-type
// run. Calls are strictly sequential; the only state carried across calls
// is the generation counter guarding stale applies.
type Session struct {
	id       string
	engine   *Engine
	profile  string
	wrapMode bool
	wrapBody string
	applier  Applier
	queue    *TaskQueue
	log      *slog.Logger

	issued  uint64 // last generation handed out
	applied uint64 // last generation actually applied
	active  bool   // an insertion is currently applied
}

// NewSession creates an expand-mode session.
func NewSession(engine *Engine, profile string, applier Applier, queue *TaskQueue) *Session {
	return &Session{
		id:      uuid.NewString(),
		engine:  engine,
		profile: profile,
		applier: applier,
		queue:   queue,
		log:     slog.Default(),
	}
}

// NewWrapSession creates a wrap-mode session around the captured body.
func NewWrapSession(engine *Engine, profile, body string, applier Applier, queue *TaskQueue) *Session {
	s := NewSession(engine, profile, applier, queue)
	s.wrapMode = true
	s.wrapBody = body
	return s
}

// ID returns the session's correlation id.
func (s *Session) ID() string { return s.id }

// OnInput re-expands the current interactive input. Empty input and
// parse/resolve failures yield nil: intermediate keystrokes routinely
// produce invalid abbreviations, so errors are swallowed here rather than
// surfaced. The apply step (undo previous, insert new) is deferred onto the
// queue; a newer call always supersedes an older one, and a stale deferred
// apply can never land after a newer one has.
func (s *Session) OnInput(raw string) *ExpansionResult {
	s.issued++
	gen := s.issued

	var res *ExpansionResult
	if input := strings.TrimSpace(raw); input != "" {
		var err error
		if s.wrapMode {
			res, err = s.engine.Wrap(input, s.wrapBody, s.profile)
		} else {
			res, err = s.engine.Expand(input, s.profile)
		}
		if err != nil {
			s.log.Debug("expansion rejected", "session", s.id, "input", input, "error", err)
			res = nil
		}
	}

	s.queue.Defer(func() {
		if gen != s.issued {
			return // superseded by a newer input
		}
		if gen <= s.applied {
			return // stale
		}
		s.applied = gen
		if s.active {
			s.applier.Undo()
			s.active = false
		}
		if res != nil {
			s.applier.Insert(res)
			s.active = true
		}
	})
	return res
}

// Cancel undoes any applied insertion, deferred like a regular apply.
func (s *Session) Cancel() {
	s.issued++
	gen := s.issued
	s.queue.Defer(func() {
		if gen != s.issued || gen <= s.applied {
			return
		}
		s.applied = gen
		if s.active {
			s.applier.Undo()
			s.active = false
		}
	})
}
