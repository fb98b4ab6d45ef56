package runner

import (
	"github.com/google/uuid"
)

// session is the state of one Manager.Run call. It is created when the call
// starts and dropped when it returns.
type session struct {
	id       string
	opts     Opts
	callOpts Opts
	reporter Reporter

	alreadyRun map[string]bool
	failed     map[string]bool
	active     map[string]bool
	path       []string
	errors     []error
}

func newSession(opts, callOpts Opts, reporter Reporter) *session {
	return &session{
		id:         uuid.New().String(),
		opts:       opts,
		callOpts:   callOpts,
		reporter:   reporter,
		alreadyRun: make(map[string]bool),
		failed:     make(map[string]bool),
		active:     make(map[string]bool),
	}
}

func (s *session) enter(name string) {
	s.alreadyRun[name] = true
	s.active[name] = true
	s.path = append(s.path, name)
}

func (s *session) leave(name string) {
	delete(s.active, name)
	s.path = s.path[:len(s.path)-1]
}

// cycleTo returns the active path from dep back to itself
func (s *session) cycleTo(dep string) []string {
	for i, name := range s.path {
		if name == dep {
			cycle := append([]string(nil), s.path[i:]...)
			return append(cycle, dep)
		}
	}
	return []string{dep, dep}
}

func (s *session) fail(name string, err error) {
	s.failed[name] = true
	s.errors = append(s.errors, err)
}
