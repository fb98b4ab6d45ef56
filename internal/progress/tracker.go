package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/maxkimambo/fate/internal/runner"
)

var _ runner.Reporter = (*Tracker)(nil)

// Info is a snapshot of what a run has done so far
type Info struct {
	Tasks       int
	Actions     int
	Ignored     int
	Failed      []string
	CurrentTask string
	ElapsedTime time.Duration
}

// Tracker counts the events of a run and forwards each one to the wrapped
// reporter.
type Tracker struct {
	next      runner.Reporter
	startTime time.Time
	now       func() time.Time
	info      Info
}

// NewTracker creates a tracker in front of next. A nil next forwards to
// the LogReporter.
func NewTracker(next runner.Reporter) *Tracker {
	if next == nil {
		next = runner.LogReporter{}
	}
	return &Tracker{
		next:      next,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// TaskStarted implements runner.Reporter
func (t *Tracker) TaskStarted(name string, opts runner.Opts) {
	t.info.Tasks++
	t.info.CurrentTask = name
	t.next.TaskStarted(name, opts)
}

// ActionStarted implements runner.Reporter
func (t *Tracker) ActionStarted(description string, opts runner.Opts) {
	t.info.Actions++
	t.next.ActionStarted(description, opts)
}

// ActionIgnored implements runner.Reporter
func (t *Tracker) ActionIgnored(description string, err error) {
	t.info.Ignored++
	t.next.ActionIgnored(description, err)
}

// TaskFailed implements runner.Reporter
func (t *Tracker) TaskFailed(name string, err error) {
	t.info.Failed = append(t.info.Failed, name)
	t.next.TaskFailed(name, err)
}

// Info returns the counts collected so far
func (t *Tracker) Info() Info {
	info := t.info
	info.Failed = append([]string(nil), t.info.Failed...)
	info.ElapsedTime = t.now().Sub(t.startTime)
	return info
}

// Summary renders a one-line account of the run
func (t *Tracker) Summary() string {
	info := t.Info()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d task(s), %d action(s) in %s",
		info.Tasks, info.Actions, FormatDuration(info.ElapsedTime)))

	if info.Ignored > 0 {
		sb.WriteString(fmt.Sprintf(", %d ignored failure(s)", info.Ignored))
	}
	if len(info.Failed) > 0 {
		sb.WriteString(fmt.Sprintf(", failed: %s", strings.Join(info.Failed, ", ")))
	}
	return sb.String()
}

// FormatDuration formats a duration in a user-friendly way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
