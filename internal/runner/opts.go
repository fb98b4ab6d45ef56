package runner

import (
	"fmt"
	"strconv"
)

// Opts holds the execution options shared by managers, tasks and actions.
// Every field is tri-state: nil means unset, so a layer can leave the decision
// to the layer beneath it.
type Opts struct {
	Silent    *bool
	IgnoreErr *bool
	KeepGoing *bool
	Dry       *bool
}

// Bool returns a pointer to v, for building Opts literals
func Bool(v bool) *bool {
	return &v
}

// Merge returns a new Opts where every field set in override replaces the
// corresponding field of o. The receiver and override are left untouched.
func (o Opts) Merge(override Opts) Opts {
	return Opts{
		Silent:    pick(o.Silent, override.Silent),
		IgnoreErr: pick(o.IgnoreErr, override.IgnoreErr),
		KeepGoing: pick(o.KeepGoing, override.KeepGoing),
		Dry:       pick(o.Dry, override.Dry),
	}
}

func pick(base, override *bool) *bool {
	if override != nil {
		return Bool(*override)
	}
	if base != nil {
		return Bool(*base)
	}
	return nil
}

// IsSilent reports whether output of the underlying work should be discarded
func (o Opts) IsSilent() bool {
	return o.Silent != nil && *o.Silent
}

// IsIgnoreErr reports whether action failures should be swallowed
func (o Opts) IsIgnoreErr() bool {
	return o.IgnoreErr != nil && *o.IgnoreErr
}

// IsKeepGoing reports whether independent subtrees keep running after a failure
func (o Opts) IsKeepGoing() bool {
	return o.KeepGoing != nil && *o.KeepGoing
}

// IsDry reports whether work should only be announced, not executed
func (o Opts) IsDry() bool {
	return o.Dry != nil && *o.Dry
}

// String renders the options for debug logs
func (o Opts) String() string {
	return fmt.Sprintf("Opts(silent=%s, ignore_err=%s, keep_going=%s, dry=%s)",
		format(o.Silent), format(o.IgnoreErr), format(o.KeepGoing), format(o.Dry))
}

func format(v *bool) string {
	if v == nil {
		return "<unset>"
	}
	return strconv.FormatBool(*v)
}
