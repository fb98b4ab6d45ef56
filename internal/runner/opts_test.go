package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpts_Merge(t *testing.T) {
	tests := []struct {
		name     string
		base     Opts
		override Opts
		expected Opts
	}{
		{
			name:     "Empty override is identity",
			base:     Opts{Silent: Bool(true), Dry: Bool(false)},
			override: Opts{},
			expected: Opts{Silent: Bool(true), Dry: Bool(false)},
		},
		{
			name:     "Override wins when set",
			base:     Opts{Silent: Bool(true), IgnoreErr: Bool(true)},
			override: Opts{Silent: Bool(false)},
			expected: Opts{Silent: Bool(false), IgnoreErr: Bool(true)},
		},
		{
			name:     "Unset base takes override",
			base:     Opts{},
			override: Opts{KeepGoing: Bool(true), Dry: Bool(true)},
			expected: Opts{KeepGoing: Bool(true), Dry: Bool(true)},
		},
		{
			name:     "Both empty",
			base:     Opts{},
			override: Opts{},
			expected: Opts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.base.Merge(tt.override))
		})
	}
}

func TestOpts_MergeDoesNotShareValues(t *testing.T) {
	base := Opts{Silent: Bool(true)}
	override := Opts{Dry: Bool(true)}

	merged := base.Merge(override)
	*merged.Silent = false
	*merged.Dry = false

	assert.True(t, *base.Silent)
	assert.True(t, *override.Dry)
	assert.Nil(t, base.Dry)
}

func TestOpts_Accessors(t *testing.T) {
	var unset Opts
	assert.False(t, unset.IsSilent())
	assert.False(t, unset.IsIgnoreErr())
	assert.False(t, unset.IsKeepGoing())
	assert.False(t, unset.IsDry())

	set := Opts{Silent: Bool(true), IgnoreErr: Bool(true), KeepGoing: Bool(false), Dry: Bool(true)}
	assert.True(t, set.IsSilent())
	assert.True(t, set.IsIgnoreErr())
	assert.False(t, set.IsKeepGoing())
	assert.True(t, set.IsDry())
}

func TestOpts_String(t *testing.T) {
	o := Opts{Silent: Bool(true), KeepGoing: Bool(false)}
	assert.Equal(t, "Opts(silent=true, ignore_err=<unset>, keep_going=false, dry=<unset>)", o.String())
}
