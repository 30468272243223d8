package subagent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		ok    bool
	}{
		{"read-only", ModeReadOnly, true},
		{"readonly", ModeReadOnly, true},
		{"  ReadOnly  ", ModeReadOnly, true},
		{"full-auto", ModeFullAuto, true},
		{"full_auto", ModeFullAuto, true},
		{"FULL-AUTO", ModeFullAuto, true},
		{"danger-full-access", ModeDangerFullAccess, true},
		{"danger_full_access", ModeDangerFullAccess, true},
		{"danger", ModeDangerFullAccess, true},
		{"", "", false},
		{"yolo", "", false},
		{"full auto", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMode(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	assert.Equal(t, ModeReadOnly, (&Definition{}).EffectiveMode())
	assert.Equal(t, ModeFullAuto, (&Definition{Mode: ModeFullAuto}).EffectiveMode())
	assert.Equal(t, ModeDangerFullAccess, (&Definition{Mode: ModeDangerFullAccess}).EffectiveMode())
}

// --- Tests for ToolAllowed ---

func TestToolAllowed_EmptyListsPermitAll(t *testing.T) {
	def := &Definition{}

	assert.True(t, def.ToolAllowed("read_file"))
	assert.True(t, def.ToolAllowed("anything"))
}

func TestToolAllowed_AllowListRestricts(t *testing.T) {
	def := &Definition{ToolsAllowed: []string{"read_file", "grep"}}

	assert.True(t, def.ToolAllowed("read_file"))
	assert.True(t, def.ToolAllowed("grep"))
	assert.False(t, def.ToolAllowed("write_file"))
}

func TestToolAllowed_BlockedWinsOverAllowed(t *testing.T) {
	def := &Definition{
		ToolsAllowed: []string{"read_file", "write_file"},
		ToolsBlocked: []string{"write_file"},
	}

	assert.True(t, def.ToolAllowed("read_file"))
	assert.False(t, def.ToolAllowed("write_file"))
}

func TestToolAllowed_Globs(t *testing.T) {
	def := &Definition{
		ToolsAllowed: []string{"mcp__context7__*"},
		ToolsBlocked: []string{"mcp__context7__delete*"},
	}

	assert.True(t, def.ToolAllowed("mcp__context7__search"))
	assert.False(t, def.ToolAllowed("mcp__context7__delete_index"))
	assert.False(t, def.ToolAllowed("mcp__other__search"))
}

func TestToolAllowed_BlockOnlyList(t *testing.T) {
	def := &Definition{ToolsBlocked: []string{"shell"}}

	assert.False(t, def.ToolAllowed("shell"))
	assert.True(t, def.ToolAllowed("read_file"))
}
