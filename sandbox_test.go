package subagent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasFullNetworkAccess(t *testing.T) {
	assert.False(t, ReadOnlyPolicy().HasFullNetworkAccess())
	assert.False(t, WorkspaceWritePolicy().HasFullNetworkAccess())
	assert.True(t, DangerFullAccessPolicy().HasFullNetworkAccess())

	ww := WorkspaceWritePolicy()
	ww.NetworkAccess = true
	assert.True(t, ww.HasFullNetworkAccess())
}

func TestPolicyForMode_ReadOnlyIgnoresDefault(t *testing.T) {
	def := DangerFullAccessPolicy()

	got := PolicyForMode(ModeReadOnly, def)

	assert.Equal(t, ReadOnlyPolicy(), got)
}

func TestPolicyForMode_DangerIgnoresDefault(t *testing.T) {
	got := PolicyForMode(ModeDangerFullAccess, ReadOnlyPolicy())

	assert.Equal(t, DangerFullAccessPolicy(), got)
}

func TestPolicyForMode_EmptyModeDefaultsReadOnly(t *testing.T) {
	got := PolicyForMode("", DangerFullAccessPolicy())

	assert.Equal(t, ReadOnlyPolicy(), got)
}

func TestPolicyForMode_FullAutoFromReadOnly(t *testing.T) {
	got := PolicyForMode(ModeFullAuto, ReadOnlyPolicy())

	assert.Equal(t, SandboxWorkspaceWrite, got.Kind)
	assert.False(t, got.NetworkAccess)
	assert.False(t, got.ExcludeTmpdirEnvVar)
	assert.False(t, got.ExcludeSlashTmp)
	assert.Empty(t, got.WritableRoots)
}

func TestPolicyForMode_FullAutoFromDanger(t *testing.T) {
	// Full access implies unrestricted network, so the derived policy keeps
	// network access but is still workspace-write.
	got := PolicyForMode(ModeFullAuto, DangerFullAccessPolicy())

	assert.Equal(t, SandboxWorkspaceWrite, got.Kind)
	assert.True(t, got.NetworkAccess)
	assert.False(t, got.ExcludeTmpdirEnvVar)
	assert.False(t, got.ExcludeSlashTmp)
}

func TestPolicyForMode_FullAutoCopiesWorkspaceWriteSettings(t *testing.T) {
	def := SandboxPolicy{
		Kind:                SandboxWorkspaceWrite,
		NetworkAccess:       true,
		ExcludeTmpdirEnvVar: true,
		ExcludeSlashTmp:     true,
		WritableRoots:       []string{"/srv/data"},
	}

	got := PolicyForMode(ModeFullAuto, def)

	assert.Equal(t, SandboxWorkspaceWrite, got.Kind)
	assert.True(t, got.NetworkAccess)
	assert.True(t, got.ExcludeTmpdirEnvVar)
	assert.True(t, got.ExcludeSlashTmp)
	// Writable roots are not inherited; the derived policy starts fresh.
	assert.Empty(t, got.WritableRoots)
}
