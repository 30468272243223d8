package subagent

// SandboxKind discriminates the closed set of sandbox policy shapes.
type SandboxKind int

const (
	// SandboxReadOnly permits reads only.
	SandboxReadOnly SandboxKind = iota
	// SandboxWorkspaceWrite permits writes inside the workspace, with
	// tunable network and tmp-directory settings.
	SandboxWorkspaceWrite
	// SandboxDangerFullAccess disables sandboxing entirely.
	SandboxDangerFullAccess
)

// SandboxPolicy is the effective permission set a delegated execution runs
// under. Only the workspace-write kind carries sub-fields; the other kinds
// ignore them.
type SandboxPolicy struct {
	Kind SandboxKind

	// NetworkAccess permits outbound network use.
	NetworkAccess bool

	// ExcludeTmpdirEnvVar removes the $TMPDIR directory from the writable set.
	ExcludeTmpdirEnvVar bool

	// ExcludeSlashTmp removes /tmp from the writable set.
	ExcludeSlashTmp bool

	// WritableRoots lists additional writable directories.
	WritableRoots []string
}

// ReadOnlyPolicy returns the fixed read-only policy.
func ReadOnlyPolicy() SandboxPolicy {
	return SandboxPolicy{Kind: SandboxReadOnly}
}

// WorkspaceWritePolicy returns a workspace-write policy with network access
// disabled and no tmp exclusions.
func WorkspaceWritePolicy() SandboxPolicy {
	return SandboxPolicy{Kind: SandboxWorkspaceWrite}
}

// DangerFullAccessPolicy returns the fixed unrestricted policy.
func DangerFullAccessPolicy() SandboxPolicy {
	return SandboxPolicy{Kind: SandboxDangerFullAccess}
}

// HasFullNetworkAccess reports whether the policy places no restriction on
// network use.
func (p SandboxPolicy) HasFullNetworkAccess() bool {
	switch p.Kind {
	case SandboxDangerFullAccess:
		return true
	case SandboxWorkspaceWrite:
		return p.NetworkAccess
	default:
		return false
	}
}

// PolicyForMode derives the effective sandbox policy for a declared subagent
// mode. ReadOnly and DangerFullAccess map to fixed policies independent of
// the default. FullAuto starts from a fresh workspace-write policy, copies
// the network-access setting from the default policy, and copies the tmp
// exclusions only when the default is itself workspace-write.
func PolicyForMode(mode Mode, def SandboxPolicy) SandboxPolicy {
	switch mode {
	case ModeFullAuto:
		policy := WorkspaceWritePolicy()
		policy.NetworkAccess = def.HasFullNetworkAccess()
		if def.Kind == SandboxWorkspaceWrite {
			policy.ExcludeTmpdirEnvVar = def.ExcludeTmpdirEnvVar
			policy.ExcludeSlashTmp = def.ExcludeSlashTmp
		}
		return policy
	case ModeDangerFullAccess:
		return DangerFullAccessPolicy()
	default:
		return ReadOnlyPolicy()
	}
}
