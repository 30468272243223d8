package subagent

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mode declares the privilege envelope a subagent's execution runs under.
type Mode string

const (
	// ModeReadOnly sandboxes the subagent to read-only access (the default).
	ModeReadOnly Mode = "read-only"
	// ModeFullAuto grants workspace writes, inheriting network and tmp
	// settings from the caller's policy.
	ModeFullAuto Mode = "full-auto"
	// ModeDangerFullAccess disables sandboxing entirely.
	ModeDangerFullAccess Mode = "danger-full-access"
)

// ParseMode maps an accepted spelling to a Mode. Matching is case-insensitive
// and accepts both hyphen and underscore separators. Unrecognized spellings
// return ("", false).
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read-only", "readonly":
		return ModeReadOnly, true
	case "full-auto", "full_auto":
		return ModeFullAuto, true
	case "danger-full-access", "danger_full_access", "danger":
		return ModeDangerFullAccess, true
	}
	return "", false
}

// Definition describes a named subagent loaded from a document file.
// It is immutable once constructed by discovery.
type Definition struct {
	// Name is the unique identifier, derived from the source file's base name.
	Name string

	// Path is the filesystem location the definition was loaded from.
	// Provenance only; the file is never re-read.
	Path string

	// SystemPrompt is the document body after frontmatter extraction. It
	// becomes the delegated execution's sole instruction source.
	SystemPrompt string

	// Description is an optional short summary shown to the dispatcher.
	Description string

	// ToolsAllowed and ToolsBlocked hold tool-name patterns in declaration
	// order. They may overlap; ToolAllowed resolves the combination.
	ToolsAllowed []string
	ToolsBlocked []string

	// Mode is the declared privilege envelope. Empty means undeclared;
	// EffectiveMode resolves the default.
	Mode Mode
}

// EffectiveMode returns the declared mode, defaulting to ModeReadOnly.
func (d *Definition) EffectiveMode() Mode {
	if d.Mode == "" {
		return ModeReadOnly
	}
	return d.Mode
}

// ToolAllowed reports whether the named tool passes the definition's
// allow/block lists. Blocked patterns win over allowed ones; an empty allow
// list permits everything not blocked. Patterns support doublestar globs,
// e.g. "mcp__context7__*".
func (d *Definition) ToolAllowed(name string) bool {
	for _, pattern := range d.ToolsBlocked {
		if matchTool(pattern, name) {
			return false
		}
	}
	if len(d.ToolsAllowed) == 0 {
		return true
	}
	for _, pattern := range d.ToolsAllowed {
		if matchTool(pattern, name) {
			return true
		}
	}
	return false
}

func matchTool(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
