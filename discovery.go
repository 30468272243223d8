package subagent

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Well-known subpaths under each search root.
const (
	configDirName    = ".agents"
	subagentsDirName = "subagents"
	definitionExt    = ".md"
)

// Locator resolves the filesystem locations Discover searches. Both
// resolvers are explicit values, resolved once by the caller, so discovery
// stays a deterministic function of its inputs.
type Locator struct {
	// HomeDir resolves the user-scoped configuration root.
	HomeDir func() (string, error)

	// ProjectRoot resolves the nearest enclosing version-controlled project
	// root for the working directory, reporting false when there is none.
	ProjectRoot func(cwd string) (string, bool)
}

// DefaultLocator returns a Locator backed by the process environment.
// AGENT_HOME overrides the home root when set; project roots are found by
// walking up from the working directory to the nearest .git entry.
func DefaultLocator() Locator {
	agentHome := os.Getenv("AGENT_HOME")
	return Locator{
		HomeDir: func() (string, error) {
			if agentHome != "" {
				return agentHome, nil
			}
			return os.UserHomeDir()
		},
		ProjectRoot: findGitRoot,
	}
}

// findGitRoot walks up from dir to the nearest directory containing a .git
// entry.
func findGitRoot(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// SearchRoots returns candidate definition directories in priority order:
// the project-scoped directory when resolvable, then the home-scoped one.
// Unresolvable roots are omitted; an empty result is not an error.
func SearchRoots(cwd string, loc Locator) []string {
	var roots []string
	if loc.ProjectRoot != nil {
		if root, ok := loc.ProjectRoot(cwd); ok {
			roots = append(roots, filepath.Join(root, configDirName, subagentsDirName))
		}
	}
	if loc.HomeDir != nil {
		if home, err := loc.HomeDir(); err == nil && home != "" {
			roots = append(roots, filepath.Join(home, configDirName, subagentsDirName))
		}
	}
	return roots
}

// Discover loads definitions across all search roots, deduplicating by name.
// A higher-priority root's definition shadows a lower-priority root's
// same-named one. The merged result is sorted by name.
func Discover(cwd string, loc Locator) []Definition {
	var defs []Definition
	seen := make(map[string]bool)

	for _, root := range SearchRoots(cwd, loc) {
		for _, def := range DiscoverIn(root) {
			if seen[def.Name] {
				continue
			}
			seen[def.Name] = true
			defs = append(defs, def)
		}
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// DiscoverIn loads every eligible definition file in dir, sorted by name.
// Eligible files are regular files with a .md extension (case-insensitive).
// Unreadable files and files with invalid encoding are skipped; a missing or
// unopenable directory yields an empty result.
func DiscoverIn(dir string) []Definition {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var defs []Definition
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !strings.EqualFold(ext, definitionExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if name == "" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil || !utf8.Valid(data) {
			continue
		}

		meta, body := parseFrontmatter(string(data))
		defs = append(defs, Definition{
			Name:         name,
			Path:         path,
			SystemPrompt: body,
			Description:  meta.description,
			ToolsAllowed: meta.toolsAllowed,
			ToolsBlocked: meta.toolsBlocked,
			Mode:         meta.mode,
		})
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}
