package subagent

import "strings"

// frontmatter holds the metadata extracted from a document's leading block.
// Zero value means no metadata was present.
type frontmatter struct {
	description  string
	toolsAllowed []string
	toolsBlocked []string
	mode         Mode
}

// parseFrontmatter extracts the optional metadata block at the beginning of
// content and returns it with the remaining body. The body is the text after
// the closing marker's line, byte-for-byte, so original line endings survive.
//
// Inputs without a leading "---" line, and inputs whose block is never
// closed, are returned whole as the body with empty metadata. The parser
// never fails: malformed lines are skipped, unknown keys ignored.
func parseFrontmatter(content string) (frontmatter, string) {
	var meta frontmatter

	first, offset := nextSegment(content, 0)
	if strings.TrimSpace(first) != "---" {
		return meta, content
	}

	var parsed frontmatter
	closed := false
	consumed := offset

	for consumed < len(content) {
		segment, next := nextSegment(content, consumed)
		line := strings.TrimSpace(segment)
		consumed = next

		if line == "---" {
			closed = true
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if key, value, ok := strings.Cut(line, ":"); ok {
			applyField(&parsed, key, value)
		}
	}

	if !closed {
		// Unterminated block: treat the input as a plain document.
		return meta, content
	}
	return parsed, content[consumed:]
}

// nextSegment returns the line starting at offset including its terminator,
// plus the offset of the following line.
func nextSegment(content string, offset int) (string, int) {
	rest := content[offset:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i+1], offset + i + 1
	}
	return rest, len(content)
}

func applyField(meta *frontmatter, key, value string) {
	val := unquote(strings.TrimSpace(value))
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "description":
		meta.description = val
	case "tools_allowed", "tools-allowed":
		meta.toolsAllowed = splitList(val)
	case "tools_blocked", "tools-blocked":
		meta.toolsBlocked = splitList(val)
	case "mode":
		// Unrecognized spellings leave the mode unset rather than failing.
		meta.mode, _ = ParseMode(val)
	}
}

// unquote strips one pair of matching single or double quotes wrapping the
// whole value. No escape processing beyond that.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitList comma-splits a value, trimming items and dropping empty ones.
// Declaration order is preserved.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
