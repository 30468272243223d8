package subagent

import (
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/armatrix/subagent-sdk-go/internal/schema"
)

// TaskInput is the input contract for a dispatcher's Task tool: the caller
// names a discovered subagent and supplies the prompt to delegate.
type TaskInput struct {
	AgentName string `json:"agent_name" jsonschema:"required,description=Name of the subagent to invoke"`
	Prompt    string `json:"prompt" jsonschema:"required,description=Task description for the subagent"`
}

// TaskToolSchema returns the input schema a dispatcher registers for its
// Task tool.
func TaskToolSchema() anthropic.ToolInputSchemaParam {
	return schema.Generate[TaskInput]()
}

// FormatDefinitionsPrompt renders discovered definitions as a block a
// dispatcher can append to its system prompt so the model knows which
// subagents it may invoke.
func FormatDefinitionsPrompt(defs []Definition) string {
	if len(defs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Available Subagents\n\n")

	for _, def := range defs {
		sb.WriteString("## ")
		sb.WriteString(def.Name)
		sb.WriteString("\n\n")
		if def.Description != "" {
			sb.WriteString(def.Description)
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}
