package subagent

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/shopspring/decimal"
)

// ApprovalPolicy controls when a delegated execution may prompt for approval.
type ApprovalPolicy string

const (
	ApprovalUnlessTrusted ApprovalPolicy = "untrusted"
	ApprovalOnFailure     ApprovalPolicy = "on-failure"
	ApprovalOnRequest     ApprovalPolicy = "on-request"
	ApprovalNever         ApprovalPolicy = "never"
)

// Config is the execution configuration handed to the conversation engine
// for one delegated run.
type Config struct {
	// Model selects the model for the delegated conversation.
	Model anthropic.Model

	// SandboxPolicy is the permission set the run executes under.
	SandboxPolicy SandboxPolicy

	// ApprovalPolicy controls approval prompting during the run.
	ApprovalPolicy ApprovalPolicy

	// BaseInstructions replaces the engine's built-in instruction set when
	// non-empty.
	BaseInstructions string

	// DeveloperInstructions and UserInstructions layer additional guidance on
	// top of the base instructions.
	DeveloperInstructions string
	UserInstructions      string

	// ProjectDocMaxBytes caps how much repository documentation the engine
	// injects into the context. Zero disables injection.
	ProjectDocMaxBytes int

	// MaxTurns limits loop iterations. Zero means unlimited.
	MaxTurns int

	// MaxBudget limits delegated spend in USD. Zero means unlimited.
	MaxBudget decimal.Decimal
}

// Clone returns a copy of the configuration safe to mutate independently of
// the original.
func (c *Config) Clone() *Config {
	out := *c
	out.SandboxPolicy.WritableRoots = append([]string(nil), c.SandboxPolicy.WritableRoots...)
	return &out
}

// TurnContext carries the caller's execution state into an invocation.
type TurnContext struct {
	// Engine runs delegated conversations.
	Engine Engine

	// Config is the caller's current configuration; each invocation clones
	// and overrides it, never mutating the original.
	Config *Config

	// SandboxPolicy is the policy the caller's own turn runs under. It seeds
	// full-auto derivation for the delegated run.
	SandboxPolicy SandboxPolicy

	// Cwd is the caller's working directory.
	Cwd string
}

// Input is one user input item for a delegated run.
type Input struct {
	Text string
}

// Source tags a delegated run with the subagent that requested it.
type Source struct {
	Subagent string
}
