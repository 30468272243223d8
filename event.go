package subagent

import "github.com/shopspring/decimal"

// EventType identifies the kind of a lifecycle event. The set is open ended:
// engines may emit kinds this package does not know about, and consumers
// ignore what they do not handle.
type EventType string

const (
	EventAgentMessage       EventType = "agent_message"
	EventTaskComplete       EventType = "task_complete"
	EventTurnAborted        EventType = "turn_aborted"
	EventError              EventType = "error"
	EventInvocationStarted  EventType = "subagent_invocation_started"
	EventInvocationFinished EventType = "subagent_invocation_finished"
)

// Event is the interface implemented by all lifecycle events, both those
// consumed from an engine Handle and those published to an EventSink.
type Event interface {
	Type() EventType
}

// AgentMessageEvent carries one complete assistant message. Later messages
// supersede earlier ones as the invocation's running output.
type AgentMessageEvent struct {
	Message string
}

func (e *AgentMessageEvent) Type() EventType { return EventAgentMessage }

// Usage tracks token consumption for a delegated run.
type Usage struct {
	InputTokens              int64
	OutputTokens             int64
	CacheReadInputTokens     int64
	CacheCreationInputTokens int64
}

// TaskCompleteEvent signals that the engine finished the delegated turn
// normally.
type TaskCompleteEvent struct {
	LastAgentMessage string
	Usage            Usage
	TotalCost        decimal.Decimal
}

func (e *TaskCompleteEvent) Type() EventType { return EventTaskComplete }

// TurnAbortedEvent signals that the engine's turn was interrupted.
type TurnAbortedEvent struct {
	Reason string
}

func (e *TurnAbortedEvent) Type() EventType { return EventTurnAborted }

// ErrorEvent reports a fatal engine error that ends the delegated run.
type ErrorEvent struct {
	Message string
}

func (e *ErrorEvent) Type() EventType { return EventError }

// InvocationStartedEvent is published when a subagent invocation begins.
type InvocationStartedEvent struct {
	InvocationID string
	Definition   Definition
}

func (e *InvocationStartedEvent) Type() EventType { return EventInvocationStarted }

// InvocationFinishedEvent is published exactly once when a subagent
// invocation reaches a terminal status.
type InvocationFinishedEvent struct {
	InvocationID string
	Definition   Definition
	Status       Status

	// Output is the final recorded output. Empty when the run never produced
	// one or when the terminal path cleared it.
	Output string

	// Err is the failure description for StatusFailed, empty otherwise.
	Err string
}

func (e *InvocationFinishedEvent) Type() EventType { return EventInvocationFinished }
