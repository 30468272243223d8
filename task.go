package subagent

import (
	"context"
	"sync"
)

// Status is the terminal state of a subagent invocation.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// Outcome is the terminal result of one invocation. Exactly one Outcome is
// produced per run.
type Outcome struct {
	Status Status

	// Output is the last agent message recorded before the run ended. Empty
	// when none was produced or the failure path cleared it.
	Output string

	// Err describes the failure for StatusFailed, empty otherwise.
	Err string
}

// Task supervises a single subagent invocation: it emits started/finished
// lifecycle events, runs the definition through the conversation engine, and
// races cancellation against the engine's event stream. A Task runs exactly
// once and holds no state across runs.
type Task struct {
	id         string
	definition Definition
	finishOnce sync.Once
}

// NewTask creates a Task for one run of the given definition. The definition
// is copied in; later mutation of the caller's value has no effect.
func NewTask(def Definition) *Task {
	return &Task{
		id:         generateID(PrefixInvocation),
		definition: def,
	}
}

// ID returns the invocation identifier carried on this task's lifecycle events.
func (t *Task) ID() string { return t.id }

// Definition returns the definition this task runs.
func (t *Task) Definition() Definition { return t.definition }

// Run executes the invocation to completion and returns the final output,
// empty if none was recorded. Run never returns an error: failures are
// encoded in the finished lifecycle event's status and error fields.
//
// Cancelling ctx cancels the delegated run; the engine receives a child
// scope, so its underlying work is torn down without the task tracking it.
func (t *Task) Run(ctx context.Context, sink EventSink, tc *TurnContext, input []Input) string {
	sink.Publish(ctx, &InvocationStartedEvent{
		InvocationID: t.id,
		Definition:   t.definition,
	})

	outcome := t.run(ctx, tc, input)
	t.finish(ctx, sink, outcome)
	return outcome.Output
}

// Abort tears the invocation down from outside the normal control path, for
// example at scheduler shutdown. It publishes the finished event with
// StatusCancelled and performs no other cleanup. The once latch makes the
// emission idempotent, so an Abort overlapping a finishing Run cannot
// double-emit.
func (t *Task) Abort(ctx context.Context, sink EventSink) {
	t.finish(ctx, sink, Outcome{Status: StatusCancelled})
}

// finish publishes the finished lifecycle event exactly once per invocation.
func (t *Task) finish(ctx context.Context, sink EventSink, outcome Outcome) {
	t.finishOnce.Do(func() {
		sink.Publish(ctx, &InvocationFinishedEvent{
			InvocationID: t.id,
			Definition:   t.definition,
			Status:       outcome.Status,
			Output:       outcome.Output,
			Err:          outcome.Err,
		})
	})
}

func (t *Task) run(ctx context.Context, tc *TurnContext, input []Input) Outcome {
	cfg := t.delegateConfig(tc)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle, err := tc.Engine.StartOneShot(runCtx, cfg, input, Source{Subagent: t.definition.Name})
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err.Error()}
	}

	var output string
	status := StatusCompleted

loop:
	for {
		select {
		case <-ctx.Done():
			// Cancellation wins; buffered events are discarded unread.
			status = StatusCancelled
			break loop
		case ev, ok := <-handle.Events():
			if !ok {
				// Broken stream is an external interruption, not a failure.
				status = StatusCancelled
				break loop
			}
			switch e := ev.(type) {
			case *AgentMessageEvent:
				output = e.Message
			case *TaskCompleteEvent:
				break loop
			case *TurnAbortedEvent:
				status = StatusCancelled
				break loop
			case *ErrorEvent:
				return Outcome{Status: StatusFailed, Err: e.Message}
			}
		}
	}

	return Outcome{Status: status, Output: output}
}

// delegateConfig clones the caller's configuration and rewrites it so the
// definition's system prompt is the sole instruction source and the declared
// mode's sandbox policy applies.
func (t *Task) delegateConfig(tc *TurnContext) *Config {
	cfg := tc.Config.Clone()
	cfg.SandboxPolicy = PolicyForMode(t.definition.EffectiveMode(), tc.SandboxPolicy)
	cfg.ApprovalPolicy = ApprovalNever
	cfg.BaseInstructions = t.definition.SystemPrompt
	cfg.DeveloperInstructions = ""
	cfg.UserInstructions = ""
	cfg.ProjectDocMaxBytes = 0
	return cfg
}
