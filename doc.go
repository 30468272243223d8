// Package subagent implements the lifecycle of delegated subagent work
// inside an agent-orchestration runtime: discovering declarative definitions
// from markdown files and running one definition as a supervised, cancellable
// unit of work.
//
// # Discovery
//
// Definitions are plain .md files with an optional frontmatter block:
//
//	---
//	description: "Reviews diffs for style issues"
//	tools_allowed: Read, Grep
//	mode: read-only
//	---
//	You are a meticulous code reviewer...
//
// Files are discovered across a project-scoped and a user-scoped directory,
// with project definitions shadowing same-named user definitions:
//
//	defs := subagent.Discover(cwd, subagent.DefaultLocator())
//
// # Invocation
//
// A Task runs one definition through an external conversation [Engine],
// publishing started/finished lifecycle events to an [EventSink] and
// resolving to a Completed, Failed, or Cancelled outcome:
//
//	task := subagent.NewTask(def)
//	output := task.Run(ctx, sink, turnCtx, input)
//
// Run never returns an error: failures are encoded in the finished event's
// status and error fields. The finished event is emitted exactly once per
// invocation, whether the task ends normally, is cancelled through ctx, or is
// torn down via [Task.Abort].
package subagent
