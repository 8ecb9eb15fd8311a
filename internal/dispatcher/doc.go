// Package dispatcher executes command requests against a host editor.
//
// The dispatcher is the failure boundary of the engine. It receives a
// command.Request, validates it before touching the host, builds an
// ExecutionContext for it and routes it to the handler registered for its
// command kind. The command set is closed: every kind in command.Kinds has a
// built-in handler, and handlers can be replaced but not added.
//
// # Commands
//
//   - move: resolve the movement from every active position and collapse each
//     selection to a cursor there.
//   - select: widen every selection to cover the movement range from its
//     active end. Selections never shrink and keep their direction.
//   - delete: compute every movement range against one snapshot, merge
//     overlapping ranges, and delete them in one batch. A cursor whose range
//     contained it lands on the range start.
//   - copy: select, run the clipboard host command, restore the selections.
//   - cursor: fan out. Run a nested action on a subset of selections chosen by
//     index and merge the results back. Invalid indices are logged and skipped.
//   - increment, decrement: add one to or subtract one from the next number
//     at or after every cursor, in one batch.
//   - commands: run named host commands in order.
//
// Every command that produces selections hands the host a normalized set:
// sorted by (start, end) with exact duplicates removed.
//
// # Execution
//
// When a request is executed:
//
//  1. The request is validated (unknown commands and malformed movements
//     fail here, before any host call)
//  2. An ExecutionContext is built with the host, resolver and a logger
//     carrying the request id
//  3. Pre-dispatch hooks run and may cancel the request
//  4. The handler runs, with optional panic recovery
//  5. Post-dispatch hooks run
//  6. The outcome is logged and metrics are recorded (if enabled)
//
// # Usage
//
//	d := dispatcher.NewWithDefaults(dispatcher.WithLogger(logger))
//	h := host.NewMemoryFromString("hello world")
//
//	sels, err := d.Run(ctx, h, command.Move(motion.Word(1)))
//
// Execute returns the full handler.Result instead of an error:
//
//	result := d.Execute(ctx, h, command.Delete(motion.Word(2)))
//	if result.IsError() {
//	    // result.Error, result.RequestID
//	}
package dispatcher
