// Package loop drives the input-loop concurrency protocol of spec §4.5: the
// read_line/read_password/read_keyword entry points, and the completion
// race that lets typing never block on a slow completer.
package loop

import (
	"context"

	"lineedit/internal/complete"
	"lineedit/internal/text"
)

// AbortSignal is the "one-shot cancellation token created fresh per
// completion" spec §9 calls for: a context.Context for the cooperative
// cancellation itself. Each completion race hands a completer its own
// signal over its own unshared result channel, so there is no cross-race
// identity to track beyond that.
type AbortSignal struct {
	ctx context.Context
}

// Done reports when the loop has moved on and the completer's result, if
// any, will be discarded.
func (a AbortSignal) Done() <-chan struct{} { return a.ctx.Done() }

// Aborted is a non-blocking check equivalent to selecting on Done.
func (a AbortSignal) Aborted() bool {
	select {
	case <-a.ctx.Done():
		return true
	default:
		return false
	}
}

func newAbortSignal(ctx context.Context) AbortSignal {
	return AbortSignal{ctx: ctx}
}

// Completer matches spec §4.5's "completer(edition_state, abort_signal) ->
// result": before/after are the current Edition split; the completer must
// observe signal and return promptly once it fires.
type Completer func(signal AbortSignal, before, after text.Text) complete.Result

// NoCompletion is the default completer (spec §6's complete=const
// No_completion): it always reports nothing matched.
func NoCompletion(AbortSignal, text.Text, text.Text) complete.Result {
	return complete.Result{Kind: complete.NoCompletion}
}
