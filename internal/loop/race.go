package loop

import (
	"context"

	"lineedit/internal/command"
	"lineedit/internal/complete"
	"lineedit/internal/edit"
	"lineedit/internal/term"
)

// keyEvent carries a ReadKey result across a goroutine boundary.
type keyEvent struct {
	key command.Key
	err error
}

// raceOutcome is what a completion race settled on: at most one of
// applyState/possibilities is set, alongside the key that was read
// concurrently (per spec §4.5, the loop always dispatches that key once the
// race resolves).
type raceOutcome struct {
	applyState    *edit.State
	possibilities []string
	key           keyEvent
}

// runCompletionRace implements spec §4.5's "Completion race": the engine is
// first reset out of Selection, then the completer and the next keystroke
// run concurrently; whichever finishes first determines what happens next.
func runCompletionRace(t term.Terminal, es edit.State, completer Completer) raceOutcome {
	es = edit.Reset(es)

	ctx, cancel := context.WithCancel(context.Background())
	signal := newAbortSignal(ctx)

	compCh := make(chan complete.Result, 1)
	go func() {
		compCh <- completer(signal, es.Before, es.After)
	}()

	keyCh := make(chan keyEvent, 1)
	go func() {
		k, err := t.ReadKey()
		keyCh <- keyEvent{key: k, err: err}
	}()

	select {
	case ke := <-keyCh:
		// Typing won: fire the abort signal, but don't wait for the
		// completer to notice it. Its eventual result lands in the
		// buffered channel and is never read.
		cancel()
		return raceOutcome{key: ke}

	case res := <-compCh:
		cancel()
		switch res.Kind {
		case complete.CompleteWith:
			ns := edit.State{
				Mode:    edit.ModeEdition,
				Before:  res.Before,
				After:   res.After,
				History: es.History,
			}
			ke := <-keyCh
			return raceOutcome{applyState: &ns, key: ke}
		case complete.Possibilities:
			ke := <-keyCh
			return raceOutcome{possibilities: res.Words, key: ke}
		default: // complete.NoCompletion
			ke := <-keyCh
			return raceOutcome{key: ke}
		}
	}
}
