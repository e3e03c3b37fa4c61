package edit

import (
	"lineedit/internal/command"
	"lineedit/internal/text"
)

// Action is a command together with the payload Char(g) needs that a bare
// closed enum value cannot carry. Every other command ignores Rune.
type Action struct {
	Cmd  command.Command
	Rune string
}

// Simple wraps a payload-less command as an Action.
func Simple(c command.Command) Action { return Action{Cmd: c} }

// CharAction wraps the Char(g) command with its grapheme payload.
func CharAction(g string) Action { return Action{Cmd: command.Char, Rune: g} }

// Update folds one action into state, consulting/mutating clip only for
// Kill_ring_save (write) and Yank (read). It never performs I/O (spec §4.2).
func Update(s State, clip *Clipboard, a Action) State {
	if s.Mode == ModeSelection {
		return updateSelection(s, clip, a)
	}
	return updateEdition(s, clip, a)
}

func updateSelection(s State, clip *Clipboard, a Action) State {
	switch a.Cmd {
	case command.Nop:
		return s
	case command.ForwardChar:
		if next, ok := s.SelCursor.Next(); ok {
			s.SelCursor = next
		}
		return s
	case command.BackwardChar:
		if prev, ok := s.SelCursor.Prev(); ok {
			s.SelCursor = prev
		}
		return s
	case command.BeginningOfLine:
		s.SelCursor = s.SelText.Left()
		return s
	case command.EndOfLine:
		s.SelCursor = s.SelText.Right()
		return s
	case command.KillRingSave:
		lo := text.Min(s.Mark, s.SelCursor)
		hi := text.Max(s.Mark, s.SelCursor)
		clip.Set(s.SelText.Sub(lo, hi))
		return State{
			Mode:    ModeEdition,
			Before:  s.SelText.Sub(s.SelText.Left(), lo),
			After:   s.SelText.Sub(hi, s.SelText.Right()),
			History: s.History,
		}
	default:
		return updateEdition(reset(s), clip, a)
	}
}

func updateEdition(s State, clip *Clipboard, a Action) State {
	switch a.Cmd {
	case command.Nop:
		return s

	case command.Char:
		s.Before = text.Concat(s.Before, text.New(a.Rune))
		return s

	case command.SetMark:
		full := text.Concat(s.Before, s.After)
		at := full.PointerAt(s.Before.Len())
		return State{
			Mode:      ModeSelection,
			SelText:   full,
			Mark:      at,
			SelCursor: at,
			History:   s.History,
		}

	case command.Yank:
		s.Before = text.Concat(s.Before, clip.Get())
		return s

	case command.BackwardDeleteChar:
		if rest, _, ok := s.Before.ChopSuffix(); ok {
			s.Before = rest
		}
		return s

	case command.ForwardDeleteChar:
		if rest, _, ok := s.After.ChopPrefix(); ok {
			s.After = rest
		}
		return s

	case command.BeginningOfLine:
		s.After = text.Concat(s.Before, s.After)
		s.Before = text.Text{}
		return s

	case command.EndOfLine:
		s.Before = text.Concat(s.Before, s.After)
		s.After = text.Text{}
		return s

	case command.KillLine:
		s.After = text.Text{}
		return s

	case command.HistoryPrevious:
		if len(s.History.Past) == 0 {
			return s
		}
		line := s.History.Past[0]
		s.History.Future = append([]text.Text{text.Concat(s.Before, s.After)}, s.History.Future...)
		s.History.Past = s.History.Past[1:]
		s.Before = line
		s.After = text.Text{}
		return s

	case command.HistoryNext:
		if len(s.History.Future) == 0 {
			return s
		}
		line := s.History.Future[0]
		s.History.Past = append([]text.Text{text.Concat(s.Before, s.After)}, s.History.Past...)
		s.History.Future = s.History.Future[1:]
		s.Before = line
		s.After = text.Text{}
		return s

	case command.BackwardChar:
		if s.Before.Empty() {
			return s
		}
		rest, moved, _ := s.Before.ChopSuffix()
		s.Before = rest
		s.After = text.Concat(text.New(moved), s.After)
		return s

	case command.ForwardChar:
		if s.After.Empty() {
			return s
		}
		rest, moved, _ := s.After.ChopPrefix()
		s.After = rest
		s.Before = text.Concat(s.Before, text.New(moved))
		return s

	case command.BackwardDeleteWord:
		s.Before = deleteTrailingWord(s.Before)
		return s

	case command.ForwardDeleteWord:
		s.After = deleteLeadingWord(s.After)
		return s

	default:
		// Insert and any other unhandled command are reserved no-ops
		// (spec §9 Open Question (d)).
		return s
	}
}

// deleteTrailingWord strips trailing blanks from t, then the run of
// non-blank graphemes before them (a standard backward-kill-word).
func deleteTrailingWord(t text.Text) text.Text {
	for {
		rest, g, ok := t.ChopSuffix()
		if !ok || !text.IsBlank(g) {
			break
		}
		t = rest
	}
	for {
		rest, g, ok := t.ChopSuffix()
		if !ok || text.IsBlank(g) {
			break
		}
		t = rest
	}
	return t
}

// deleteLeadingWord strips leading blanks from t, then the following run of
// non-blank graphemes (a standard forward-kill-word).
func deleteLeadingWord(t text.Text) text.Text {
	for {
		rest, g, ok := t.ChopPrefix()
		if !ok || !text.IsBlank(g) {
			break
		}
		t = rest
	}
	for {
		rest, g, ok := t.ChopPrefix()
		if !ok || text.IsBlank(g) {
			break
		}
		t = rest
	}
	return t
}
