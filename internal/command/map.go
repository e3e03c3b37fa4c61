package command

import "lineedit/internal/text"

// Map implements the exact key→command table from spec §4.1. Unlisted keys
// map to Nop.
//
// C-n is bound to BackwardChar and C-p to ForwardChar, the opposite of GNU
// Readline convention. This is preserved verbatim from the source this
// module was distilled from rather than "fixed" — see DESIGN.md's Open
// Question (a).
func Map(k Key) Command {
	switch k.Kind {
	case KindUp:
		return HistoryPrevious
	case KindDown:
		return HistoryNext
	case KindLeft:
		return BackwardChar
	case KindRight:
		return ForwardChar
	case KindEnter:
		return AcceptLine
	case KindHome:
		return BeginningOfLine
	case KindEnd:
		return EndOfLine
	case KindInsert:
		return Insert
	case KindBackspace:
		return BackwardDeleteChar
	case KindDelete:
		return ForwardDeleteChar
	case KindTab:
		return Complete
	case KindCtrl:
		return mapCtrl(k.Rune)
	case KindRune:
		if text.IsPrintable(string(k.Rune)) {
			return Char
		}
		return Nop
	default:
		return Nop
	}
}

func mapCtrl(r rune) Command {
	switch r {
	case '@':
		return SetMark
	case 'a':
		return BeginningOfLine
	case 'd':
		return Break
	case 'e':
		return EndOfLine
	case 'i':
		return Complete
	case 'j':
		return AcceptLine
	case 'k':
		return KillLine
	case 'l':
		return ClearScreen
	case 'm':
		return AcceptLine
	case 'n':
		return BackwardChar
	case 'p':
		return ForwardChar
	case 'r':
		return Refresh
	case 'w':
		return KillRingSave
	case 'y':
		return Yank
	case '?':
		return BackwardDeleteChar
	default:
		return Nop
	}
}
