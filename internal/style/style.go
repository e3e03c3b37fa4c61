// Package style models the "styled-text primitive" spec §1 and §9 say is an
// external collaborator: a small finite alphabet of style directives plus
// plain text fragments, flattened to ANSI escapes by
// github.com/muesli/termenv (the profile-aware styling primitive already
// pulled transitively into the teacher's dependency graph via
// lipgloss/glamour) or, for non-tty output, stripped entirely.
package style

import "github.com/muesli/termenv"

// Kind is one alternative of the styled-text alphabet described in spec §9:
// "{Reset, Bold, Underlined, ..., Text(s)}".
type Kind int

const (
	KindText Kind = iota
	KindReset
	KindBold
	KindUnderline
)

// Span is one element of a styled-text sequence.
type Span struct {
	Kind Kind
	Text string // meaningful only when Kind == KindText
}

// Text wraps a plain fragment.
func Text(s string) Span { return Span{Kind: KindText, Text: s} }

// Reset marks the end of any open style.
func Reset() Span { return Span{Kind: KindReset} }

// Bold opens bold styling for subsequent Text spans, until Reset.
func Bold() Span { return Span{Kind: KindBold} }

// Underline opens underline styling for subsequent Text spans, until Reset.
func Underline() Span { return Span{Kind: KindUnderline} }

// Sequence is an ordered list of style directives and text fragments, the
// unit the renderer (spec §4.4) composes and hands to the terminal service.
type Sequence []Span

// Append returns a new sequence with more spans appended.
func (s Sequence) Append(more ...Span) Sequence {
	return append(append(Sequence(nil), s...), more...)
}

// Render flattens the sequence to an ANSI-escaped string using termenv's
// default output profile, applying each open style to the Text spans that
// follow it until the next Reset.
func Render(seq Sequence) string {
	var out string
	bold, underline := false, false
	for _, span := range seq {
		switch span.Kind {
		case KindReset:
			bold, underline = false, false
		case KindBold:
			bold = true
		case KindUnderline:
			underline = true
		case KindText:
			st := termenv.String(span.Text)
			if bold {
				st = st.Bold()
			}
			if underline {
				st = st.Underline()
			}
			out += st.String()
		}
	}
	return out
}

// StripStyles discards every directive and concatenates the plain text, for
// the non-tty fallback path (spec §6).
func StripStyles(seq Sequence) string {
	var out string
	for _, span := range seq {
		if span.Kind == KindText {
			out += span.Text
		}
	}
	return out
}
