package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"

	"lineedit/internal/command"
	"lineedit/internal/style"
)

// TTY is the real Terminal, grounded on the raw-mode/poll/escape-decoding
// pattern of the REPL's runtime controller and input loop: raw mode via
// golang.org/x/term, a poll-then-read drain for JunkOld via
// golang.org/x/sys/unix, and a buffered CSI reader for arrow/function keys.
type TTY struct {
	in     *os.File
	out    *os.File
	rd     *bufio.Reader
	inFd   int
	outFd  int
	rawOld *xterm.State
}

var _ Terminal = (*TTY)(nil)

// NewTTY wraps the given stdin/stdout file descriptors.
func NewTTY(in, out *os.File) *TTY {
	return &TTY{
		in:    in,
		out:   out,
		rd:    bufio.NewReader(in),
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

func (t *TTY) StdinIsATTY() bool  { return isatty.IsTerminal(uintptr(t.inFd)) }
func (t *TTY) StdoutIsATTY() bool { return isatty.IsTerminal(uintptr(t.outFd)) }

func (t *TTY) Columns() int {
	cols, _, err := xterm.GetSize(t.outFd)
	if err != nil || cols <= 0 {
		return 80
	}
	return cols
}

func (t *TTY) WithRawMode(body func() error) error {
	old, err := xterm.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.rawOld = old
	defer func() {
		_ = xterm.Restore(t.inFd, old)
		t.rawOld = nil
	}()
	return body()
}

func (t *TTY) Write(s string) error {
	_, err := io.WriteString(t.out, s)
	return err
}

func (t *TTY) WriteChar(r rune) error {
	_, err := t.out.WriteString(string(r))
	return err
}

func (t *TTY) WriteSequence(seq style.Sequence) error {
	return t.Write(style.Render(seq))
}

func (t *TTY) Printc(seq style.Sequence) error {
	return t.WriteSequence(seq)
}

func (t *TTY) Printlc(seq style.Sequence) error {
	if err := t.WriteSequence(seq); err != nil {
		return err
	}
	return t.Write("\n")
}

func (t *TTY) ClearScreen() error {
	return t.Write("\x1b[H\x1b[2J")
}

// JunkOld drains bytes already buffered on stdin without blocking, per spec
// §4.5's "flush any buffered stdin bytes" requirement ahead of a password
// prompt. Grounded on runtimeController.readByteWithTimeout's
// poll-then-read pattern, with a zero timeout so it never waits for new
// input that hasn't arrived yet.
func (t *TTY) JunkOld() error {
	for t.rd.Buffered() > 0 {
		if _, err := t.rd.ReadByte(); err != nil {
			return err
		}
	}
	for {
		fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil || n <= 0 {
			return nil
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			return nil
		}
		var one [1]byte
		nr, err := unix.Read(t.inFd, one[:])
		if err != nil || nr != 1 {
			return nil
		}
	}
}

// ReadKey blocks for and decodes the next keystroke, recognizing the
// control bindings and CSI escape sequences spec §4.1 names.
func (t *TTY) ReadKey() (command.Key, error) {
	b, err := t.rd.ReadByte()
	if err != nil {
		return command.Key{}, err
	}
	switch {
	case b == 0x00:
		return command.Key{Kind: command.KindCtrl, Rune: '@'}, nil
	case b == 0x09:
		return command.Key{Kind: command.KindTab}, nil
	case b == 0x0a || b == 0x0d:
		return command.Key{Kind: command.KindEnter}, nil
	case b >= 0x01 && b <= 0x1a:
		return command.Key{Kind: command.KindCtrl, Rune: rune('a' + int(b) - 1)}, nil
	case b == 0x1b:
		return t.decodeEscape()
	case b == 0x7f, b == 0x08:
		return command.Key{Kind: command.KindBackspace}, nil
	case b < 0x80:
		return command.Key{Kind: command.KindRune, Rune: rune(b)}, nil
	default:
		r, err := t.decodeUTF8Rune(b)
		if err != nil {
			return command.Key{}, err
		}
		return command.Key{Kind: command.KindRune, Rune: r}, nil
	}
}

func (t *TTY) decodeEscape() (command.Key, error) {
	if t.rd.Buffered() == 0 {
		// Bare Esc: not in the spec's command table, so it resolves to Nop
		// via mapCtrl's default branch.
		return command.Key{Kind: command.KindCtrl, Rune: 0x1b}, nil
	}
	next, err := t.rd.ReadByte()
	if err != nil {
		return command.Key{}, err
	}
	if next != '[' && next != 'O' {
		return command.Key{Kind: command.KindCtrl, Rune: 0x1b}, nil
	}
	var csi []byte
	for {
		c, err := t.rd.ReadByte()
		if err != nil {
			return command.Key{}, err
		}
		csi = append(csi, c)
		if (c >= 'A' && c <= 'Z') || c == '~' {
			break
		}
	}
	return decodeCSI(csi), nil
}

func decodeCSI(csi []byte) command.Key {
	switch string(csi) {
	case "A":
		return command.Key{Kind: command.KindUp}
	case "B":
		return command.Key{Kind: command.KindDown}
	case "C":
		return command.Key{Kind: command.KindRight}
	case "D":
		return command.Key{Kind: command.KindLeft}
	case "H", "1~":
		return command.Key{Kind: command.KindHome}
	case "F", "4~":
		return command.Key{Kind: command.KindEnd}
	case "2~":
		return command.Key{Kind: command.KindInsert}
	case "3~":
		return command.Key{Kind: command.KindDelete}
	default:
		return command.Key{Kind: command.KindRune, Rune: 0}
	}
}

func (t *TTY) decodeUTF8Rune(first byte) (rune, error) {
	var size int
	switch {
	case first&0xE0 == 0xC0:
		size = 2
	case first&0xF0 == 0xE0:
		size = 3
	case first&0xF8 == 0xF0:
		size = 4
	default:
		return utf8.RuneError, nil
	}
	buf := make([]byte, size)
	buf[0] = first
	for i := 1; i < size; i++ {
		b, err := t.rd.ReadByte()
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}
	r, _ := utf8.DecodeRune(buf)
	return r, nil
}
