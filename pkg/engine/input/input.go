package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("interrupted")

// decodeKey turns the bytes of one key press into a binding code.
// Escape sequences for the arrow keys (CSI and SS3) become arrow_*; unknown
// sequences yield "".
func decodeKey(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	if buf[0] == 0x1b {
		if len(buf) == 1 {
			return "escape"
		}
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			switch buf[2] {
			case 'A':
				return "arrow_up"
			case 'B':
				return "arrow_down"
			case 'C':
				return "arrow_right"
			case 'D':
				return "arrow_left"
			}
		}
		return ""
	}

	switch b := buf[0]; {
	case b == '\r' || b == '\n':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// readKey reads one key press from r. Arrow keys arrive as a single read of
// their full escape sequence in raw mode.
func readKey(r io.Reader) (string, error) {
	buf := make([]byte, 8)
	n, err := r.Read(buf)
	if err != nil {
		return "", err
	}
	if n > 0 && buf[0] == 3 {
		return "", ErrInterrupted
	}
	return decodeKey(buf[:n]), nil
}

// ReadKey puts the terminal into raw mode, reads a single key press and restores
// the terminal. It returns the binding code for the key ("w", "arrow_up", "enter").
func ReadKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return readKey(os.Stdin)
}
