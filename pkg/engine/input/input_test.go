package input

import (
	"bytes"
	"testing"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte{0x1b, '[', 'A'}, "arrow_up"},
		{[]byte{0x1b, 'O', 'B'}, "arrow_down"},
		{[]byte{0x1b, '[', 'C'}, "arrow_right"},
		{[]byte{0x1b, '[', 'D'}, "arrow_left"},
		{[]byte{0x1b}, "escape"},
		{[]byte{0x1b, '[', 'Z'}, ""},
		{[]byte{'\r'}, "enter"},
		{[]byte{' '}, "space"},
		{[]byte{'W'}, "W"},
		{[]byte{'?'}, "?"},
		{[]byte{0x01}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := decodeKey(tt.in); got != tt.want {
			t.Errorf("decodeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadKey_CtrlC(t *testing.T) {
	if _, err := readKey(bytes.NewReader([]byte{3})); err != ErrInterrupted {
		t.Errorf("readKey(Ctrl+C) error = %v, want ErrInterrupted", err)
	}
	code, err := readKey(bytes.NewReader([]byte{'d'}))
	if err != nil || code != "d" {
		t.Errorf("readKey(d) = (%q, %v), want (\"d\", nil)", code, err)
	}
}
