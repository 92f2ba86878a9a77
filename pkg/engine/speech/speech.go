// Package speech speaks announcements aloud for players using a screen reader.
package speech

import (
	"context"
	"errors"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoSynthesizer is returned when no speech command is installed
var ErrNoSynthesizer = errors.New("no speech synthesizer found")

// Speaker speaks text. Implementations must not block the caller.
type Speaker interface {
	Speak(text string)
}

// Silent discards every announcement
type Silent struct{}

// Speak does nothing
func (Silent) Speak(string) {}

// synthesizers in order of preference
var synthesizers = []string{"espeak-ng", "espeak", "spd-say", "say"}

// lookPath is swapped in tests
var lookPath = exec.LookPath

// CommandSpeaker speaks through an external text-to-speech command. A new
// announcement interrupts the one still playing, like a screen reader does.
type CommandSpeaker struct {
	path string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewCommandSpeaker picks the first installed synthesizer.
func NewCommandSpeaker() (*CommandSpeaker, error) {
	for _, name := range synthesizers {
		if path, err := lookPath(name); err == nil {
			log.Printf("[SPEECH] [INFO] using %s", path)
			return &CommandSpeaker{path: path}, nil
		}
	}
	return nil, ErrNoSynthesizer
}

// Path returns the synthesizer command in use
func (s *CommandSpeaker) Path() string {
	return s.path
}

// Speak starts speaking text and returns immediately.
func (s *CommandSpeaker) Speak(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	args, stdin := commandArgs(filepath.Base(s.path), text)
	cmd := exec.CommandContext(ctx, s.path, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("[SPEECH] [WARN] %v", err)
		cancel()
		return
	}
	go func() {
		_ = cmd.Wait()
		cancel()
	}()
}

// commandArgs keeps text from being read as an option. The getopt based
// synthesizers take it after "--"; say reads it from stdin.
func commandArgs(name, text string) (args []string, stdin string) {
	if name == "say" {
		return []string{"-f", "-"}, text
	}
	return []string{"--", text}, ""
}

// Close stops any announcement in progress
func (s *CommandSpeaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
