package ebiten

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazeadventure/pkg/engine/input"
)

// keyCode ties a physical key to the binding code the input layer understands
type keyCode struct {
	key    ebiten.Key
	code   string
	repeat bool // Held movement keys keep walking
}

var keyCodes = []keyCode{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyKPEnter, "enter", false},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyR, "r", false},
	{ebiten.KeySlash, "?", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.Key1, "1", false},
	{ebiten.Key2, "2", false},
	{ebiten.Key3, "3", false},
	{ebiten.Key4, "4", false},
	{ebiten.Key5, "5", false},
	{ebiten.Key6, "6", false},
	{ebiten.Key7, "7", false},
	{ebiten.Key8, "8", false},
}

// tableCodes are the codes keyCodes already reports. The bare space comes in as
// a typed character alongside "space".
var tableCodes = func() map[string]bool {
	codes := map[string]bool{" ": true}
	for _, kc := range keyCodes {
		codes[kc.code] = true
	}
	return codes
}()

// padCode ties a standard gamepad button to a binding code
type padCode struct {
	button ebiten.StandardGamepadButton
	code   string
	repeat bool
}

var padCodes = []padCode{
	{ebiten.StandardGamepadButtonLeftTop, "arrow_up", true},
	{ebiten.StandardGamepadButtonLeftBottom, "arrow_down", true},
	{ebiten.StandardGamepadButtonLeftLeft, "arrow_left", true},
	{ebiten.StandardGamepadButtonLeftRight, "arrow_right", true},
	{ebiten.StandardGamepadButtonRightBottom, "enter", false},
	{ebiten.StandardGamepadButtonRightLeft, "?", false},
	{ebiten.StandardGamepadButtonCenterLeft, "r", false},
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closed() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("[EBITEN] [INFO] Window opened (%dx%d)", w, h)
	}

	// Gamepad first, then keyboard
	intent := e.checkGamepadInput()
	if intent.Action == engineinput.ActionNone {
		intent = e.checkInput()
	}
	if intent.Action == engineinput.ActionNone {
		intent = typedIntent(ebiten.AppendInputChars(nil))
	}
	if intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}

	return nil
}

// checkInput maps the first triggered key to an intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, kc := range keyCodes {
		triggered := false
		if kc.repeat {
			key := kc.key
			triggered = e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+kc.code)
		} else {
			triggered = inpututil.IsKeyJustPressed(kc.key)
		}
		if triggered {
			return engineinput.IntentFor(engineinput.DeviceKeyboard, kc.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// typedIntent maps typed characters outside the key table, so keys rebound to
// any letter still reach the game
func typedIntent(chars []rune) engineinput.Intent {
	for _, r := range chars {
		code := strings.ToLower(string(r))
		if tableCodes[code] {
			continue
		}
		if intent := engineinput.IntentFor(engineinput.DeviceKeyboard, code); intent.Action != engineinput.ActionNone {
			return intent
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput checks every standard-layout gamepad for button presses
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, pc := range padCodes {
			triggered := false
			if pc.repeat {
				button := pc.button
				triggered = e.shouldRepeatKey(func() bool { return ebiten.IsStandardGamepadButtonPressed(id, button) }, padRepeatCode(id, pc.code))
			} else {
				triggered = inpututil.IsStandardGamepadButtonJustPressed(id, pc.button)
			}
			if triggered {
				return engineinput.IntentFor(engineinput.DeviceKeyboard, pc.code)
			}
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func padRepeatCode(id ebiten.GamepadID, code string) string {
	return fmt.Sprintf("pad_%d_%s", id, code)
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	return e.repeatAt(isPressed(), code, time.Now().UnixMilli())
}

// repeatAt is the clock-free core of shouldRepeatKey
func (e *EbitenRenderer) repeatAt(pressed bool, code string, now int64) bool {
	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]

	if !pressed {
		// Key released - clean up state
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{
			firstPressed: now,
			lastRepeat:   now,
		}
		return true
	}

	// Key is held - repeat once the initial delay has passed
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
