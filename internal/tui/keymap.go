package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/motion"
)

// Outcome is what a keystroke asks the application to do.
type Outcome struct {
	// Request is set when the keystroke completed a command.
	Request *command.Request
	// Quit ends the session.
	Quit bool
	// AddCursor adds a cursor on the line below the last selection.
	AddCursor bool
	// Collapse reduces the selection set to the first cursor.
	Collapse bool
}

// Keymap turns key events into requests. It keeps the state of partially
// typed commands between calls.
type Keymap struct {
	count  int
	op     command.Kind
	opKey  rune
	find   rune
	fanout bool
	visual bool
}

// Visual reports whether movements select instead of move.
func (k *Keymap) Visual() bool {
	return k.visual
}

// Pending describes the keys typed so far for the status line.
func (k *Keymap) Pending() string {
	var sb strings.Builder
	if k.fanout {
		sb.WriteByte(',')
	}
	if k.count > 0 {
		sb.WriteString(strconv.Itoa(k.count))
	}
	if k.opKey != 0 {
		sb.WriteRune(k.opKey)
	}
	if k.find != 0 {
		sb.WriteRune(k.find)
	}
	return sb.String()
}

// Reset drops any partially typed command.
func (k *Keymap) Reset() {
	visual := k.visual
	*k = Keymap{visual: visual}
}

// Feed consumes one key event.
func (k *Keymap) Feed(ev *tcell.EventKey) Outcome {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return Outcome{Quit: true}
	case tcell.KeyEscape:
		k.Reset()
		k.visual = false
		return Outcome{Collapse: true}
	case tcell.KeyCtrlA:
		return k.emit(command.Increment())
	case tcell.KeyCtrlX:
		return k.emit(command.Decrement())
	case tcell.KeyLeft:
		return k.movement(motion.Step(motion.DirectionLeft))
	case tcell.KeyRight:
		return k.movement(motion.Step(motion.DirectionRight))
	case tcell.KeyUp:
		return k.movement(motion.Step(motion.DirectionUp))
	case tcell.KeyDown:
		return k.movement(motion.Step(motion.DirectionDown))
	case tcell.KeyRune:
		return k.feedRune(ev.Rune())
	}
	return Outcome{}
}

func (k *Keymap) feedRune(r rune) Outcome {
	if k.find != 0 {
		forward := k.find == 'f' || k.find == 't'
		till := k.find == 't' || k.find == 'T'
		k.find = 0
		return k.movement(motion.Find(string(r), forward, till, 1))
	}

	switch {
	case r >= '1' && r <= '9', r == '0' && k.count > 0:
		k.count = k.count*10 + int(r-'0')
		return Outcome{}
	}

	switch r {
	case 'q':
		return Outcome{Quit: true}
	case 'v':
		k.visual = !k.visual
		return Outcome{}
	case 'C':
		k.Reset()
		return Outcome{AddCursor: true}
	case ',':
		k.fanout = true
		return Outcome{}
	case 'd', 'y':
		kind := command.KindDelete
		if r == 'y' {
			kind = command.KindCopy
		}
		if k.opKey == r {
			// dd and yy act on whole lines.
			return k.movement(motion.Line(motion.ModifierDown, 1))
		}
		k.op, k.opKey = kind, r
		return Outcome{}
	case 'f', 'F', 't', 'T':
		k.find = r
		return Outcome{}
	}

	if m, ok := runeMovements[r]; ok {
		return k.movement(m)
	}

	k.Reset()
	return Outcome{}
}

var runeMovements = map[rune]motion.Movement{
	'w': motion.Word(1),
	'b': motion.Word(-1),
	'W': {Kind: motion.KindBigWord, Modifier: motion.ModifierRight, Count: 1},
	'B': {Kind: motion.KindBigWord, Modifier: motion.ModifierLeft, Count: 1},
	'e': {Kind: motion.KindWordEnd, Modifier: motion.ModifierRight, Count: 1},
	'h': motion.Step(motion.DirectionLeft),
	'j': motion.Step(motion.DirectionDown),
	'k': motion.Step(motion.DirectionUp),
	'l': motion.Step(motion.DirectionRight),
	'0': motion.Line(motion.ModifierStart, 1),
	'$': motion.Line(motion.ModifierEnd, 1),
	'}': {Kind: motion.KindParagraph, Modifier: motion.ModifierDown, Count: 1},
	'{': {Kind: motion.KindParagraph, Modifier: motion.ModifierUp, Count: 1},
	')': {Kind: motion.KindSentence, Modifier: motion.ModifierRight, Count: 1},
	'(': {Kind: motion.KindSentence, Modifier: motion.ModifierLeft, Count: 1},
	']': {Kind: motion.KindSection, Modifier: motion.ModifierDown, Count: 1},
	'[': {Kind: motion.KindSection, Modifier: motion.ModifierUp, Count: 1},
}

// movement completes a command with m, applying the count prefix, a pending
// operator and select mode.
func (k *Keymap) movement(m motion.Movement) Outcome {
	if k.count > 0 {
		m = m.WithCount(k.count)
	}

	var req command.Request
	switch {
	case k.op != "":
		req = command.Request{Command: k.op, Movement: &m}
	case k.visual:
		req = command.Select(m)
	default:
		req = command.Move(m)
	}
	return k.emit(req)
}

func (k *Keymap) emit(req command.Request) Outcome {
	if k.fanout {
		req = command.Cursor([]int{-1}, req)
	}
	k.Reset()
	return Outcome{Request: &req}
}
