package snake

import "strings"

// Intent is an abstract player command.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentPause
	IntentStart
	IntentRestart
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentPause:
		return "pause"
	case IntentStart:
		return "start"
	case IntentRestart:
		return "restart"
	default:
		return "none"
	}
}

// Direction returns the direction a movement intent maps to.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case IntentUp:
		return Up, true
	case IntentDown:
		return Down, true
	case IntentLeft:
		return Left, true
	case IntentRight:
		return Right, true
	default:
		return None, false
	}
}

// Controller is the part of Game the input router drives.
type Controller interface {
	SetDirection(d Direction)
	Pause()
	Start()
	Restart()
}

// DefaultBindings maps key symbols to intents. Symbols are matched in lower
// case; arrows, WASD and vi keys all steer.
func DefaultBindings() map[string]Intent {
	return map[string]Intent{
		"up": IntentUp, "arrowup": IntentUp, "w": IntentUp, "k": IntentUp,
		"down": IntentDown, "arrowdown": IntentDown, "s": IntentDown, "j": IntentDown,
		"left": IntentLeft, "arrowleft": IntentLeft, "a": IntentLeft, "h": IntentLeft,
		"right": IntentRight, "arrowright": IntentRight, "d": IntentRight, "l": IntentRight,
		" ": IntentPause, "space": IntentPause, "spacebar": IntentPause, "p": IntentPause,
		"enter": IntentStart,
		"r":     IntentRestart,
	}
}

// InputRouter translates key symbols into Controller calls. Unknown
// symbols are ignored.
type InputRouter struct {
	ctrl     Controller
	bindings map[string]Intent
}

// NewInputRouter creates a router with the default bindings.
func NewInputRouter(ctrl Controller) *InputRouter {
	return &InputRouter{ctrl: ctrl, bindings: DefaultBindings()}
}

// Bind maps an extra symbol to an intent. IntentNone removes the binding.
func (r *InputRouter) Bind(symbol string, intent Intent) {
	key := normalizeSymbol(symbol)
	if intent == IntentNone {
		delete(r.bindings, key)
		return
	}
	r.bindings[key] = intent
}

// Resolve returns the intent bound to symbol, or IntentNone.
func (r *InputRouter) Resolve(symbol string) Intent {
	return r.bindings[normalizeSymbol(symbol)]
}

// Route resolves symbol and dispatches it. It returns the intent handled,
// or IntentNone when the symbol is unbound.
func (r *InputRouter) Route(symbol string) Intent {
	intent := r.Resolve(symbol)
	r.Dispatch(intent)
	return intent
}

// Dispatch sends one intent to the controller.
func (r *InputRouter) Dispatch(intent Intent) {
	if d, ok := intent.Direction(); ok {
		r.ctrl.SetDirection(d)
		return
	}
	switch intent {
	case IntentPause:
		r.ctrl.Pause()
	case IntentStart:
		r.ctrl.Start()
	case IntentRestart:
		r.ctrl.Restart()
	}
}

func normalizeSymbol(s string) string {
	if s == " " {
		return s
	}
	return strings.ToLower(strings.TrimSpace(s))
}
