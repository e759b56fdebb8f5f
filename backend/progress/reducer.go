package progress

type ActionKind int

const (
	ActionSetModule ActionKind = iota
	ActionToggleCompleted
	ActionMarkCompleted
	ActionResetProgress
	ActionLoadProgress
	ActionAdvance
)

func (k ActionKind) String() string {
	switch k {
	case ActionSetModule:
		return "SET_MODULE"
	case ActionToggleCompleted:
		return "TOGGLE_COMPLETED"
	case ActionMarkCompleted:
		return "MARK_MODULE_COMPLETED"
	case ActionResetProgress:
		return "RESET_PROGRESS"
	case ActionLoadProgress:
		return "LOAD_PROGRESS"
	case ActionAdvance:
		return "ADVANCE"
	default:
		return "UNKNOWN"
	}
}

// State is the per-course view state. len(Completions) is the item count.
type State struct {
	CurrentIndex int    `json:"moduloActual"`
	Completions  []bool `json:"modulosCompletados"`
}

type Action struct {
	Kind        ActionKind
	Index       int
	Delta       int
	Completions []bool
}

func NewState(total int) State {
	return State{Completions: make([]bool, max(total, 0))}
}

func SetModule(index int) Action { return Action{Kind: ActionSetModule, Index: index} }
func Toggle(index int) Action    { return Action{Kind: ActionToggleCompleted, Index: index} }
func Mark(index int) Action      { return Action{Kind: ActionMarkCompleted, Index: index} }
func Reset() Action              { return Action{Kind: ActionResetProgress} }
func Load(stored []bool) Action  { return Action{Kind: ActionLoadProgress, Completions: stored} }
func Advance(delta int) Action   { return Action{Kind: ActionAdvance, Delta: delta} }

// Reduce returns the next state. s is never modified; actions that name an
// index outside the item list leave the state unchanged.
func Reduce(s State, a Action) State {
	total := len(s.Completions)
	next := State{CurrentIndex: s.CurrentIndex, Completions: Resize(s.Completions, total)}

	switch a.Kind {
	case ActionSetModule:
		if inRange(a.Index, total) {
			next.CurrentIndex = a.Index
		}
	case ActionToggleCompleted:
		if inRange(a.Index, total) {
			next.Completions[a.Index] = !next.Completions[a.Index]
		}
	case ActionMarkCompleted:
		if inRange(a.Index, total) {
			next.Completions[a.Index] = true
		}
	case ActionResetProgress:
		next = NewState(total)
	case ActionLoadProgress:
		next.Completions = Resize(a.Completions, total)
	case ActionAdvance:
		next.CurrentIndex = clamp(s.CurrentIndex+a.Delta, total)
	}
	next.CurrentIndex = clamp(next.CurrentIndex, total)
	return next
}

// Resize copies stored into a slice of length n, zero-padding or truncating.
func Resize(stored []bool, n int) []bool {
	out := make([]bool, max(n, 0))
	copy(out, stored)
	return out
}

// Percentage is round(100*done/total), 0 for an empty list.
func Percentage(completions []bool) int {
	total := len(completions)
	if total == 0 {
		return 0
	}
	done := 0
	for _, c := range completions {
		if c {
			done++
		}
	}
	return (200*done + total) / (2 * total)
}

func inRange(i, total int) bool {
	return i >= 0 && i < total
}

func clamp(i, total int) int {
	if total == 0 || i < 0 {
		return 0
	}
	if i > total-1 {
		return total - 1
	}
	return i
}
