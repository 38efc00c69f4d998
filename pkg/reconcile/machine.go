package reconcile

// Action is a decision taken on one failing link
type Action int

const (
	// ActionSkip leaves the record as it is
	ActionSkip Action = iota
	// ActionAccept re-baselines both digests to the current content
	ActionAccept
	// ActionEdit replaces one or more fields of the record
	ActionEdit
	// ActionRemove deletes the record
	ActionRemove
)

// Actions lists every action in menu order
var Actions = []Action{ActionAccept, ActionEdit, ActionRemove, ActionSkip}

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionEdit:
		return "edit"
	case ActionRemove:
		return "remove"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// EffectKind is the store change an action asks for
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectAccept
	EffectEdit
	EffectRemove
)

func (k EffectKind) String() string {
	switch k {
	case EffectAccept:
		return "accept"
	case EffectEdit:
		return "edit"
	case EffectRemove:
		return "remove"
	default:
		return "none"
	}
}

// Effect names the change to apply to one record
type Effect struct {
	Kind     EffectKind
	RecordID string
}

// State is the position of a session over its items. A state whose position
// has reached the number of items is Done.
type State struct {
	Pos   int
	Items []string
}

// Start returns the state presenting the first of ids
func Start(ids []string) State {
	return State{Items: ids}
}

// Done reports whether every item has been handled
func (s State) Done() bool {
	return s.Pos >= len(s.Items)
}

// Current returns the id being presented, or "" when done
func (s State) Current() string {
	if s.Done() {
		return ""
	}
	return s.Items[s.Pos]
}

// Transition is the decision function. Every known action on a presenting
// state advances by one; Done and unknown actions leave the state unchanged
// with no effect.
func Transition(s State, a Action) (State, Effect) {
	if s.Done() {
		return s, Effect{Kind: EffectNone}
	}

	id := s.Items[s.Pos]
	var kind EffectKind
	switch a {
	case ActionAccept:
		kind = EffectAccept
	case ActionEdit:
		kind = EffectEdit
	case ActionRemove:
		kind = EffectRemove
	case ActionSkip:
		kind = EffectNone
	default:
		return s, Effect{Kind: EffectNone}
	}

	next := s
	next.Pos++
	return next, Effect{Kind: kind, RecordID: id}
}
