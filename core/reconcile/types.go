package reconcile

// ActionType represents the decision taken for one incoming item.
type ActionType string

const (
	// ActionInsert adds an item that has no stored counterpart.
	ActionInsert ActionType = "insert"
	// ActionUpdate replaces the stored item with the incoming one.
	ActionUpdate ActionType = "update"
	// ActionSkip leaves the stored item untouched.
	ActionSkip ActionType = "skip"
)

// Adapter supplies the model-specific parts of a reconciliation.
type Adapter[T any] interface {
	// Name returns the unique name of this adapter (e.g., "publications").
	Name() string

	// Key returns the identity used to match incoming items against stored ones.
	Key(item T) string

	// ShouldReplace decides whether incoming supersedes stored. The returned
	// reason is recorded on the planned action.
	ShouldReplace(stored, incoming T) (replace bool, reason string)
}

// Action represents one planned decision.
type Action[T any] struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Reason explains why this action was chosen.
	Reason string `json:"reason"`

	// Item is the incoming item. Only meaningful for insert and update.
	Item T `json:"-"`
}

// Plan contains the ordered actions and their aggregate counts.
type Plan[T any] struct {
	// Actions are in the order the incoming items were given.
	Actions []Action[T] `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconcile plan.
type Summary struct {
	// Total is the number of incoming items considered.
	Total int `json:"total"`

	// Added counts planned inserts.
	Added int `json:"added"`

	// Updated counts planned replacements.
	Updated int `json:"updated"`

	// Skipped counts items left untouched.
	Skipped int `json:"skipped"`
}

// Options controls whether a computed plan is applied.
type Options struct {
	// DryRun computes the plan without persisting anything.
	DryRun bool
}
