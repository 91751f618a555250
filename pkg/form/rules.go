package form

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-adaptergen/pkg/settings"
)

// Matcher decides whether a rule applies to the supplied field.
type Matcher func(field settings.Field) bool

type rule struct {
	kind     ControlKind
	priority int
	match    Matcher
}

// Rules selects the control kind for a field from registered matchers. Higher
// priority wins; ties fall back to registration order. Fields no rule claims
// become input controls.
type Rules struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRules constructs a rule table with the built-in select and checkbox
// productions registered.
func NewRules() *Rules {
	r := &Rules{}
	r.registerBuiltins()
	return r
}

// Register adds a matcher producing the given control kind. The table is
// kept ordered by descending priority, ties in registration order.
func (r *Rules) Register(kind ControlKind, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	if strings.TrimSpace(string(kind)) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
	})
	sort.SliceStable(r.rules, func(i, j int) bool {
		return r.rules[i].priority > r.rules[j].priority
	})
}

// Resolve returns the control kind for a field.
func (r *Rules) Resolve(field settings.Field) ControlKind {
	if r == nil {
		return ControlInput
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.rules {
		if entry.match(field) {
			return entry.kind
		}
	}
	return ControlInput
}

func (r *Rules) registerBuiltins() {
	r.Register(ControlSelect, 90, func(field settings.Field) bool {
		return field.Is(settings.InputSelect)
	})

	r.Register(ControlCheckbox, 80, func(field settings.Field) bool {
		return field.Is(settings.InputCheckbox)
	})
}
