package provider

// Registry holds the strategy instances available to the manager, keyed by
// provider kind. Strategies are exclusively owned by the registry.
//
// The registry is populated at startup and only read afterwards, so it
// carries no lock; construction-time exclusivity is the caller's contract.
type Registry struct {
	strategies map[Kind]Strategy
	order      []Kind
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[Kind]Strategy),
	}
}

// Register adds a strategy, overwriting any previous registration for the
// same kind.
func (r *Registry) Register(s Strategy) {
	kind := s.Kind()
	if _, exists := r.strategies[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.strategies[kind] = s
}

// Strategy returns the registered strategy for a kind.
func (r *Registry) Strategy(kind Kind) (Strategy, bool) {
	s, ok := r.strategies[kind]
	return s, ok
}

// Kinds returns registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered strategies.
func (r *Registry) Len() int {
	return len(r.strategies)
}
