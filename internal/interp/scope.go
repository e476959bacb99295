package interp

import "mica/internal/value"

// Scope is the flat name-to-value environment shared by every
// statement of one run. There is no shadowing and no nesting; the
// last write to a name wins. A Scope belongs to exactly one run and
// must never be shared across concurrent runs.
type Scope struct {
	variables map[string]value.Value
}

func NewScope() *Scope {
	return &Scope{variables: make(map[string]value.Value)}
}

// Get returns a copy of the value bound to name.
func (s *Scope) Get(name string) (value.Value, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// Set binds name to v, replacing any earlier binding.
func (s *Scope) Set(name string, v value.Value) {
	s.variables[name] = v
}
