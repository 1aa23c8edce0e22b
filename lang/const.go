package lang

// constTable records the named constants of a single parse session.
//
// Entries are only ever added or overwritten, never removed. A lookup sees
// exactly the definitions issued earlier in token order: definitions are not
// hoisted, so a reference that precedes its definition fails.
type constTable map[string]Value

// define stores val under name, overwriting any previous definition.
func (t constTable) define(name string, val Value) {
	t[name] = val
}

// lookup returns the value most recently defined under name.
func (t constTable) lookup(name string) (Value, bool) {
	val, ok := t[name]

	return val, ok
}
