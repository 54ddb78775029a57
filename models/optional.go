package models

// OptionalBool is a three-state flag: unset, true or false.
// The zero value is unset, which is not the same as false.
type OptionalBool struct {
	Value bool
	Set   bool
}

// SomeBool returns a set OptionalBool holding v.
func SomeBool(v bool) OptionalBool {
	return OptionalBool{Value: v, Set: true}
}

// IsTrue reports whether the flag was explicitly set to true.
func (o OptionalBool) IsTrue() bool {
	return o.Set && o.Value
}

// Matches reports whether v satisfies the flag. An unset flag matches anything.
func (o OptionalBool) Matches(v bool) bool {
	return !o.Set || o.Value == v
}

// OptionalString is a string that may be absent.
type OptionalString struct {
	Value string
	Set   bool
}

// SomeString returns a set OptionalString holding v.
func SomeString(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// Matches reports whether v equals the held value (case-sensitive).
// An unset value matches anything.
func (o OptionalString) Matches(v string) bool {
	return !o.Set || o.Value == v
}
