package depm

// CfgOptions is the set of conditional-compilation flags active for a crate's
// build configuration.  A flag may be enabled bare (`cfg(test)`) or carry one
// or more values (`cfg(feature = "x")`).
type CfgOptions struct {
	flags  map[string]struct{}
	values map[string]map[string]struct{}
}

// NewCfgOptions creates an empty configuration.
func NewCfgOptions() *CfgOptions {
	return &CfgOptions{
		flags:  make(map[string]struct{}),
		values: make(map[string]map[string]struct{}),
	}
}

// Enable enables a bare flag.
func (co *CfgOptions) Enable(flag string) {
	co.flags[flag] = struct{}{}
}

// Set enables a flag value pair.
func (co *CfgOptions) Set(flag, value string) {
	vs, ok := co.values[flag]
	if !ok {
		vs = make(map[string]struct{})
		co.values[flag] = vs
	}
	vs[value] = struct{}{}
}

// Check tests a single cfg predicate against the active configuration.
func (co *CfgOptions) Check(flag, value string, hasValue bool) bool {
	if hasValue {
		_, ok := co.values[flag][value]
		return ok
	}

	_, ok := co.flags[flag]
	return ok
}
