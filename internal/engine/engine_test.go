package engine

// chanceOverride pins every probability roll to a fixed outcome.
func (e *Engine) chanceOverride(v bool) {
	e.chanceFn = func(float64) bool { return v }
}
