package argsert

// ValidationChain is the ordered list of validators selected for a
// single call. It is built under the instance's read lock at call
// start, so later enable/disable calls never affect a call in flight.
type ValidationChain struct {
	Steps []ValidationStep
}

// ValidationStep is one validator in a chain.
type ValidationStep struct {
	Name    string // Registry name, empty for inline validators
	Handler ValidatorFunc
}

// Run executes the steps in order and returns the first failure.
// Remaining steps are skipped once a step fails.
func (chain *ValidationChain) Run(result *Result) *Failure {
	for _, step := range chain.Steps {
		if step.Handler == nil {
			continue
		}
		if failure := step.Handler(result); failure != nil {
			return failure
		}
	}
	return nil
}

// implicitChain selects every enabled validator in registry order.
func (reg *validatorRegistry) implicitChain() *ValidationChain {
	chain := &ValidationChain{}
	for _, entry := range reg.entries {
		if !entry.enabled {
			continue
		}
		chain.Steps = append(chain.Steps, ValidationStep{Name: entry.name, Handler: entry.handler})
	}
	return chain
}

// explicitChain selects exactly names, in the given order, regardless
// of their enabled state. It returns the names that are not
// registered; those are left out of the chain.
func (reg *validatorRegistry) explicitChain(names []string) (*ValidationChain, []string) {
	chain := &ValidationChain{}
	var unknown []string
	for _, name := range names {
		entry, exists := reg.lookup(name)
		if !exists {
			unknown = append(unknown, name)
			continue
		}
		chain.Steps = append(chain.Steps, ValidationStep{Name: entry.name, Handler: entry.handler})
	}
	return chain, unknown
}

// selectorChain builds the single step chain for s.
func (reg *validatorRegistry) selectorChain(s Selector) (*ValidationChain, []string) {
	if s.fn != nil {
		return &ValidationChain{Steps: []ValidationStep{{Handler: s.fn}}}, nil
	}
	return reg.explicitChain([]string{s.name})
}
