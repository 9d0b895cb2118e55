package argsert

import (
	"slices"
)

// validatorEntry is a registered validator and its enabled state.
type validatorEntry struct {
	name    string
	handler ValidatorFunc
	enabled bool
}

// validatorRegistry holds validators in registration order, along
// with the enabled/disabled sets Reset restores.
//
// It is not safe for concurrent use; Argsert guards it.
type validatorRegistry struct {
	entries         []*validatorEntry
	m               map[string]*validatorEntry
	defaultEnabled  []string
	defaultDisabled []string
}

func newValidatorRegistry(validators []NamedValidator) *validatorRegistry {
	reg := &validatorRegistry{
		m: make(map[string]*validatorEntry),
	}

	for _, v := range validators {
		reg.add(v.Name, v.Validator)
	}

	return reg
}

// add registers or overwrites name. An overwritten validator keeps its
// position. The initial state becomes the default for Reset.
func (reg *validatorRegistry) add(name string, v Validator) {
	if entry, exists := reg.m[name]; exists {
		entry.handler = v.Handler
		entry.enabled = !v.Disabled
	} else {
		entry := &validatorEntry{name: name, handler: v.Handler, enabled: !v.Disabled}
		reg.entries = append(reg.entries, entry)
		reg.m[name] = entry
	}

	reg.scrubDefaults(name)
	if v.Disabled {
		reg.defaultDisabled = append(reg.defaultDisabled, name)
	} else {
		reg.defaultEnabled = append(reg.defaultEnabled, name)
	}
}

// remove deletes name and scrubs it from the default sets.
func (reg *validatorRegistry) remove(name string) {
	if _, exists := reg.m[name]; !exists {
		return
	}
	delete(reg.m, name)
	reg.entries = slices.DeleteFunc(reg.entries, func(e *validatorEntry) bool {
		return e.name == name
	})
	reg.scrubDefaults(name)
}

func (reg *validatorRegistry) scrubDefaults(name string) {
	reg.defaultEnabled = slices.DeleteFunc(reg.defaultEnabled, func(n string) bool { return n == name })
	reg.defaultDisabled = slices.DeleteFunc(reg.defaultDisabled, func(n string) bool { return n == name })
}

// toggle sets the enabled state of names, or of every validator when
// names is empty. It returns the names that are not registered.
func (reg *validatorRegistry) toggle(state bool, names []string) (unknown []string) {
	if len(names) == 0 {
		for _, entry := range reg.entries {
			entry.enabled = state
		}
		return nil
	}

	for _, name := range names {
		entry, exists := reg.m[name]
		if !exists {
			unknown = append(unknown, name)
			continue
		}
		entry.enabled = state
	}
	return unknown
}

// markDefaults records the current states as the ones Reset restores.
func (reg *validatorRegistry) markDefaults() {
	reg.defaultEnabled = reg.names(true)
	reg.defaultDisabled = reg.names(false)
}

// reset restores the default enabled/disabled sets.
func (reg *validatorRegistry) reset() {
	reg.toggle(false, reg.defaultDisabled)
	reg.toggle(true, reg.defaultEnabled)
}

// names returns the validators whose enabled state matches, in
// registration order.
func (reg *validatorRegistry) names(enabled bool) []string {
	out := []string{}
	for _, entry := range reg.entries {
		if entry.enabled == enabled {
			out = append(out, entry.name)
		}
	}
	return out
}

func (reg *validatorRegistry) lookup(name string) (*validatorEntry, bool) {
	entry, exists := reg.m[name]
	return entry, exists
}
