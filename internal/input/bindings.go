package input

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultBindings are installed by NewController and ResetBindings.
var DefaultBindings = map[string][]Key{
	"UP":    {KeyUp, "w"},
	"DOWN":  {KeyDown, "s"},
	"LEFT":  {KeyLeft, "a"},
	"RIGHT": {KeyRight, "d"},
	"SPACE": {KeySpace},
}

// Binding is one key to control association.
type Binding struct {
	Key     Key
	Control string
}

// Bind makes k trigger the named control. Control names are case-insensitive.
func (c *Controller) Bind(k Key, control string) {
	if c.bindings == nil {
		c.bindings = make(map[Key]set[string])
	}
	names, ok := c.bindings[k]
	if !ok {
		names = make(set[string])
		c.bindings[k] = names
	}
	names[strings.ToUpper(control)] = struct{}{}
}

// BindAll binds every key in keys to the named control.
func (c *Controller) BindAll(control string, keys ...Key) {
	for _, k := range keys {
		c.Bind(k, control)
	}
}

// Unbind removes the association between k and the named control.
func (c *Controller) Unbind(k Key, control string) {
	names, ok := c.bindings[k]
	if !ok {
		return
	}
	delete(names, strings.ToUpper(control))
	if len(names) == 0 {
		delete(c.bindings, k)
	}
}

// UnbindKey removes every control bound to k.
func (c *Controller) UnbindKey(k Key) {
	delete(c.bindings, k)
}

// UnbindControl removes the named control from every key.
func (c *Controller) UnbindControl(control string) {
	for k := range c.bindings {
		c.Unbind(k, control)
	}
}

// ClearBindings removes all bindings, including the defaults.
func (c *Controller) ClearBindings() {
	c.bindings = make(map[Key]set[string])
}

// ResetBindings replaces all bindings with DefaultBindings.
func (c *Controller) ResetBindings() {
	c.ClearBindings()
	for control, keys := range DefaultBindings {
		c.BindAll(control, keys...)
	}
}

// Bound reports whether k triggers the named control.
func (c *Controller) Bound(k Key, control string) bool {
	return c.bindings[k].has(strings.ToUpper(control))
}

// KeysFor returns the keys bound to the named control, sorted.
func (c *Controller) KeysFor(control string) []Key {
	control = strings.ToUpper(control)
	var keys []Key
	for k, names := range c.bindings {
		if names.has(control) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// HasMultiBinding reports whether some key triggers more than one control.
func (c *Controller) HasMultiBinding() bool {
	for _, names := range c.bindings {
		if len(names) > 1 {
			return true
		}
	}
	return false
}

// HasMultiKeys reports whether some control is triggered by more than one key.
func (c *Controller) HasMultiKeys() bool {
	seen := make(set[string])
	for _, names := range c.bindings {
		for n := range names {
			if seen.has(n) {
				return true
			}
			seen[n] = struct{}{}
		}
	}
	return false
}

// PreferControlOrder reports the natural order for listing bindings: by
// control when controls have several keys but no key has several controls.
func (c *Controller) PreferControlOrder() bool {
	return !c.HasMultiBinding() && c.HasMultiKeys()
}

// Bindings lists every binding, sorted by control then key when byControl
// is set, otherwise by key then control.
func (c *Controller) Bindings(byControl bool) []Binding {
	var out []Binding
	for k, names := range c.bindings {
		for n := range names {
			out = append(out, Binding{Key: k, Control: n})
		}
	}
	slices.SortFunc(out, func(a, b Binding) int {
		if byControl {
			return cmp.Or(cmp.Compare(a.Control, b.Control), cmp.Compare(a.Key, b.Key))
		}
		return cmp.Or(cmp.Compare(a.Key, b.Key), cmp.Compare(a.Control, b.Control))
	})
	return out
}
