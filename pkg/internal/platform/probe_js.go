//go:build js

package platform

import (
	"context"
	"syscall/js"
)

// Ambient reads the JavaScript globals of the hosting runtime. Each lookup is
// guarded on its own so a missing global only disables the check that needs it.
func Ambient() Environment {
	global := js.Global()
	env := Environment{}

	if nav, ok := member(global, "navigator"); ok {
		n := &Navigator{}
		if product, ok := member(nav, "product"); ok && product.Type() == js.TypeString {
			n.Product = product.String()
		}
		env.Navigator = n
	}

	if expo, ok := member(global, "expo"); ok {
		e := &Expo{}
		if constants, ok := member(expo, "Constants"); ok && constants.Truthy() {
			e.Constants = constants
		}
		env.Expo = e
	}

	if process, ok := member(global, "process"); ok {
		p := &Process{Versions: map[string]string{}}
		if versions, ok := member(process, "versions"); ok {
			if node, ok := member(versions, "node"); ok && node.Type() == js.TypeString {
				p.Versions["node"] = node.String()
			}
		}
		if plat, ok := member(process, "platform"); ok && plat.Type() == js.TypeString {
			p.Platform = plat.String()
		}
		env.Process = p
	}

	_, env.Window = member(global, "window")
	_, env.Document = member(global, "document")
	return env
}

// member returns v[name] when v can hold properties and the property is set.
func member(v js.Value, name string) (out js.Value, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = js.Undefined(), false
		}
	}()
	switch v.Type() {
	case js.TypeObject, js.TypeFunction:
	default:
		return js.Undefined(), false
	}
	m := v.Get(name)
	if m.IsUndefined() || m.IsNull() {
		return js.Undefined(), false
	}
	return m, true
}

// Describe is unavailable inside a JavaScript host.
func Describe(ctx context.Context) (HostInfo, error) {
	return HostInfo{}, ErrHostInfoUnavailable
}
