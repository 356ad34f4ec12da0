// Package cppgen emits C++ proxy declarations for DBus interfaces.
package cppgen

import (
	"bytes"
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/mds/slice"
	"github.com/dbusgen/dbusgen"
)

type generator struct {
	out    bytes.Buffer
	parser *dbusgen.Parser
	iface  *dbusgen.InterfaceDescription
}

// Header emits a complete C++ header for the interfaces in node,
// wrapped in the include guard and namespace from cfg. Interfaces are
// emitted in name order; cfg.Interfaces restricts the set.
func Header(node *dbusgen.NodeDescription, cfg *dbusgen.Config, guard string) (string, error) {
	if cfg.IncludeGuard != "" {
		guard = cfg.IncludeGuard
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, `// Automatic generation of DBus interface proxies. Do not edit.
#ifndef %[1]s
#define %[1]s

#include <cstdint>
#include <functional>
#include <map>
#include <string>
#include <vector>

`, guard)
	if cfg.Namespace != "" {
		fmt.Fprintf(&out, "namespace %s {\n\n", cfg.Namespace)
	}

	parser := cfg.Parser()
	names := slices.Collect(slice.Select(slices.Sorted(maps.Keys(node.Interfaces)), cfg.WantInterface))
	for i, name := range names {
		if i > 0 {
			out.WriteString("\n")
		}
		decl, err := Interface(node.Interfaces[name], parser)
		if err != nil {
			return "", err
		}
		out.WriteString(decl)
	}

	if cfg.Namespace != "" {
		fmt.Fprintf(&out, "\n}  // namespace %s\n", cfg.Namespace)
	}
	fmt.Fprintf(&out, "\n#endif  // %s\n", guard)
	return out.String(), nil
}

// Interface emits the C++ proxy class declaration for iface, using
// parser to resolve member typenames. A member whose signature does
// not parse aborts generation of the whole interface, with an error
// naming the member and its signature.
func Interface(iface *dbusgen.InterfaceDescription, parser *dbusgen.Parser) (string, error) {
	g := generator{parser: parser, iface: iface}

	g.f("// Abstract proxy for %s.\n", iface.Name)
	g.f("class %s {\n public:\n", className(iface.Name))
	g.f("  virtual ~%s() = default;\n", className(iface.Name))

	methods := slices.SortedFunc(slices.Values(iface.Methods), func(a, b *dbusgen.MethodDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, m := range methods {
		if err := g.Method(m); err != nil {
			return "", err
		}
	}
	props := slices.SortedFunc(slices.Values(iface.Properties), func(a, b *dbusgen.PropertyDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, p := range props {
		if err := g.Property(p); err != nil {
			return "", err
		}
	}
	signals := slices.SortedFunc(slices.Values(iface.Signals), func(a, b *dbusgen.SignalDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, s := range signals {
		if err := g.Signal(s); err != nil {
			return "", err
		}
	}

	g.s("};\n")
	return g.out.String(), nil
}

func (g *generator) s(s string) {
	g.out.WriteString(s)
}

func (g *generator) f(msg string, args ...any) {
	fmt.Fprintf(&g.out, msg, args...)
}

// typename resolves a member's signature, decorating parse failures
// with the member's location in the interface.
func (g *generator) typename(loc, sig string) (string, error) {
	ret, err := g.parser.Parse(sig)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", g.iface.Name, loc, err)
	}
	return ret, nil
}

func (g *generator) Method(m *dbusgen.MethodDescription) error {
	var args []string
	for i, a := range m.In {
		t, err := g.typename(fmt.Sprintf("method %s arg %s", m.Name, a.Name), a.Type)
		if err != nil {
			return err
		}
		args = append(args, inArg(t, "in_"+argName(i, a)))
	}
	for i, a := range m.Out {
		t, err := g.typename(fmt.Sprintf("method %s arg %s", m.Name, a.Name), a.Type)
		if err != nil {
			return err
		}
		args = append(args, fmt.Sprintf("%s* out_%s", t, argName(len(m.In)+i, a)))
	}

	g.s("\n")
	if m.Deprecated {
		g.s("  // Deprecated.\n")
	}
	g.f("  virtual bool %s(%s) = 0;", m.Name, strings.Join(args, ", "))
	if m.NoReply {
		g.s("  // noreply")
	}
	g.s("\n")
	return nil
}

func (g *generator) Property(p *dbusgen.PropertyDescription) error {
	t, err := g.typename(fmt.Sprintf("property %s", p.Name), p.Type)
	if err != nil {
		return err
	}

	g.s("\n")
	if p.Deprecated {
		g.s("  // Deprecated.\n")
	}
	accessor := snake(p.Name)
	if p.Readable {
		g.f("  virtual %s %s() const = 0;\n", t, accessor)
	}
	if p.Writable {
		g.f("  virtual void set_%s(%s) = 0;\n", accessor, inArg(t, "value"))
	}
	return nil
}

func (g *generator) Signal(s *dbusgen.SignalDescription) error {
	var args []string
	for i, a := range s.Args {
		t, err := g.typename(fmt.Sprintf("signal %s arg %s", s.Name, a.Name), a.Type)
		if err != nil {
			return err
		}
		args = append(args, inArg(t, argName(i, a)))
	}

	g.s("\n")
	if s.Deprecated {
		g.s("  // Deprecated.\n")
	}
	g.f("  using %sHandler = std::function<void(%s)>;\n", s.Name, strings.Join(args, ", "))
	return nil
}

// byValue is the set of typenames that are cheaper to pass by value
// than by const reference.
var byValue = mapset.New(
	dbusgen.TypenameBoolean,
	dbusgen.TypenameByte,
	dbusgen.TypenameDouble,
	dbusgen.TypenameSigned16,
	dbusgen.TypenameSigned32,
	dbusgen.TypenameSigned64,
	dbusgen.TypenameUnsigned16,
	dbusgen.TypenameUnsigned32,
	dbusgen.TypenameUnsigned64,
)

func inArg(typename, name string) string {
	if byValue.Has(typename) {
		return fmt.Sprintf("%s %s", typename, name)
	}
	return fmt.Sprintf("const %s& %s", typename, name)
}

// className derives the proxy class name from a DBus interface name:
// the final dot-separated component with a Proxy suffix.
func className(ifaceName string) string {
	if i := strings.LastIndexByte(ifaceName, '.'); i >= 0 {
		ifaceName = ifaceName[i+1:]
	}
	return ifaceName + "Proxy"
}

func argName(n int, arg dbusgen.ArgumentDescription) string {
	name := strings.Replace(arg.Name, "-", "_", -1)
	if name == "" {
		name = fmt.Sprintf("arg%d", n)
	}
	return name
}

// snake converts a CamelCase member name to the snake_case accessor
// naming that generated C++ uses for properties.
func snake(s string) string {
	var ret strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				ret.WriteByte('_')
			}
			ret.WriteRune(unicode.ToLower(r))
		} else {
			ret.WriteRune(r)
		}
	}
	return ret.String()
}

// Guard derives an include guard symbol from an output file path.
func Guard(path string) string {
	ret := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, path)
	return ret + "_"
}
