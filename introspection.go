package dbusgen

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// NodeDescription describes one object in a DBus introspection
// document: the interfaces it exports and the relative paths of its
// child objects.
//
// Descriptions come from whatever produced the introspection XML, and
// may not accurately reflect the API the live service exposes.
type NodeDescription struct {
	// Interfaces maps an interface name to a description of its API.
	Interfaces map[string]*InterfaceDescription
	// Children is the relative paths to child objects under this
	// object. The relative paths may contain multiple path
	// components.
	Children []string
}

// ParseIntrospection parses a DBus introspection XML document.
//
// Type attributes in the document are kept as raw signature strings
// and are not validated here; validation happens when a signature is
// resolved to a typename, so that one malformed member produces a
// diagnostic for that member alone rather than rejecting the whole
// document.
func ParseIntrospection(r io.Reader) (*NodeDescription, error) {
	var ret NodeDescription
	if err := xml.NewDecoder(r).Decode(&ret); err != nil {
		return nil, fmt.Errorf("parsing introspection XML: %w", err)
	}
	return &ret, nil
}

func (o *NodeDescription) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Interfaces []*InterfaceDescription `xml:"interface"`
		Children   []struct {
			Name string `xml:"name,attr"`
		} `xml:"node"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	o.Interfaces = make(map[string]*InterfaceDescription, len(raw.Interfaces))
	for _, iface := range raw.Interfaces {
		o.Interfaces[iface.Name] = iface
	}
	o.Children = make([]string, 0, len(raw.Children))
	for _, v := range raw.Children {
		o.Children = append(o.Children, v.Name)
	}
	return nil
}

// InterfaceDescription describes a DBus interface.
type InterfaceDescription struct {
	Name       string                 `xml:"name,attr"`
	Methods    []*MethodDescription   `xml:"method"`
	Signals    []*SignalDescription   `xml:"signal"`
	Properties []*PropertyDescription `xml:"property"`
}

func (d InterfaceDescription) String() string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "interface %s {\n", d.Name)

	methods := slices.SortedFunc(slices.Values(d.Methods), func(a, b *MethodDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, m := range methods {
		fmt.Fprintf(&ret, "  %s\n", m)
	}

	signals := slices.SortedFunc(slices.Values(d.Signals), func(a, b *SignalDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, s := range signals {
		fmt.Fprintf(&ret, "  %s\n", s)
	}

	props := slices.SortedFunc(slices.Values(d.Properties), func(a, b *PropertyDescription) int {
		return cmp.Compare(a.Name, b.Name)
	})
	for _, s := range props {
		fmt.Fprintf(&ret, "  %s\n", s)
	}
	ret.WriteString("}")
	return ret.String()
}

// Signatures yields every type signature in the interface, paired
// with a human-readable location of the member that carries it, e.g.
// "method GetAll arg props".
func (d *InterfaceDescription) Signatures() iter.Seq2[string, string] {
	return func(yield func(loc, sig string) bool) {
		for _, m := range d.Methods {
			for _, args := range [][]ArgumentDescription{m.In, m.Out} {
				for _, a := range args {
					if !yield(fmt.Sprintf("method %s arg %s", m.Name, a.Name), a.Type) {
						return
					}
				}
			}
		}
		for _, s := range d.Signals {
			for _, a := range s.Args {
				if !yield(fmt.Sprintf("signal %s arg %s", s.Name, a.Name), a.Type) {
					return
				}
			}
		}
		for _, p := range d.Properties {
			if !yield(fmt.Sprintf("property %s", p.Name), p.Type) {
				return
			}
		}
	}
}

// MethodDescription describes a DBus method.
type MethodDescription struct {
	Name string
	In   []ArgumentDescription
	Out  []ArgumentDescription
	// Deprecated, if true, indicates that the method should be
	// avoided in new code.
	Deprecated bool
	// NoReply, if true, indicates that the method sends no reply
	// message, and generated code must not wait for one.
	NoReply bool
}

func (m MethodDescription) String() string {
	var ret strings.Builder
	ret.WriteString("method ")
	ret.WriteString(m.Name)
	ret.WriteByte('(')
	for i, arg := range m.In {
		if i > 0 {
			ret.WriteString(", ")
		}
		ret.WriteString(arg.String())
	}
	ret.WriteByte(')')

	if len(m.Out) > 0 {
		ret.WriteString(" (")
		for i, arg := range m.Out {
			if i > 0 {
				ret.WriteString(", ")
			}
			ret.WriteString(arg.String())
		}
		ret.WriteByte(')')
	}
	switch {
	case m.Deprecated && m.NoReply:
		ret.WriteString(" [deprecated,noreply]")
	case m.Deprecated:
		ret.WriteString(" [deprecated]")
	case m.NoReply:
		ret.WriteString(" [noreply]")
	}
	return ret.String()
}

func (m *MethodDescription) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name string `xml:"name,attr"`
		Args []struct {
			Name      string `xml:"name,attr"`
			Type      string `xml:"type,attr"`
			Direction string `xml:"direction,attr"`
		} `xml:"arg"`
		Meta []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
		} `xml:"annotation"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	m.Name = raw.Name
	m.In, m.Out = nil, nil
	m.Deprecated, m.NoReply = false, false
	for _, arg := range raw.Args {
		ad := ArgumentDescription{
			Name: arg.Name,
			Type: arg.Type,
		}
		// The introspection format says args default to "in" for
		// methods, but some services leave the direction off of out
		// args too. Treat anything that isn't explicitly "in" the way
		// dbus-daemon does.
		if arg.Direction == "in" {
			m.In = append(m.In, ad)
		} else {
			m.Out = append(m.Out, ad)
		}
	}
	for _, attr := range raw.Meta {
		switch attr.Name {
		case "org.freedesktop.DBus.Deprecated":
			m.Deprecated = attr.Value == "true"
		case "org.freedesktop.DBus.Method.NoReply":
			m.NoReply = attr.Value == "true"
		}
	}

	return nil
}

// SignalDescription describes a DBus signal.
type SignalDescription struct {
	Name string
	Args []ArgumentDescription
	// Deprecated, if true, indicates that the signal should be
	// avoided in new code.
	Deprecated bool
}

func (s SignalDescription) String() string {
	var ret strings.Builder
	ret.WriteString("signal ")
	ret.WriteString(s.Name)
	ret.WriteByte('(')
	for i, arg := range s.Args {
		if i > 0 {
			ret.WriteString(", ")
		}
		ret.WriteString(arg.String())
	}
	ret.WriteByte(')')
	if s.Deprecated {
		ret.WriteString(" [deprecated]")
	}
	return ret.String()
}

func (s *SignalDescription) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name       string `xml:"name,attr"`
		Attributes []struct {
			Name string `xml:"name,attr"`
			Type string `xml:"type,attr"`
		} `xml:"arg"`
		Meta []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
		} `xml:"annotation"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	s.Name = raw.Name
	s.Args = nil
	s.Deprecated = false
	for _, attr := range raw.Attributes {
		s.Args = append(s.Args, ArgumentDescription{
			Name: attr.Name,
			Type: attr.Type,
		})
	}
	for _, attr := range raw.Meta {
		if attr.Name == "org.freedesktop.DBus.Deprecated" && attr.Value == "true" {
			s.Deprecated = true
		}
	}
	return nil
}

// PropertyDescription describes a DBus property.
type PropertyDescription struct {
	Name string
	Type string

	// If true, Constant indicates that the property's value never
	// changes, and thus can safely be cached locally.
	Constant bool
	// Readable is whether the property value can be read.
	Readable bool
	// Writable is whether the property value can be set.
	Writable bool

	// Deprecated, if true, indicates that the property should be
	// avoided in new code.
	Deprecated bool
}

func (p PropertyDescription) String() string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "property %s %s [", p.Name, p.Type)

	switch {
	case p.Readable && !p.Writable && p.Constant:
		ret.WriteString("const")
	case p.Readable && p.Writable:
		ret.WriteString("readwrite")
	case p.Readable:
		ret.WriteString("readonly")
	case p.Writable:
		ret.WriteString("writeonly")
	}
	if p.Deprecated {
		ret.WriteString(",deprecated")
	}
	ret.WriteByte(']')
	return ret.String()
}

func (p *PropertyDescription) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Name   string `xml:"name,attr"`
		Type   string `xml:"type,attr"`
		Access string `xml:"access,attr"`
		Meta   []struct {
			Name  string `xml:"name,attr"`
			Value string `xml:"value,attr"`
		} `xml:"annotation"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	p.Name = raw.Name
	p.Type = raw.Type
	p.Constant = false
	switch raw.Access {
	case "read":
		p.Readable, p.Writable = true, false
	case "write":
		p.Readable, p.Writable = false, true
	case "readwrite":
		p.Readable, p.Writable = true, true
	default:
		return fmt.Errorf("unknown property access value %q", raw.Access)
	}
	for _, attr := range raw.Meta {
		switch attr.Name {
		case "org.freedesktop.DBus.Deprecated":
			p.Deprecated = attr.Value == "true"
		case "org.freedesktop.DBus.Property.EmitsChangedSignal":
			p.Constant = attr.Value == "const"
		}
	}
	return nil
}

// ArgumentDescription describes a DBus method's input or output, or a
// signal's argument.
type ArgumentDescription struct {
	Name string // optional
	Type string // raw DBus type signature
}

func (a ArgumentDescription) String() string {
	if a.Name != "" {
		// Older DBus interfaces used arg-name style naming. The
		// modern recommendation is underscores, and since argument
		// names only feed generated identifiers, fix them up here.
		n := strings.Replace(a.Name, "-", "_", -1)
		return fmt.Sprintf("%s %s", n, a.Type)
	}
	return a.Type
}
