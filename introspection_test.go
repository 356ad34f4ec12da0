package dbusgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const frobinatorXML = `<!DOCTYPE node PUBLIC "-//freedesktop//DTD D-BUS Object Introspection 1.0//EN"
 "http://www.freedesktop.org/standards/dbus/1.0/introspect.dtd">
<node>
  <interface name="com.example.Frobinator">
    <method name="Frobinate">
      <arg name="data" type="ay" direction="in"/>
      <arg name="result" type="a{sv}" direction="out"/>
    </method>
    <method name="Reset">
      <annotation name="org.freedesktop.DBus.Method.NoReply" value="true"/>
    </method>
    <signal name="Frobinated">
      <arg name="count" type="u"/>
      <annotation name="org.freedesktop.DBus.Deprecated" value="true"/>
    </signal>
    <property name="Speed" type="d" access="readwrite"/>
    <property name="SerialNumber" type="s" access="read">
      <annotation name="org.freedesktop.DBus.Property.EmitsChangedSignal" value="const"/>
    </property>
  </interface>
  <node name="child"/>
  <node name="nested/grandchild"/>
</node>
`

func TestParseIntrospection(t *testing.T) {
	got, err := ParseIntrospection(strings.NewReader(frobinatorXML))
	if err != nil {
		t.Fatalf("ParseIntrospection got err %v", err)
	}

	want := &NodeDescription{
		Interfaces: map[string]*InterfaceDescription{
			"com.example.Frobinator": {
				Name: "com.example.Frobinator",
				Methods: []*MethodDescription{
					{
						Name: "Frobinate",
						In:   []ArgumentDescription{{Name: "data", Type: "ay"}},
						Out:  []ArgumentDescription{{Name: "result", Type: "a{sv}"}},
					},
					{Name: "Reset", NoReply: true},
				},
				Signals: []*SignalDescription{
					{
						Name:       "Frobinated",
						Args:       []ArgumentDescription{{Name: "count", Type: "u"}},
						Deprecated: true,
					},
				},
				Properties: []*PropertyDescription{
					{Name: "Speed", Type: "d", Readable: true, Writable: true},
					{Name: "SerialNumber", Type: "s", Readable: true, Constant: true},
				},
			},
		},
		Children: []string{"child", "nested/grandchild"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("wrong introspection model (-got+want):\n%s", diff)
	}
}

func TestInterfaceSignatures(t *testing.T) {
	node, err := ParseIntrospection(strings.NewReader(frobinatorXML))
	if err != nil {
		t.Fatalf("ParseIntrospection got err %v", err)
	}
	iface := node.Interfaces["com.example.Frobinator"]
	if iface == nil {
		t.Fatal("missing interface com.example.Frobinator")
	}

	type locSig struct{ Loc, Sig string }
	var got []locSig
	for loc, sig := range iface.Signatures() {
		got = append(got, locSig{loc, sig})
	}
	want := []locSig{
		{"method Frobinate arg data", "ay"},
		{"method Frobinate arg result", "a{sv}"},
		{"signal Frobinated arg count", "u"},
		{"property Speed", "d"},
		{"property SerialNumber", "s"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("wrong signatures (-got+want):\n%s", diff)
	}
}

func TestInterfaceString(t *testing.T) {
	node, err := ParseIntrospection(strings.NewReader(frobinatorXML))
	if err != nil {
		t.Fatalf("ParseIntrospection got err %v", err)
	}
	got := node.Interfaces["com.example.Frobinator"].String()
	want := strings.Join([]string{
		"interface com.example.Frobinator {",
		"  method Frobinate(data ay) (result a{sv})",
		"  method Reset() [noreply]",
		"  signal Frobinated(count u) [deprecated]",
		"  property SerialNumber s [const]",
		"  property Speed d [readwrite]",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("wrong String output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseIntrospectionBadAccess(t *testing.T) {
	const xml = `<node><interface name="x"><property name="P" type="s" access="sideways"/></interface></node>`
	if _, err := ParseIntrospection(strings.NewReader(xml)); err == nil {
		t.Error("ParseIntrospection accepted unknown property access value")
	}
}
