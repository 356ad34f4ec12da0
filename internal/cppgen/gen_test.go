package cppgen_test

import (
	"strings"
	"testing"

	"github.com/dbusgen/dbusgen"
	"github.com/dbusgen/dbusgen/internal/cppgen"
	"github.com/google/go-cmp/cmp"
)

func frobinator() *dbusgen.InterfaceDescription {
	return &dbusgen.InterfaceDescription{
		Name: "com.example.Frobinator",
		Methods: []*dbusgen.MethodDescription{
			{
				Name: "Frobinate",
				In: []dbusgen.ArgumentDescription{
					{Name: "data", Type: "ay"},
					{Name: "speed", Type: "d"},
				},
				Out: []dbusgen.ArgumentDescription{
					{Name: "result", Type: "a{sv}"},
				},
			},
			{Name: "Reset", NoReply: true},
		},
		Properties: []*dbusgen.PropertyDescription{
			{Name: "SerialNumber", Type: "s", Readable: true},
			{Name: "Speed", Type: "d", Readable: true, Writable: true},
		},
		Signals: []*dbusgen.SignalDescription{
			{
				Name: "Frobinated",
				Args: []dbusgen.ArgumentDescription{{Name: "count", Type: "u"}},
			},
		},
	}
}

const wantClass = `// Abstract proxy for com.example.Frobinator.
class FrobinatorProxy {
 public:
  virtual ~FrobinatorProxy() = default;

  virtual bool Frobinate(const std::vector<uint8_t>& in_data, double in_speed, std::map<std::string,chromeos::Any>* out_result) = 0;

  virtual bool Reset() = 0;  // noreply

  virtual std::string serial_number() const = 0;

  virtual double speed() const = 0;
  virtual void set_speed(double value) = 0;

  using FrobinatedHandler = std::function<void(uint32_t count)>;
};
`

func TestInterface(t *testing.T) {
	got, err := cppgen.Interface(frobinator(), dbusgen.NewParser())
	if err != nil {
		t.Fatalf("generating interface: %v", err)
	}
	if diff := cmp.Diff(strings.Split(got, "\n"), strings.Split(wantClass, "\n")); diff != "" {
		t.Errorf("wrong generated class (-got+want):\n%s", diff)
	}
}

func TestInterfaceBadSignature(t *testing.T) {
	iface := &dbusgen.InterfaceDescription{
		Name: "com.example.Broken",
		Methods: []*dbusgen.MethodDescription{
			{
				Name: "Explode",
				In:   []dbusgen.ArgumentDescription{{Name: "bang", Type: "a{s}"}},
			},
		},
	}
	_, err := cppgen.Interface(iface, dbusgen.NewParser())
	if err == nil {
		t.Fatal("generation succeeded with an invalid signature")
	}
	for _, want := range []string{"com.example.Broken", "method Explode arg bang", `"a{s}"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestHeader(t *testing.T) {
	node := &dbusgen.NodeDescription{
		Interfaces: map[string]*dbusgen.InterfaceDescription{
			"com.example.Frobinator": frobinator(),
			"com.example.Skipped": {
				Name: "com.example.Skipped",
				Methods: []*dbusgen.MethodDescription{
					// Would fail generation if not filtered out.
					{Name: "Nope", In: []dbusgen.ArgumentDescription{{Name: "x", Type: "l"}}},
				},
			},
		},
	}
	cfg := &dbusgen.Config{
		Namespace:  "org::example",
		Interfaces: []string{"com.example.Frobinator"},
	}

	got, err := cppgen.Header(node, cfg, "FROBINATOR_H_")
	if err != nil {
		t.Fatalf("generating header: %v", err)
	}

	want := `// Automatic generation of DBus interface proxies. Do not edit.
#ifndef FROBINATOR_H_
#define FROBINATOR_H_

#include <cstdint>
#include <functional>
#include <map>
#include <string>
#include <vector>

namespace org::example {

` + wantClass + `
}  // namespace org::example

#endif  // FROBINATOR_H_
`
	if diff := cmp.Diff(strings.Split(got, "\n"), strings.Split(want, "\n")); diff != "" {
		t.Errorf("wrong generated header (-got+want):\n%s", diff)
	}
}

func TestGuard(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"frobinator.h", "FROBINATOR_H_"},
		{"out/gen/frobinator_proxy.h", "OUT_GEN_FROBINATOR_PROXY_H_"},
	}
	for _, tc := range tests {
		if got := cppgen.Guard(tc.in); got != tc.want {
			t.Errorf("Guard(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
