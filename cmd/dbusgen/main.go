// Command dbusgen generates C++ proxy declarations from DBus
// introspection XML.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/mapset"
	"github.com/dbusgen/dbusgen"
	"github.com/dbusgen/dbusgen/internal/cppgen"
	"github.com/kr/pretty"
)

var globalArgs struct {
	Config         string `flag:"config,Path to a YAML service configuration file"`
	ObjectPathType string `flag:"object-path-type,C++ typename to use for the DBus object path type"`
}

// loadConfig builds the run configuration from the --config file, if
// any, with individual flags taking precedence.
func loadConfig() (*dbusgen.Config, error) {
	cfg := &dbusgen.Config{}
	if globalArgs.Config != "" {
		var err error
		cfg, err = dbusgen.LoadConfig(globalArgs.Config)
		if err != nil {
			return nil, err
		}
	}
	if globalArgs.ObjectPathType != "" {
		cfg.ObjectPathTypename = globalArgs.ObjectPathType
	}
	return cfg, nil
}

func main() {
	root := &command.C{
		Name:     "dbusgen",
		Usage:    "command args...",
		SetFlags: command.Flags(flax.MustBind, &globalArgs),
		Commands: []*command.C{
			{
				Name:  "generate",
				Usage: "generate introspection.xml",
				Help: `Generate a C++ proxy header from an introspection document.

Every interface in the document gets an abstract proxy class, unless
the service configuration restricts the set. Signatures that do not
parse abort generation with a diagnostic naming the offending member.
`,
				SetFlags: command.Flags(flax.MustBind, &generateArgs),
				Run:      command.Adapt(runGenerate),
			},
			{
				Name:  "validate",
				Usage: "validate introspection.xml...",
				Help: `Check every type signature in the given documents.

Each distinct invalid signature is reported once, with the interface
and member that carries it. Exits nonzero if any signature is invalid.
`,
				Run: runValidate,
			},
			{
				Name:  "typename",
				Usage: "typename signature...",
				Help:  "Resolve DBus type signatures to C++ typenames.",
				Run:   runTypename,
			},
			{
				Name:     "dump",
				Usage:    "dump introspection.xml",
				Help:     "Print the parsed form of an introspection document.",
				SetFlags: command.Flags(flax.MustBind, &dumpArgs),
				Run:      command.Adapt(runDump),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	env := root.NewEnv(nil)
	command.RunOrFail(env, os.Args[1:])
}

var generateArgs struct {
	Out       string `flag:"out,Output file path (default stdout)"`
	Namespace string `flag:"namespace,C++ namespace wrapping generated declarations"`
}

func runGenerate(env *command.Env, xmlPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateArgs.Namespace != "" {
		cfg.Namespace = generateArgs.Namespace
	}

	node, err := parseFile(xmlPath)
	if err != nil {
		return err
	}

	guard := cppgen.Guard(xmlPath + ".h")
	if generateArgs.Out != "" {
		guard = cppgen.Guard(generateArgs.Out)
	}
	hdr, err := cppgen.Header(node, cfg, guard)
	if err != nil {
		return fmt.Errorf("generating %s: %w", xmlPath, err)
	}

	if generateArgs.Out == "" {
		fmt.Print(hdr)
		return nil
	}
	if err := os.WriteFile(generateArgs.Out, []byte(hdr), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Printf("Wrote generated header to %s\n", generateArgs.Out)
	return nil
}

func runValidate(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("validate requires at least one introspection document.")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser := cfg.Parser()

	var seen mapset.Set[string]
	invalid := 0
	for _, path := range env.Args {
		node, err := parseFile(path)
		if err != nil {
			return err
		}
		for _, name := range slices.Sorted(interfaceNames(node)) {
			for loc, sig := range node.Interfaces[name].Signatures() {
				_, err := parser.Parse(sig)
				if err == nil || seen.Has(sig) {
					continue
				}
				seen.Add(sig)
				invalid++
				fmt.Printf("%s: %s: %s: %v\n", path, name, loc, err)
			}
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid signature(s)", invalid)
	}
	return nil
}

func runTypename(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("typename requires at least one signature.")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser := cfg.Parser()

	var errs int
	for _, sig := range env.Args {
		name, err := parser.Parse(sig)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			errs++
			continue
		}
		fmt.Printf("%s\t%s\n", sig, name)
	}
	if errs > 0 {
		return fmt.Errorf("%d signature(s) failed to parse", errs)
	}
	return nil
}

var dumpArgs struct {
	Raw bool `flag:"raw,Dump the raw document model instead of the summary form"`
}

func runDump(env *command.Env, xmlPath string) error {
	node, err := parseFile(xmlPath)
	if err != nil {
		return err
	}

	if dumpArgs.Raw {
		fmt.Printf("%# v\n", pretty.Formatter(node))
		return nil
	}

	var out indenter
	for _, name := range slices.Sorted(interfaceNames(node)) {
		out.indent(0)
		out.v(node.Interfaces[name])
	}
	if len(node.Children) > 0 {
		out.indent(0)
		out.s("children:")
		out.indent(1)
		for _, c := range node.Children {
			out.s(c)
		}
	}
	return nil
}
