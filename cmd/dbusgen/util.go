package main

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"strings"

	"github.com/dbusgen/dbusgen"
)

func parseFile(path string) (*dbusgen.NodeDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	node, err := dbusgen.ParseIntrospection(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

func interfaceNames(node *dbusgen.NodeDescription) iter.Seq[string] {
	return maps.Keys(node.Interfaces)
}

type indenter struct {
	prefix     string
	indentNext bool
}

func (i *indenter) v(v any) {
	fmt.Fprintf(i, "%v\n", v)
}

func (i *indenter) s(msg string) {
	io.WriteString(i, msg+"\n")
}

func (i *indenter) Write(bs []byte) (int, error) {
	ret := 0
	for len(bs) > 0 {
		if i.indentNext {
			i.indentNext = false
			_, err := io.WriteString(os.Stdout, i.prefix)
			if err != nil {
				return ret, err
			}
		}

		var wr []byte
		idx := bytes.IndexByte(bs, '\n')
		if idx >= 0 {
			i.indentNext = true
			wr, bs = bs[:idx+1], bs[idx+1:]
		} else {
			wr, bs = bs, nil
		}

		n, err := os.Stdout.Write(wr)
		ret += n
		if err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func (i *indenter) indent(n int) {
	i.prefix = strings.Repeat("  ", n)
}
