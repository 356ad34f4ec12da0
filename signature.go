package dbusgen

import (
	"errors"
	"fmt"
)

// A Parser translates DBus type signatures into C++ typenames.
//
// The zero value is not usable; construct Parsers with [NewParser].
type Parser struct {
	objectPathTypename string
}

// NewParser returns a Parser that renders the object path type as
// [DefaultObjectPathTypename].
func NewParser() *Parser {
	return &Parser{objectPathTypename: DefaultObjectPathTypename}
}

// SetObjectPathTypename sets the C++ typename substituted for the
// object path type code 'o'. The name is not validated.
//
// The setting is intended as set-once process configuration: the
// Parser does no internal locking, so SetObjectPathTypename must not
// be called concurrently with Parse. Parse calls may run concurrently
// with each other.
func (p *Parser) SetObjectPathTypename(name string) {
	p.objectPathTypename = name
}

// Parse resolves the first complete type at the start of sig and
// returns its C++ typename. A nil error reports that sig begins with
// a well-formed type; on error the returned string is empty.
//
// Parse deliberately consumes only the leading type. Characters after
// the first complete type are ignored, so a valid signature followed
// by garbage still succeeds and yields the leading type's name:
// "a{sv}NoneOfThisParses" resolves the same as "a{sv}". This is part
// of the contract, not a bug to fix.
func (p *Parser) Parse(sig string) (string, error) {
	name, _, err := p.parseOne(sig, false)
	if err != nil {
		return "", SignatureError{sig, err}
	}
	return name, nil
}

// parseOne consumes the first complete type from the front of sig,
// and returns its C++ typename as well as the remainder of the type
// string. inArray reports whether the type being parsed is the
// element of an array, the only position where a dict entry is legal.
func (p *Parser) parseOne(sig string, inArray bool) (name, rest string, err error) {
	if sig == "" {
		return "", "", errors.New("missing type")
	}
	if ret, ok := p.basicTypename(sig[0]); ok {
		return ret, sig[1:], nil
	}

	switch sig[0] {
	case 'a':
		isDict := len(sig) > 1 && sig[1] == '{'
		elem, rest, err := p.parseOne(sig[1:], true)
		if err != nil {
			return "", "", err
		}
		if isDict {
			return elem, rest, nil // sub-parser already produced a map
		}
		return TypenameArray + "<" + elem + ">", rest, nil
	case '{':
		if !inArray {
			return "", "", errors.New("dict entry type found outside array")
		}
		if len(sig) < 2 {
			return "", "", errors.New("unterminated dict entry definition")
		}
		key, ok := p.basicTypename(sig[1])
		if !ok {
			return "", "", fmt.Errorf("invalid dict entry key type %q, must be a dbus basic type", sig[1])
		}
		val, rest, err := p.parseOne(sig[2:], false)
		if err != nil {
			return "", "", err
		}
		if rest == "" || rest[0] != '}' {
			return "", "", errors.New("missing closing } in dict entry definition")
		}
		return TypenameDict + "<" + key + "," + val + ">", rest[1:], nil
	case '}':
		return "", "", errors.New("unexpected } with no dict entry open")
	default:
		return "", "", fmt.Errorf("unknown type specifier %q", sig[0])
	}
}

func (p *Parser) basicTypename(code byte) (string, bool) {
	if code == 'o' {
		return p.objectPathTypename, true
	}
	ret, ok := basicTypenames[code]
	return ret, ok
}
