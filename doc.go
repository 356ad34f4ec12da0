// Package dbusgen generates C++ declarations from DBus introspection
// data.
//
// The package provides three pieces: a model for DBus introspection
// XML documents ([ParseIntrospection] and the *Description types), a
// translator from DBus type signatures to C++ typenames ([Parser]),
// and a service configuration file format ([Config]). The cmd/dbusgen
// command ties them together into a header generator.
//
// # Signature translation
//
// A DBus type signature is a compact string describing the wire type
// of a value: "s" is a string, "ay" an array of bytes, "a{sv}" a map
// from string to variant. [Parser.Parse] validates a signature and
// returns the C++ typename a generated declaration should use, e.g.
// "std::map<std::string,chromeos::Any>" for "a{sv}". The typename
// used for the object path code is configurable, since projects
// disagree on the right C++ type for it; everything else is fixed.
//
// Parse resolves the first complete type in its input and ignores any
// trailing characters. This is a deliberate part of the contract, not
// an oversight, and generated output depends on it staying that way.
// See [Parser.Parse] before "fixing" this.
//
// Struct signatures ("(...)") and the signature type code "g" are not
// part of the accepted grammar: generated bindings have no C++
// mapping for them, so they fail like any other unknown code.
package dbusgen
