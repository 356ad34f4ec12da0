package dbusgen

// C++ typenames for the DBus basic types, and the templates used to
// render containers. These match the types used by the libchromeos
// DBus bindings, which generated headers are expected to compile
// against.
const (
	TypenameArray      = "std::vector"
	TypenameBoolean    = "bool"
	TypenameByte       = "uint8_t"
	TypenameDict       = "std::map"
	TypenameDouble     = "double"
	TypenameSigned16   = "int16_t"
	TypenameSigned32   = "int32_t"
	TypenameSigned64   = "int64_t"
	TypenameString     = "std::string"
	TypenameUnixFd     = "dbus::FileDescriptor"
	TypenameUnsigned16 = "uint16_t"
	TypenameUnsigned32 = "uint32_t"
	TypenameUnsigned64 = "uint64_t"
	TypenameVariant    = "chromeos::Any"
)

// DefaultObjectPathTypename is the typename used for the object path
// type code when a Parser has not been given one with
// [Parser.SetObjectPathTypename].
const DefaultObjectPathTypename = "dbus::ObjectPath"

// basicTypenames maps the DBus type signature identifier of each
// basic type to its C++ typename. The object path code 'o' is absent
// because its typename is per-Parser configuration.
var basicTypenames = map[byte]string{
	'b': TypenameBoolean,
	'y': TypenameByte,
	'd': TypenameDouble,
	'n': TypenameSigned16,
	'i': TypenameSigned32,
	'x': TypenameSigned64,
	's': TypenameString,
	'h': TypenameUnixFd,
	'q': TypenameUnsigned16,
	'u': TypenameUnsigned32,
	't': TypenameUnsigned64,
	'v': TypenameVariant,
}
