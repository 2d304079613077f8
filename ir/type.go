package ir

import "fmt"

type Type int

const (
	AbsentType Type = iota
	NumberType
	StringType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "Object",
		ArrayType:  "Array",
		StringType: "String",
		NumberType: "Number",
		AbsentType: "Absent",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Absent": AbsentType,
		"Number": NumberType,
		"String": StringType,
		"Array":  ArrayType,
		"Object": ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		AbsentType,
		NumberType,
		StringType,
		ObjectType,
		ArrayType,
	}
}

// IsLeaf reports whether values of type t carry no children.
func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

// IsScalar reports whether t is rendered as element text.
func (t Type) IsScalar() bool {
	return t == NumberType || t == StringType
}
