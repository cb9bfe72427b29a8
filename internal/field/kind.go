package field

import "fieldmap/internal/common"

// Kind classifies the data type of a Field.
type Kind int

const (
	// KindUnsupported is the fallback for absent, unknown or plugin types.
	// Unsupported fields are opaque leaves.
	KindUnsupported Kind = iota
	KindNull
	KindBoolean
	KindByte
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindHalfFloat
	KindScaledFloat
	KindString
	KindText
	KindKeyword
	KindDate
	KindIP
	KindTokenCount
	KindGeoPoint
	KindCompletion
	KindObject
	KindNested
	// KindMultiField is the legacy multi_field wrapper. It only exists while
	// parsing; the parser replaces it with the kind of the default sub-field.
	KindMultiField

	// KindTotal is the number of kinds defined.
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindUnsupported: "unsupported",
	KindNull:        "null",
	KindBoolean:     "boolean",
	KindByte:        "byte",
	KindShort:       "short",
	KindInteger:     "integer",
	KindLong:        "long",
	KindFloat:       "float",
	KindDouble:      "double",
	KindHalfFloat:   "half_float",
	KindScaledFloat: "scaled_float",
	KindString:      "string",
	KindText:        "text",
	KindKeyword:     "keyword",
	KindDate:        "date",
	KindIP:          "ip",
	KindTokenCount:  "token_count",
	KindGeoPoint:    "geo_point",
	KindCompletion:  "completion",
	KindObject:      "object",
	KindNested:      "nested",
	KindMultiField:  "multi_field",
}

// ParseKind maps a raw mapping type string to its Kind.
// Anything not in the enumeration, including geo_shape, attachment and
// binary, classifies as KindUnsupported.
func ParseKind(raw string) Kind {
	switch raw {
	case "null":
		return KindNull
	case "boolean":
		return KindBoolean
	case "byte":
		return KindByte
	case "short":
		return KindShort
	case "integer":
		return KindInteger
	case "long":
		return KindLong
	case "float":
		return KindFloat
	case "double":
		return KindDouble
	case "half_float":
		return KindHalfFloat
	case "scaled_float":
		return KindScaledFloat
	case "string":
		return KindString
	case "text":
		return KindText
	case "keyword":
		return KindKeyword
	case "date", "date_nanos":
		return KindDate
	case "ip":
		return KindIP
	case "token_count":
		return KindTokenCount
	case "geo_point":
		return KindGeoPoint
	case "completion":
		return KindCompletion
	case "object":
		return KindObject
	case "nested":
		return KindNested
	case "multi_field":
		return KindMultiField
	default:
		return KindUnsupported
	}
}

// String returns the mapping type name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return common.UnknownStr
	}

	return kindNames[k]
}

// IsCompound reports whether fields of this kind carry child properties.
func (k Kind) IsCompound() bool {
	return k == KindObject || k == KindNested
}

// IsNumeric reports whether the kind holds a number.
func (k Kind) IsNumeric() bool {
	switch k {
	default:
		return false
	case KindByte, KindShort, KindInteger, KindLong,
		KindFloat, KindDouble, KindHalfFloat, KindScaledFloat, KindTokenCount:
		return true
	}
}
