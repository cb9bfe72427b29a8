package document

// Category is the run-time category of a document value.
type Category int

const (
	CategoryNull Category = iota
	CategoryObject
	CategoryList
	CategoryScalar
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryNull:
		return "null"
	case CategoryObject:
		return "object"
	case CategoryList:
		return "list"
	case CategoryScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// CategoryOf returns the category of a document value.
func CategoryOf(v any) Category {
	switch t := v.(type) {
	case nil:
		return CategoryNull
	case *Object:
		if t == nil {
			return CategoryNull
		}

		return CategoryObject
	case List:
		return CategoryList
	default:
		return CategoryScalar
	}
}
