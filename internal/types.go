package internal

type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInt
	ValueList
	ValueMap
)

// Value is a tagged variant over the shapes a template argument can take:
// a scalar string or integer, an ordered list, or an ordered key/value
// mapping.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int
	List []string
	Map  []MapEntry
}

type MapEntry struct {
	Key   string
	Value string
}

func String(v string) Value { return Value{Kind: ValueString, Str: v} }

func Int(v int) Value { return Value{Kind: ValueInt, Int: v} }

func List(v []string) Value { return Value{Kind: ValueList, List: v} }

func Map(v []MapEntry) Value { return Value{Kind: ValueMap, Map: v} }

// Empty reports whether the value should be suppressed in template output.
func (v Value) Empty() bool {
	switch v.Kind {
	case ValueString:
		return v.Str == ""
	case ValueInt:
		return v.Int == 0
	case ValueList:
		return len(v.List) == 0
	default:
		return len(v.Map) == 0
	}
}

// Field is one named template argument; order is significant.
type Field struct {
	Key   string
	Value Value
}

// Record is one normalized stream entry.
type Record struct {
	Index     int
	Date      string // YYYY-MM-DD
	Part      int
	Game      string
	GameIndex string
	VOD       []MapEntry
	Extra     []Field
}

type Replacement struct {
	Target string
	With   string
}

// Exclusion drops rows with a known-bad title below a cutoff index.
type Exclusion struct {
	Game        string
	BeforeIndex int
}
