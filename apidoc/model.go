package apidoc

// Entry is one key of a Mapping.
//
// Value is a string, a []string, a nested Mapping, or any other scalar.
// A nil value, an empty string, an empty list and a Mapping with nothing to
// write are all treated as absent.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered set of keys. Order is preserved on output.
type Mapping []Entry

// Get returns the value stored under key.
func (m Mapping) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// IsEmpty reports whether writing m would produce no output.
func (m Mapping) IsEmpty() bool {
	for _, e := range m {
		if !isAbsent(e.Value) {
			return false
		}
	}
	return true
}

func isAbsent(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case Mapping:
		return v.IsEmpty()
	}
	return false
}

// WriteTo writes m at the given indent level through w, skipping absent
// entries.
func (m Mapping) WriteTo(w Writer, indent int) {
	for _, e := range m {
		if isAbsent(e.Value) {
			continue
		}
		switch v := e.Value.(type) {
		case []string:
			w.WriteList(indent, e.Key, v)
		case Mapping:
			w.WriteBlock(indent, e.Key)
			v.WriteTo(w, indent+1)
		default:
			w.WriteScalar(indent, e.Key, v)
		}
	}
}
