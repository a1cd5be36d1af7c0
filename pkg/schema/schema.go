package schema

// Column pairs a column name with the kind of its cells.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered list of columns of a table.
type Schema []Column

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}

// Lookup finds a column by name.
func (s Schema) Lookup(name string) (Column, bool) {
	for _, c := range s {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Has reports whether a column with the given name exists.
func (s Schema) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// inferOrder lists candidate kinds from most to least specific.
// FloatKind accepts ints, so IntKind must be tried first; StringKind
// is the last typed candidate before the catch-all.
var inferOrder = []Kind{Bool(), Int(), Float(), Time(), String()}

// Infer determines the kind of a column from its cells.
// Nil cells are ignored; a column with no non-nil cells, or with cells of
// mixed kinds, infers as Any.
func Infer(values []any) Kind {
	seen := false
	for _, v := range values {
		if v != nil {
			seen = true
			break
		}
	}
	if !seen {
		return Any()
	}
	for _, k := range inferOrder {
		ok := true
		for _, v := range values {
			if err := k.Validate(v); err != nil {
				ok = false
				break
			}
		}
		if ok {
			return k
		}
	}
	return Any()
}
