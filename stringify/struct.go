package stringify

// StructBuilder collects the fields of a struct before rendering it.
type StructBuilder struct {
	name   string
	fields []*StructField
}

// NewStructBuilder creates a StructBuilder for a struct with the given name.
func NewStructBuilder(name string, fields ...*StructField) *StructBuilder {
	return &StructBuilder{
		name:   name,
		fields: fields,
	}
}

// AddField dynamically adds a new field to the struct.
func (s *StructBuilder) AddField(field *StructField) *StructBuilder {
	s.fields = append(s.fields, field)

	return s
}

// String returns the rendered struct.
func (s *StructBuilder) String() (result string) {
	result = s.name + " {\n"

	for _, field := range s.fields {
		result += indent(field.String() + "\n")
	}

	return result + "}"
}

// StructField is a named value of a struct.
type StructField struct {
	name  string
	value any
}

// NewStructField creates a new StructField.
func NewStructField(name string, value any) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (s *StructField) String() string {
	return s.name + ": " + Interface(s.value)
}
