package logging

// Detail is a logging detail that enriches the log entry with additional context.
type Detail interface {
	addTo(e entry)
}

type entry map[string]any

// Field creates a single key value pair based logging detail.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) {
	if err, ok := f.Value.(error); ok {
		e[f.Key] = err.Error()
		return
	}
	e[f.Key] = f.Value
}

// Fields is a collection of key value pairs added to the entry as is.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		field{Key: k, Value: v}.addTo(e)
	}
}

// ErrField adds the error message under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nil
	}
	return field{Key: "error", Value: err}
}
