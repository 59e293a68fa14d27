package form

// Status is the outcome of a field's latest evaluation.
type Status int

const (
	// StatusUntouched means the field has not been evaluated since load or
	// the last reset.
	StatusUntouched Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// State is a field's validation state. Message is set only for StatusInvalid.
type State struct {
	Status  Status
	Message string
}

// stateFor converts an evaluation into the state recorded for the field.
func stateFor(res Result, message string) State {
	if res.OK {
		return State{Status: StatusValid}
	}
	return State{Status: StatusInvalid, Message: message}
}

// FieldState is one entry of a FormState snapshot.
type FieldState struct {
	Field Field
	Value Value
	State State
}

// FormState is a point-in-time copy of every field in display order.
type FormState struct {
	Fields []FieldState
}

// OverallValid reports whether every field's latest state is valid.
// Untouched fields count as not valid.
func (s FormState) OverallValid() bool {
	if len(s.Fields) == 0 {
		return false
	}
	for _, fs := range s.Fields {
		if fs.State.Status != StatusValid {
			return false
		}
	}
	return true
}

// Invalid returns the fields whose latest state is invalid, in display order.
func (s FormState) Invalid() []Field {
	var fields []Field
	for _, fs := range s.Fields {
		if fs.State.Status == StatusInvalid {
			fields = append(fields, fs.Field)
		}
	}
	return fields
}
