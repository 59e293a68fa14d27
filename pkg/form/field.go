package form

// Field identifies one input of the signup form. The identity alone selects
// the rule applied to it.
type Field int

const (
	Name Field = iota
	Email
	Phone
	DateOfBirth
	Website
	Password
	ConfirmPassword
	TermsAccepted

	fieldCount
)

var fieldNames = [fieldCount]string{
	Name:            "name",
	Email:           "email",
	Phone:           "phone",
	DateOfBirth:     "date_of_birth",
	Website:         "website",
	Password:        "password",
	ConfirmPassword: "confirm_password",
	TermsAccepted:   "terms",
}

// Fields returns every field in display order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// String returns the snake_case field name used in logs and translation keys.
func (f Field) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return fieldNames[f]
}

// Valid reports whether f is one of the declared fields.
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// IsText reports whether the field holds text. TermsAccepted is the only
// checkbox.
func (f Field) IsText() bool {
	return f.Valid() && f != TermsAccepted
}

// ParseField maps a field name back to its Field.
func ParseField(name string) (Field, bool) {
	for f, n := range fieldNames {
		if n == name {
			return Field(f), true
		}
	}
	return 0, false
}

// Value is the raw content of a field: Text for text inputs, Checked for the
// checkbox.
type Value struct {
	Text    string
	Checked bool
}

// TextValue wraps a text input's content.
func TextValue(s string) Value {
	return Value{Text: s}
}

// CheckedValue wraps a checkbox state.
func CheckedValue(checked bool) Value {
	return Value{Checked: checked}
}

// IsZero reports whether the value is empty text and unchecked.
func (v Value) IsZero() bool {
	return v.Text == "" && !v.Checked
}
