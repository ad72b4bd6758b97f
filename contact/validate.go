package contact

import (
	"regexp"
	"strings"
)

// Field names as posted by the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldMessage}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Values are the free-text contents of the form.
type Values struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

// Get returns the value of a field by name.
func (v Values) Get(field string) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	}
	return ""
}

// Errors maps a field name to its message. Only invalid fields are present.
type Errors map[string]string

// Validate checks the values and returns one message per invalid field.
func Validate(v Values) Errors {
	errs := Errors{}
	if strings.TrimSpace(v.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if strings.TrimSpace(v.Email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(v.Email) {
		errs[FieldEmail] = "Email is invalid"
	}
	if strings.TrimSpace(v.Message) == "" {
		errs[FieldMessage] = "Message is required"
	}
	return errs
}
