// Package labels holds the label registration domain: the form state, its
// change handling and validation, and the request/response types exchanged
// with the dashboard backend.
package labels

import "strings"

// DefaultLabel is the label every normal account is registered under.
const DefaultLabel = "SwaLay Digital"

// UserType classifies the registrant.
type UserType string

const (
	// UserTypeNormal accounts are tied to DefaultLabel.
	UserTypeNormal UserType = "normal"
	// UserTypeSuper accounts must supply their own record label name.
	UserTypeSuper UserType = "super"
)

// Field names, as used by Change.Name and the JSON payload.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldContact  = "contact"
	FieldUserType = "usertype"
	FieldIsLabel  = "isLable"
	FieldLabel    = "lable"
)

// Form is the registration form state.
type Form struct {
	Username string
	Email    string
	Contact  string
	UserType UserType
	IsLabel  bool
	Label    string
}

// NewForm returns a form with the page-load defaults.
func NewForm() Form {
	return Form{
		UserType: UserTypeSuper,
		IsLabel:  true,
	}
}

// InputKind identifies the kind of control a Change came from.
type InputKind int

const (
	InputText InputKind = iota
	InputRadio
	InputCheckbox
)

// Change is a single field interaction.
type Change struct {
	Kind    InputKind
	Name    string
	Value   string
	Checked bool
}

// TextChange is shorthand for a text input edit.
func TextChange(name, value string) Change {
	return Change{Kind: InputText, Name: name, Value: value}
}

// SelectUserType is shorthand for clicking one of the user type radios.
func SelectUserType(t UserType) Change {
	return Change{Kind: InputRadio, Name: FieldUserType, Value: string(t)}
}

// Apply returns the form with the change applied.
// Unknown field names leave the form untouched.
func (f Form) Apply(c Change) Form {
	switch {
	case c.Kind == InputRadio && c.Name == FieldUserType:
		if UserType(c.Value) == UserTypeNormal {
			f.UserType = UserTypeNormal
			f.IsLabel = false
			f.Label = DefaultLabel
		} else {
			f.UserType = UserType(c.Value)
			f.IsLabel = true
			f.Label = ""
		}

	case c.Kind == InputCheckbox:
		if c.Name == FieldIsLabel {
			f.IsLabel = c.Checked
		}

	default:
		switch c.Name {
		case FieldUsername:
			f.Username = c.Value
		case FieldEmail:
			f.Email = c.Value
		case FieldContact:
			f.Contact = c.Value
		case FieldLabel:
			f.Label = c.Value
		case FieldUserType:
			f.UserType = UserType(c.Value)
		}
	}
	return f
}

// ValidationError reports the first required field that is missing.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks required fields in display order and stops at the first
// one that is blank.
func (f Form) Validate() error {
	switch {
	case strings.TrimSpace(f.Username) == "":
		return &ValidationError{Field: FieldUsername, Message: "Username is required"}
	case strings.TrimSpace(f.Email) == "":
		return &ValidationError{Field: FieldEmail, Message: "Email is required"}
	case strings.TrimSpace(f.Contact) == "":
		return &ValidationError{Field: FieldContact, Message: "Contact is required"}
	case f.UserType == UserTypeSuper && strings.TrimSpace(f.Label) == "":
		return &ValidationError{Field: FieldLabel, Message: "Record Label Name is required"}
	}
	return nil
}

// EffectiveLabel is the label name that is sent for this form.
func (f Form) EffectiveLabel() string {
	if f.UserType == UserTypeNormal {
		return DefaultLabel
	}
	return f.Label
}

// Settle forces the stored label to the value that will be sent.
func (f Form) Settle() Form {
	f.Label = f.EffectiveLabel()
	return f
}

// Registration is the body of POST /api/labels/addLabel.
type Registration struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Contact  string   `json:"contact"`
	UserType UserType `json:"usertype"`
	IsLabel  bool     `json:"isLable"`
	Label    string   `json:"lable"`
}

// Payload builds the request body from the current state.
func (f Form) Payload() Registration {
	return Registration{
		Username: f.Username,
		Email:    f.Email,
		Contact:  f.Contact,
		UserType: f.UserType,
		IsLabel:  f.IsLabel,
		Label:    f.EffectiveLabel(),
	}
}
