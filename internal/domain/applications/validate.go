package applications

import "strings"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError unwrap => ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

type SubmitInput struct {
	PetID   string
	PetName string
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate devuelve la Application lista para guardar (sin ID ni CreatedAt).
func Validate(in SubmitInput) (Application, error) {
	verr := &ValidationError{}
	req := func(field, v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			verr.Fields = append(verr.Fields, FieldError{Field: field, Message: "is required"})
		}
		return v
	}

	a := Application{
		PetID:   strings.TrimSpace(in.PetID),
		PetName: req("petName", in.PetName),
		Name:    req("name", in.Name),
		Email:   req("email", in.Email),
		Phone:   req("phone", in.Phone),
		Message: strings.TrimSpace(in.Message),
	}

	if len(verr.Fields) > 0 {
		return Application{}, verr
	}
	return a, nil
}
