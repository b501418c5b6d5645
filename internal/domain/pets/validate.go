package pets

import (
	"strings"

	"github.com/google/uuid"
)

// FieldError describe un campo rechazado.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError junta todos los campos inválidos de un request.
// errors.Is(err, ErrInvalidInput) es true.
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

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

type CreateInput struct {
	Name     string
	Type     string
	Breed    string
	Age      string
	Location string
	Bio      string
	Image    string

	// Vacíos => default.
	Gender         string
	Size           string
	AdoptionStatus string
}

// UpdateInput: nil = campo ausente en el body.
type UpdateInput struct {
	Name     *string
	Type     *string
	Breed    *string
	Age      *string
	Location *string
	Bio      *string
	Image    *string

	Gender         *string
	Size           *string
	AdoptionStatus *string
}

// ValidateCreate no toca storage: devuelve la Pet tipada con defaults (sin ID ni timestamps).
func ValidateCreate(in CreateInput) (Pet, error) {
	verr := &ValidationError{}

	p := Pet{
		Name:     required(verr, "name", in.Name),
		Type:     required(verr, "type", in.Type),
		Breed:    required(verr, "breed", in.Breed),
		Age:      required(verr, "age", in.Age),
		Location: required(verr, "location", in.Location),
		Bio:      required(verr, "bio", in.Bio),
		Image:    required(verr, "image", in.Image),

		Gender:         GenderUnknown,
		Size:           SizeMedium,
		AdoptionStatus: StatusAvailable,
	}

	if v := strings.TrimSpace(in.Gender); v != "" {
		p.Gender = Gender(v)
		if !p.Gender.Valid() {
			verr.add("gender", "must be one of Male, Female, Unknown")
		}
	}
	if v := strings.TrimSpace(in.Size); v != "" {
		p.Size = Size(v)
		if !p.Size.Valid() {
			verr.add("size", "must be one of Small, Medium, Large")
		}
	}
	if v := strings.TrimSpace(in.AdoptionStatus); v != "" {
		p.AdoptionStatus = AdoptionStatus(v)
		if !p.AdoptionStatus.Valid() {
			verr.add("adoptionStatus", "must be one of Available, Pending, Adopted")
		}
	}

	if err := verr.orNil(); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// ValidatePatch valida solo los campos presentes.
func ValidatePatch(in UpdateInput) (Patch, error) {
	verr := &ValidationError{}
	var pt Patch

	pt.Name = optionalRequired(verr, "name", in.Name)
	pt.Type = optionalRequired(verr, "type", in.Type)
	pt.Breed = optionalRequired(verr, "breed", in.Breed)
	pt.Age = optionalRequired(verr, "age", in.Age)
	pt.Location = optionalRequired(verr, "location", in.Location)
	pt.Bio = optionalRequired(verr, "bio", in.Bio)
	pt.Image = optionalRequired(verr, "image", in.Image)

	if in.Gender != nil {
		g := Gender(strings.TrimSpace(*in.Gender))
		if g.Valid() {
			pt.Gender = &g
		} else {
			verr.add("gender", "must be one of Male, Female, Unknown")
		}
	}
	if in.Size != nil {
		s := Size(strings.TrimSpace(*in.Size))
		if s.Valid() {
			pt.Size = &s
		} else {
			verr.add("size", "must be one of Small, Medium, Large")
		}
	}
	if in.AdoptionStatus != nil {
		st := AdoptionStatus(strings.TrimSpace(*in.AdoptionStatus))
		if st.Valid() {
			pt.AdoptionStatus = &st
		} else {
			verr.add("adoptionStatus", "must be one of Available, Pending, Adopted")
		}
	}

	if err := verr.orNil(); err != nil {
		return Patch{}, err
	}
	return pt, nil
}

// ValidateID exige UUID; cualquier otra cosa no llega al repo.
func ValidateID(id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "id", Message: "must be a valid pet id"}}}
	}
	return nil
}

// ParseStatuses parsea un CSV ("Available,Pending"). Vacío => nil (todos).
func ParseStatuses(csv string) ([]AdoptionStatus, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	verr := &ValidationError{}
	var out []AdoptionStatus
	for _, raw := range strings.Split(csv, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		st := AdoptionStatus(raw)
		if !st.Valid() {
			verr.add("status", "unknown adoption status "+raw)
			continue
		}
		out = append(out, st)
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return out, nil
}

func required(verr *ValidationError, field, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		verr.add(field, "is required")
	}
	return v
}

func optionalRequired(verr *ValidationError, field string, v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		verr.add(field, "cannot be empty")
		return nil
	}
	return &s
}
