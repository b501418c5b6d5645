package pets

import "time"

// Gender define el sexo declarado de la mascota.
// @Enum Male, Female, Unknown
type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

// Size define el tamaño de la mascota.
// @Enum Small, Medium, Large
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// AdoptionStatus determina la visibilidad pública: solo Available aparece en el listado.
// @Enum Available, Pending, Adopted
type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "Available"
	StatusPending   AdoptionStatus = "Pending"
	StatusAdopted   AdoptionStatus = "Adopted"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func (s AdoptionStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

// Pet representa un animal en adopción.
type Pet struct {
	ID string

	Name     string
	Type     string // especie: "Dog", "Cat", ...
	Breed    string
	Age      string // texto libre ("2 years")
	Location string
	Bio      string
	Image    string

	Gender         Gender
	Size           Size
	AdoptionStatus AdoptionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch es un update parcial ya validado: nil = no tocar.
type Patch struct {
	Name     *string
	Type     *string
	Breed    *string
	Age      *string
	Location *string
	Bio      *string
	Image    *string

	Gender         *Gender
	Size           *Size
	AdoptionStatus *AdoptionStatus
}

// Apply devuelve una copia de p con los campos presentes del patch.
func (pt Patch) Apply(p Pet) Pet {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Type != nil {
		p.Type = *pt.Type
	}
	if pt.Breed != nil {
		p.Breed = *pt.Breed
	}
	if pt.Age != nil {
		p.Age = *pt.Age
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.Bio != nil {
		p.Bio = *pt.Bio
	}
	if pt.Image != nil {
		p.Image = *pt.Image
	}
	if pt.Gender != nil {
		p.Gender = *pt.Gender
	}
	if pt.Size != nil {
		p.Size = *pt.Size
	}
	if pt.AdoptionStatus != nil {
		p.AdoptionStatus = *pt.AdoptionStatus
	}
	return p
}
