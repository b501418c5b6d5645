package pets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestValidateCreate_ListsEveryMissingField(t *testing.T) {
	_, err := ValidateCreate(CreateInput{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"name", "type", "breed", "age", "location", "bio", "image"}, fields)
}

func TestValidateCreate_EnumsAreCaseSensitive(t *testing.T) {
	in := validInput("Rex")
	in.Gender = "male"
	_, err := ValidateCreate(in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in.Gender = "Male"
	in.Size = "Large"
	in.AdoptionStatus = "Pending"
	p, err := ValidateCreate(in)
	require.NoError(t, err)
	assert.Equal(t, GenderMale, p.Gender)
	assert.Equal(t, SizeLarge, p.Size)
	assert.Equal(t, StatusPending, p.AdoptionStatus)
}

func TestValidatePatch_OnlyPresentFields(t *testing.T) {
	pt, err := ValidatePatch(UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, Patch{}, pt)

	pt, err = ValidatePatch(UpdateInput{Name: strp(" Max "), Size: strp("Small")})
	require.NoError(t, err)
	require.NotNil(t, pt.Name)
	assert.Equal(t, "Max", *pt.Name)
	require.NotNil(t, pt.Size)
	assert.Equal(t, SizeSmall, *pt.Size)
	assert.Nil(t, pt.Breed)

	_, err = ValidatePatch(UpdateInput{Name: strp(""), AdoptionStatus: strp("Gone")})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("7b0e2f7e-9b84-4f0c-8a4e-3c2f5d1a9e10"))
	assert.ErrorIs(t, ValidateID(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateID("507f1f77bcf86cd799439011"), ErrInvalidInput)
}

func TestParseStatuses(t *testing.T) {
	got, err := ParseStatuses("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseStatuses("Available, Adopted,")
	require.NoError(t, err)
	assert.Equal(t, []AdoptionStatus{StatusAvailable, StatusAdopted}, got)

	_, err = ParseStatuses("Available,sold")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPatch_Apply(t *testing.T) {
	p := Pet{Name: "Rex", Size: SizeMedium}
	large := SizeLarge
	out := Patch{Size: &large}.Apply(p)
	assert.Equal(t, "Rex", out.Name)
	assert.Equal(t, SizeLarge, out.Size)
	assert.Equal(t, SizeMedium, p.Size)
}
