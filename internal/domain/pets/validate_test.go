package pets

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	res := Validate(map[string]any{
		"petName": " Bella ",
		"breed":   "Labrador",
		"age":     float64(3),
		"history": "vaccinated",
	})
	require.True(t, res.OK(), "errors: %+v", res.Errors)
	assert.Equal(t, PetInput{PetName: "Bella", Breed: "Labrador", Age: 3, History: "vaccinated"}, res.Input)
}

func TestValidate_AgeCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{name: "zero", in: float64(0), want: 0, ok: true},
		{name: "decimal", in: 2.5, want: 2.5, ok: true},
		{name: "numeric text", in: "4", want: 4, ok: true},
		{name: "padded text", in: " 1.5 ", want: 1.5, ok: true},
		{name: "empty text is zero", in: "", want: 0, ok: true},
		{name: "json number", in: json.Number("7"), want: 7, ok: true},
		{name: "int", in: 5, want: 5, ok: true},
		{name: "negative", in: float64(-1), ok: false},
		{name: "negative text", in: "-1", ok: false},
		{name: "not a number", in: "three", ok: false},
		{name: "nan text", in: "NaN", ok: false},
		{name: "inf", in: math.Inf(1), ok: false},
		{name: "null", in: nil, ok: false},
		{name: "bool", in: true, ok: false},
		{name: "object", in: map[string]any{}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Validate(map[string]any{"petName": "Bella", "breed": "Labrador", "age": tc.in})
			if !tc.ok {
				require.False(t, res.OK())
				first, _ := res.First()
				assert.Equal(t, FieldError{Field: "age", Message: MsgAgeInvalid}, first)
				return
			}
			require.True(t, res.OK(), "errors: %+v", res.Errors)
			assert.Equal(t, tc.want, res.Input.Age)
		})
	}
}

func TestValidate_RejectsEmptyRequiredFields(t *testing.T) {
	res := Validate(map[string]any{"petName": "", "breed": "Labrador", "age": float64(1)})
	first, failed := res.First()
	require.True(t, failed)
	assert.Equal(t, FieldError{Field: "petName", Message: MsgPetNameRequired}, first)

	res = Validate(map[string]any{"petName": "Bella", "breed": "   ", "age": float64(1)})
	first, failed = res.First()
	require.True(t, failed)
	assert.Equal(t, FieldError{Field: "breed", Message: MsgBreedRequired}, first)
}

func TestValidate_EnumeratesEveryFailureInFieldOrder(t *testing.T) {
	res := Validate(map[string]any{"age": float64(-1), "history": 12})

	assert.Equal(t, []FieldError{
		{Field: "petName", Message: MsgPetNameRequired},
		{Field: "breed", Message: MsgBreedRequired},
		{Field: "age", Message: MsgAgeInvalid},
		{Field: "history", Message: MsgHistoryInvalid},
	}, res.Errors)
	assert.Equal(t, PetInput{}, res.Input)
}

func TestValidate_NilInputIsTotal(t *testing.T) {
	res := Validate(nil)
	assert.False(t, res.OK())
	assert.Len(t, res.Errors, 3)
}

func TestValidate_HistoryOptional(t *testing.T) {
	res := Validate(map[string]any{"petName": "Milo", "breed": "Beagle", "age": "2"})
	require.True(t, res.OK())
	assert.Equal(t, "", res.Input.History)
}

func TestCheckCollection(t *testing.T) {
	ok := []Pet{{ID: "a", PetName: "A", Breed: "B"}, {ID: "b", PetName: "C", Breed: "D", Age: 1}}
	assert.NoError(t, CheckCollection(ok))
	assert.NoError(t, CheckCollection(nil))

	assert.Error(t, CheckCollection([]Pet{{ID: "a", PetName: "A", Breed: "B"}, {ID: "a", PetName: "A", Breed: "B"}}))
	assert.Error(t, CheckCollection([]Pet{{ID: "", PetName: "A", Breed: "B"}}))
	assert.Error(t, CheckCollection([]Pet{{ID: "a", PetName: "", Breed: "B"}}))
	assert.Error(t, CheckCollection([]Pet{{ID: "a", PetName: "A", Breed: "B", Age: -1}}))
}

// Más estricto que un formulario que solo mira el largo: nombres en blanco,
// edad null y booleanos se rechazan en vez de coercionarse.
func TestValidate_BlankNameAndNullAgeAreRejected(t *testing.T) {
	res := Validate(map[string]any{"petName": "   ", "breed": "Labrador", "age": nil})
	assert.Equal(t, []FieldError{
		{Field: "petName", Message: MsgPetNameRequired},
		{Field: "age", Message: MsgAgeInvalid},
	}, res.Errors)

	res = Validate(map[string]any{"petName": "Bella", "breed": "Labrador", "age": true})
	first, failed := res.First()
	require.True(t, failed)
	assert.Equal(t, "age", first.Field)
}

func TestValidate_OutOfRangeJSONNumber(t *testing.T) {
	res := Validate(map[string]any{"petName": "Bella", "breed": "Labrador", "age": json.Number("1e400")})
	first, failed := res.First()
	require.True(t, failed)
	assert.Equal(t, FieldError{Field: "age", Message: MsgAgeInvalid}, first)
}
