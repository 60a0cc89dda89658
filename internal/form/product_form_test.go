package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductForm_Valid(t *testing.T) {
	f := New("Widget", "A fine widget", "19.99")

	errs := f.Validate()
	require.Nil(t, errs)

	p := f.Product()
	assert.Equal(t, "Widget", p.Nombre)
	assert.Equal(t, "A fine widget", p.Descripcion)
	assert.Equal(t, 19.99, p.Precio)
	assert.Nil(t, p.Imagen)
}

func TestProductForm_OptionalFieldsMayBeEmpty(t *testing.T) {
	f := New("Widget", "", "5")

	require.Nil(t, f.Validate())
	assert.Equal(t, 5.0, f.Product().Precio)
}

func TestProductForm_MissingNombre(t *testing.T) {
	f := New("", "desc", "19.99")

	errs := f.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs["nombre"], "This field is required.")
	assert.NotContains(t, errs, "precio")
}

func TestProductForm_NombreTooLong(t *testing.T) {
	f := New(strings.Repeat("x", 101), "", "1.00")

	errs := f.Validate()
	require.NotNil(t, errs)
	assert.Len(t, errs["nombre"], 1)
}

func TestProductForm_PrecioValidation(t *testing.T) {
	cases := []struct {
		name   string
		precio string
		ok     bool
	}{
		{"two decimals", "19.99", true},
		{"one decimal", "19.9", true},
		{"integer", "19", true},
		{"negative", "-3.50", true},
		{"missing", "", false},
		{"not a number", "abc", false},
		{"three decimals", "19.999", false},
		{"comma separator", "19,99", false},
		{"too many digits", "123456789.00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := New("Widget", "", tc.precio)
			errs := f.Validate()
			if tc.ok {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.NotEmpty(t, errs["precio"])
			}
		})
	}
}

func TestProductForm_BothFieldsInvalid(t *testing.T) {
	f := New("", "", "not-a-price")

	errs := f.Validate()
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["nombre"])
	assert.NotEmpty(t, errs["precio"])
}

func TestProductForm_ValuesEchoSubmission(t *testing.T) {
	f := New("  Widget ", "desc", " bad ")
	f.Validate()

	values := f.Values()
	assert.Equal(t, "Widget", values["nombre"])
	assert.Equal(t, "desc", values["descripcion"])
	assert.Equal(t, "bad", values["precio"])
}

func TestFields_DescribesTheForm(t *testing.T) {
	fields := Fields()
	require.Len(t, fields, 4)

	byName := make(map[string]Field)
	for _, f := range fields {
		byName[f.Name] = f
	}
	assert.True(t, byName["nombre"].Required)
	assert.True(t, byName["precio"].Required)
	assert.False(t, byName["imagen"].Required)
	assert.False(t, byName["descripcion"].Required)
}
