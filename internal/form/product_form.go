package form

import (
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go-products-api/internal/model"
)

// Up to 10 digits total with at most 2 decimal places
var precioPattern = regexp.MustCompile(`^-?\d{1,8}(\.\d{1,2})?$`)

const nombreMaxLen = 100

// Field describes one form field for the empty-form response
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	HelpText string `json:"help_text,omitempty"`
}

// Fields returns the product form layout, rendered by GET create/
func Fields() []Field {
	return []Field{
		{Name: "imagen", Label: "Imagen del Producto", Type: "file", Required: false},
		{Name: "nombre", Label: "Nombre del Producto", Type: "text", Required: true, HelpText: "Ingrese el nombre del producto"},
		{Name: "descripcion", Label: "Descripción del Producto", Type: "textarea", Required: false, HelpText: "Ingrese la descripción del producto"},
		{Name: "precio", Label: "Precio del Producto", Type: "decimal", Required: true, HelpText: "Ingrese el precio del producto"},
	}
}

// ProductForm holds one submission. Precio stays a string until
// validation so a bad value can be echoed back untouched.
type ProductForm struct {
	Nombre      string
	Descripcion string
	Precio      string
	Imagen      *multipart.FileHeader

	precio float64
}

func New(nombre, descripcion, precio string) *ProductForm {
	return &ProductForm{
		Nombre:      strings.TrimSpace(nombre),
		Descripcion: strings.TrimSpace(descripcion),
		Precio:      strings.TrimSpace(precio),
	}
}

// Validate checks the submission against the product constraints and
// returns field-level errors, keyed by wire field name. An empty map
// means the form is valid.
func (f *ProductForm) Validate() map[string][]string {
	errs := make(map[string][]string)

	if f.Nombre == "" {
		errs["nombre"] = append(errs["nombre"], "This field is required.")
	} else if utf8.RuneCountInString(f.Nombre) > nombreMaxLen {
		errs["nombre"] = append(errs["nombre"], "Ensure this value has at most 100 characters.")
	}

	if f.Precio == "" {
		errs["precio"] = append(errs["precio"], "This field is required.")
	} else if !precioPattern.MatchString(f.Precio) {
		errs["precio"] = append(errs["precio"], "Enter a valid decimal number with up to 2 decimal places.")
	} else {
		precio, err := strconv.ParseFloat(f.Precio, 64)
		if err != nil {
			errs["precio"] = append(errs["precio"], "Enter a valid decimal number with up to 2 decimal places.")
		} else {
			f.precio = precio
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Values echoes the submitted text fields, used to re-render the form
// after a validation failure.
func (f *ProductForm) Values() map[string]string {
	return map[string]string{
		"nombre":      f.Nombre,
		"descripcion": f.Descripcion,
		"precio":      f.Precio,
	}
}

// Product maps a validated form onto a new entity. The caller stamps
// the audit fields; Validate must have returned no errors first.
func (f *ProductForm) Product() *model.Product {
	return &model.Product{
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Precio:      f.precio,
	}
}
