package usecase

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

// Mensajes de validación expuestos al cliente.
const (
	msgNameRequired      = "Name is required"
	msgAllFieldsRequired = "All fields are required"
	msgInvalidCategoryID = "Invalid category ID"
	msgInvalidProductID  = "Invalid product ID"
	msgInvalidParcel     = "Invalid parcel parameters"
	msgCategoryNotFound  = "Category not found"
	msgCategoryNotExist  = "Category does not exist"
	msgProductNotFound   = "Product not found"
)

var validate = validator.New()

func init() {
	// objectid: cadena con el formato de identificador del store.
	_ = validate.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectid.IsValid(fl.Field().String())
	})
}

// requireFields aplica los tags `validate` del DTO y traduce cualquier fallo a un ValidationError con msg.
func requireFields(in interface{}, msg string) error {
	if err := validate.Struct(in); err != nil {
		return domain.NewValidationError(msg)
	}
	return nil
}

// checkID recorta espacios, pasa a minúsculas y valida el formato del id.
// Devuelve el id normalizado: los stores solo ven la forma canónica.
func checkID(id, msg string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if err := validate.Var(id, "objectid"); err != nil {
		return "", domain.NewValidationError(msg)
	}
	return id, nil
}
