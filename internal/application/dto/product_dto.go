package dto

// ProductRequest entrada para crear o actualizar un producto. Todos los campos son obligatorios
// y deben ser "verdaderos": cadena no vacía y amount distinto de cero.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required"`
	IDCategory  string  `json:"idCategory" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IDCategory  string  `json:"idCategory"`
}

// DeleteProductResponse confirmación de borrado de producto.
type DeleteProductResponse struct {
	Removed bool   `json:"removed"`
	ID      string `json:"id"`
}
