package entity

// Product representa un producto del catálogo. CategoryID referencia una Category
// pero no hay integridad referencial en el store: se valida solo al escribir.
type Product struct {
	ID          string
	Name        string
	Description string
	Amount      float64 // principal en el cálculo de cuotas
	CategoryID  string
}
