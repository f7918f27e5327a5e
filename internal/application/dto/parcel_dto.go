package dto

// ParcelRequest entrada para el cálculo de cuotas. FeesPercent es puntero: un 0 explícito
// es válido (caso lineal), solo su ausencia es error. LegacyID acepta el nombre "_id".
type ParcelRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Amount       float64  `json:"amount" validate:"required"`
	IDCategory   string   `json:"idCategory" validate:"required"`
	ProductID    string   `json:"productId" validate:"required"`
	LegacyID     string   `json:"_id,omitempty" validate:"-"`
	ParcelAmount float64  `json:"parcelAmount" validate:"required"`
	FeesPercent  *float64 `json:"feesPercent" validate:"required"`
}

// ParcelResponse resultado del cálculo de cuotas.
type ParcelResponse struct {
	FullAmount        float64 `json:"fullAmount"`
	FeePercent        float64 `json:"feePercent"`
	ParcelAmount      float64 `json:"parcelAmount"`
	ValueByParcel     float64 `json:"valueByParcel"`
	MaskValueByParcel string  `json:"maskValueByParcel"`
}
