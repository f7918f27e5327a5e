package finance

import (
	"errors"
	"math"
)

// ErrInvalidParcel el cálculo no produjo un valor finito (parámetros fuera de dominio).
var ErrInvalidParcel = errors.New("finance: cálculo de cuota no finito")

// Parcel resultado del cálculo de cuotas (no se persiste).
type Parcel struct {
	FullAmount        float64
	FeePercent        float64 // tasa normalizada: 5 -> 0.05
	ParcelAmount      float64
	ValueByParcel     float64
	MaskValueByParcel string
}

// InstallmentValue calcula la cuota fija que amortiza amount en n periodos a la tasa rate (fracción).
// Cuota = amount * rate / (1 - (1 + rate)^-n). Con rate == 0 la fórmula se indetermina y se usa
// el caso lineal amount / n.
// El denominador se evalúa como -expm1(-n*log1p(rate)): con tasas muy pequeñas 1-(1+rate)^-n
// se cancela a 0 en float64.
func InstallmentValue(amount, rate, n float64) float64 {
	if rate == 0 {
		return amount / n
	}
	return amount * rate / -math.Expm1(-n*math.Log1p(rate))
}

// CalculateParcel normaliza feesPercent (porcentaje) a fracción, calcula la cuota y su máscara localizada.
func CalculateParcel(amount, feesPercent, parcelAmount float64) (Parcel, error) {
	rate := feesPercent / 100
	value := InstallmentValue(amount, rate, parcelAmount)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Parcel{}, ErrInvalidParcel
	}
	return Parcel{
		FullAmount:        amount,
		FeePercent:        rate,
		ParcelAmount:      parcelAmount,
		ValueByParcel:     value,
		MaskValueByParcel: FormatAmount(value),
	}, nil
}
