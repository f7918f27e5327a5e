package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaskFractionDigits máximo de decimales en la máscara.
const MaskFractionDigits = 3

// maskLocale convención fija de la máscara: indonesio ("id"), punto para miles y coma decimal.
var maskLocale = language.Indonesian

// FormatAmount devuelve v con separadores locales, redondeado a MaskFractionDigits
// (mitad lejos de cero) y sin ceros finales. Ej: 1234567.8915 -> "1.234.567,892".
func FormatAmount(v float64) string {
	rounded, _ := decimal.NewFromFloat(v).Round(MaskFractionDigits).Float64()
	p := message.NewPrinter(maskLocale)
	return p.Sprintf("%v", number.Decimal(rounded, number.MaxFractionDigits(MaskFractionDigits)))
}
