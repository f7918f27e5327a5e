package finance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fórmula de amortización
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateParcel_FormulaCerrada(t *testing.T) {
	p, err := finance.CalculateParcel(1000, 5, 12)
	require.NoError(t, err)

	esperado := 1000 * 0.05 / (1 - math.Pow(1.05, -12))
	assert.InDelta(t, esperado, p.ValueByParcel, 1e-9)
	assert.InDelta(t, 112.8254, p.ValueByParcel, 1e-4)
	assert.Equal(t, 1000.0, p.FullAmount)
	assert.Equal(t, 0.05, p.FeePercent, "la tasa se normaliza a fracción")
	assert.Equal(t, 12.0, p.ParcelAmount)
	assert.Equal(t, "112,825", p.MaskValueByParcel)
}

// La suma de cuotas supera el principal cuando hay tasa positiva.
func TestCalculateParcel_TotalMayorQuePrincipal(t *testing.T) {
	p, err := finance.CalculateParcel(5000, 2.5, 24)
	require.NoError(t, err)
	assert.Greater(t, p.ValueByParcel*24, 5000.0)
}

// Tasa cero: caso lineal amount / n, sin división por cero.
func TestCalculateParcel_TasaCeroEsLineal(t *testing.T) {
	p, err := finance.CalculateParcel(1200, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.ValueByParcel)
	assert.Equal(t, 0.0, p.FeePercent)
	assert.Equal(t, "100", p.MaskValueByParcel)
}

// Tasa positiva diminuta: el denominador no se cancela y la cuota tiende al caso lineal.
func TestCalculateParcel_TasaMinimaSigueFinita(t *testing.T) {
	p, err := finance.CalculateParcel(1000, 1e-15, 12)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/12, p.ValueByParcel, 1e-6)
	assert.Equal(t, "83,333", p.MaskValueByParcel)
}

func TestCalculateParcel_ResultadoNoFinito(t *testing.T) {
	_, err := finance.CalculateParcel(1000, 0, 0)
	assert.ErrorIs(t, err, finance.ErrInvalidParcel)
}

func TestInstallmentValue_UnaCuota(t *testing.T) {
	// Con un solo periodo la cuota es principal + interés.
	assert.InDelta(t, 1050.0, finance.InstallmentValue(1000, 0.05, 1), 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máscara localizada
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatAmount_ConvencionIndonesia(t *testing.T) {
	casos := []struct {
		in   float64
		want string
	}{
		{10000, "10.000"},
		{1234567.891, "1.234.567,891"},
		{1234567.8915, "1.234.567,892"},
		{0.5, "0,5"},
		{93.8, "93,8"},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, finance.FormatAmount(c.in), "valor %v", c.in)
	}
}
