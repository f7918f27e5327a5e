package objectid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

func TestIsValid_Acepta24Hex(t *testing.T) {
	assert.True(t, objectid.IsValid("65a1b2c3d4e5f60718293a4b"))
	assert.True(t, objectid.IsValid("65A1B2C3D4E5F60718293A4B"), "no distingue mayúsculas")
	assert.True(t, objectid.IsValid(objectid.New()))
}

func TestIsValid_RechazaFormatosIncorrectos(t *testing.T) {
	casos := map[string]string{
		"vacío":         "",
		"corto":         "65a1b2c3d4e5f60718293a4",
		"largo":         "65a1b2c3d4e5f60718293a4bc",
		"no hex":        "65a1b2c3d4e5f60718293a4z",
		"12 caracteres": "aaaaaaaaaaaa",
		"con espacios":  " 65a1b2c3d4e5f60718293a4b",
		"uuid":          "00000000-0000-0000-0000-000000000001",
	}
	for nombre, id := range casos {
		assert.False(t, objectid.IsValid(id), nombre)
	}
}
