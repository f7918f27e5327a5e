// Package objectid valida el formato de los identificadores que asigna el document store.
package objectid

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Length número de caracteres hexadecimales de un ObjectID.
const Length = 24

// IsValid indica si s es un ObjectID en hexadecimal (24 caracteres, sin distinguir mayúsculas).
// No toca el store.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := primitive.ObjectIDFromHex(strings.ToLower(s))
	return err == nil
}

// New genera un identificador nuevo con el mismo formato que asigna el store.
func New() string {
	return primitive.NewObjectID().Hex()
}
