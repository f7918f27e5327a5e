package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseID convierte el id hexadecimal en ObjectID. ok=false si no tiene formato válido:
// un id así no puede existir en la colección.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// isNoDocuments verifica si el error es la ausencia de documento del driver.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// insertedID extrae el ObjectID generado de un InsertOne.
func insertedID(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("insertedID: tipo inesperado")
	}
	return oid.Hex(), nil
}
