package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDocument idCategory se guarda como string: no hay clave foránea en el store.
type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Amount      float64            `bson:"amount"`
	IDCategory  string             `bson:"idCategory"`
}

func (d productDocument) toEntity() *entity.Product {
	return &entity.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Amount:      d.Amount,
		CategoryID:  d.IDCategory,
	}
}

// ProductRepo implementación del puerto ProductRepository sobre la colección products.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(ProductsCollection)}
}

// Create inserta el producto y asigna a product.ID el ObjectID generado.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.coll.InsertOne(ctx, productDocument{
		Name:        product.Name,
		Description: product.Description,
		Amount:      product.Amount,
		IDCategory:  product.CategoryID,
	})
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	id, err := insertedID(res)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc productDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.toEntity(), nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Update reemplaza los cuatro campos de una vez y devuelve el documento resultante.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	oid, ok := parseID(product.ID)
	if !ok {
		return nil, nil
	}
	set := bson.M{
		"name":        product.Name,
		"description": product.Description,
		"amount":      product.Amount,
		"idCategory":  product.CategoryID,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc productDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return doc.toEntity(), nil
}

// Delete elimina un producto por ID. Devuelve false si no había documento.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if isNoDocuments(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	return true, nil
}
