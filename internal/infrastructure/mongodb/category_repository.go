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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

type categoryDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d categoryDocument) toEntity() *entity.Category {
	return &entity.Category{ID: d.ID.Hex(), Name: d.Name}
}

// CategoryRepo implementación del puerto CategoryRepository sobre la colección categories.
type CategoryRepo struct {
	coll *mongo.Collection
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection(CategoriesCollection)}
}

// Create inserta la categoría y asigna a category.ID el ObjectID generado.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.coll.InsertOne(ctx, categoryDocument{Name: category.Name})
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	id, err := insertedID(res)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	oid, ok := parseID(id)
	if !ok {
		return nil, nil
	}
	var doc categoryDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return doc.toEntity(), nil
}

// List devuelve todas las categorías en orden natural de la colección.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)
	var docs []categoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	list := make([]*entity.Category, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toEntity())
	}
	return list, nil
}

// Update reemplaza el nombre con find-and-update atómico y devuelve el documento resultante.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	oid, ok := parseID(category.ID)
	if !ok {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc categoryDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"name": category.Name}}, opts,
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return doc.toEntity(), nil
}

// Delete elimina una categoría por ID. Devuelve false si no había documento.
func (r *CategoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := parseID(id)
	if !ok {
		return false, nil
	}
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err(); err != nil {
		if isNoDocuments(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete category: %w", err)
	}
	return true, nil
}
