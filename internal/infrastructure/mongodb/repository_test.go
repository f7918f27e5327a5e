package mongodb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: despliegue simulado del driver (sin servidor real)
// ──────────────────────────────────────────────────────────────────────────────

const (
	nsCategories = "catalogo.categories"
	nsProducts   = "catalogo.products"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func findAndModifyResponse(value interface{}) bson.D {
	return bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: value}}
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryRepo
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryRepo(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()

	mt.Run("Create asigna el ObjectID generado", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c := &entity.Category{Name: "Books"}
		require.NoError(mt, repo.Create(ctx, c))
		assert.True(mt, objectid.IsValid(c.ID))
	})

	mt.Run("Create propaga error del store", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Create(ctx, &entity.Category{Name: "Books"})
		assert.Error(mt, err)
	})

	mt.Run("GetByID encuentra el documento", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, nsCategories, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "name", Value: "Books"}}))

		got, err := repo.GetByID(ctx, oid.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, oid.Hex(), got.ID)
		assert.Equal(mt, "Books", got.Name)
	})

	mt.Run("GetByID sin documento devuelve nil", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, nsCategories, mtest.FirstBatch))

		got, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("GetByID con fallo del store devuelve error", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		got, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("GetByID con id mal formado no consulta el store", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		got, err := repo.GetByID(ctx, "no-es-un-id")
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("List decodifica todos los documentos", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, nsCategories, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Books"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Music"}},
		))

		list, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, "Books", list[0].Name)
		assert.Equal(mt, "Music", list[1].Name)
	})

	mt.Run("Update devuelve el documento posterior", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(findAndModifyResponse(bson.D{{Key: "_id", Value: oid}, {Key: "name", Value: "Music"}}))

		got, err := repo.Update(ctx, &entity.Category{ID: oid.Hex(), Name: "Music"})
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, "Music", got.Name)
	})

	mt.Run("Update sin coincidencia devuelve nil", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		mt.AddMockResponses(findAndModifyResponse(nil))

		got, err := repo.Update(ctx, &entity.Category{ID: primitive.NewObjectID().Hex(), Name: "Music"})
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("Delete informa si borró", func(mt *mtest.T) {
		repo := mongodb.NewCategoryRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(
			findAndModifyResponse(bson.D{{Key: "_id", Value: oid}, {Key: "name", Value: "Books"}}),
			findAndModifyResponse(nil),
		)

		deleted, err := repo.Delete(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.True(mt, deleted)

		deleted, err = repo.Delete(ctx, oid.Hex())
		require.NoError(mt, err)
		assert.False(mt, deleted, "el segundo borrado no encuentra documento")
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductRepo
// ──────────────────────────────────────────────────────────────────────────────

func productDoc(oid primitive.ObjectID, name string, amount float64, categoryID string) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: name},
		{Key: "description", Value: "desc"},
		{Key: "amount", Value: amount},
		{Key: "idCategory", Value: categoryID},
	}
}

func TestProductRepo(t *testing.T) {
	mt := newMock(t)
	ctx := context.Background()
	categoryID := primitive.NewObjectID().Hex()

	mt.Run("Create asigna el ObjectID generado", func(mt *mtest.T) {
		repo := mongodb.NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &entity.Product{Name: "Laptop", Description: "desc", Amount: 1000, CategoryID: categoryID}
		require.NoError(mt, repo.Create(ctx, p))
		assert.True(mt, objectid.IsValid(p.ID))
	})

	mt.Run("GetByID mapea idCategory", func(mt *mtest.T) {
		repo := mongodb.NewProductRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, nsProducts, mtest.FirstBatch,
			productDoc(oid, "Laptop", 1000, categoryID)))

		got, err := repo.GetByID(ctx, oid.Hex())
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, categoryID, got.CategoryID)
		assert.Equal(mt, 1000.0, got.Amount)
	})

	mt.Run("List con fallo del store devuelve error", func(mt *mtest.T) {
		repo := mongodb.NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom"}))

		list, err := repo.List(ctx)
		assert.Error(mt, err)
		assert.Nil(mt, list)
	})

	mt.Run("Update reemplaza los cuatro campos", func(mt *mtest.T) {
		repo := mongodb.NewProductRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(findAndModifyResponse(productDoc(oid, "Phone", 500, categoryID)))

		got, err := repo.Update(ctx, &entity.Product{ID: oid.Hex(), Name: "Phone", Description: "desc", Amount: 500, CategoryID: categoryID})
		require.NoError(mt, err)
		require.NotNil(mt, got)
		assert.Equal(mt, "Phone", got.Name)
		assert.Equal(mt, 500.0, got.Amount)
	})

	mt.Run("Delete sin coincidencia devuelve false", func(mt *mtest.T) {
		repo := mongodb.NewProductRepository(mt.DB)
		mt.AddMockResponses(findAndModifyResponse(nil))

		deleted, err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.False(mt, deleted)
	})
}
