package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/finance"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y cálculo de cuotas.
// categories se usa solo para verificar que la categoría referenciada existe al escribir.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories}
}

// Create crea un producto tras comprobar formato y existencia de la categoría.
// La comprobación y la escritura no son atómicas: un borrado concurrente de la categoría deja una referencia huérfana.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := requireFields(in, msgAllFieldsRequired); err != nil {
		return nil, err
	}
	categoryID, err := uc.checkCategory(ctx, in.IDCategory)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Amount:      in.Amount,
		CategoryID:  categoryID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.NewServerError("create product", err)
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewServerError("list products", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	id, err := checkID(id, msgInvalidProductID)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewServerError("get product", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError(msgProductNotFound)
	}
	return toProductResponse(product), nil
}

// Update reemplaza los cuatro campos del producto. No hay actualización parcial.
// Orden: campos del cuerpo, id de la ruta, formato de idCategory, existencia de la categoría.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := requireFields(in, msgAllFieldsRequired); err != nil {
		return nil, err
	}
	id, err := checkID(id, msgInvalidProductID)
	if err != nil {
		return nil, err
	}
	categoryID, err := uc.checkCategory(ctx, in.IDCategory)
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, &entity.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Amount:      in.Amount,
		CategoryID:  categoryID,
	})
	if err != nil {
		return nil, domain.NewServerError("update product", err)
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(msgProductNotFound)
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto por ID y devuelve la confirmación.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.DeleteProductResponse, error) {
	id, err := checkID(id, msgInvalidProductID)
	if err != nil {
		return nil, err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, domain.NewServerError("delete product", err)
	}
	if !deleted {
		return nil, domain.NewNotFoundError(msgProductNotFound)
	}
	return &dto.DeleteProductResponse{Removed: true, ID: id}, nil
}

// CalculateParcel calcula la cuota fija de un producto. Es cálculo puro: los ids se validan
// solo en formato, sin consultar el store.
func (uc *ProductUseCase) CalculateParcel(_ context.Context, in dto.ParcelRequest) (*dto.ParcelResponse, error) {
	if in.ProductID == "" {
		in.ProductID = in.LegacyID
	}
	if err := requireFields(in, msgAllFieldsRequired); err != nil {
		return nil, err
	}
	if _, err := checkID(in.IDCategory, msgInvalidCategoryID); err != nil {
		return nil, err
	}
	if _, err := checkID(in.ProductID, msgInvalidProductID); err != nil {
		return nil, err
	}
	if validate.Var(*in.FeesPercent, "gte=0") != nil || validate.Var(in.ParcelAmount, "gt=0") != nil {
		return nil, domain.NewValidationError(msgInvalidParcel)
	}
	p, err := finance.CalculateParcel(in.Amount, *in.FeesPercent, in.ParcelAmount)
	if err != nil {
		return nil, domain.NewServerError("calculate parcel", err)
	}
	return &dto.ParcelResponse{
		FullAmount:        p.FullAmount,
		FeePercent:        p.FeePercent,
		ParcelAmount:      p.ParcelAmount,
		ValueByParcel:     p.ValueByParcel,
		MaskValueByParcel: p.MaskValueByParcel,
	}, nil
}

// checkCategory valida el formato de idCategory y que la categoría exista.
func (uc *ProductUseCase) checkCategory(ctx context.Context, categoryID string) (string, error) {
	categoryID, err := checkID(categoryID, msgInvalidCategoryID)
	if err != nil {
		return "", err
	}
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return "", domain.NewServerError("lookup category", err)
	}
	if category == nil {
		return "", domain.NewNotFoundError(msgCategoryNotExist)
	}
	return categoryID, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Amount:      p.Amount,
		IDCategory:  p.CategoryID,
	}
}
