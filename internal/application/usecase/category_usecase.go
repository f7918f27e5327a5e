package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. Sin estado propio más allá del repositorio.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una nueva categoría. El id lo asigna el store.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := requireFields(in, msgNameRequired); err != nil {
		return nil, err
	}
	category := &entity.Category{Name: in.Name}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, domain.NewServerError("create category", err)
	}
	return toCategoryResponse(category), nil
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewServerError("list categories", err)
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	id, err := checkID(id, msgInvalidCategoryID)
	if err != nil {
		return nil, err
	}
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewServerError("get category", err)
	}
	if category == nil {
		return nil, domain.NewNotFoundError(msgCategoryNotFound)
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza el nombre de la categoría. Primero se valida el id, luego el nombre.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	id, err := checkID(id, msgInvalidCategoryID)
	if err != nil {
		return nil, err
	}
	if err := requireFields(in, msgNameRequired); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, &entity.Category{ID: id, Name: in.Name})
	if err != nil {
		return nil, domain.NewServerError("update category", err)
	}
	if updated == nil {
		return nil, domain.NewNotFoundError(msgCategoryNotFound)
	}
	return toCategoryResponse(updated), nil
}

// Delete elimina una categoría por ID. No borra en cascada los productos que la referencian.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	id, err := checkID(id, msgInvalidCategoryID)
	if err != nil {
		return err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return domain.NewServerError("delete category", err)
	}
	if !deleted {
		return domain.NewNotFoundError(msgCategoryNotFound)
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
