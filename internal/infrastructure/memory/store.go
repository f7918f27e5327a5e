// Package memory implementa los puertos de persistencia en memoria del proceso, con la misma
// semántica que el adaptador Mongo (ids ObjectID, orden de inserción, (nil, nil) si no existe).
// Se usa en tests y con DB_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/objectid"
)

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ProductRepository  = (*ProductRepo)(nil)
)

// collection guarda documentos por id conservando el orden de inserción.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{docs: make(map[string]T)}
}

func (c *collection[T]) insert(id string, doc T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = doc
	c.order = append(c.order, id)
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	return doc, ok
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out
}

// replace sustituye el documento si existe; devuelve false si no hay coincidencia.
func (c *collection[T]) replace(id string, doc T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return false
	}
	c.docs[id] = doc
	return true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return false
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	c *collection[entity.Category]
}

// NewCategoryRepository construye un repositorio vacío.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{c: newCollection[entity.Category]()}
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = objectid.New()
	r.c.insert(category.ID, *category)
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	doc, ok := r.c.get(id)
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	docs := r.c.all()
	list := make([]*entity.Category, 0, len(docs))
	for i := range docs {
		list = append(list, &docs[i])
	}
	return list, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.Category) (*entity.Category, error) {
	if !r.c.replace(category.ID, *category) {
		return nil, nil
	}
	out := *category
	return &out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	c *collection[entity.Product]
}

// NewProductRepository construye un repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{c: newCollection[entity.Product]()}
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = objectid.New()
	r.c.insert(product.ID, *product)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	doc, ok := r.c.get(id)
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	docs := r.c.all()
	list := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		list = append(list, &docs[i])
	}
	return list, nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) (*entity.Product, error) {
	if !r.c.replace(product.ID, *product) {
		return nil, nil
	}
	out := *product
	return &out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
