package db

import (
	"context"
	"storefront/entities"
	"sync"

	"github.com/google/uuid"
)

// ProductRepositoryMock keeps products in memory and serializes reservations
// behind a mutex, mirroring the row-lock semantics of the real repository.
type ProductRepositoryMock struct {
	lock     sync.Mutex
	products map[uuid.UUID]entities.Product
}

func NewProductRepositoryMock() *ProductRepositoryMock {
	return &ProductRepositoryMock{
		products: map[uuid.UUID]entities.Product{},
	}
}

func (pr *ProductRepositoryMock) Create(ctx context.Context, product entities.Product) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	pr.products[product.ProductID] = product
	return nil
}

func (pr *ProductRepositoryMock) Update(ctx context.Context, product entities.Product) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if _, ok := pr.products[product.ProductID]; !ok {
		return ErrProductNotFound
	}
	pr.products[product.ProductID] = product
	return nil
}

func (pr *ProductRepositoryMock) Delete(ctx context.Context, productID uuid.UUID) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if _, ok := pr.products[productID]; !ok {
		return ErrProductNotFound
	}
	delete(pr.products, productID)
	return nil
}

func (pr *ProductRepositoryMock) ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	product, ok := pr.products[productID]
	if !ok {
		return entities.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (pr *ProductRepositoryMock) GetAll(ctx context.Context) ([]entities.Product, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	products := make([]entities.Product, 0, len(pr.products))
	for _, product := range pr.products {
		products = append(products, product)
	}
	return products, nil
}

func (pr *ProductRepositoryMock) TryReserve(ctx context.Context, productID uuid.UUID, quantity int) (reserved int, remaining int, err error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	product, ok := pr.products[productID]
	if !ok {
		return 0, 0, ErrProductNotFound
	}

	reserved = quantity
	if product.Stock < reserved {
		reserved = product.Stock
	}
	product.Stock -= reserved
	pr.products[productID] = product

	return reserved, product.Stock, nil
}
