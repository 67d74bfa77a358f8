package service

import (
	"context"
	"fmt"
	"strings"

	"marketplace-api/internal/model"
)

type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("list products by owner: %w", model.ErrInvalidInput)
	}

	products, err := s.products.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products by owner: %w", err)
	}
	return products, nil
}

// Publish stores a product owned by ownerID, which comes from the verified token.
func (s *ProductService) Publish(ctx context.Context, ownerID int64, req model.PublishProductRequest) (model.Product, error) {
	title := strings.TrimSpace(req.Title)
	if ownerID <= 0 || title == "" || req.Price < 0 {
		return model.Product{}, fmt.Errorf("publish product: %w", model.ErrInvalidInput)
	}

	product, err := s.products.Create(ctx, model.Product{
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("publish product: %w", err)
	}
	return product, nil
}
