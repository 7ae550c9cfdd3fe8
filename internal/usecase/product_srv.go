package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carparts-store/internal/data/entity"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/dto/request"
	"carparts-store/internal/dto/response"
	"carparts-store/pkg/cache"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	GetProduct(ctx context.Context, id string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, req request.CreateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	// UpdateStock decrements the product's stock by quantity, clamped at
	// zero.
	UpdateStock(ctx context.Context, id string, quantity int) error
}

type productService struct {
	products repository.ProductRepository
	store    *cache.Cache
	log      *zap.Logger
}

func NewProductService(products repository.ProductRepository, store *cache.Cache, log *zap.Logger) ProductService {
	return &productService{
		products: products,
		store:    store,
		log:      log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, p request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	key := fmt.Sprintf("products:list:%d:%d", p.Page, p.Limit())

	var cached response.PaginatedResponse[response.ProductResponse]
	if s.store.Get(ctx, key, &cached) {
		return &cached, nil
	}

	products, err := s.products.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	total, err := s.products.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	resp := response.NewPaginatedResponse(response.ToProductResponses(products), p.Page, p.Limit(), int(total))
	s.store.Set(ctx, key, resp)
	return &resp, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*response.ProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, ErrValidation)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	resp := response.ToProductResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req request.CreateProductRequest) (*response.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.store.Invalidate(ctx, "products:*")
	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ToProductResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("product id %q: %w", id, ErrValidation)
	}

	err = s.products.Delete(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	s.store.Invalidate(ctx, "products:*")
	return nil
}

func (s *productService) UpdateStock(ctx context.Context, id string, quantity int) error {
	productID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("product id %q: %w", id, ErrValidation)
	}

	err = s.products.AdjustQuantity(ctx, productID, -quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update stock of product %s: %w", id, err)
	}

	s.store.Invalidate(ctx, "products:*")
	return nil
}
