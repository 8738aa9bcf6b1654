package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	auditapp "github.com/landryjoias/crm/internal/application/audit"
	"github.com/landryjoias/crm/internal/domain/audit"
	"github.com/landryjoias/crm/internal/domain/catalog"
	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	products catalog.ProductRepository
	recorder *auditapp.Recorder
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, recorder *auditapp.Recorder) *ProductService {
	return &ProductService{
		products: products,
		recorder: recorder,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, actor identity.Actor, req ProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(
		req.Name, req.Description, req.TypeCode, req.Size,
		req.UnitValue, req.StockQuantity, req.Material,
	)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Produto Criado", audit.ActivityProducts, "Gestão de Produtos",
		auditapp.Describe("Produto", fmt.Sprintf("%s criado", product.Name), actor))

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	filter.Normalize()

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}

	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update overwrites a product's mutable fields
func (s *ProductService) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(
		req.Name, req.Description, req.TypeCode, req.Size,
		req.UnitValue, req.StockQuantity, req.Material,
	); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, actor, "Produto Editado", audit.ActivityProducts, "Gestão de Produtos",
		auditapp.Describe("Produto", fmt.Sprintf("%s editado", product.Name), actor))

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Products referenced by order items stay in
// place and the caller gets a conflict.
func (s *ProductService) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "Produto Removido", audit.ActivityProducts, "Gestão de Produtos",
		auditapp.Describe("Produto", fmt.Sprintf("%s removido", id), actor))

	return nil
}
