package shape

import (
	"context"

	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/domain/entity"
	"github.com/tu-usuario/gestor-comercial/internal/domain/repository"
)

// Shaper arma el grafo de respuesta desnormalizado: cada entidad sale con su
// empresa (y el dueño de esta) resuelta, los productos con su categoría y las
// órdenes con proveedor/cliente e items con producto. La empresa llega ya
// autorizada por la puerta de scope; acá solo se resuelven referencias.
type Shaper struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// New construye el shaper con los repos que necesita para resolver referencias.
func New(
	users repository.UserRepository,
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) *Shaper {
	return &Shaper{users: users, categories: categories, products: products}
}

// User da forma al usuario. El hash de password nunca se copia.
func (s *Shaper) User(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Lastname:  u.Lastname,
		CreatedAt: dto.FormatTime(u.CreatedAt),
		UpdatedAt: dto.FormatTime(u.UpdatedAt),
	}
}

// Company da forma a la empresa resolviendo su usuario dueño.
func (s *Shaper) Company(ctx context.Context, c *entity.Company) (*dto.CompanyResponse, error) {
	if c == nil {
		return nil, nil
	}
	owner, err := s.users.GetByID(ctx, c.OwnerUserID)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Trade:     c.Trade,
		CNPJ:      c.CNPJ,
		CreatedAt: dto.FormatTime(c.CreatedAt),
		UpdatedAt: dto.FormatTime(c.UpdatedAt),
		User:      s.User(owner),
	}, nil
}

// Supplier da forma al proveedor con su empresa.
func (s *Shaper) Supplier(ctx context.Context, sup *entity.Supplier, company *entity.Company) (*dto.SupplierResponse, error) {
	if sup == nil {
		return nil, nil
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:        sup.ID,
		Name:      sup.Name,
		CNPJ:      sup.CNPJ,
		Email:     sup.Email,
		Cellphone: sup.Cellphone,
		Address:   sup.Address,
		City:      sup.City,
		State:     sup.State,
		Landmark:  sup.Landmark,
		Note:      sup.Note,
		CreatedAt: dto.FormatTime(sup.CreatedAt),
		UpdatedAt: dto.FormatTime(sup.UpdatedAt),
		Company:   shapedCompany,
	}, nil
}

// Customer da forma al cliente con su empresa.
func (s *Shaper) Customer(ctx context.Context, cus *entity.Customer, company *entity.Company) (*dto.CustomerResponse, error) {
	if cus == nil {
		return nil, nil
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{
		ID:        cus.ID,
		Name:      cus.Name,
		Email:     cus.Email,
		Cellphone: cus.Cellphone,
		CreatedAt: dto.FormatTime(cus.CreatedAt),
		UpdatedAt: dto.FormatTime(cus.UpdatedAt),
		Company:   shapedCompany,
	}, nil
}

// Category da forma a la categoría con su empresa.
func (s *Shaper) Category(ctx context.Context, cat *entity.Category, company *entity.Company) (*dto.CategoryResponse, error) {
	if cat == nil {
		return nil, nil
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		CreatedAt: dto.FormatTime(cat.CreatedAt),
		UpdatedAt: dto.FormatTime(cat.UpdatedAt),
		Company:   shapedCompany,
	}, nil
}

// Product da forma al producto resolviendo categoría y empresa.
func (s *Shaper) Product(ctx context.Context, p *entity.Product, company *entity.Company) (*dto.ProductResponse, error) {
	if p == nil {
		return nil, nil
	}
	category, err := s.categories.GetByIDAndCompany(ctx, p.CategoryID, company.ID)
	if err != nil {
		return nil, err
	}
	shapedCategory, err := s.Category(ctx, category, company)
	if err != nil {
		return nil, err
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Code:      p.Code,
		ImageURL:  p.ImageURL,
		Highlight: p.Highlight,
		CreatedAt: dto.FormatTime(p.CreatedAt),
		UpdatedAt: dto.FormatTime(p.UpdatedAt),
		Category:  shapedCategory,
		Company:   shapedCompany,
	}, nil
}

// Purchase da forma a la compra con proveedor, empresa e items (cada item con su producto).
func (s *Shaper) Purchase(ctx context.Context, p *entity.Purchase, supplier *entity.Supplier, company *entity.Company, items []*entity.PurchaseItem) (*dto.PurchaseResponse, error) {
	if p == nil {
		return nil, nil
	}
	shapedSupplier, err := s.Supplier(ctx, supplier, company)
	if err != nil {
		return nil, err
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	shapedItems := make([]dto.PurchaseItemResponse, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByIDAndCompany(ctx, item.ProductID, company.ID)
		if err != nil {
			return nil, err
		}
		shapedProduct, err := s.Product(ctx, product, company)
		if err != nil {
			return nil, err
		}
		shapedItems = append(shapedItems, dto.PurchaseItemResponse{
			ID:        item.ID,
			Quantity:  item.Quantity,
			CreatedAt: dto.FormatTime(item.CreatedAt),
			UpdatedAt: dto.FormatTime(item.UpdatedAt),
			Product:   shapedProduct,
		})
	}
	return &dto.PurchaseResponse{
		ID:        p.ID,
		Value:     p.Value,
		CreatedAt: dto.FormatTime(p.CreatedAt),
		UpdatedAt: dto.FormatTime(p.UpdatedAt),
		Supplier:  shapedSupplier,
		Company:   shapedCompany,
		Items:     shapedItems,
	}, nil
}

// Sale da forma a la venta con cliente, empresa e items (cada item con su producto).
func (s *Shaper) Sale(ctx context.Context, sl *entity.Sale, customer *entity.Customer, company *entity.Company, items []*entity.SaleItem) (*dto.SaleResponse, error) {
	if sl == nil {
		return nil, nil
	}
	shapedCustomer, err := s.Customer(ctx, customer, company)
	if err != nil {
		return nil, err
	}
	shapedCompany, err := s.Company(ctx, company)
	if err != nil {
		return nil, err
	}
	shapedItems := make([]dto.SaleItemResponse, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByIDAndCompany(ctx, item.ProductID, company.ID)
		if err != nil {
			return nil, err
		}
		shapedProduct, err := s.Product(ctx, product, company)
		if err != nil {
			return nil, err
		}
		shapedItems = append(shapedItems, dto.SaleItemResponse{
			ID:        item.ID,
			Quantity:  item.Quantity,
			CreatedAt: dto.FormatTime(item.CreatedAt),
			UpdatedAt: dto.FormatTime(item.UpdatedAt),
			Product:   shapedProduct,
		})
	}
	return &dto.SaleResponse{
		ID:         sl.ID,
		Value:      sl.Value,
		Discount:   sl.Discount,
		Percentage: sl.Percentage,
		Online:     sl.Online,
		Disclosure: sl.Disclosure,
		CreatedAt:  dto.FormatTime(sl.CreatedAt),
		UpdatedAt:  dto.FormatTime(sl.UpdatedAt),
		Customer:   shapedCustomer,
		Company:    shapedCompany,
		Items:      shapedItems,
	}, nil
}
