package validate

import (
	"github.com/tu-usuario/gestor-comercial/internal/application/dto"
	"github.com/tu-usuario/gestor-comercial/internal/domain"
)

// Composición de chequeos por entidad. Todos los chequeos corren siempre;
// la lista resultante lleva cada campo que falló.

// Register valida el alta de usuario.
func Register(in dto.RegisterRequest) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	errs = Required(errs, "lastname", in.Lastname)
	errs = Email(errs, "email", in.Email)
	errs = MinLen(errs, "password", in.Password, 8)
	return errs
}

// Company valida los datos de empresa.
func Company(in dto.CompanyInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	errs = CNPJ(errs, "cnpj", in.CNPJ, false)
	return errs
}

// Supplier valida los datos de proveedor. CNPJ es opcional.
func Supplier(in dto.SupplierInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	errs = CNPJ(errs, "cnpj", in.CNPJ, true)
	errs = Email(errs, "email", in.Email)
	errs = Required(errs, "cellphone", in.Cellphone)
	errs = Required(errs, "address", in.Address)
	errs = Required(errs, "city", in.City)
	errs = Required(errs, "state", in.State)
	return errs
}

// Customer valida los datos de cliente.
func Customer(in dto.CustomerInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	errs = Email(errs, "email", in.Email)
	errs = Required(errs, "cellphone", in.Cellphone)
	return errs
}

// Category valida los datos de categoría.
func Category(in dto.CategoryInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	return errs
}

// Product valida los datos de producto. La pertenencia de la categoría
// a la empresa se autoriza aparte, contra la DB.
func Product(in dto.ProductInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "name", in.Name)
	errs = PositiveDecimal(errs, "price", in.Price)
	errs = Required(errs, "code", in.Code)
	errs = Required(errs, "categoryId", in.CategoryID)
	return errs
}

// Purchase valida la cabecera de compra; los items los valida el agregador.
func Purchase(in dto.PurchaseInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "supplierId", in.SupplierID)
	if len(in.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "debe incluir al menos un item"})
	}
	return errs
}

// Sale valida la cabecera de venta; los items los valida el agregador.
func Sale(in dto.SaleInput) []domain.FieldError {
	var errs []domain.FieldError
	errs = Required(errs, "customerId", in.CustomerID)
	errs = NonNegativeDecimal(errs, "discount", in.Discount)
	errs = NonNegativeDecimal(errs, "percentage", in.Percentage)
	if len(in.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "debe incluir al menos un item"})
	}
	return errs
}
