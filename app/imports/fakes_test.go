package imports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories so pipeline behavior can
// be exercised without a database.

type fakeProductRepo struct {
	products []*models.Product
	nextID   int
	recounts []string
}

func (f *fakeProductRepo) FindBySkuWithDeleted(_ context.Context, sku string) (*models.Product, error) {
	for _, p := range f.products {
		if p.Sku == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindBySlug(_ context.Context, slugName string) (*models.Product, error) {
	for _, p := range f.products {
		if p.Slug == slugName && !p.DeletedAt.Valid {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) SlugExists(_ context.Context, slugName string, excludeID string) (bool, error) {
	for _, p := range f.products {
		if p.Slug == slugName && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if product.ID == "" {
		f.nextID++
		product.ID = fmt.Sprintf("product-%d", f.nextID)
	}
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) Save(_ context.Context, product *models.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = product
			return nil
		}
	}
	return errors.New("product not found")
}

func (f *fakeProductRepo) Restore(_ context.Context, id string) error {
	for _, p := range f.products {
		if p.ID == id {
			p.DeletedAt = gorm.DeletedAt{}
			return nil
		}
	}
	return errors.New("product not found")
}

func (f *fakeProductRepo) RecountTotalQuantity(_ context.Context, id string) error {
	f.recounts = append(f.recounts, id)
	return nil
}

func (f *fakeProductRepo) GetPaginated(_ context.Context, _, _ int) ([]models.Product, int64, error) {
	return nil, 0, nil
}

type fakeImageRepo struct {
	images  []*models.ProductImage
	deletes []string
	nextID  int
}

func (f *fakeImageRepo) DeleteByProductID(_ context.Context, productID string) error {
	f.deletes = append(f.deletes, productID)
	kept := f.images[:0]
	for _, img := range f.images {
		if img.ProductID != productID {
			kept = append(kept, img)
		}
	}
	f.images = kept
	return nil
}

func (f *fakeImageRepo) Create(_ context.Context, image *models.ProductImage) error {
	if image.ID == "" {
		f.nextID++
		image.ID = fmt.Sprintf("image-%d", f.nextID)
	}
	f.images = append(f.images, image)
	return nil
}

func (f *fakeImageRepo) forProduct(productID string) []*models.ProductImage {
	var out []*models.ProductImage
	for _, img := range f.images {
		if img.ProductID == productID {
			out = append(out, img)
		}
	}
	return out
}

type fakeCategoryRepo struct {
	categories []*models.Category
	nextID     uint
	created    int
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByNameOrSlug(_ context.Context, name string, slugName string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Name == name || c.Slug == slugName {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	f.nextID++
	f.created++
	category.ID = f.nextID
	f.categories = append(f.categories, category)
	return nil
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]models.Category, error) {
	return nil, nil
}

type fakeBrandRepo struct {
	brands  []*models.Brand
	nextID  uint
	created int
}

func (f *fakeBrandRepo) FindByID(_ context.Context, id uint) (*models.Brand, error) {
	for _, b := range f.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) FindByNameOrSlug(_ context.Context, name string, slugName string) (*models.Brand, error) {
	for _, b := range f.brands {
		if b.Name == name || b.Slug == slugName {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBrandRepo) Create(_ context.Context, brand *models.Brand) error {
	f.nextID++
	f.created++
	brand.ID = f.nextID
	f.brands = append(f.brands, brand)
	return nil
}

type fakeTaxRepo struct {
	taxes []*models.Tax
}

func (f *fakeTaxRepo) FindByID(_ context.Context, id uint) (*models.Tax, error) {
	for _, t := range f.taxes {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaxRepo) FindByRate(_ context.Context, rate decimal.Decimal) (*models.Tax, error) {
	for _, t := range f.taxes {
		if t.Rate.Equal(rate) {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTaxRepo) FindByName(_ context.Context, name string) (*models.Tax, error) {
	for _, t := range f.taxes {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users  []*models.User
	nextID int
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return errors.New("user not found")
}

type fakeRoleRepo struct {
	roles       []*models.Role
	nextID      uint
	assigned    map[string][]uint
	replaceErr  error
	replaceCnt  int
}

func (f *fakeRoleRepo) FindByName(_ context.Context, name string) (*models.Role, error) {
	for _, r := range f.roles {
		if r.Name == strings.ToLower(name) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoleRepo) Create(_ context.Context, role *models.Role) error {
	for _, r := range f.roles {
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	f.nextID++
	role.ID = f.nextID
	f.roles = append(f.roles, role)
	return nil
}

func (f *fakeRoleRepo) ReplaceForUser(_ context.Context, userID string, roleIDs []uint) error {
	f.replaceCnt++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	if f.assigned == nil {
		f.assigned = map[string][]uint{}
	}
	f.assigned[userID] = roleIDs
	return nil
}

type fakeStatementRepo struct {
	lines     []*models.StatementLine
	createErr error
}

func (f *fakeStatementRepo) FindUnreconciledByAccount(_ context.Context, accountID uint) ([]*models.StatementLine, error) {
	var out []*models.StatementLine
	for _, l := range f.lines {
		if l.AccountID == accountID && !l.Reconciled {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStatementRepo) SetMatched(_ context.Context, ids []uint, matched bool) error {
	for _, l := range f.lines {
		for _, id := range ids {
			if l.ID == id {
				l.Matched = matched
			}
		}
	}
	return nil
}

func (f *fakeStatementRepo) MarkReconciled(_ context.Context, ids []uint) error {
	for _, l := range f.lines {
		for _, id := range ids {
			if l.ID == id {
				l.Reconciled = true
				l.Matched = false
			}
		}
	}
	return nil
}

func (f *fakeStatementRepo) Create(_ context.Context, line *models.StatementLine) error {
	if f.createErr != nil {
		return f.createErr
	}
	line.ID = uint(len(f.lines) + 1)
	f.lines = append(f.lines, line)
	return nil
}
