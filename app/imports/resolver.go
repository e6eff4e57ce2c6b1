package imports

import (
	"context"
	"strconv"
	"strings"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// refResolver maps a human-entered identifier (id, name or slug) to a
// reference entity id. One algorithm for every kind; the differences
// between category, brand, tax and role live in the three lookup hooks.
//
// Rules:
//   - empty input resolves to no relation
//   - numeric input is an id lookup only, a miss does NOT fall back to
//     the name search
//   - otherwise the name/slug lookup runs, and kinds with a create hook
//     auto-create on a miss
//
// Auto-creation is idempotent across a batch because the created row is
// immediately findable by the name path on later rows.
type refResolver struct {
	findNumeric func(ctx context.Context, raw string) (uint, bool, error)
	findByName  func(ctx context.Context, name string) (uint, bool, error)
	create      func(ctx context.Context, name string) (uint, error)
}

func (r refResolver) resolve(ctx context.Context, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if _, err := strconv.ParseFloat(raw, 64); err == nil && r.findNumeric != nil {
		id, found, err := r.findNumeric(ctx, raw)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return &id, nil
	}

	id, found, err := r.findByName(ctx, raw)
	if err != nil {
		return nil, err
	}
	if found {
		return &id, nil
	}

	if r.create == nil {
		return nil, nil
	}
	id, err = r.create(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func categoryResolver(repo repositories.CategoryRepositoryImpl) refResolver {
	return refResolver{
		findNumeric: func(ctx context.Context, raw string) (uint, bool, error) {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return 0, false, nil
			}
			category, err := repo.FindByID(ctx, uint(id))
			if err != nil || category == nil {
				return 0, false, err
			}
			return category.ID, true, nil
		},
		findByName: func(ctx context.Context, name string) (uint, bool, error) {
			category, err := repo.FindByNameOrSlug(ctx, name, slug.Make(name))
			if err != nil || category == nil {
				return 0, false, err
			}
			return category.ID, true, nil
		},
		create: func(ctx context.Context, name string) (uint, error) {
			category := &models.Category{Name: name, Slug: slug.Make(name), IsActive: true}
			if err := repo.Create(ctx, category); err != nil {
				return 0, err
			}
			return category.ID, nil
		},
	}
}

func brandResolver(repo repositories.BrandRepositoryImpl) refResolver {
	return refResolver{
		findNumeric: func(ctx context.Context, raw string) (uint, bool, error) {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return 0, false, nil
			}
			brand, err := repo.FindByID(ctx, uint(id))
			if err != nil || brand == nil {
				return 0, false, err
			}
			return brand.ID, true, nil
		},
		findByName: func(ctx context.Context, name string) (uint, bool, error) {
			brand, err := repo.FindByNameOrSlug(ctx, name, slug.Make(name))
			if err != nil || brand == nil {
				return 0, false, err
			}
			return brand.ID, true, nil
		},
		create: func(ctx context.Context, name string) (uint, error) {
			brand := &models.Brand{Name: name, Slug: slug.Make(name), IsActive: true}
			if err := repo.Create(ctx, brand); err != nil {
				return 0, err
			}
			return brand.ID, nil
		},
	}
}

// taxResolver: numeric input tries the id, then the rate percentage.
// Taxes are never auto-created by an import.
func taxResolver(repo repositories.TaxRepositoryImpl) refResolver {
	return refResolver{
		findNumeric: func(ctx context.Context, raw string) (uint, bool, error) {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				tax, err := repo.FindByID(ctx, uint(id))
				if err != nil {
					return 0, false, err
				}
				if tax != nil {
					return tax.ID, true, nil
				}
			}
			rate, err := decimal.NewFromString(raw)
			if err != nil {
				return 0, false, nil
			}
			tax, err := repo.FindByRate(ctx, rate)
			if err != nil || tax == nil {
				return 0, false, err
			}
			return tax.ID, true, nil
		},
		findByName: func(ctx context.Context, name string) (uint, bool, error) {
			tax, err := repo.FindByName(ctx, name)
			if err != nil || tax == nil {
				return 0, false, err
			}
			return tax.ID, true, nil
		},
	}
}

// roleResolver looks up by lower-cased name and auto-creates under the
// fixed guard. Numeric ids are not a supported role identifier, so
// numeric strings take the name path like any other.
func roleResolver(repo repositories.RoleRepositoryImpl) refResolver {
	return refResolver{
		findByName: func(ctx context.Context, name string) (uint, bool, error) {
			role, err := repo.FindByName(ctx, strings.ToLower(name))
			if err != nil || role == nil {
				return 0, false, err
			}
			return role.ID, true, nil
		},
		create: func(ctx context.Context, name string) (uint, error) {
			role := &models.Role{
				Name:      strings.ToLower(name),
				Slug:      slug.Make(name),
				GuardName: models.RoleGuard,
			}
			if err := repo.Create(ctx, role); err != nil {
				return 0, err
			}
			return role.ID, nil
		},
	}
}
