package imports

import (
	"context"
	"fmt"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ProductImporter drives a bulk product import: normalize each row,
// resolve references, upsert by SKU, then apply image and stock side
// effects. A bad row is recorded and skipped; the batch always runs to
// the end.
type ProductImporter struct {
	products   repositories.ProductRepositoryImpl
	images     repositories.ProductImageRepositoryImpl
	categories refResolver
	brands     refResolver
	taxes      refResolver
	validate   *validator.Validate
	logger     *logrus.Logger
	chunkSize  int
}

// productRun holds the state of a single import run. The seen-SKU set
// lives here, never in package state, so concurrent or repeated runs
// cannot poison each other's duplicate detection.
type productRun struct {
	seenSkus map[string]bool
	report   *Report
}

func NewProductImporter(
	products repositories.ProductRepositoryImpl,
	images repositories.ProductImageRepositoryImpl,
	categories repositories.CategoryRepositoryImpl,
	brands repositories.BrandRepositoryImpl,
	taxes repositories.TaxRepositoryImpl,
	logger *logrus.Logger,
	chunkSize int,
) *ProductImporter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ProductImporter{
		products:   products,
		images:     images,
		categories: categoryResolver(categories),
		brands:     brandResolver(brands),
		taxes:      taxResolver(taxes),
		validate:   validator.New(),
		logger:     logger,
		chunkSize:  chunkSize,
	}
}

func (im *ProductImporter) ImportFile(ctx context.Context, path string) (*Report, error) {
	rows, err := ReadRows(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return im.ImportRows(ctx, rows), nil
}

func (im *ProductImporter) ImportRows(ctx context.Context, rows []Row) *Report {
	run := &productRun{
		seenSkus: make(map[string]bool),
		report:   &Report{TotalRows: len(rows)},
	}

	rowNum := 0
	for _, chunk := range chunkRows(rows, im.chunkSize) {
		for _, row := range chunk {
			rowNum++
			if err := im.importRow(ctx, run, row, rowNum); err != nil {
				run.report.fail(rowNum, "%s", err.Error())
				im.logger.WithFields(logrus.Fields{
					"row": rowNum,
					"sku": row.Get("sku"),
				}).Warn(err.Error())
				continue
			}
			run.report.Imported++
		}
	}
	return run.report
}

func (im *ProductImporter) importRow(ctx context.Context, run *productRun, row Row, rowNum int) error {
	record := NormalizeProductRow(row)
	if err := im.validate.Struct(record); err != nil {
		return fmt.Errorf("%s", validationMessage(err))
	}

	if run.seenSkus[record.Sku] {
		return fmt.Errorf("duplicate SKU %s in this import", record.Sku)
	}
	run.seenSkus[record.Sku] = true

	categoryID, err := im.categories.resolve(ctx, record.Category)
	if err != nil {
		return fmt.Errorf("failed to resolve category %q: %w", record.Category, err)
	}
	brandID, err := im.brands.resolve(ctx, record.Brand)
	if err != nil {
		return fmt.Errorf("failed to resolve brand %q: %w", record.Brand, err)
	}
	taxID, err := im.taxes.resolve(ctx, record.Tax)
	if err != nil {
		return fmt.Errorf("failed to resolve tax %q: %w", record.Tax, err)
	}

	product, err := im.upsert(ctx, record, categoryID, brandID, taxID)
	if err != nil {
		return err
	}

	if err := im.applyImages(ctx, product, record); err != nil {
		return fmt.Errorf("failed to save images: %w", err)
	}

	if product.TrackQuantity {
		if err := im.products.RecountTotalQuantity(ctx, product.ID); err != nil {
			return fmt.Errorf("failed to recount stock: %w", err)
		}
	}
	return nil
}

// upsert finds the product by SKU (soft-deleted rows included), restoring
// and fully overwriting an existing one, or creating a fresh record. The
// tracked field set is replaced wholesale, never merged.
func (im *ProductImporter) upsert(ctx context.Context, record ProductRow, categoryID, brandID, taxID *uint) (*models.Product, error) {
	existing, err := im.products.FindBySkuWithDeleted(ctx, record.Sku)
	if err != nil {
		return nil, fmt.Errorf("sku lookup failed: %w", err)
	}

	if existing == nil {
		product := &models.Product{}
		applyProductFields(product, record, categoryID, brandID, taxID)
		product.Slug, err = im.uniqueSlug(ctx, record.Name, "")
		if err != nil {
			return nil, err
		}
		if err := im.products.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		return product, nil
	}

	if existing.DeletedAt.Valid {
		if err := im.products.Restore(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to restore product: %w", err)
		}
		existing.DeletedAt = gorm.DeletedAt{}
	}

	nameChanged := existing.Name != record.Name
	applyProductFields(existing, record, categoryID, brandID, taxID)
	if nameChanged {
		existing.Slug, err = im.uniqueSlug(ctx, record.Name, existing.ID)
		if err != nil {
			return nil, err
		}
	}
	if err := im.products.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return existing, nil
}

func applyProductFields(product *models.Product, record ProductRow, categoryID, brandID, taxID *uint) {
	product.Name = record.Name
	product.Sku = record.Sku
	product.Description = record.Description
	product.Price = record.Price
	product.AgentPrice = record.AgentPrice
	product.WholesalerPrice = record.WholesalerPrice
	product.ComparePrice = record.ComparePrice
	product.CostPrice = record.CostPrice
	product.Weight = record.Weight
	product.Length = record.Length
	product.Width = record.Width
	product.Height = record.Height
	product.Quantity = record.Quantity
	product.TrackQuantity = record.TrackQuantity
	product.IsActive = record.IsActive
	product.PublishedAt = record.PublishedAt
	product.CategoryID = categoryID
	product.BrandID = brandID
	product.TaxID = taxID
	product.Sizes = record.Sizes
	product.Colors = record.Colors
	product.Materials = record.Materials
	product.Variations = record.Variations
	product.Metadata = record.Metadata
	product.UpdatedAt = time.Now()
}

// uniqueSlug probes slug, slug-1, slug-2… against every record including
// soft-deleted ones (excluding self) until a free value turns up.
func (im *ProductImporter) uniqueSlug(ctx context.Context, name string, excludeID string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for i := 1; ; i++ {
		exists, err := im.products.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug check failed: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// applyImages ingests image URLs after the primary write. With a URL
// list, position is the sort order and the default flag goes to the
// LAST url equal to default_image_url, or the first url when none match.
func (im *ProductImporter) applyImages(ctx context.Context, product *models.Product, record ProductRow) error {
	if record.ReplaceImages {
		if err := im.images.DeleteByProductID(ctx, product.ID); err != nil {
			return err
		}
	}

	if len(record.ImageURLs) > 0 {
		defaultIdx := 0
		if record.DefaultImageURL != "" {
			for i, u := range record.ImageURLs {
				if u == record.DefaultImageURL {
					defaultIdx = i
				}
			}
		}
		for i, u := range record.ImageURLs {
			image := &models.ProductImage{
				ProductID: product.ID,
				URL:       u,
				SortOrder: i,
				IsDefault: i == defaultIdx,
			}
			if err := im.images.Create(ctx, image); err != nil {
				return err
			}
		}
		return nil
	}

	if record.DefaultImageURL != "" {
		return im.images.Create(ctx, &models.ProductImage{
			ProductID: product.ID,
			URL:       record.DefaultImageURL,
			SortOrder: 0,
			IsDefault: true,
		})
	}
	return nil
}
