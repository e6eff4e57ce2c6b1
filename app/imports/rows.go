package imports

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductRow is the typed shape of one product sheet row after
// normalization. Only these fields enter the pipeline; any column not
// mapped here (except the meta_ convention) is ignored.
type ProductRow struct {
	Name            string `validate:"required"`
	Sku             string `validate:"required"`
	Description     string
	Price           decimal.Decimal
	AgentPrice      decimal.Decimal
	WholesalerPrice decimal.Decimal
	ComparePrice    decimal.Decimal
	CostPrice       decimal.Decimal
	Weight          decimal.Decimal
	Length          decimal.Decimal
	Width           decimal.Decimal
	Height          decimal.Decimal
	Quantity        int
	TrackQuantity   bool
	IsActive        bool
	PublishedAt     *time.Time
	Category        string
	Brand           string
	Tax             string
	Sizes           models.OptionList
	Colors          models.OptionList
	Materials       models.OptionList
	Variations      models.VariationList
	Metadata        models.MetaMap
	ImageURLs       []string
	DefaultImageURL string
	ReplaceImages   bool
}

type UserRow struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string
	Designation string
	Password    string
	Roles       string
}

func NormalizeProductRow(row Row) ProductRow {
	return ProductRow{
		Name:            row.Get("name"),
		Sku:             strings.ToUpper(row.Get("sku")),
		Description:     row.Get("description"),
		Price:           ParseDecimal(row.Get("price")),
		AgentPrice:      ParseDecimal(row.Get("agent_price")),
		WholesalerPrice: ParseDecimal(row.Get("wholesaler_price")),
		ComparePrice:    ParseDecimal(row.Get("compare_price")),
		CostPrice:       ParseDecimal(row.Get("cost_price")),
		Weight:          ParseDecimal(row.Get("weight")),
		Length:          ParseDecimal(row.Get("length")),
		Width:           ParseDecimal(row.Get("width")),
		Height:          ParseDecimal(row.Get("height")),
		Quantity:        int(ParseDecimal(row.Get("quantity")).IntPart()),
		TrackQuantity:   ParseBool(row.Get("track_quantity")),
		IsActive:        ParseBool(row.Get("is_active")),
		PublishedAt:     ParseDate(row.Get("published_at")),
		Category:        row.Get("category"),
		Brand:           row.Get("brand"),
		Tax:             row.Get("tax"),
		Sizes:           ParseOptions(row.Get("sizes")),
		Colors:          ParseOptions(row.Get("colors")),
		Materials:       ParseOptions(row.Get("materials")),
		Variations:      ParseVariations(row.Get("variations")),
		Metadata:        ExtractMetadata(row),
		ImageURLs:       ParseURLList(row.Get("image_urls")),
		DefaultImageURL: row.Get("default_image_url"),
		ReplaceImages:   ParseBool(row.Get("replace_images")),
	}
}

func NormalizeUserRow(row Row) UserRow {
	return UserRow{
		FirstName:   row.Get("firstname"),
		LastName:    row.Get("lastname"),
		Email:       row.Get("email"),
		Phone:       row.Get("phone"),
		Designation: row.Get("designation"),
		Password:    row.Get("password"),
		Roles:       row.Get("roles"),
	}
}

// validationMessage turns the first failed rule into a readable row error.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
