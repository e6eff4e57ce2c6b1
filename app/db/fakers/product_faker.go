package fakers

import (
	"math/rand"
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

func ProductFaker(category *models.Category, brand *models.Brand) *models.Product {
	name := faker.Word() + " " + faker.Word()

	productID := uuid.New().String()
	skuText := slug.Make(name) + "-" + uuid.NewString()[:6]

	numImages := rand.Intn(3) + 1
	productImages := make([]models.ProductImage, numImages)
	for i := 0; i < numImages; i++ {
		productImages[i] = models.ProductImage{
			ID:        uuid.New().String(),
			ProductID: productID,
			URL:       "https://cdn.example.com/products/" + uuid.NewString()[:8] + ".jpg",
			SortOrder: i,
			IsDefault: i == 0,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
	}

	price := decimal.NewFromFloat(float64(rand.Intn(90000)+1000) / 100)

	product := &models.Product{
		ID:            productID,
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Sku:           skuText,
		Description:   faker.Paragraph(),
		Price:         price,
		AgentPrice:    price.Mul(decimal.NewFromFloat(0.9)),
		CostPrice:     price.Mul(decimal.NewFromFloat(0.6)),
		Weight:        decimal.NewFromFloat(rand.Float64() * 5),
		Quantity:      rand.Intn(20) + 1,
		TrackQuantity: true,
		IsActive:      true,
		CategoryID:    &category.ID,
		BrandID:       &brand.ID,
		ProductImages: productImages,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	return product
}
