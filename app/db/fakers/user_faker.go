package fakers

import (
	"time"

	"github.com/davitra/go-backoffice/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func UserFaker() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	return &models.User{
		ID:          uuid.New().String(),
		FirstName:   faker.FirstName(),
		LastName:    faker.LastName(),
		Email:       faker.Email(),
		Phone:       faker.Phonenumber(),
		Designation: models.DefaultDesignation,
		Password:    string(hash),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
