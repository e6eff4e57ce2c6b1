package repositories

import (
	"context"
	"errors"

	"github.com/davitra/go-backoffice/app/models"
	"gorm.io/gorm"
)

type RoleRepositoryImpl interface {
	FindByName(ctx context.Context, name string) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
	ReplaceForUser(ctx context.Context, userID string, roleIDs []uint) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepositoryImpl {
	return &roleRepository{db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

// ReplaceForUser detaches every current role before attaching the new set.
func (r *roleRepository) ReplaceForUser(ctx context.Context, userID string, roleIDs []uint) error {
	user := models.User{ID: userID}

	assoc := r.db.WithContext(ctx).Model(&user).Association("Roles")
	if err := assoc.Clear(); err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}

	roles := make([]models.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, models.Role{ID: id})
	}
	return assoc.Append(&roles)
}
