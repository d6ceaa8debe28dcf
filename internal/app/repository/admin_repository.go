package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *model.Admin) error
	FindByID(id uint) (*model.Admin, error)
	FindByLoginID(loginID string) (*model.Admin, error)
	Update(admin *model.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *model.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		logger.Error("Failed to create admin in database", err, map[string]interface{}{
			"login_id": admin.LoginID,
		})
		return err
	}
	return nil
}

func (r *adminRepository) FindByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		logger.Error("Failed to find admin by ID in database", err, map[string]interface{}{
			"admin_id": id,
		})
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByLoginID(loginID string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("login_id = ?", loginID).First(&admin).Error; err != nil {
		logger.Error("Failed to find admin by login ID in database", err, map[string]interface{}{
			"login_id": loginID,
		})
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Update(admin *model.Admin) error {
	if err := r.db.Save(admin).Error; err != nil {
		logger.Error("Failed to update admin in database", err, map[string]interface{}{
			"admin_id": admin.ID,
		})
		return err
	}
	return nil
}
