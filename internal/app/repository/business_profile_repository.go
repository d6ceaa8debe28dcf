package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type BusinessProfileRepository interface {
	Create(profile *model.BusinessProfile) error
	FindByMemberID(memberID uint) (*model.BusinessProfile, error)
	ExistsByBusinessNumber(businessNumber string) (bool, error)
	Update(profile *model.BusinessProfile) error
}

type businessProfileRepository struct {
	db *gorm.DB
}

func NewBusinessProfileRepository(db *gorm.DB) BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

func (r *businessProfileRepository) Create(profile *model.BusinessProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		logger.Error("Failed to create business profile in database", err, map[string]interface{}{
			"member_id":       profile.MemberID,
			"business_number": profile.BusinessNumber,
		})
		return err
	}
	return nil
}

func (r *businessProfileRepository) FindByMemberID(memberID uint) (*model.BusinessProfile, error) {
	var profile model.BusinessProfile
	if err := r.db.Where("member_id = ?", memberID).First(&profile).Error; err != nil {
		logger.Error("Failed to find business profile by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return &profile, nil
}

func (r *businessProfileRepository) ExistsByBusinessNumber(businessNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&model.BusinessProfile{}).
		Where("business_number = ?", businessNumber).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check business number existence in database", err, map[string]interface{}{
			"business_number": businessNumber,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *businessProfileRepository) Update(profile *model.BusinessProfile) error {
	logger.Debug("Updating business profile in database", map[string]interface{}{
		"profile_id":      profile.ID,
		"member_id":       profile.MemberID,
		"approval_status": profile.ApprovalStatus,
	})

	if err := r.db.Save(profile).Error; err != nil {
		logger.Error("Failed to update business profile in database", err, map[string]interface{}{
			"profile_id": profile.ID,
		})
		return err
	}
	return nil
}
