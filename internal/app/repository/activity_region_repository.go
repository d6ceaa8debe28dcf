package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type ActivityRegionRepository interface {
	FindByMemberID(memberID uint) ([]model.ActivityRegion, error)
	FindActiveByMemberID(memberID uint) ([]model.ActivityRegion, error)
}

type activityRegionRepository struct {
	db *gorm.DB
}

func NewActivityRegionRepository(db *gorm.DB) ActivityRegionRepository {
	return &activityRegionRepository{db: db}
}

func (r *activityRegionRepository) FindByMemberID(memberID uint) ([]model.ActivityRegion, error) {
	var regions []model.ActivityRegion
	err := r.db.Where("member_id = ?", memberID).
		Order("sido ASC, sigungu ASC").
		Find(&regions).Error
	if err != nil {
		logger.Error("Failed to find activity regions by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return regions, nil
}

func (r *activityRegionRepository) FindActiveByMemberID(memberID uint) ([]model.ActivityRegion, error) {
	var regions []model.ActivityRegion
	err := r.db.Where("member_id = ? AND is_active = ?", memberID, true).
		Order("sido ASC, sigungu ASC").
		Find(&regions).Error
	if err != nil {
		logger.Error("Failed to find active activity regions in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return regions, nil
}
