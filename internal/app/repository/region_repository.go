package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type RegionRepository interface {
	FindAll() ([]model.Region, error)
	FindSidoList() ([]string, error)
	FindSigunguBySido(sido string) ([]string, error)
	ExistsBySidoSigungu(sido, sigungu string) (bool, error)
	BulkCreate(regions []model.Region) error
	Count() (int64, error)
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) FindAll() ([]model.Region, error) {
	var regions []model.Region
	err := r.db.Where("is_active = ?", true).
		Order("sido ASC, sigungu ASC").
		Find(&regions).Error
	if err != nil {
		logger.Error("Failed to find regions in database", err, nil)
		return nil, err
	}
	return regions, nil
}

func (r *regionRepository) FindSidoList() ([]string, error) {
	var sidoList []string
	err := r.db.Model(&model.Region{}).
		Where("is_active = ?", true).
		Distinct("sido").
		Order("sido ASC").
		Pluck("sido", &sidoList).Error
	if err != nil {
		logger.Error("Failed to find sido list in database", err, nil)
		return nil, err
	}
	return sidoList, nil
}

func (r *regionRepository) FindSigunguBySido(sido string) ([]string, error) {
	var sigunguList []string
	err := r.db.Model(&model.Region{}).
		Where("sido = ? AND is_active = ?", sido, true).
		Distinct("sigungu").
		Order("sigungu ASC").
		Pluck("sigungu", &sigunguList).Error
	if err != nil {
		logger.Error("Failed to find sigungu list in database", err, map[string]interface{}{
			"sido": sido,
		})
		return nil, err
	}
	return sigunguList, nil
}

func (r *regionRepository) ExistsBySidoSigungu(sido, sigungu string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Region{}).
		Where("sido = ? AND sigungu = ? AND is_active = ?", sido, sigungu, true).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to check region existence in database", err, map[string]interface{}{
			"sido":    sido,
			"sigungu": sigungu,
		})
		return false, err
	}
	return count > 0, nil
}

// BulkCreate 시드 적재용 일괄 등록 (100건 단위 배치)
func (r *regionRepository) BulkCreate(regions []model.Region) error {
	if len(regions) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(regions, 100).Error; err != nil {
		logger.Error("Failed to bulk create regions in database", err, map[string]interface{}{
			"count": len(regions),
		})
		return err
	}
	return nil
}

func (r *regionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Region{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count regions in database", err, nil)
		return 0, err
	}
	return count, nil
}
