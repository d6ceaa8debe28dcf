package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductPriceRepository interface {
	FindByMemberID(memberID uint) ([]model.ProductPrice, error)
	FindByNaturalKey(memberID uint, sido, sigungu, categoryName string) (*model.ProductPrice, error)
}

type productPriceRepository struct {
	db *gorm.DB
}

func NewProductPriceRepository(db *gorm.DB) ProductPriceRepository {
	return &productPriceRepository{db: db}
}

func (r *productPriceRepository) FindByMemberID(memberID uint) ([]model.ProductPrice, error) {
	var prices []model.ProductPrice
	err := r.db.Where("member_id = ?", memberID).
		Order("sido ASC, sigungu ASC, category_name ASC").
		Find(&prices).Error
	if err != nil {
		logger.Error("Failed to find product prices by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return prices, nil
}

// FindByNaturalKey 자연키 (member_id, sido, sigungu, category_name)로 단건 조회
func (r *productPriceRepository) FindByNaturalKey(memberID uint, sido, sigungu, categoryName string) (*model.ProductPrice, error) {
	var price model.ProductPrice
	err := r.db.Where(
		"member_id = ? AND sido = ? AND sigungu = ? AND category_name = ?",
		memberID, sido, sigungu, categoryName,
	).First(&price).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.Error("Failed to find product price by natural key in database", err, map[string]interface{}{
				"member_id": memberID,
				"sido":      sido,
				"sigungu":   sigungu,
				"category":  categoryName,
			})
		}
		return nil, err
	}
	return &price, nil
}
