package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidRegion  = errors.New("invalid region")
)

// RegionPriceRequest 활동 지역 1건과 그 지역의 카테고리별 가격
type RegionPriceRequest struct {
	Sido    string                 `json:"sido" binding:"required"`
	Sigungu string                 `json:"sigungu" binding:"required"`
	Handled bool                   `json:"handled"`
	Prices  []CategoryPriceRequest `json:"prices"`
}

type CategoryPriceRequest struct {
	CategoryName string `json:"category_name" binding:"required"`
	Price        int64  `json:"price"`
	IsAvailable  bool   `json:"is_available"`
}

// RegionWithPrices 조회용: 활성 지역 1건과 매칭된 가격 목록
type RegionWithPrices struct {
	Sido    string               `json:"sido"`
	Sigungu string               `json:"sigungu"`
	Prices  []model.ProductPrice `json:"prices"`
}

type RegionPriceService interface {
	SaveRegionsAndPrices(memberID uint, requests []RegionPriceRequest) error
	GetMyRegionsAndPrices(memberID uint) ([]RegionWithPrices, error)
}

type regionPriceService struct {
	memberRepo         repository.MemberRepository
	activityRegionRepo repository.ActivityRegionRepository
	productPriceRepo   repository.ProductPriceRepository
	db                 *gorm.DB
}

func NewRegionPriceService(
	memberRepo repository.MemberRepository,
	activityRegionRepo repository.ActivityRegionRepository,
	productPriceRepo repository.ProductPriceRepository,
	db *gorm.DB,
) RegionPriceService {
	return &regionPriceService{
		memberRepo:         memberRepo,
		activityRegionRepo: activityRegionRepo,
		productPriceRepo:   productPriceRepo,
		db:                 db,
	}
}

// SaveRegionsAndPrices 활동 지역/가격 전체 동기화
// 전체 비활성화 후 요청 기준으로 업서트. 빈 요청이면 모든 지역/가격이 비활성화된다.
func (s *regionPriceService) SaveRegionsAndPrices(memberID uint, requests []RegionPriceRequest) error {
	logger.Info("Saving regions and prices", map[string]interface{}{
		"member_id":    memberID,
		"region_count": len(requests),
	})

	for _, req := range requests {
		if strings.TrimSpace(req.Sido) == "" || strings.TrimSpace(req.Sigungu) == "" {
			logger.Warn("Invalid region in save request", map[string]interface{}{
				"member_id": memberID,
				"sido":      req.Sido,
				"sigungu":   req.Sigungu,
			})
			return ErrInvalidRegion
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during region/price save, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"member_id": memberID,
			})
		}
	}()

	// 회원 행 잠금으로 회원 단위 동기화 직렬화
	var member model.Member
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&member, memberID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Member not found during region/price save", map[string]interface{}{
				"member_id": memberID,
			})
			return ErrMemberNotFound
		}
		logger.Error("Failed to fetch member during region/price save", err, map[string]interface{}{
			"member_id": memberID,
		})
		return err
	}

	// 1단계: 기존 지역/가격 전체 비활성화
	if err := tx.Model(&model.ActivityRegion{}).
		Where("member_id = ?", memberID).
		Update("is_active", false).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to deactivate activity regions", err, map[string]interface{}{
			"member_id": memberID,
		})
		return err
	}

	if err := tx.Model(&model.ProductPrice{}).
		Where("member_id = ?", memberID).
		Update("is_available", false).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to deactivate product prices", err, map[string]interface{}{
			"member_id": memberID,
		})
		return err
	}

	// 2단계: 요청 순서대로 지역 업서트 + 가격 갱신
	for _, req := range requests {
		var region model.ActivityRegion
		err := tx.Where(
			"member_id = ? AND sido = ? AND sigungu = ?",
			memberID, req.Sido, req.Sigungu,
		).First(&region).Error

		switch {
		case err == nil:
			if err := tx.Model(&region).Update("is_active", req.Handled).Error; err != nil {
				tx.Rollback()
				logger.Error("Failed to update activity region", err, map[string]interface{}{
					"member_id": memberID,
					"sido":      req.Sido,
					"sigungu":   req.Sigungu,
				})
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			region = model.ActivityRegion{
				MemberID: memberID,
				Sido:     req.Sido,
				Sigungu:  req.Sigungu,
				IsActive: req.Handled,
			}
			if err := tx.Create(&region).Error; err != nil {
				tx.Rollback()
				logger.Error("Failed to create activity region", err, map[string]interface{}{
					"member_id": memberID,
					"sido":      req.Sido,
					"sigungu":   req.Sigungu,
				})
				return err
			}
		default:
			tx.Rollback()
			logger.Error("Failed to fetch activity region", err, map[string]interface{}{
				"member_id": memberID,
				"sido":      req.Sido,
				"sigungu":   req.Sigungu,
			})
			return err
		}

		for _, priceReq := range req.Prices {
			// 미취급 지역의 가격은 값만 보존하고 판매 불가로 기록
			available := req.Handled && priceReq.IsAvailable

			var price model.ProductPrice
			err := tx.Where(
				"member_id = ? AND sido = ? AND sigungu = ? AND category_name = ?",
				memberID, req.Sido, req.Sigungu, priceReq.CategoryName,
			).First(&price).Error

			switch {
			case err == nil:
				updates := map[string]interface{}{
					"price":        priceReq.Price,
					"is_available": available,
				}
				if err := tx.Model(&price).Updates(updates).Error; err != nil {
					tx.Rollback()
					logger.Error("Failed to update product price", err, map[string]interface{}{
						"member_id": memberID,
						"sido":      req.Sido,
						"sigungu":   req.Sigungu,
						"category":  priceReq.CategoryName,
					})
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				price = model.ProductPrice{
					MemberID:     memberID,
					Sido:         req.Sido,
					Sigungu:      req.Sigungu,
					CategoryName: priceReq.CategoryName,
					Price:        priceReq.Price,
					IsAvailable:  available,
				}
				if err := tx.Create(&price).Error; err != nil {
					tx.Rollback()
					logger.Error("Failed to create product price", err, map[string]interface{}{
						"member_id": memberID,
						"sido":      req.Sido,
						"sigungu":   req.Sigungu,
						"category":  priceReq.CategoryName,
					})
					return err
				}
			default:
				tx.Rollback()
				logger.Error("Failed to fetch product price", err, map[string]interface{}{
					"member_id": memberID,
					"sido":      req.Sido,
					"sigungu":   req.Sigungu,
					"category":  priceReq.CategoryName,
				})
				return err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit region/price save", err, map[string]interface{}{
			"member_id": memberID,
		})
		return err
	}

	logger.Info("Regions and prices saved", map[string]interface{}{
		"member_id":    memberID,
		"region_count": len(requests),
	})
	return nil
}

// GetMyRegionsAndPrices 활성 지역과 (sido, sigungu)로 매칭된 가격 조회
func (s *regionPriceService) GetMyRegionsAndPrices(memberID uint) ([]RegionWithPrices, error) {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	regions, err := s.activityRegionRepo.FindActiveByMemberID(memberID)
	if err != nil {
		return nil, err
	}

	prices, err := s.productPriceRepo.FindByMemberID(memberID)
	if err != nil {
		return nil, err
	}

	pricesByRegion := make(map[string][]model.ProductPrice)
	for _, p := range prices {
		key := p.Sido + "|" + p.Sigungu
		pricesByRegion[key] = append(pricesByRegion[key], p)
	}

	result := make([]RegionWithPrices, 0, len(regions))
	for _, r := range regions {
		key := r.Sido + "|" + r.Sigungu
		regionPrices := pricesByRegion[key]
		if regionPrices == nil {
			// 가격 미등록 지역도 빈 목록으로 내려준다 (JSON null 방지)
			regionPrices = []model.ProductPrice{}
		}
		result = append(result, RegionWithPrices{
			Sido:    r.Sido,
			Sigungu: r.Sigungu,
			Prices:  regionPrices,
		})
	}
	return result, nil
}
