package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
)

// RegionPriceController 파트너 활동 지역/가격 설정 + 지역 마스터 조회
type RegionPriceController struct {
	regionPriceService service.RegionPriceService
	regionService      service.RegionService
}

func NewRegionPriceController(
	regionPriceService service.RegionPriceService,
	regionService service.RegionService,
) *RegionPriceController {
	return &RegionPriceController{
		regionPriceService: regionPriceService,
		regionService:      regionService,
	}
}

type SaveRegionsRequest struct {
	Regions []service.RegionPriceRequest `json:"regions"`
}

// SaveMyRegions synchronizes the partner's activity regions and prices
// PUT /api/v1/members/me/regions
func (ctrl *RegionPriceController) SaveMyRegions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var req SaveRegionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid save regions request", map[string]interface{}{
			"member_id": memberID,
			"error":     err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.regionPriceService.SaveRegionsAndPrices(memberID, req.Regions); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidRegion):
			apperrors.BadRequest(c, apperrors.RegionNotFound, "지역 정보가 올바르지 않습니다")
		default:
			log.Error("Failed to save regions and prices", err, map[string]interface{}{
				"member_id": memberID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update region price")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "활동 지역과 가격이 저장되었습니다",
	})
}

// GetMyRegions returns the partner's active regions with matched prices
// GET /api/v1/members/me/regions
func (ctrl *RegionPriceController) GetMyRegions(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	regions, err := ctrl.regionPriceService.GetMyRegionsAndPrices(memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to fetch regions and prices", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get region price")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"regions": regions,
	})
}

// GetSidoList returns the deliverable sido list from the region master
// GET /api/v1/regions/sido
func (ctrl *RegionPriceController) GetSidoList(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sidoList, err := ctrl.regionService.GetSidoList()
	if err != nil {
		log.Error("Failed to fetch sido list", err, nil)
		apperrors.InternalError(c, "지역 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sido_list": sidoList,
	})
}

// GetSigunguList returns the sigungu list for a sido
// GET /api/v1/regions/sigungu?sido=서울
func (ctrl *RegionPriceController) GetSigunguList(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sido := c.Query("sido")
	if sido == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "시/도를 선택해 주세요")
		return
	}

	sigunguList, err := ctrl.regionService.GetSigunguBySido(sido)
	if err != nil {
		log.Error("Failed to fetch sigungu list", err, map[string]interface{}{
			"sido": sido,
		})
		apperrors.InternalError(c, "지역 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sido":         sido,
		"sigungu_list": sigunguList,
	})
}
