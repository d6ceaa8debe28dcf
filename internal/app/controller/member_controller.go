package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
)

type MemberController struct {
	memberService service.MemberService
}

func NewMemberController(memberService service.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

type CheckLoginIDRequest struct {
	LoginID string `json:"login_id" binding:"required,min=4,max=50"`
}

type CheckBusinessNumberRequest struct {
	BusinessNumber string `json:"business_number" binding:"required"`
}

// Signup handles partner signup
// POST /api/v1/members/signup
func (ctrl *MemberController) Signup(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid signup request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	member, err := ctrl.memberService.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginIDExists):
			apperrors.Conflict(c, apperrors.AuthLoginIDExists, "이미 사용 중인 로그인 ID입니다")
		case errors.Is(err, service.ErrBusinessNumberExists):
			apperrors.Conflict(c, apperrors.MemberBusinessNumberExists, "이미 등록된 사업자등록번호입니다")
		case errors.Is(err, service.ErrInvalidBusinessNumber):
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "사업자등록번호 형식이 올바르지 않습니다")
		case errors.Is(err, service.ErrBusinessNotOperating):
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "영업 중인 사업자만 입점 신청할 수 있습니다")
		default:
			log.Error("Signup failed", err, map[string]interface{}{
				"login_id": req.LoginID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create member")
		}
		return
	}

	log.Info("Partner signup completed", map[string]interface{}{
		"member_id": member.ID,
		"login_id":  member.LoginID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "입점 신청이 접수되었습니다. 관리자 승인 후 로그인할 수 있습니다",
		"member": gin.H{
			"id":       member.ID,
			"login_id": member.LoginID,
			"name":     member.Name,
			"status":   member.Status,
		},
	})
}

// CheckLoginID checks login ID availability
// POST /api/v1/members/check-login-id
func (ctrl *MemberController) CheckLoginID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckLoginIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	available, err := ctrl.memberService.CheckLoginIDAvailable(req.LoginID)
	if err != nil {
		log.Error("Failed to check login ID availability", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		apperrors.InternalError(c, "로그인 ID 중복 확인에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_available": available,
	})
}

// CheckBusinessNumber checks business number format and availability
// POST /api/v1/members/check-business-number
func (ctrl *MemberController) CheckBusinessNumber(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CheckBusinessNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	available, err := ctrl.memberService.CheckBusinessNumberAvailable(req.BusinessNumber)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBusinessNumber) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "사업자등록번호 형식이 올바르지 않습니다")
			return
		}
		log.Error("Failed to check business number availability", err, map[string]interface{}{
			"business_number": req.BusinessNumber,
		})
		apperrors.InternalError(c, "사업자등록번호 중복 확인에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_available": available,
	})
}
