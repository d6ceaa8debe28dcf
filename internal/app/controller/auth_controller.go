package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
)

type AuthController struct {
	authService   service.AuthService
	memberService service.MemberService
}

func NewAuthController(authService service.AuthService, memberService service.MemberService) *AuthController {
	return &AuthController{
		authService:   authService,
		memberService: memberService,
	}
}

type LoginRequest struct {
	LoginID  string `json:"login_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

// Login handles partner login
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	member, tokens, err := ctrl.authService.Login(req.LoginID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Warn("Login failed: invalid credentials", map[string]interface{}{
				"login_id": req.LoginID,
			})
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
		case errors.Is(err, service.ErrApprovalPending):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.MemberPendingApproval, "입점 승인 대기 중입니다. 승인 후 로그인할 수 있습니다")
		case errors.Is(err, service.ErrMemberSuspended):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.MemberSuspended, "정지된 계정입니다. 고객센터로 문의해 주세요")
		case errors.Is(err, service.ErrMemberNotActive):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.MemberNotActive, "사용할 수 없는 계정입니다")
		default:
			log.Error("Login failed", err, map[string]interface{}{
				"login_id": req.LoginID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "login")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"member": gin.H{
			"id":       member.ID,
			"login_id": member.LoginID,
			"name":     member.Name,
			"nickname": member.Nickname,
			"status":   member.Status,
		},
		"tokens": tokens,
	})
}

// AdminLogin handles admin login
// POST /api/v1/auth/admin/login
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid admin login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	admin, tokens, err := ctrl.authService.AdminLogin(req.LoginID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다")
		case errors.Is(err, service.ErrAdminNotActive):
			apperrors.Forbidden(c, "비활성화된 관리자 계정입니다")
		default:
			log.Error("Admin login failed", err, map[string]interface{}{
				"login_id": req.LoginID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "admin login")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": gin.H{
			"id":       admin.ID,
			"login_id": admin.LoginID,
			"name":     admin.Name,
		},
		"tokens": tokens,
	})
}

// RefreshToken handles token refresh
// POST /api/v1/auth/refresh
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	tokens, err := ctrl.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExpiredToken):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthTokenExpired, "리프레시 토큰이 만료되었습니다. 다시 로그인해주세요")
		case errors.Is(err, util.ErrInvalidToken):
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthTokenInvalid, "유효하지 않은 리프레시 토큰입니다")
		case errors.Is(err, service.ErrMemberNotActive), errors.Is(err, service.ErrInvalidCredentials):
			apperrors.RespondWithError(c, http.StatusForbidden, apperrors.MemberNotActive, "사용할 수 없는 계정입니다")
		default:
			log.Error("Failed to refresh token", err, nil)
			apperrors.InternalError(c, "토큰 갱신에 실패했습니다")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"tokens":  tokens,
	})
}

// Logout handles logout by revoking the access token
// POST /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	// 로그아웃은 사용자 입장에서 항상 성공해야 함
	if err := ctrl.authService.Logout(c.Request.Context(), req.AccessToken); err != nil {
		log.Error("Failed to revoke token during logout", err, nil)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetMe returns current partner information with business profile
// GET /api/v1/auth/me
func (ctrl *AuthController) GetMe(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	member, err := ctrl.memberService.GetMember(memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to get member information", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"member": member,
	})
}
