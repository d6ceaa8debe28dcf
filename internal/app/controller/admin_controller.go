package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
)

// AdminController 관리자용 입점 심사/회원 관리 엔드포인트
type AdminController struct {
	approvalService service.ApprovalService
	memberService   service.MemberService
}

func NewAdminController(approvalService service.ApprovalService, memberService service.MemberService) *AdminController {
	return &AdminController{
		approvalService: approvalService,
		memberService:   memberService,
	}
}

type RejectMemberRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func parseMemberIDParam(c *gin.Context) (uint, bool) {
	memberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 회원 ID입니다")
		return 0, false
	}
	return uint(memberID), true
}

// 승인/거부의 실행 주체는 인증된 관리자 본인
func actorLoginID(c *gin.Context) string {
	loginID, _ := middleware.GetLoginID(c)
	return loginID
}

// GetPendingMembers returns members awaiting approval
// GET /api/v1/admin/members/pending
func (ctrl *AdminController) GetPendingMembers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	members, err := ctrl.memberService.GetPendingMembers()
	if err != nil {
		log.Error("Failed to fetch pending members", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get members")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"count":   len(members),
	})
}

// ApproveMember approves a pending member
// POST /api/v1/admin/members/:id/approve
func (ctrl *AdminController) ApproveMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := parseMemberIDParam(c)
	if !ok {
		return
	}

	member, err := ctrl.approvalService.ApproveMember(memberID, actorLoginID(c))
	if err != nil {
		ctrl.respondApprovalError(c, err, memberID, "approve")
		return
	}

	log.Info("Member approved by admin", map[string]interface{}{
		"member_id":   memberID,
		"approved_by": actorLoginID(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "입점이 승인되었습니다",
		"member":  member,
	})
}

// RejectMember rejects a pending member with a reason
// POST /api/v1/admin/members/:id/reject
func (ctrl *AdminController) RejectMember(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, ok := parseMemberIDParam(c)
	if !ok {
		return
	}

	var req RejectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ApprovalReasonRequired, "거절 사유를 입력해 주세요")
		return
	}

	member, err := ctrl.approvalService.RejectMember(memberID, req.Reason, actorLoginID(c))
	if err != nil {
		if errors.Is(err, service.ErrRejectionReasonRequired) {
			apperrors.BadRequest(c, apperrors.ApprovalReasonRequired, "거절 사유를 입력해 주세요")
			return
		}
		ctrl.respondApprovalError(c, err, memberID, "reject")
		return
	}

	log.Info("Member rejected by admin", map[string]interface{}{
		"member_id":   memberID,
		"rejected_by": actorLoginID(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "입점이 거부되었습니다",
		"member":  member,
	})
}

// SuspendMember suspends an active member
// POST /api/v1/admin/members/:id/suspend
func (ctrl *AdminController) SuspendMember(c *gin.Context) {
	memberID, ok := parseMemberIDParam(c)
	if !ok {
		return
	}

	member, err := ctrl.approvalService.SuspendMember(memberID, actorLoginID(c))
	if err != nil {
		ctrl.respondApprovalError(c, err, memberID, "suspend")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "계정이 정지되었습니다",
		"member":  member,
	})
}

// UnsuspendMember reactivates a suspended member
// POST /api/v1/admin/members/:id/unsuspend
func (ctrl *AdminController) UnsuspendMember(c *gin.Context) {
	memberID, ok := parseMemberIDParam(c)
	if !ok {
		return
	}

	member, err := ctrl.approvalService.UnsuspendMember(memberID, actorLoginID(c))
	if err != nil {
		ctrl.respondApprovalError(c, err, memberID, "unsuspend")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "정지가 해제되었습니다",
		"member":  member,
	})
}

// DeleteMember soft-deletes a member
// DELETE /api/v1/admin/members/:id
func (ctrl *AdminController) DeleteMember(c *gin.Context) {
	memberID, ok := parseMemberIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.approvalService.DeleteMember(memberID, actorLoginID(c)); err != nil {
		if errors.Is(err, model.ErrMemberAlreadyDeleted) {
			apperrors.Conflict(c, apperrors.MemberAlreadyDeleted, "이미 삭제된 회원입니다")
			return
		}
		ctrl.respondApprovalError(c, err, memberID, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "회원이 삭제되었습니다",
	})
}

func (ctrl *AdminController) respondApprovalError(c *gin.Context, err error, memberID uint, action string) {
	log := middleware.GetLoggerFromContext(c)

	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
	case errors.Is(err, service.ErrBusinessProfileNotFound):
		apperrors.NotFound(c, apperrors.ApprovalProfileNotFound, "사업자 프로필을 찾을 수 없습니다")
	case errors.Is(err, model.ErrInvalidStatusTransition):
		apperrors.Conflict(c, apperrors.MemberInvalidTransition, "현재 상태에서는 처리할 수 없습니다")
	default:
		log.Error("Member admin action failed", err, map[string]interface{}{
			"member_id": memberID,
			"action":    action,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, action+" member")
	}
}
