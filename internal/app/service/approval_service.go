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
	ErrBusinessProfileNotFound = errors.New("business profile not found")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)

type ApprovalService interface {
	ApproveMember(memberID uint, approvedBy string) (*model.Member, error)
	RejectMember(memberID uint, reason, rejectedBy string) (*model.Member, error)
	SuspendMember(memberID uint, actor string) (*model.Member, error)
	UnsuspendMember(memberID uint, actor string) (*model.Member, error)
	DeleteMember(memberID uint, actor string) error
}

type approvalService struct {
	memberRepo          repository.MemberRepository
	profileRepo         repository.BusinessProfileRepository
	notificationService NotificationService
	db                  *gorm.DB
}

func NewApprovalService(
	memberRepo repository.MemberRepository,
	profileRepo repository.BusinessProfileRepository,
	notificationService NotificationService,
	db *gorm.DB,
) ApprovalService {
	return &approvalService{
		memberRepo:          memberRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
		db:                  db,
	}
}

// lockMemberWithProfile 회원 행 잠금 후 사업자 프로필까지 로드
func (s *approvalService) lockMemberWithProfile(tx *gorm.DB, memberID uint) (*model.Member, *model.BusinessProfile, error) {
	var member model.Member
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMemberNotFound
		}
		return nil, nil, err
	}

	var profile model.BusinessProfile
	if err := tx.Where("member_id = ?", memberID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrBusinessProfileNotFound
		}
		return nil, nil, err
	}

	return &member, &profile, nil
}

// ApproveMember 입점 승인: 회원 상태 전이 + 프로필 승인 기록을 한 트랜잭션으로 처리
// 이미 활성 상태인 회원은 상태 변경 없이 프로필만 재승인된다
func (s *approvalService) ApproveMember(memberID uint, approvedBy string) (*model.Member, error) {
	logger.Info("Approving member", map[string]interface{}{
		"member_id":   memberID,
		"approved_by": approvedBy,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during member approval, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"member_id": memberID,
			})
		}
	}()

	member, profile, err := s.lockMemberWithProfile(tx, memberID)
	if err != nil {
		tx.Rollback()
		logger.Warn("Failed to load member for approval", map[string]interface{}{
			"member_id": memberID,
			"error":     err.Error(),
		})
		return nil, err
	}

	if !member.IsActive() {
		if err := member.ChangeStatus(model.MemberStatusActive); err != nil {
			tx.Rollback()
			logger.Warn("Invalid status transition during approval", map[string]interface{}{
				"member_id": memberID,
				"status":    member.Status,
			})
			return nil, err
		}
		if err := tx.Save(member).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to persist member status during approval", err, map[string]interface{}{
				"member_id": memberID,
			})
			return nil, err
		}
	}

	profile.Approve(approvedBy)
	if err := tx.Save(profile).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to persist business profile during approval", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit member approval", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}

	member.BusinessProfile = profile

	if s.notificationService != nil {
		s.notificationService.NotifyApprovalResult(member, model.NotificationTypeMemberApproved,
			fmt.Sprintf("%s님의 입점 신청이 승인되었습니다.", member.Name))
	}

	logger.Info("Member approved", map[string]interface{}{
		"member_id":   memberID,
		"approved_by": approvedBy,
	})
	return member, nil
}

// RejectMember 입점 거부: 프로필에 거절 사유만 기록하고 회원 상태는 건드리지 않는다
func (s *approvalService) RejectMember(memberID uint, reason, rejectedBy string) (*model.Member, error) {
	if strings.TrimSpace(reason) == "" {
		logger.Warn("Rejection attempted without reason", map[string]interface{}{
			"member_id":   memberID,
			"rejected_by": rejectedBy,
		})
		return nil, ErrRejectionReasonRequired
	}

	logger.Info("Rejecting member", map[string]interface{}{
		"member_id":   memberID,
		"rejected_by": rejectedBy,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during member rejection, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"member_id": memberID,
			})
		}
	}()

	member, profile, err := s.lockMemberWithProfile(tx, memberID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	profile.Reject(reason)
	if err := tx.Save(profile).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to persist business profile during rejection", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit member rejection", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}

	member.BusinessProfile = profile

	if s.notificationService != nil {
		s.notificationService.NotifyApprovalResult(member, model.NotificationTypeMemberRejected,
			fmt.Sprintf("입점 신청이 거부되었습니다. 사유: %s", reason))
	}

	return member, nil
}

// SuspendMember 계정 정지: 활성 상태에서만 가능
func (s *approvalService) SuspendMember(memberID uint, actor string) (*model.Member, error) {
	logger.Info("Suspending member", map[string]interface{}{
		"member_id": memberID,
		"actor":     actor,
	})

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if err := member.Suspend(); err != nil {
		logger.Warn("Invalid status transition during suspension", map[string]interface{}{
			"member_id": memberID,
			"status":    member.Status,
		})
		return nil, err
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}

	if s.notificationService != nil {
		s.notificationService.NotifyApprovalResult(member, model.NotificationTypeMemberSuspended,
			"계정이 정지되었습니다. 자세한 내용은 고객센터로 문의해 주세요.")
	}

	return member, nil
}

// UnsuspendMember 정지 해제: 정지 상태에서만 가능
func (s *approvalService) UnsuspendMember(memberID uint, actor string) (*model.Member, error) {
	logger.Info("Unsuspending member", map[string]interface{}{
		"member_id": memberID,
		"actor":     actor,
	})

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if err := member.Unsuspend(); err != nil {
		logger.Warn("Invalid status transition during unsuspension", map[string]interface{}{
			"member_id": memberID,
			"status":    member.Status,
		})
		return nil, err
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember 회원 삭제 (소프트 삭제): 삭제자 기록, 최종 상태
func (s *approvalService) DeleteMember(memberID uint, actor string) error {
	logger.Info("Deleting member", map[string]interface{}{
		"member_id": memberID,
		"actor":     actor,
	})

	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	if err := member.SoftDelete(actor); err != nil {
		logger.Warn("Cannot delete member", map[string]interface{}{
			"member_id": memberID,
			"status":    member.Status,
			"error":     err.Error(),
		})
		return err
	}

	if err := s.memberRepo.Update(member); err != nil {
		return err
	}

	logger.Info("Member deleted", map[string]interface{}{
		"member_id": memberID,
		"actor":     actor,
	})
	return nil
}
