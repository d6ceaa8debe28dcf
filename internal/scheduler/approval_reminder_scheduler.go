package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
)

// ApprovalReminderScheduler 승인 대기 회원 리마인더 스케줄러
// 매일 아침 심사 대기 건수를 집계해 운영 로그로 남긴다
type ApprovalReminderScheduler struct {
	cron       *cron.Cron
	memberRepo repository.MemberRepository
}

func NewApprovalReminderScheduler(memberRepo repository.MemberRepository) *ApprovalReminderScheduler {
	return &ApprovalReminderScheduler{
		cron:       cron.New(),
		memberRepo: memberRepo,
	}
}

// Start 스케줄러 시작
func (s *ApprovalReminderScheduler) Start() error {
	// 매일 오전 9시 (KST 기준)
	_, err := s.cron.AddFunc("0 9 * * *", func() {
		s.RunOnce()
	})
	if err != nil {
		logger.Error("Failed to add cron job for approval reminder", err)
		return err
	}

	s.cron.Start()
	logger.Info("Approval reminder scheduler started (daily at 9:00 AM)", nil)
	return nil
}

// RunOnce 대기 건수 집계 1회 실행
func (s *ApprovalReminderScheduler) RunOnce() {
	count, err := s.memberRepo.CountByStatus(model.MemberStatusPending)
	if err != nil {
		logger.Error("Failed to count pending members for reminder", err)
		return
	}

	if count == 0 {
		logger.Debug("No pending members awaiting approval", nil)
		return
	}

	logger.Info("Pending members awaiting approval", map[string]interface{}{
		"pending_count": count,
	})
}

// Stop 스케줄러 중지
func (s *ApprovalReminderScheduler) Stop() {
	logger.Info("Stopping approval reminder scheduler...", nil)
	s.cron.Stop()
	logger.Info("Approval reminder scheduler stopped", nil)
}
