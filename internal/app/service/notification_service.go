package service

import (
	"errors"
	"fmt"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationPusher 접속 중인 파트너에게 실시간 푸시 (websocket hub)
type NotificationPusher interface {
	PushToMember(memberID uint, payload interface{})
}

type NotificationService interface {
	NotifyApprovalResult(member *model.Member, notifType model.NotificationType, content string)
	GetMyNotifications(memberID uint, limit int) ([]model.Notification, error)
	GetUnreadCount(memberID uint) (int64, error)
	MarkAsRead(notificationID, memberID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	pusher           NotificationPusher
	db               *gorm.DB
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	pusher NotificationPusher,
	db *gorm.DB,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
		db:               db,
	}
}

func approvalNotificationTitle(notifType model.NotificationType) string {
	switch notifType {
	case model.NotificationTypeMemberApproved:
		return "입점 승인 안내"
	case model.NotificationTypeMemberRejected:
		return "입점 심사 결과 안내"
	case model.NotificationTypeMemberSuspended:
		return "계정 정지 안내"
	default:
		return "알림"
	}
}

// NotifyApprovalResult 승인/거부/정지 결과 알림 저장 + 접속 중이면 웹소켓 푸시
// 알림 실패는 승인 처리 자체를 되돌리지 않는다 (로그만 남김)
func (s *notificationService) NotifyApprovalResult(member *model.Member, notifType model.NotificationType, content string) {
	var setting model.NotificationSetting
	channels := []string{"push"}
	err := s.db.Where("member_id = ?", member.ID).First(&setting).Error
	if err == nil {
		channels = setting.ApprovalChannels()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to load notification setting", err, map[string]interface{}{
			"member_id": member.ID,
		})
	}

	notification := &model.Notification{
		MemberID: member.ID,
		Type:     notifType,
		Title:    approvalNotificationTitle(notifType),
		Content:  content,
		Channels: channels,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		logger.Error("Failed to persist approval notification", err, map[string]interface{}{
			"member_id": member.ID,
			"type":      notifType,
		})
		return
	}

	if s.pusher != nil {
		s.pusher.PushToMember(member.ID, notification)
	}

	logger.Info("Approval notification dispatched", map[string]interface{}{
		"member_id": member.ID,
		"type":      notifType,
		"channels":  fmt.Sprintf("%v", channels),
	})
}

func (s *notificationService) GetMyNotifications(memberID uint, limit int) ([]model.Notification, error) {
	return s.notificationRepo.FindByMemberID(memberID, limit)
}

func (s *notificationService) GetUnreadCount(memberID uint) (int64, error) {
	return s.notificationRepo.CountUnreadByMemberID(memberID)
}

func (s *notificationService) MarkAsRead(notificationID, memberID uint) error {
	err := s.notificationRepo.MarkAsRead(notificationID, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}
