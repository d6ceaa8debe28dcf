package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	FindByMemberID(memberID uint, limit int) ([]model.Notification, error)
	CountUnreadByMemberID(memberID uint) (int64, error)
	MarkAsRead(notificationID, memberID uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		logger.Error("Failed to create notification in database", err, map[string]interface{}{
			"member_id": notification.MemberID,
			"type":      notification.Type,
		})
		return err
	}
	return nil
}

func (r *notificationRepository) FindByMemberID(memberID uint, limit int) ([]model.Notification, error) {
	var notifications []model.Notification
	query := r.db.Where("member_id = ?", memberID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notifications).Error; err != nil {
		logger.Error("Failed to find notifications by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) CountUnreadByMemberID(memberID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("member_id = ? AND is_read = ?", memberID, false).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to count unread notifications in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return 0, err
	}
	return count, nil
}

// MarkAsRead 본인 알림만 읽음 처리
func (r *notificationRepository) MarkAsRead(notificationID, memberID uint) error {
	result := r.db.Model(&model.Notification{}).
		Where("id = ? AND member_id = ?", notificationID, memberID).
		Update("is_read", true)
	if result.Error != nil {
		logger.Error("Failed to mark notification as read in database", result.Error, map[string]interface{}{
			"notification_id": notificationID,
			"member_id":       memberID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
