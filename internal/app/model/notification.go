package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationTypeMemberApproved  NotificationType = "member_approved"  // 입점 승인
	NotificationTypeMemberRejected  NotificationType = "member_rejected"  // 입점 거부
	NotificationTypeMemberSuspended NotificationType = "member_suspended" // 계정 정지
)

// Notification 파트너 알림 모델
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 알림 받을 회원
	MemberID uint    `gorm:"not null;index" json:"member_id"`
	Member   *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`

	// 알림 타입
	Type NotificationType `gorm:"type:varchar(50);not null;index" json:"type"`

	// 알림 내용
	Title   string `gorm:"type:text;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`

	// 발송 채널 (알림 설정에서 계산된 값: sms, email, push)
	Channels pq.StringArray `gorm:"type:text[]" json:"channels"`

	// 상태
	IsRead bool `gorm:"default:false;index" json:"is_read"`
}

func (Notification) TableName() string {
	return "notifications"
}
