package model

import (
	"time"
)

// NotificationSetting 회원별 알림 설정 (Member와 1:1)
type NotificationSetting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID uint `gorm:"uniqueIndex;not null" json:"member_id"` // 회원 ID (1:1 관계)

	// SMS 알림
	SMSOrderCreated   bool `gorm:"default:true;not null" json:"sms_order_created"`   // 주문 접수
	SMSOrderCanceled  bool `gorm:"default:true;not null" json:"sms_order_canceled"`  // 주문 취소
	SMSApprovalResult bool `gorm:"default:true;not null" json:"sms_approval_result"` // 승인 결과

	// 이메일 알림
	EmailOrderCreated   bool `gorm:"default:false;not null" json:"email_order_created"`
	EmailApprovalResult bool `gorm:"default:true;not null" json:"email_approval_result"`

	// 푸시 알림
	PushOrderCreated   bool `gorm:"default:true;not null" json:"push_order_created"`
	PushApprovalResult bool `gorm:"default:true;not null" json:"push_approval_result"`

	// 알림 수신 시간
	NotificationStartTime string `gorm:"size:5;default:'09:00'" json:"notification_start_time"` // HH:MM
	NotificationEndTime   string `gorm:"size:5;default:'21:00'" json:"notification_end_time"`   // HH:MM
	NightTimeNotification bool   `gorm:"default:false;not null" json:"night_time_notification"` // 야간 수신 허용
}

func (NotificationSetting) TableName() string {
	return "notification_settings"
}

// ApprovalChannels 승인 결과 알림을 보낼 채널 목록
func (s *NotificationSetting) ApprovalChannels() []string {
	var channels []string
	if s.SMSApprovalResult {
		channels = append(channels, "sms")
	}
	if s.EmailApprovalResult {
		channels = append(channels, "email")
	}
	if s.PushApprovalResult {
		channels = append(channels, "push")
	}
	return channels
}

// IsNotificationTimeAllowed 현재 시각(HH:MM)이 수신 허용 시간인지 확인
func (s *NotificationSetting) IsNotificationTimeAllowed(currentTime string) bool {
	if s.NightTimeNotification {
		return true
	}
	return currentTime >= s.NotificationStartTime && currentTime <= s.NotificationEndTime
}
