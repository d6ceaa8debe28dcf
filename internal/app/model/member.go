package model

import (
	"errors"
	"time"
)

type MemberStatus string // 회원 상태 타입

const (
	MemberStatusPending   MemberStatus = "PENDING"   // 승인 대기
	MemberStatusActive    MemberStatus = "ACTIVE"    // 활성
	MemberStatusSuspended MemberStatus = "SUSPENDED" // 정지
	MemberStatusDeleted   MemberStatus = "DELETED"   // 삭제 (최종 상태)
)

var (
	ErrInvalidStatusTransition = errors.New("invalid member status transition")
	ErrMemberAlreadyDeleted    = errors.New("member is already deleted")
)

// Member 파트너(화원) 회원 모델
type Member struct {
	ID           uint         `gorm:"primarykey" json:"id"`                                       // 회원 ID
	LoginID      string       `gorm:"uniqueIndex:idx_members_login_id;size:50;not null" json:"login_id"` // 로그인 아이디
	PasswordHash string       `gorm:"not null" json:"-"`                                          // 비밀번호 해시
	Name         string       `gorm:"size:100;not null" json:"name"`                              // 화원명
	Nickname     string       `gorm:"size:50;not null" json:"nickname"`                           // 닉네임
	Mobile       string       `gorm:"size:20;not null" json:"mobile"`                             // 휴대전화번호 (숫자만)
	Status       MemberStatus `gorm:"type:varchar(10);default:'PENDING';index" json:"status"`    // 회원 상태
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`                                    // 마지막 로그인 일시
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// 소프트 삭제: DELETED 상태의 회원도 조회 대상이므로 gorm.DeletedAt 대신 명시적 필드 사용
	IsDeleted bool       `gorm:"default:false;not null" json:"-"`
	DeletedAt *time.Time `json:"-"`
	DeletedBy string     `gorm:"size:50" json:"-"`

	BusinessProfile     *BusinessProfile     `gorm:"foreignKey:MemberID" json:"business_profile,omitempty"`     // 사업자 프로필 (1:1)
	NotificationSetting *NotificationSetting `gorm:"foreignKey:MemberID" json:"notification_setting,omitempty"` // 알림 설정 (1:1)
	ActivityRegions     []ActivityRegion     `gorm:"foreignKey:MemberID" json:"activity_regions,omitempty"`     // 활동 지역
	ProductPrices       []ProductPrice       `gorm:"foreignKey:MemberID" json:"product_prices,omitempty"`       // 지역별 상품 가격
	HandlingProducts    []HandlingProduct    `gorm:"foreignKey:MemberID" json:"handling_products,omitempty"`    // 취급 상품
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

func (m *Member) IsPending() bool {
	return m.Status == MemberStatusPending
}

func (m *Member) IsSuspended() bool {
	return m.Status == MemberStatusSuspended
}

// CanLogin 로그인 가능 여부: 활성 상태이면서 삭제되지 않은 회원만
func (m *Member) CanLogin() bool {
	return m.IsActive() && !m.IsDeleted
}

// CanBeModified 정보 수정 가능 여부: 활성 또는 승인 대기 상태이면서 삭제되지 않은 회원
func (m *Member) CanBeModified() bool {
	return (m.IsActive() || m.IsPending()) && !m.IsDeleted
}

func (m *Member) UpdateLastLogin() {
	now := time.Now()
	m.LastLoginAt = &now
}

// ChangeStatus 상태 전이 테이블 검증을 거쳐 상태 변경
// 동일 상태로의 변경은 허용하지 않음
func (m *Member) ChangeStatus(newStatus MemberStatus) error {
	if !isValidStatusTransition(m.Status, newStatus) {
		return ErrInvalidStatusTransition
	}
	m.Status = newStatus
	return nil
}

// Approve 회원 승인: 승인 대기 상태에서만 가능
func (m *Member) Approve() error {
	if m.Status != MemberStatusPending {
		return ErrInvalidStatusTransition
	}
	m.Status = MemberStatusActive
	return nil
}

// Suspend 회원 정지: 활성 상태에서만 가능
func (m *Member) Suspend() error {
	if m.Status != MemberStatusActive {
		return ErrInvalidStatusTransition
	}
	m.Status = MemberStatusSuspended
	return nil
}

// Unsuspend 정지 해제: 정지 상태에서만 가능
func (m *Member) Unsuspend() error {
	if m.Status != MemberStatusSuspended {
		return ErrInvalidStatusTransition
	}
	m.Status = MemberStatusActive
	return nil
}

// SoftDelete 소프트 삭제: 삭제 시각/삭제자 기록, 이미 삭제된 회원은 불가
func (m *Member) SoftDelete(deletedBy string) error {
	if m.Status == MemberStatusDeleted || m.IsDeleted {
		return ErrMemberAlreadyDeleted
	}
	now := time.Now()
	m.Status = MemberStatusDeleted
	m.IsDeleted = true
	m.DeletedAt = &now
	m.DeletedBy = deletedBy
	return nil
}

// isValidStatusTransition 상태 전이 테이블
// PENDING   -> ACTIVE, DELETED
// ACTIVE    -> SUSPENDED, DELETED
// SUSPENDED -> ACTIVE, DELETED
// DELETED   -> (없음)
func isValidStatusTransition(current, next MemberStatus) bool {
	if current == next {
		return false
	}

	switch current {
	case MemberStatusPending:
		return next == MemberStatusActive || next == MemberStatusDeleted
	case MemberStatusActive:
		return next == MemberStatusSuspended || next == MemberStatusDeleted
	case MemberStatusSuspended:
		return next == MemberStatusActive || next == MemberStatusDeleted
	case MemberStatusDeleted:
		return false
	default:
		return false
	}
}
