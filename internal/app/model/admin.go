package model

import (
	"time"

	"gorm.io/gorm"
)

type AdminStatus string // 관리자 상태

const (
	AdminStatusActive   AdminStatus = "ACTIVE"
	AdminStatusInactive AdminStatus = "INACTIVE"
)

// Admin 관리자 계정 (승인/거부 처리의 실행 주체)
type Admin struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	LoginID      string         `gorm:"uniqueIndex;size:50;not null" json:"login_id"` // 로그인 아이디
	PasswordHash string         `gorm:"not null" json:"-"`                            // 비밀번호 해시
	Name         string         `gorm:"size:50;not null" json:"name"`                 // 관리자명
	Status       AdminStatus    `gorm:"type:varchar(10);default:'ACTIVE';not null" json:"status"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) IsActive() bool {
	return a.Status == AdminStatusActive
}

func (a *Admin) UpdateLastLogin() {
	now := time.Now()
	a.LastLoginAt = &now
}
