package model

import (
	"time"
)

// BankAccount 정산 계좌 (사업자 프로필에 귀속)
type BankAccount struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BusinessProfileID uint `gorm:"not null;index" json:"business_profile_id"` // 사업자 프로필 ID

	BankName      string `gorm:"size:50;not null" json:"bank_name"`      // 은행명
	AccountNumber string `gorm:"size:50;not null" json:"account_number"` // 계좌번호
	AccountOwner  string `gorm:"size:50;not null" json:"account_owner"`  // 예금주
	IsPrimary     bool   `gorm:"default:false;not null" json:"is_primary"` // 대표 계좌 여부
	IsActive      bool   `gorm:"default:true;not null" json:"is_active"`
}

func (BankAccount) TableName() string {
	return "bank_accounts"
}
