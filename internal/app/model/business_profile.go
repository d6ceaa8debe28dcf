package model

import (
	"time"
)

type ApprovalStatus string // 사업자 프로필 승인 상태

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING"  // 승인 대기
	ApprovalStatusApproved ApprovalStatus = "APPROVED" // 승인 완료
	ApprovalStatusRejected ApprovalStatus = "REJECTED" // 승인 거부
)

// BusinessProfile 파트너 사업자 프로필 (Member와 1:1)
// 승인/거부 상태는 재진입 가능: 거부된 프로필도 다시 승인할 수 있음
type BusinessProfile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID uint `gorm:"uniqueIndex;not null" json:"member_id"` // 회원 ID (1:1 관계)

	// 사업자 정보
	BusinessNumber string `gorm:"uniqueIndex;size:12;not null" json:"business_number"` // 사업자등록번호 (10자리, 하이픈 제외)
	CorpName       string `gorm:"size:100;not null" json:"corp_name"`                  // 법인명
	CEOName        string `gorm:"size:50;not null" json:"ceo_name"`                    // 대표자명
	BusinessType   string `gorm:"size:100" json:"business_type,omitempty"`             // 업태
	BusinessItem   string `gorm:"size:100" json:"business_item,omitempty"`             // 종목
	Fax            string `gorm:"size:20" json:"fax,omitempty"`                        // 팩스번호

	// 사무실 주소
	OfficeSido    string `gorm:"size:50" json:"office_sido,omitempty"`     // 시/도
	OfficeSigungu string `gorm:"size:50" json:"office_sigungu,omitempty"`  // 시/군/구
	OfficeDetail  string `gorm:"size:200" json:"office_detail,omitempty"`  // 상세 주소
	OfficeZipcode string `gorm:"size:10" json:"office_zipcode,omitempty"`  // 우편번호

	// 증빙 서류 (S3 URL)
	BusinessCertURL string `gorm:"type:text" json:"business_cert_url,omitempty"` // 사업자등록증
	BankCertURL     string `gorm:"type:text" json:"bank_cert_url,omitempty"`     // 통장 사본

	// 배송 설정
	CanNightDelivery  bool   `gorm:"default:false;not null" json:"can_night_delivery"` // 야간 배송 가능 여부
	DeliveryStartTime string `gorm:"size:5" json:"delivery_start_time,omitempty"`      // 배송 시작 시간 (HH:MM)
	DeliveryEndTime   string `gorm:"size:5" json:"delivery_end_time,omitempty"`        // 배송 종료 시간 (HH:MM)

	// 승인 정보
	ApprovalStatus  ApprovalStatus `gorm:"type:varchar(10);default:'PENDING';not null;index" json:"approval_status"` // 승인 상태
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`                                                    // 승인 일시
	ApprovedBy      string         `gorm:"size:50" json:"approved_by,omitempty"`                                     // 승인자
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`                              // 거절 사유

	BankAccounts []BankAccount `gorm:"foreignKey:BusinessProfileID" json:"bank_accounts,omitempty"` // 정산 계좌
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// Approve 승인 처리: 승인자/승인 일시 기록, 거절 사유 초기화
func (p *BusinessProfile) Approve(approver string) {
	now := time.Now()
	p.ApprovalStatus = ApprovalStatusApproved
	p.ApprovedAt = &now
	p.ApprovedBy = approver
	p.RejectionReason = ""
}

// Reject 거부 처리: 거절 사유 기록, 승인 정보 초기화
func (p *BusinessProfile) Reject(reason string) {
	p.ApprovalStatus = ApprovalStatusRejected
	p.RejectionReason = reason
	p.ApprovedAt = nil
	p.ApprovedBy = ""
}

func (p *BusinessProfile) IsApproved() bool {
	return p.ApprovalStatus == ApprovalStatusApproved
}
