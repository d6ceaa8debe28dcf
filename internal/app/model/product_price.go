package model

import (
	"time"
)

// ProductPrice 파트너의 지역/카테고리별 상품 가격
// 자연키 (member_id, sido, sigungu, category_name) 기준으로 회원당 한 행만 존재
type ProductPrice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID     uint   `gorm:"not null;uniqueIndex:uk_member_region_category,priority:1" json:"member_id"`        // 회원 ID
	Sido         string `gorm:"size:50;not null;uniqueIndex:uk_member_region_category,priority:2" json:"sido"`     // 시/도
	Sigungu      string `gorm:"size:50;not null;uniqueIndex:uk_member_region_category,priority:3" json:"sigungu"`  // 시/군/구
	CategoryName string `gorm:"size:50;not null;uniqueIndex:uk_member_region_category,priority:4" json:"category_name"` // 상품 카테고리 (축하, 근조, 동양, 서양, 꽃, 관엽, 쌀, 기타, 과일)

	Price int64 `gorm:"not null" json:"price"` // 가격 (천원 단위, 47 = 47,000원)
	// 생성 시에도 항상 명시적으로 설정됨 (DB 기본값에 의존하면 false 생성이 무시됨)
	IsAvailable bool `gorm:"not null" json:"is_available"` // 취급 가능 여부 (미취급 = false)
}

func (ProductPrice) TableName() string {
	return "product_prices"
}

// PriceInWon 천원 단위 가격을 원 단위로 변환
func (p *ProductPrice) PriceInWon() int64 {
	return p.Price * 1000
}

// RegionFullName 표시용 전체 지역명
func (p *ProductPrice) RegionFullName() string {
	return p.Sido + " " + p.Sigungu
}
