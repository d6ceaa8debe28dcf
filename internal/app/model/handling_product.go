package model

import (
	"time"
)

type ProductType string // 취급 상품 종류

const (
	ProductTypeFuneral          ProductType = "FUNERAL"           // 근조
	ProductTypeFreshFlower      ProductType = "FRESH_FLOWER"      // 생화
	ProductTypeOrientalOrchid   ProductType = "ORIENTAL_ORCHID"   // 동양란
	ProductTypeWesternOrchid    ProductType = "WESTERN_ORCHID"    // 서양란
	ProductTypeArtificialFlower ProductType = "ARTIFICIAL_FLOWER" // 조화
	ProductTypeBonsai           ProductType = "BONSAI"            // 분재
)

// HandlingProduct 파트너 취급 상품 종류 (회원당 종류별 한 행)
type HandlingProduct struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID    uint        `gorm:"not null;uniqueIndex:uk_member_product_type,priority:1" json:"member_id"`
	ProductType ProductType `gorm:"type:varchar(20);not null;uniqueIndex:uk_member_product_type,priority:2" json:"product_type"`
	IsActive    bool        `gorm:"default:true;not null" json:"is_active"`
}

func (HandlingProduct) TableName() string {
	return "handling_products"
}
