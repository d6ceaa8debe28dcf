package model

import (
	"time"
)

// Region 배송 가능 지역 마스터 데이터 (cmd/seed로 적재)
type Region struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sido     string `gorm:"size:50;not null;index:idx_regions_sido_sigungu,priority:1" json:"sido"`    // 시/도
	Sigungu  string `gorm:"size:50;not null;index:idx_regions_sido_sigungu,priority:2" json:"sigungu"` // 시/군/구
	Zipcode  string `gorm:"size:10;not null" json:"zipcode"`                                           // 우편번호 앞 3자리
	IsActive bool   `gorm:"default:true;not null" json:"is_active"`
}

func (Region) TableName() string {
	return "regions"
}

// FullName 표시용 전체 지역명
func (r *Region) FullName() string {
	return r.Sido + " " + r.Sigungu
}

// IsDeliverable 배송 가능 지역 여부
func (r *Region) IsDeliverable() bool {
	return r.IsActive
}
