package model

import (
	"time"
)

// ActivityRegion 파트너 활동(배송) 지역
// (member_id, sido, sigungu) 기준으로 업서트되며 동기화 시 비활성화로만 갱신됨 (물리 삭제 없음)
type ActivityRegion struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID uint   `gorm:"not null;uniqueIndex:uk_member_region,priority:1" json:"member_id"` // 회원 ID
	Sido     string `gorm:"size:50;not null;uniqueIndex:uk_member_region,priority:2" json:"sido"`    // 시/도 (서울, 경기, 강원 등)
	Sigungu  string `gorm:"size:50;not null;uniqueIndex:uk_member_region,priority:3" json:"sigungu"` // 시/군/구 (강남구, 춘천시 등)
	// 생성 시에도 항상 명시적으로 설정됨 (DB 기본값에 의존하면 false 생성이 무시됨)
	IsActive bool `gorm:"not null;index" json:"is_active"` // 현재 취급 여부
}

func (ActivityRegion) TableName() string {
	return "activity_regions"
}

// RegionFullName 표시용 전체 지역명
func (r *ActivityRegion) RegionFullName() string {
	return r.Sido + " " + r.Sigungu
}
