package service

import (
	"testing"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRegionPriceTest(t *testing.T) (*gorm.DB, RegionPriceService, *model.Member) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	member := &model.Member{
		LoginID:      "region_test",
		PasswordHash: "hashed",
		Name:         "테스트화원",
		Nickname:     "테스트",
		Mobile:       "01012345678",
		Status:       model.MemberStatusActive,
	}
	require.NoError(t, database.Create(member).Error)

	svc := NewRegionPriceService(
		repository.NewMemberRepository(database),
		repository.NewActivityRegionRepository(database),
		repository.NewProductPriceRepository(database),
		database,
	)
	return database, svc, member
}

func TestRegionPriceService_SaveAndGet_RoundTrip(t *testing.T) {
	_, svc, member := setupRegionPriceTest(t)

	err := svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{
			Sido:    "서울",
			Sigungu: "강남구",
			Handled: true,
			Prices: []CategoryPriceRequest{
				{CategoryName: "축하", Price: 50, IsAvailable: true},
				{CategoryName: "근조", Price: 47, IsAvailable: true},
			},
		},
	})
	require.NoError(t, err)

	result, err := svc.GetMyRegionsAndPrices(member.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "서울", result[0].Sido)
	assert.Equal(t, "강남구", result[0].Sigungu)
	require.Len(t, result[0].Prices, 2)

	byCategory := make(map[string]model.ProductPrice)
	for _, p := range result[0].Prices {
		byCategory[p.CategoryName] = p
	}
	celebration := byCategory["축하"]
	assert.Equal(t, int64(50), celebration.Price)
	assert.Equal(t, int64(50000), celebration.PriceInWon())
	assert.True(t, celebration.IsAvailable)
	assert.Equal(t, int64(47), byCategory["근조"].Price)
}

func TestRegionPriceService_Save_MemberNotFound(t *testing.T) {
	_, svc, _ := setupRegionPriceTest(t)

	err := svc.SaveRegionsAndPrices(9999, []RegionPriceRequest{
		{Sido: "서울", Sigungu: "강남구", Handled: true},
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestRegionPriceService_Save_BlankRegionRejected(t *testing.T) {
	database, svc, member := setupRegionPriceTest(t)

	err := svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{Sido: "  ", Sigungu: "강남구", Handled: true},
	})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	// 검증 실패 시 아무것도 저장되지 않음
	var count int64
	require.NoError(t, database.Model(&model.ActivityRegion{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegionPriceService_Resync_DeactivatesMissingRegions(t *testing.T) {
	database, svc, member := setupRegionPriceTest(t)

	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{
			Sido: "서울", Sigungu: "강남구", Handled: true,
			Prices: []CategoryPriceRequest{{CategoryName: "축하", Price: 50, IsAvailable: true}},
		},
	}))

	// 기존 지역이 빠진 요청으로 재동기화
	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{
			Sido: "경기", Sigungu: "성남시", Handled: true,
			Prices: []CategoryPriceRequest{{CategoryName: "축하", Price: 45, IsAvailable: true}},
		},
	}))

	result, err := svc.GetMyRegionsAndPrices(member.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "경기", result[0].Sido)

	// 빠진 지역은 삭제가 아니라 비활성화로 남는다
	var gangnam model.ActivityRegion
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ?", member.ID, "서울", "강남구",
	).First(&gangnam).Error)
	assert.False(t, gangnam.IsActive)

	var gangnamPrice model.ProductPrice
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ? AND category_name = ?",
		member.ID, "서울", "강남구", "축하",
	).First(&gangnamPrice).Error)
	assert.False(t, gangnamPrice.IsAvailable)
	assert.Equal(t, int64(50), gangnamPrice.Price)
}

func TestRegionPriceService_EmptyRequestClearsFootprint(t *testing.T) {
	_, svc, member := setupRegionPriceTest(t)

	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{
			Sido: "서울", Sigungu: "강남구", Handled: true,
			Prices: []CategoryPriceRequest{{CategoryName: "축하", Price: 50, IsAvailable: true}},
		},
	}))

	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, nil))

	result, err := svc.GetMyRegionsAndPrices(member.ID)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRegionPriceService_HandledFalseDominatesAvailability(t *testing.T) {
	database, svc, member := setupRegionPriceTest(t)

	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{
			Sido: "서울", Sigungu: "강남구", Handled: false,
			Prices: []CategoryPriceRequest{{CategoryName: "축하", Price: 50, IsAvailable: true}},
		},
	}))

	// 미취급 지역: 행은 기록되되 비활성/판매 불가
	var region model.ActivityRegion
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ?", member.ID, "서울", "강남구",
	).First(&region).Error)
	assert.False(t, region.IsActive)

	var price model.ProductPrice
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ? AND category_name = ?",
		member.ID, "서울", "강남구", "축하",
	).First(&price).Error)
	assert.False(t, price.IsAvailable)
	assert.Equal(t, int64(50), price.Price)

	// 미취급 지역은 조회 결과에서 제외
	result, err := svc.GetMyRegionsAndPrices(member.ID)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRegionPriceService_DoubleSave_NaturalKeyIdempotence(t *testing.T) {
	database, svc, member := setupRegionPriceTest(t)

	request := []RegionPriceRequest{
		{
			Sido: "서울", Sigungu: "강남구", Handled: true,
			Prices: []CategoryPriceRequest{{CategoryName: "축하", Price: 50, IsAvailable: true}},
		},
	}
	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, request))

	request[0].Prices[0].Price = 55
	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, request))

	// 같은 자연키는 행을 늘리지 않고 갱신만 한다
	var regionCount int64
	require.NoError(t, database.Model(&model.ActivityRegion{}).
		Where("member_id = ?", member.ID).Count(&regionCount).Error)
	assert.Equal(t, int64(1), regionCount)

	var priceCount int64
	require.NoError(t, database.Model(&model.ProductPrice{}).
		Where("member_id = ?", member.ID).Count(&priceCount).Error)
	assert.Equal(t, int64(1), priceCount)

	var price model.ProductPrice
	require.NoError(t, database.Where("member_id = ?", member.ID).First(&price).Error)
	assert.Equal(t, int64(55), price.Price)
}

func TestRegionPriceService_Get_RegionWithoutPricesHasEmptyList(t *testing.T) {
	_, svc, member := setupRegionPriceTest(t)

	require.NoError(t, svc.SaveRegionsAndPrices(member.ID, []RegionPriceRequest{
		{Sido: "서울", Sigungu: "강남구", Handled: true},
	}))

	result, err := svc.GetMyRegionsAndPrices(member.ID)
	require.NoError(t, err)
	require.Len(t, result, 1)

	// 가격이 없어도 null이 아닌 빈 목록
	assert.NotNil(t, result[0].Prices)
	assert.Empty(t, result[0].Prices)
}

func TestRegionPriceService_Get_MemberNotFound(t *testing.T) {
	_, svc, _ := setupRegionPriceTest(t)

	_, err := svc.GetMyRegionsAndPrices(9999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
