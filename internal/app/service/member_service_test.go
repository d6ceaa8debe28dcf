package service

import (
	"testing"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/internal/db"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberServiceTest(t *testing.T) (*gorm.DB, MemberService) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	svc := NewMemberService(
		repository.NewMemberRepository(database),
		repository.NewBusinessProfileRepository(database),
		database,
	)
	return database, svc
}

func validSignupRequest(loginID, businessNumber string) *SignupRequest {
	return &SignupRequest{
		LoginID:        loginID,
		Password:       "password123!",
		Name:           "꽃길화원",
		Nickname:       "꽃길",
		Mobile:         "01012345678",
		BusinessNumber: businessNumber,
		CorpName:       "주식회사 꽃길",
		CEOName:        "김대표",
		OfficeSido:     "서울",
		OfficeSigungu:  "강남구",
		BankName:       "국민은행",
		AccountNumber:  "123456-78-901234",
		AccountOwner:   "김대표",
		ProductTypes: []model.ProductType{
			model.ProductTypeFuneral,
			model.ProductTypeFreshFlower,
		},
		Regions: []RegionPriceRequest{
			{
				Sido: "서울", Sigungu: "강남구", Handled: true,
				Prices: []CategoryPriceRequest{
					{CategoryName: "축하", Price: 50, IsAvailable: true},
				},
			},
		},
	}
}

func TestMemberService_Signup(t *testing.T) {
	database, svc := setupMemberServiceTest(t)

	member, err := svc.Signup(validSignupRequest("flower01", "1248100998"))
	require.NoError(t, err)
	assert.NotZero(t, member.ID)
	assert.Equal(t, model.MemberStatusPending, member.Status)
	require.NotNil(t, member.BusinessProfile)
	assert.Equal(t, model.ApprovalStatusPending, member.BusinessProfile.ApprovalStatus)

	// 비밀번호는 해시로 저장
	assert.NotEqual(t, "password123!", member.PasswordHash)
	assert.True(t, util.CheckPassword("password123!", member.PasswordHash))

	// 부속 엔티티가 모두 생성되었는지
	var accountCount, settingCount, handlingCount, regionCount, priceCount int64
	require.NoError(t, database.Model(&model.BankAccount{}).
		Where("business_profile_id = ?", member.BusinessProfile.ID).Count(&accountCount).Error)
	require.NoError(t, database.Model(&model.NotificationSetting{}).
		Where("member_id = ?", member.ID).Count(&settingCount).Error)
	require.NoError(t, database.Model(&model.HandlingProduct{}).
		Where("member_id = ?", member.ID).Count(&handlingCount).Error)
	require.NoError(t, database.Model(&model.ActivityRegion{}).
		Where("member_id = ?", member.ID).Count(&regionCount).Error)
	require.NoError(t, database.Model(&model.ProductPrice{}).
		Where("member_id = ?", member.ID).Count(&priceCount).Error)
	assert.Equal(t, int64(1), accountCount)
	assert.Equal(t, int64(1), settingCount)
	assert.Equal(t, int64(2), handlingCount)
	assert.Equal(t, int64(1), regionCount)
	assert.Equal(t, int64(1), priceCount)
}

func TestMemberService_Signup_UnhandledRegionStoredInactive(t *testing.T) {
	database, svc := setupMemberServiceTest(t)

	req := validSignupRequest("flower02", "2208162517")
	req.Regions = []RegionPriceRequest{
		{
			Sido: "경기", Sigungu: "성남시", Handled: false,
			Prices: []CategoryPriceRequest{
				{CategoryName: "축하", Price: 45, IsAvailable: true},
			},
		},
	}

	member, err := svc.Signup(req)
	require.NoError(t, err)

	// 미취급으로 신청한 지역은 생성 시점부터 비활성/판매 불가로 저장되어야 함
	var region model.ActivityRegion
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ?", member.ID, "경기", "성남시",
	).First(&region).Error)
	assert.False(t, region.IsActive)

	var price model.ProductPrice
	require.NoError(t, database.Where(
		"member_id = ? AND sido = ? AND sigungu = ? AND category_name = ?",
		member.ID, "경기", "성남시", "축하",
	).First(&price).Error)
	assert.False(t, price.IsAvailable)
	assert.Equal(t, int64(45), price.Price)
}

func TestMemberService_Signup_DuplicateLoginID(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	_, err := svc.Signup(validSignupRequest("dup_login", "1248100998"))
	require.NoError(t, err)

	_, err = svc.Signup(validSignupRequest("dup_login", "2208162517"))
	assert.ErrorIs(t, err, ErrLoginIDExists)
}

func TestMemberService_Signup_DuplicateBusinessNumber(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	_, err := svc.Signup(validSignupRequest("shop_one", "1248100998"))
	require.NoError(t, err)

	_, err = svc.Signup(validSignupRequest("shop_two", "1248100998"))
	assert.ErrorIs(t, err, ErrBusinessNumberExists)
}

func TestMemberService_Signup_InvalidBusinessNumber(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	cases := []string{"1248100999", "124810099", "12481009ab", ""}
	for _, bn := range cases {
		_, err := svc.Signup(validSignupRequest("invalid_bn", bn))
		assert.ErrorIs(t, err, ErrInvalidBusinessNumber, "business_number=%q", bn)
	}
}

func TestMemberService_CheckAvailability(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	_, err := svc.Signup(validSignupRequest("taken01", "1248100998"))
	require.NoError(t, err)

	available, err := svc.CheckLoginIDAvailable("taken01")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.CheckLoginIDAvailable("brand_new")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = svc.CheckBusinessNumberAvailable("1248100998")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.CheckBusinessNumberAvailable("2208162517")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestMemberService_GetPendingMembers(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	_, err := svc.Signup(validSignupRequest("pending_a", "1248100998"))
	require.NoError(t, err)
	_, err = svc.Signup(validSignupRequest("pending_b", "2208162517"))
	require.NoError(t, err)

	members, err := svc.GetPendingMembers()
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "pending_a", members[0].LoginID)
	require.NotNil(t, members[0].BusinessProfile)
	assert.Equal(t, "1248100998", members[0].BusinessProfile.BusinessNumber)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	_, svc := setupMemberServiceTest(t)

	_, err := svc.GetMember(9999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
