package service

import (
	"context"
	"testing"
	"time"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/internal/db"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

func setupAuthTest(t *testing.T) (*gorm.DB, AuthService) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	svc := NewAuthService(
		repository.NewMemberRepository(database),
		repository.NewAdminRepository(database),
		testJWTSecret,
		15*time.Minute,
		7*24*time.Hour,
	)
	return database, svc
}

func createMemberWithPassword(t *testing.T, database *gorm.DB, loginID, password string, status model.MemberStatus) *model.Member {
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	member := &model.Member{
		LoginID:      loginID,
		PasswordHash: hash,
		Name:         "테스트화원",
		Nickname:     "테스트",
		Mobile:       "01012345678",
		Status:       status,
	}
	require.NoError(t, database.Create(member).Error)
	return member
}

func TestAuthService_Login(t *testing.T) {
	database, svc := setupAuthTest(t)
	createMemberWithPassword(t, database, "active01", "password123!", model.MemberStatusActive)

	member, tokens, err := svc.Login("active01", "password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotNil(t, member.LastLoginAt)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, member.ID, claims.MemberID)
	assert.Equal(t, RolePartner, claims.Role)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	database, svc := setupAuthTest(t)
	createMemberWithPassword(t, database, "active02", "password123!", model.MemberStatusActive)

	_, _, err := svc.Login("active02", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("no_such_member", "password123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StatusGate(t *testing.T) {
	database, svc := setupAuthTest(t)

	tests := []struct {
		name    string
		loginID string
		status  model.MemberStatus
		wantErr error
	}{
		{"승인 대기 회원", "pending01", model.MemberStatusPending, ErrApprovalPending},
		{"정지 회원", "suspended01", model.MemberStatusSuspended, ErrMemberSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createMemberWithPassword(t, database, tt.loginID, "password123!", tt.status)
			_, _, err := svc.Login(tt.loginID, "password123!")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login_DeletedMember(t *testing.T) {
	database, svc := setupAuthTest(t)
	member := createMemberWithPassword(t, database, "deleted01", "password123!", model.MemberStatusActive)
	require.NoError(t, member.SoftDelete("admin01"))
	require.NoError(t, database.Save(member).Error)

	_, _, err := svc.Login("deleted01", "password123!")
	assert.ErrorIs(t, err, ErrMemberNotActive)
}

func TestAuthService_AdminLogin(t *testing.T) {
	database, svc := setupAuthTest(t)

	hash, err := util.HashPassword("admin-pass")
	require.NoError(t, err)
	admin := &model.Admin{
		LoginID:      "admin01",
		PasswordHash: hash,
		Name:         "운영자",
		Status:       model.AdminStatusActive,
	}
	require.NoError(t, database.Create(admin).Error)

	loggedIn, tokens, err := svc.AdminLogin("admin01", "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, loggedIn.ID)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestAuthService_AdminLogin_Inactive(t *testing.T) {
	database, svc := setupAuthTest(t)

	hash, err := util.HashPassword("admin-pass")
	require.NoError(t, err)
	admin := &model.Admin{
		LoginID:      "admin02",
		PasswordHash: hash,
		Name:         "운영자",
		Status:       model.AdminStatusInactive,
	}
	require.NoError(t, database.Create(admin).Error)

	_, _, err = svc.AdminLogin("admin02", "admin-pass")
	assert.ErrorIs(t, err, ErrAdminNotActive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	database, svc := setupAuthTest(t)
	createMemberWithPassword(t, database, "refresh01", "password123!", model.MemberStatusActive)

	_, tokens, err := svc.Login("refresh01", "password123!")
	require.NoError(t, err)

	newTokens, err := svc.RefreshToken(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newTokens.AccessToken)

	// 액세스 토큰으로는 재발급 불가
	_, err = svc.RefreshToken(tokens.AccessToken)
	assert.ErrorIs(t, err, util.ErrInvalidToken)
}

func TestAuthService_Logout_WithoutRedis(t *testing.T) {
	database, svc := setupAuthTest(t)
	createMemberWithPassword(t, database, "logout01", "password123!", model.MemberStatusActive)

	_, tokens, err := svc.Login("logout01", "password123!")
	require.NoError(t, err)

	// 레디스 미초기화 환경에서는 블랙리스트 등록을 건너뛴다
	assert.NoError(t, svc.Logout(context.Background(), tokens.AccessToken))
}

func TestAuthService_RefreshToken_SuspendedAfterIssue(t *testing.T) {
	database, svc := setupAuthTest(t)
	member := createMemberWithPassword(t, database, "refresh02", "password123!", model.MemberStatusActive)

	_, tokens, err := svc.Login("refresh02", "password123!")
	require.NoError(t, err)

	// 발급 후 정지된 회원은 재발급 거부
	require.NoError(t, member.Suspend())
	require.NoError(t, database.Save(member).Error)

	_, err = svc.RefreshToken(tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrMemberNotActive)
}
