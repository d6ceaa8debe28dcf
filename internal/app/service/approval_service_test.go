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

func setupApprovalTest(t *testing.T) (*gorm.DB, ApprovalService) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	svc := NewApprovalService(
		repository.NewMemberRepository(database),
		repository.NewBusinessProfileRepository(database),
		NewNotificationService(repository.NewNotificationRepository(database), nil, database),
		database,
	)
	return database, svc
}

func createPendingMember(t *testing.T, database *gorm.DB, loginID string) *model.Member {
	member := &model.Member{
		LoginID:      loginID,
		PasswordHash: "hashed",
		Name:         "테스트화원",
		Nickname:     "테스트",
		Mobile:       "01012345678",
		Status:       model.MemberStatusPending,
	}
	require.NoError(t, database.Create(member).Error)

	profile := &model.BusinessProfile{
		MemberID:       member.ID,
		BusinessNumber: "12481009" + loginID[len(loginID)-2:],
		CorpName:       "주식회사 꽃길",
		CEOName:        "김대표",
		ApprovalStatus: model.ApprovalStatusPending,
	}
	require.NoError(t, database.Create(profile).Error)
	return member
}

func TestApprovalService_ApproveMember(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "approve01")

	approved, err := svc.ApproveMember(member.ID, "admin01")
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, approved.Status)
	require.NotNil(t, approved.BusinessProfile)
	assert.Equal(t, model.ApprovalStatusApproved, approved.BusinessProfile.ApprovalStatus)
	assert.Equal(t, "admin01", approved.BusinessProfile.ApprovedBy)
	assert.NotNil(t, approved.BusinessProfile.ApprovedAt)

	// 승인 결과가 DB에 반영되어 있는지
	var stored model.Member
	require.NoError(t, database.First(&stored, member.ID).Error)
	assert.Equal(t, model.MemberStatusActive, stored.Status)

	// 승인 알림이 저장되었는지
	var notifCount int64
	require.NoError(t, database.Model(&model.Notification{}).
		Where("member_id = ? AND type = ?", member.ID, model.NotificationTypeMemberApproved).
		Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestApprovalService_ApproveMember_NotFound(t *testing.T) {
	_, svc := setupApprovalTest(t)

	_, err := svc.ApproveMember(9999, "admin01")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestApprovalService_ApproveMember_WithoutProfile(t *testing.T) {
	database, svc := setupApprovalTest(t)

	member := &model.Member{
		LoginID:      "no_profile",
		PasswordHash: "hashed",
		Name:         "화원",
		Nickname:     "화원",
		Mobile:       "01011112222",
		Status:       model.MemberStatusPending,
	}
	require.NoError(t, database.Create(member).Error)

	_, err := svc.ApproveMember(member.ID, "admin01")
	assert.ErrorIs(t, err, ErrBusinessProfileNotFound)
}

func TestApprovalService_ApproveMember_AlreadyActiveReapproves(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "approve02")

	_, err := svc.ApproveMember(member.ID, "admin01")
	require.NoError(t, err)

	// 이미 활성인 회원 재승인: 상태 변경 없이 프로필만 갱신
	approved, err := svc.ApproveMember(member.ID, "admin02")
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, approved.Status)
	assert.Equal(t, "admin02", approved.BusinessProfile.ApprovedBy)
}

func TestApprovalService_ApproveMember_DeletedFails(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "approve03")

	require.NoError(t, member.SoftDelete("admin01"))
	require.NoError(t, database.Save(member).Error)

	_, err := svc.ApproveMember(member.ID, "admin01")
	assert.ErrorIs(t, err, model.ErrInvalidStatusTransition)
}

func TestApprovalService_RejectMember_DoesNotTouchMemberStatus(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "reject01")

	rejected, err := svc.RejectMember(member.ID, "서류 미비", "admin01")
	require.NoError(t, err)

	// 거부는 프로필에만 기록되고 회원 상태는 PENDING 그대로
	assert.Equal(t, model.MemberStatusPending, rejected.Status)
	assert.Equal(t, model.ApprovalStatusRejected, rejected.BusinessProfile.ApprovalStatus)
	assert.Equal(t, "서류 미비", rejected.BusinessProfile.RejectionReason)
	assert.Nil(t, rejected.BusinessProfile.ApprovedAt)

	var stored model.Member
	require.NoError(t, database.First(&stored, member.ID).Error)
	assert.Equal(t, model.MemberStatusPending, stored.Status)
}

func TestApprovalService_RejectMember_BlankReason(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "reject02")

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.RejectMember(member.ID, reason, "admin01")
		assert.ErrorIs(t, err, ErrRejectionReasonRequired)
	}

	// 검증 실패 시 프로필이 변경되지 않음
	var profile model.BusinessProfile
	require.NoError(t, database.Where("member_id = ?", member.ID).First(&profile).Error)
	assert.Equal(t, model.ApprovalStatusPending, profile.ApprovalStatus)
	assert.Empty(t, profile.RejectionReason)
}

func TestApprovalService_RejectThenReapprove(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "reject03")

	_, err := svc.RejectMember(member.ID, "증빙 서류 불일치", "admin01")
	require.NoError(t, err)

	// 거부된 프로필도 재승인 가능, 거절 사유는 초기화
	approved, err := svc.ApproveMember(member.ID, "admin01")
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalStatusApproved, approved.BusinessProfile.ApprovalStatus)
	assert.Empty(t, approved.BusinessProfile.RejectionReason)
	assert.Equal(t, model.MemberStatusActive, approved.Status)
}

func TestApprovalService_SuspendAndUnsuspend(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "suspend01")

	// PENDING 상태에서는 정지 불가
	_, err := svc.SuspendMember(member.ID, "admin01")
	assert.ErrorIs(t, err, model.ErrInvalidStatusTransition)

	_, err = svc.ApproveMember(member.ID, "admin01")
	require.NoError(t, err)

	suspended, err := svc.SuspendMember(member.ID, "admin01")
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusSuspended, suspended.Status)

	unsuspended, err := svc.UnsuspendMember(member.ID, "admin01")
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, unsuspended.Status)
}

func TestApprovalService_DeleteMember(t *testing.T) {
	database, svc := setupApprovalTest(t)
	member := createPendingMember(t, database, "delete01")

	require.NoError(t, svc.DeleteMember(member.ID, "admin01"))

	var stored model.Member
	require.NoError(t, database.First(&stored, member.ID).Error)
	assert.Equal(t, model.MemberStatusDeleted, stored.Status)
	assert.True(t, stored.IsDeleted)
	assert.NotNil(t, stored.DeletedAt)
	assert.Equal(t, "admin01", stored.DeletedBy)

	// 이미 삭제된 회원은 다시 삭제 불가
	err := svc.DeleteMember(member.ID, "admin01")
	assert.ErrorIs(t, err, model.ErrMemberAlreadyDeleted)
}
