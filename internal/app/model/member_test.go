package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []MemberStatus{
	MemberStatusPending,
	MemberStatusActive,
	MemberStatusSuspended,
	MemberStatusDeleted,
}

// 허용되는 상태 전이 테이블
var allowedTransitions = map[MemberStatus][]MemberStatus{
	MemberStatusPending:   {MemberStatusActive, MemberStatusDeleted},
	MemberStatusActive:    {MemberStatusSuspended, MemberStatusDeleted},
	MemberStatusSuspended: {MemberStatusActive, MemberStatusDeleted},
	MemberStatusDeleted:   {},
}

func isAllowed(from, to MemberStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func TestMember_ChangeStatus_TransitionTable(t *testing.T) {
	// 전이 테이블 전수 검사: 허용된 엣지는 성공, 나머지는 전부 실패
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			from, to := from, to
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				member := &Member{Status: from}
				err := member.ChangeStatus(to)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, member.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidStatusTransition)
					assert.Equal(t, from, member.Status)
				}
			})
		}
	}
}

func TestMember_ChangeStatus_SelfTransitionRejected(t *testing.T) {
	for _, status := range allStatuses {
		t.Run(string(status), func(t *testing.T) {
			member := &Member{Status: status}
			err := member.ChangeStatus(status)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		})
	}
}

func TestMember_Approve(t *testing.T) {
	tests := []struct {
		name    string
		status  MemberStatus
		wantErr bool
	}{
		{name: "Pending member approved", status: MemberStatusPending, wantErr: false},
		{name: "Active member cannot be approved", status: MemberStatusActive, wantErr: true},
		{name: "Suspended member cannot be approved", status: MemberStatusSuspended, wantErr: true},
		{name: "Deleted member cannot be approved", status: MemberStatusDeleted, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &Member{Status: tt.status}
			err := member.Approve()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
				assert.Equal(t, tt.status, member.Status)
			} else {
				require.NoError(t, err)
				assert.Equal(t, MemberStatusActive, member.Status)
			}
		})
	}
}

func TestMember_SuspendUnsuspend(t *testing.T) {
	member := &Member{Status: MemberStatusActive}

	require.NoError(t, member.Suspend())
	assert.Equal(t, MemberStatusSuspended, member.Status)

	// 이미 정지된 회원은 다시 정지 불가
	assert.ErrorIs(t, member.Suspend(), ErrInvalidStatusTransition)

	require.NoError(t, member.Unsuspend())
	assert.Equal(t, MemberStatusActive, member.Status)

	// 활성 회원은 정지 해제 불가
	assert.ErrorIs(t, member.Unsuspend(), ErrInvalidStatusTransition)
}

func TestMember_SoftDelete(t *testing.T) {
	tests := []struct {
		name   string
		status MemberStatus
	}{
		{name: "Delete pending member", status: MemberStatusPending},
		{name: "Delete active member", status: MemberStatusActive},
		{name: "Delete suspended member", status: MemberStatusSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &Member{Status: tt.status}
			err := member.SoftDelete("admin01")

			require.NoError(t, err)
			assert.Equal(t, MemberStatusDeleted, member.Status)
			assert.True(t, member.IsDeleted)
			assert.NotNil(t, member.DeletedAt)
			assert.Equal(t, "admin01", member.DeletedBy)
		})
	}

	t.Run("Already deleted member", func(t *testing.T) {
		member := &Member{Status: MemberStatusPending}
		require.NoError(t, member.SoftDelete("admin01"))

		err := member.SoftDelete("admin02")
		assert.ErrorIs(t, err, ErrMemberAlreadyDeleted)
		assert.Equal(t, "admin01", member.DeletedBy)
	})
}

func TestMember_CanLogin(t *testing.T) {
	tests := []struct {
		name      string
		status    MemberStatus
		isDeleted bool
		want      bool
	}{
		{name: "Active member", status: MemberStatusActive, want: true},
		{name: "Pending member", status: MemberStatusPending, want: false},
		{name: "Suspended member", status: MemberStatusSuspended, want: false},
		{name: "Deleted member", status: MemberStatusDeleted, isDeleted: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &Member{Status: tt.status, IsDeleted: tt.isDeleted}
			assert.Equal(t, tt.want, member.CanLogin())
		})
	}
}

func TestMember_CanBeModified(t *testing.T) {
	tests := []struct {
		name      string
		status    MemberStatus
		isDeleted bool
		want      bool
	}{
		{name: "Active member", status: MemberStatusActive, want: true},
		{name: "Pending member", status: MemberStatusPending, want: true},
		{name: "Suspended member", status: MemberStatusSuspended, want: false},
		{name: "Deleted member", status: MemberStatusDeleted, isDeleted: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := &Member{Status: tt.status, IsDeleted: tt.isDeleted}
			assert.Equal(t, tt.want, member.CanBeModified())
		})
	}
}
