package repository

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id uint) (*model.Member, error)
	FindByIDWithProfile(id uint) (*model.Member, error)
	FindByLoginID(loginID string) (*model.Member, error)
	FindByStatus(status model.MemberStatus) ([]model.Member, error)
	ExistsByLoginID(loginID string) (bool, error)
	CountByStatus(status model.MemberStatus) (int64, error)
	Update(member *model.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *model.Member) error {
	logger.Debug("Creating member in database", map[string]interface{}{
		"login_id": member.LoginID,
	})

	if err := r.db.Create(member).Error; err != nil {
		logger.Error("Failed to create member in database", err, map[string]interface{}{
			"login_id": member.LoginID,
		})
		return err
	}

	logger.Debug("Member created in database", map[string]interface{}{
		"member_id": member.ID,
		"login_id":  member.LoginID,
	})
	return nil
}

func (r *memberRepository) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, id).Error; err != nil {
		logger.Error("Failed to find member by ID in database", err, map[string]interface{}{
			"member_id": id,
		})
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByIDWithProfile(id uint) (*model.Member, error) {
	var member model.Member
	err := r.db.Preload("BusinessProfile").Preload("BusinessProfile.BankAccounts").First(&member, id).Error
	if err != nil {
		logger.Error("Failed to find member with profile in database", err, map[string]interface{}{
			"member_id": id,
		})
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByLoginID(loginID string) (*model.Member, error) {
	var member model.Member
	if err := r.db.Where("login_id = ?", loginID).First(&member).Error; err != nil {
		logger.Error("Failed to find member by login ID in database", err, map[string]interface{}{
			"login_id": loginID,
		})
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByStatus(status model.MemberStatus) ([]model.Member, error) {
	var members []model.Member
	err := r.db.Where("status = ? AND is_deleted = ?", status, false).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		logger.Error("Failed to find members by status in database", err, map[string]interface{}{
			"status": status,
		})
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) ExistsByLoginID(loginID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Member{}).Where("login_id = ?", loginID).Count(&count).Error
	if err != nil {
		logger.Error("Failed to check login ID existence in database", err, map[string]interface{}{
			"login_id": loginID,
		})
		return false, err
	}
	return count > 0, nil
}

func (r *memberRepository) CountByStatus(status model.MemberStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Member{}).
		Where("status = ? AND is_deleted = ?", status, false).
		Count(&count).Error
	if err != nil {
		logger.Error("Failed to count members by status in database", err, map[string]interface{}{
			"status": status,
		})
		return 0, err
	}
	return count, nil
}

func (r *memberRepository) Update(member *model.Member) error {
	logger.Debug("Updating member in database", map[string]interface{}{
		"member_id": member.ID,
		"status":    member.Status,
	})

	if err := r.db.Save(member).Error; err != nil {
		logger.Error("Failed to update member in database", err, map[string]interface{}{
			"member_id": member.ID,
		})
		return err
	}
	return nil
}
