package service

import (
	"errors"
	"fmt"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrLoginIDExists         = errors.New("login id already exists")
	ErrBusinessNumberExists  = errors.New("business number already exists")
	ErrInvalidBusinessNumber = errors.New("invalid business number")
	ErrBusinessNotOperating  = errors.New("business is not operating")
)

// SignupRequest 파트너 입점 신청
type SignupRequest struct {
	LoginID  string `json:"login_id" binding:"required,min=4,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`

	// 사업자 정보
	BusinessNumber string `json:"business_number" binding:"required"`
	CorpName       string `json:"corp_name" binding:"required"`
	CEOName        string `json:"ceo_name" binding:"required"`
	BusinessType   string `json:"business_type"`
	BusinessItem   string `json:"business_item"`
	Fax            string `json:"fax"`

	// 사무실 주소
	OfficeSido    string `json:"office_sido"`
	OfficeSigungu string `json:"office_sigungu"`
	OfficeDetail  string `json:"office_detail"`
	OfficeZipcode string `json:"office_zipcode"`

	// 증빙 서류 (presigned 업로드 후 전달받는 URL)
	BusinessCertURL string `json:"business_cert_url"`
	BankCertURL     string `json:"bank_cert_url"`

	// 배송 설정
	CanNightDelivery  bool   `json:"can_night_delivery"`
	DeliveryStartTime string `json:"delivery_start_time"`
	DeliveryEndTime   string `json:"delivery_end_time"`

	// 정산 계좌
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountOwner  string `json:"account_owner" binding:"required"`

	// 취급 상품
	ProductTypes []model.ProductType `json:"product_types"`

	// 초기 활동 지역/가격
	Regions []RegionPriceRequest `json:"regions"`
}

type MemberService interface {
	Signup(req *SignupRequest) (*model.Member, error)
	CheckLoginIDAvailable(loginID string) (bool, error)
	CheckBusinessNumberAvailable(businessNumber string) (bool, error)
	GetMember(memberID uint) (*model.Member, error)
	GetPendingMembers() ([]model.Member, error)
}

type memberService struct {
	memberRepo  repository.MemberRepository
	profileRepo repository.BusinessProfileRepository
	db          *gorm.DB
}

func NewMemberService(
	memberRepo repository.MemberRepository,
	profileRepo repository.BusinessProfileRepository,
	db *gorm.DB,
) MemberService {
	return &memberService{
		memberRepo:  memberRepo,
		profileRepo: profileRepo,
		db:          db,
	}
}

// Signup 입점 신청: 회원 + 사업자 프로필 + 계좌 + 알림 설정 + 취급 상품 + 초기 지역/가격을
// 한 트랜잭션으로 생성. 회원은 PENDING 상태로 시작하고 관리자 승인 후 로그인 가능.
func (s *memberService) Signup(req *SignupRequest) (*model.Member, error) {
	logger.Info("Processing partner signup", map[string]interface{}{
		"login_id":        req.LoginID,
		"business_number": req.BusinessNumber,
	})

	if !util.IsValidBusinessNumberFormat(req.BusinessNumber) {
		logger.Warn("Invalid business number format", map[string]interface{}{
			"business_number": req.BusinessNumber,
		})
		return nil, ErrInvalidBusinessNumber
	}

	status, err := util.CheckBusinessStatus(req.BusinessNumber)
	if err != nil {
		logger.Error("Failed to check business status", err, map[string]interface{}{
			"business_number": req.BusinessNumber,
		})
		return nil, err
	}
	if !status.IsOperating {
		logger.Warn("Business is not operating", map[string]interface{}{
			"business_number": req.BusinessNumber,
			"status":          status.BusinessStatus,
		})
		return nil, ErrBusinessNotOperating
	}

	exists, err := s.memberRepo.ExistsByLoginID(req.LoginID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrLoginIDExists
	}

	exists, err = s.profileRepo.ExistsByBusinessNumber(req.BusinessNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrBusinessNumberExists
	}

	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password during signup", err, nil)
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during signup, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"login_id": req.LoginID,
			})
		}
	}()

	member := &model.Member{
		LoginID:      req.LoginID,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Nickname:     req.Nickname,
		Mobile:       req.Mobile,
		Status:       model.MemberStatusPending,
	}
	if err := tx.Create(member).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create member during signup", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		return nil, err
	}

	profile := &model.BusinessProfile{
		MemberID:          member.ID,
		BusinessNumber:    req.BusinessNumber,
		CorpName:          req.CorpName,
		CEOName:           req.CEOName,
		BusinessType:      req.BusinessType,
		BusinessItem:      req.BusinessItem,
		Fax:               req.Fax,
		OfficeSido:        req.OfficeSido,
		OfficeSigungu:     req.OfficeSigungu,
		OfficeDetail:      req.OfficeDetail,
		OfficeZipcode:     req.OfficeZipcode,
		BusinessCertURL:   req.BusinessCertURL,
		BankCertURL:       req.BankCertURL,
		CanNightDelivery:  req.CanNightDelivery,
		DeliveryStartTime: req.DeliveryStartTime,
		DeliveryEndTime:   req.DeliveryEndTime,
		ApprovalStatus:    model.ApprovalStatusPending,
	}
	if err := tx.Create(profile).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create business profile during signup", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		return nil, err
	}

	account := &model.BankAccount{
		BusinessProfileID: profile.ID,
		BankName:          req.BankName,
		AccountNumber:     req.AccountNumber,
		AccountOwner:      req.AccountOwner,
		IsPrimary:         true,
	}
	if err := tx.Create(account).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create bank account during signup", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		return nil, err
	}

	setting := &model.NotificationSetting{
		MemberID:            member.ID,
		SMSOrderCreated:     true,
		SMSOrderCanceled:    true,
		SMSApprovalResult:   true,
		EmailApprovalResult: true,
		PushOrderCreated:    true,
		PushApprovalResult:  true,
	}
	if err := tx.Create(setting).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create notification setting during signup", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		return nil, err
	}

	for _, productType := range req.ProductTypes {
		handling := &model.HandlingProduct{
			MemberID:    member.ID,
			ProductType: productType,
			IsActive:    true,
		}
		if err := tx.Create(handling).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create handling product during signup", err, map[string]interface{}{
				"login_id":     req.LoginID,
				"product_type": productType,
			})
			return nil, err
		}
	}

	for _, regionReq := range req.Regions {
		region := &model.ActivityRegion{
			MemberID: member.ID,
			Sido:     regionReq.Sido,
			Sigungu:  regionReq.Sigungu,
			IsActive: regionReq.Handled,
		}
		if err := tx.Create(region).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create activity region during signup", err, map[string]interface{}{
				"login_id": req.LoginID,
				"sido":     regionReq.Sido,
				"sigungu":  regionReq.Sigungu,
			})
			return nil, err
		}

		for _, priceReq := range regionReq.Prices {
			price := &model.ProductPrice{
				MemberID:     member.ID,
				Sido:         regionReq.Sido,
				Sigungu:      regionReq.Sigungu,
				CategoryName: priceReq.CategoryName,
				Price:        priceReq.Price,
				IsAvailable:  regionReq.Handled && priceReq.IsAvailable,
			}
			if err := tx.Create(price).Error; err != nil {
				tx.Rollback()
				logger.Error("Failed to create product price during signup", err, map[string]interface{}{
					"login_id": req.LoginID,
					"sido":     regionReq.Sido,
					"sigungu":  regionReq.Sigungu,
					"category": priceReq.CategoryName,
				})
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit signup", err, map[string]interface{}{
			"login_id": req.LoginID,
		})
		return nil, err
	}

	member.BusinessProfile = profile

	logger.Info("Partner signup completed", map[string]interface{}{
		"member_id": member.ID,
		"login_id":  member.LoginID,
	})
	return member, nil
}

func (s *memberService) CheckLoginIDAvailable(loginID string) (bool, error) {
	exists, err := s.memberRepo.ExistsByLoginID(loginID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *memberService) CheckBusinessNumberAvailable(businessNumber string) (bool, error) {
	if !util.IsValidBusinessNumberFormat(businessNumber) {
		return false, ErrInvalidBusinessNumber
	}
	exists, err := s.profileRepo.ExistsByBusinessNumber(businessNumber)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *memberService) GetMember(memberID uint) (*model.Member, error) {
	member, err := s.memberRepo.FindByIDWithProfile(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// GetPendingMembers 승인 대기 회원 목록 (신청 순)
func (s *memberService) GetPendingMembers() ([]model.Member, error) {
	members, err := s.memberRepo.FindByStatus(model.MemberStatusPending)
	if err != nil {
		return nil, err
	}

	// 심사 화면에서 사업자 프로필이 함께 필요
	for i := range members {
		profile, err := s.profileRepo.FindByMemberID(members[i].ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		members[i].BusinessProfile = profile
	}
	return members, nil
}
