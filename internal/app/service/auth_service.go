package service

import (
	"context"
	"errors"
	"time"

	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/pkg/logger"
	"github.com/sinsaflower/sinsaflower-backend/pkg/redis"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid login id or password")
	ErrApprovalPending    = errors.New("member approval is pending")
	ErrMemberSuspended    = errors.New("member is suspended")
	ErrMemberNotActive    = errors.New("member is not active")
	ErrAdminNotActive     = errors.New("admin is not active")
)

const (
	RolePartner = "PARTNER"
	RoleAdmin   = "ADMIN"
)

type AuthService interface {
	Login(loginID, password string) (*model.Member, *util.TokenPair, error)
	AdminLogin(loginID, password string) (*model.Admin, *util.TokenPair, error)
	RefreshToken(refreshToken string) (*util.TokenPair, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	memberRepo    repository.MemberRepository
	adminRepo     repository.AdminRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	memberRepo repository.MemberRepository,
	adminRepo repository.AdminRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		memberRepo:    memberRepo,
		adminRepo:     adminRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Login 파트너 로그인: 활성 상태이면서 삭제되지 않은 회원만 허용
// 승인 대기/정지 상태는 각각 구분된 오류로 안내
func (s *authService) Login(loginID, password string) (*model.Member, *util.TokenPair, error) {
	logger.Info("Partner login attempt", map[string]interface{}{
		"login_id": loginID,
	})

	member, err := s.memberRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: member not found", map[string]interface{}{
				"login_id": loginID,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.CheckPassword(password, member.PasswordHash) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"login_id":  loginID,
			"member_id": member.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !member.CanLogin() {
		logger.Warn("Login blocked by member status", map[string]interface{}{
			"login_id":  loginID,
			"member_id": member.ID,
			"status":    member.Status,
		})
		switch {
		case member.IsDeleted:
			return nil, nil, ErrMemberNotActive
		case member.IsPending():
			return nil, nil, ErrApprovalPending
		case member.IsSuspended():
			return nil, nil, ErrMemberSuspended
		default:
			return nil, nil, ErrMemberNotActive
		}
	}

	tokens, err := util.GenerateTokenPair(
		member.ID,
		member.LoginID,
		RolePartner,
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"member_id": member.ID,
		})
		return nil, nil, err
	}

	member.UpdateLastLogin()
	if err := s.memberRepo.Update(member); err != nil {
		logger.Error("Failed to update last login", err, map[string]interface{}{
			"member_id": member.ID,
		})
		return nil, nil, err
	}

	logger.Info("Partner logged in", map[string]interface{}{
		"member_id": member.ID,
		"login_id":  member.LoginID,
	})
	return member, tokens, nil
}

// AdminLogin 관리자 로그인
func (s *authService) AdminLogin(loginID, password string) (*model.Admin, *util.TokenPair, error) {
	logger.Info("Admin login attempt", map[string]interface{}{
		"login_id": loginID,
	})

	admin, err := s.adminRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Admin login failed: not found", map[string]interface{}{
				"login_id": loginID,
			})
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !util.CheckPassword(password, admin.PasswordHash) {
		logger.Warn("Admin login failed: invalid password", map[string]interface{}{
			"login_id": loginID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	if !admin.IsActive() {
		logger.Warn("Admin login blocked: inactive account", map[string]interface{}{
			"login_id": loginID,
			"admin_id": admin.ID,
		})
		return nil, nil, ErrAdminNotActive
	}

	tokens, err := util.GenerateTokenPair(
		admin.ID,
		admin.LoginID,
		RoleAdmin,
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate admin tokens", err, map[string]interface{}{
			"admin_id": admin.ID,
		})
		return nil, nil, err
	}

	admin.UpdateLastLogin()
	if err := s.adminRepo.Update(admin); err != nil {
		logger.Error("Failed to update admin last login", err, map[string]interface{}{
			"admin_id": admin.ID,
		})
		return nil, nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"admin_id": admin.ID,
		"login_id": admin.LoginID,
	})
	return admin, tokens, nil
}

// RefreshToken 리프레시 토큰으로 토큰 쌍 재발급
// 파트너는 재발급 시점에도 로그인 가능 상태여야 한다
func (s *authService) RefreshToken(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	if claims.Subject != "refresh" {
		return nil, util.ErrInvalidToken
	}

	if claims.Role == RolePartner {
		member, err := s.memberRepo.FindByID(claims.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		if !member.CanLogin() {
			return nil, ErrMemberNotActive
		}
	}

	return util.GenerateTokenPair(
		claims.MemberID,
		claims.LoginID,
		claims.Role,
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
}

// Logout 액세스 토큰을 남은 유효 기간 동안 블랙리스트에 등록
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := util.ValidateToken(token, s.jwtSecret)
	if err != nil {
		// 이미 만료된 토큰은 블랙리스트가 필요 없음
		if errors.Is(err, util.ErrExpiredToken) {
			return nil
		}
		return err
	}

	if redis.GetClient() == nil {
		logger.Warn("Redis not initialized, skipping token blacklist", map[string]interface{}{
			"member_id": claims.MemberID,
		})
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := redis.BlacklistToken(ctx, token, remaining); err != nil {
		return err
	}

	logger.Info("Token blacklisted on logout", map[string]interface{}{
		"member_id": claims.MemberID,
		"role":      claims.Role,
	})
	return nil
}
