package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	"github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/pkg/redis"
	"github.com/sinsaflower/sinsaflower-backend/pkg/util"
)

// Context keys
const (
	MemberIDKey = "member_id"
	LoginIDKey  = "login_id"
	RoleKey     = "role"
)

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: jwtSecret,
	}
}

// Authenticate validates JWT token (required)
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn("Invalid authorization header format", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "인증 형식이 올바르지 않습니다")
				c.Abort()
				return
			}
			token = parts[1]
		} else {
			// WebSocket 연결은 쿼리 파라미터로 토큰 전달
			token = c.Query("token")
			if token == "" {
				log.Warn("Missing authorization header", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				errors.Unauthorized(c, "로그인이 필요합니다")
				c.Abort()
				return
			}
		}

		claims, err := util.ValidateToken(token, m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})

			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "로그인이 만료되었습니다")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "유효하지 않은 인증 토큰입니다")
			}
			c.Abort()
			return
		}

		// 로그아웃으로 폐기된 토큰인지 확인
		if redis.GetClient() != nil {
			blacklisted, err := redis.IsTokenBlacklisted(c.Request.Context(), token)
			if err == nil && blacklisted {
				log.Warn("Revoked token used", map[string]interface{}{
					"member_id": claims.MemberID,
					"path":      c.Request.URL.Path,
				})
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenRevoked, "로그아웃된 토큰입니다")
				c.Abort()
				return
			}
		}

		c.Set(MemberIDKey, claims.MemberID)
		c.Set(LoginIDKey, claims.LoginID)
		c.Set(RoleKey, claims.Role)

		log.Debug("Authenticated successfully", map[string]interface{}{
			"member_id": claims.MemberID,
			"login_id":  claims.LoginID,
			"role":      claims.Role,
		})

		c.Next()
	}
}

// RequireRole checks if the authenticated principal has one of the required roles
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		roleValue, exists := c.Get(RoleKey)
		if !exists {
			log.Warn("Role information not found in context", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzRoleNotFound, "권한 정보를 찾을 수 없습니다")
			c.Abort()
			return
		}

		role := roleValue.(string)
		memberID, _ := GetMemberID(c)

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		log.Warn("Insufficient permissions", map[string]interface{}{
			"member_id":      memberID,
			"role":           role,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		})
		errors.Forbidden(c, "접근 권한이 없습니다")
		c.Abort()
	}
}

// RequireAdmin 관리자 전용 엔드포인트 가드
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(service.RoleAdmin)
}

// GetMemberID extracts member ID from context
func GetMemberID(c *gin.Context) (uint, bool) {
	memberID, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}
	return memberID.(uint), true
}

// GetLoginID extracts login ID from context
func GetLoginID(c *gin.Context) (string, bool) {
	loginID, exists := c.Get(LoginIDKey)
	if !exists {
		return "", false
	}
	return loginID.(string), true
}

// GetRole extracts role from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(RoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}
