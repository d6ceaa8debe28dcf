package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
	ws "github.com/sinsaflower/sinsaflower-backend/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// 허용된 도메인 목록
		allowedOrigins := map[string]bool{
			"https://partner.sinsaflower.kr": true,
			"http://localhost:5173":          true, // 개발 환경
			"http://localhost:3000":          true, // 개발 환경
		}
		return allowedOrigins[origin]
	},
}

type NotificationController struct {
	notificationService service.NotificationService
	hub                 *ws.Hub
}

func NewNotificationController(notificationService service.NotificationService, hub *ws.Hub) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		hub:                 hub,
	}
}

// GetMyNotifications returns the partner's notifications (latest first)
// GET /api/v1/members/me/notifications?limit=20
func (ctrl *NotificationController) GetMyNotifications(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	notifications, err := ctrl.notificationService.GetMyNotifications(memberID, limit)
	if err != nil {
		log.Error("Failed to fetch notifications", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.InternalError(c, "알림 조회에 실패했습니다")
		return
	}

	unreadCount, err := ctrl.notificationService.GetUnreadCount(memberID)
	if err != nil {
		log.Error("Failed to count unread notifications", err, map[string]interface{}{
			"member_id": memberID,
		})
		apperrors.InternalError(c, "알림 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unreadCount,
	})
}

// MarkAsRead marks one of the partner's notifications as read
// POST /api/v1/members/me/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 알림 ID입니다")
		return
	}

	if err := ctrl.notificationService.MarkAsRead(uint(notificationID), memberID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			apperrors.NotFound(c, apperrors.NotificationNotFound, "알림을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to mark notification as read", err, map[string]interface{}{
			"member_id":       memberID,
			"notification_id": notificationID,
		})
		apperrors.InternalError(c, "알림 읽음 처리에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "알림을 읽음 처리했습니다",
	})
}

// WebSocketHandler upgrades the connection for real-time approval events
// GET /api/v1/members/me/notifications/ws
// 쿼리 파라미터로 토큰을 받지만, 로깅하지 않음 (보안)
func (ctrl *NotificationController) WebSocketHandler(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	// 미들웨어에서 이미 인증 완료
	memberID, exists := middleware.GetMemberID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket", err, nil)
		return
	}

	client := &ws.Client{
		Hub:      ctrl.hub,
		Conn:     &ws.Conn{Conn: conn},
		MemberID: memberID,
		Send:     make(chan []byte, 256),
	}

	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Info("WebSocket connection established", map[string]interface{}{
		"member_id": memberID,
	})
}
