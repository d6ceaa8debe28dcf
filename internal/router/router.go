package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sinsaflower/sinsaflower-backend/config"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/controller"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/service"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
)

type Router struct {
	authController         *controller.AuthController
	memberController       *controller.MemberController
	adminController        *controller.AdminController
	regionPriceController  *controller.RegionPriceController
	notificationController *controller.NotificationController
	uploadController       *controller.UploadController
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	memberController *controller.MemberController,
	adminController *controller.AdminController,
	regionPriceController *controller.RegionPriceController,
	notificationController *controller.NotificationController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:         authController,
		memberController:       memberController,
		adminController:        adminController,
		regionPriceController:  regionPriceController,
		notificationController: notificationController,
		uploadController:       uploadController,
		authMiddleware:         authMiddleware,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SINSAFLOWER API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/admin/login", r.authController.AdminLogin)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		members := v1.Group("/members")
		{
			members.POST("/signup", r.memberController.Signup)
			members.POST("/check-login-id", r.memberController.CheckLoginID)
			members.POST("/check-business-number", r.memberController.CheckBusinessNumber)

			// 파트너 본인 리소스
			me := members.Group("/me")
			me.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(service.RolePartner))
			{
				me.PUT("/regions", r.regionPriceController.SaveMyRegions)
				me.GET("/regions", r.regionPriceController.GetMyRegions)
				me.GET("/notifications", r.notificationController.GetMyNotifications)
				me.POST("/notifications/:id/read", r.notificationController.MarkAsRead)
				me.GET("/notifications/ws", r.notificationController.WebSocketHandler)
			}
		}

		regions := v1.Group("/regions")
		{
			regions.GET("/sido", r.regionPriceController.GetSidoList)
			regions.GET("/sigungu", r.regionPriceController.GetSigunguList)
		}

		uploads := v1.Group("/uploads")
		uploads.Use(r.authMiddleware.Authenticate())
		{
			uploads.POST("/cert-url", r.uploadController.GenerateCertUploadURL)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
		{
			admin.GET("/members/pending", r.adminController.GetPendingMembers)
			admin.POST("/members/:id/approve", r.adminController.ApproveMember)
			admin.POST("/members/:id/reject", r.adminController.RejectMember)
			admin.POST("/members/:id/suspend", r.adminController.SuspendMember)
			admin.POST("/members/:id/unsuspend", r.adminController.UnsuspendMember)
			admin.DELETE("/members/:id", r.adminController.DeleteMember)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
