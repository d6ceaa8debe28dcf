package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/sinsaflower/sinsaflower-backend/internal/errors"
	"github.com/sinsaflower/sinsaflower-backend/internal/middleware"
	"github.com/sinsaflower/sinsaflower-backend/internal/storage"
)

// UploadController 입점 증빙 서류 업로드 URL 발급
type UploadController struct {
	s3Storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{
		s3Storage: s3Storage,
	}
}

type CertUploadURLRequest struct {
	CertType    string `json:"cert_type" binding:"required,oneof=business bank"`
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
}

// GenerateCertUploadURL issues a presigned PUT URL for a cert document
// POST /api/v1/uploads/cert-url
// 파일 본문은 클라이언트가 S3에 직접 올린다
func (ctrl *UploadController) GenerateCertUploadURL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CertUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	if err := ctrl.s3Storage.ValidateFileSize(req.FileSize); err != nil {
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "파일 크기는 10MB 이하여야 합니다")
		return
	}

	result, err := ctrl.s3Storage.GenerateCertUploadURL(storage.CertType(req.CertType), req.Filename, req.ContentType)
	if err != nil {
		log.Warn("Failed to generate cert upload URL", map[string]interface{}{
			"cert_type":    req.CertType,
			"content_type": req.ContentType,
			"error":        err.Error(),
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "PDF, JPG, PNG 파일만 업로드할 수 있습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": result.UploadURL,
		"file_url":   result.FileURL,
		"key":        result.Key,
	})
}
