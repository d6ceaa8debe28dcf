package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// CertType 입점 증빙 서류 종류
type CertType string

const (
	CertTypeBusiness CertType = "business" // 사업자등록증
	CertTypeBank     CertType = "bank"     // 통장 사본
)

const (
	maxCertFileSize = 10 * 1024 * 1024 // 10MB
	presignExpiry   = 15 * time.Minute
)

// 증빙 서류로 허용하는 콘텐츠 타입
var allowedCertContentTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
}

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

func certFolder(certType CertType) (string, error) {
	switch certType {
	case CertTypeBusiness:
		return "business-certs", nil
	case CertTypeBank:
		return "bank-certs", nil
	default:
		return "", fmt.Errorf("unknown cert type: %s", certType)
	}
}

// GenerateCertUploadURL 증빙 서류 업로드용 presigned PUT URL 발급
// 파일 본문은 클라이언트가 S3에 직접 올리고 서버는 최종 URL만 보관한다
func (s *S3Storage) GenerateCertUploadURL(certType CertType, filename, contentType string) (*PresignedURLResponse, error) {
	if err := s.ValidateContentType(contentType, allowedCertContentTypes); err != nil {
		return nil, err
	}

	folder, err := certFolder(certType)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)
	presignedReq, err := presignClient.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	var fileURL string
	if s.baseURL != "" {
		// CloudFront 또는 커스텀 도메인
		fileURL = fmt.Sprintf("%s/%s", s.baseURL, key)
	} else {
		fileURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
	}

	return &PresignedURLResponse{
		UploadURL: presignedReq.URL,
		FileURL:   fileURL,
		Key:       key,
	}, nil
}

// ValidateFileSize 증빙 서류 크기 제한 확인
func (s *S3Storage) ValidateFileSize(size int64) error {
	if size > maxCertFileSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", int64(maxCertFileSize))
	}
	return nil
}

// ValidateContentType 허용된 콘텐츠 타입인지 확인
func (s *S3Storage) ValidateContentType(contentType string, allowedTypes []string) error {
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return fmt.Errorf("content type %s is not allowed", contentType)
}
