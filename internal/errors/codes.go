package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 아이디/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // 토큰 폐기됨
	AuthLoginIDExists      = "AUTH_LOGIN_ID_EXISTS"     // 로그인 ID 중복

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // 접근 권한 없음
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // 권한 정보 없음
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"     // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 회원 (MEMBER_) ====================
	MemberNotFound             = "MEMBER_NOT_FOUND"              // 회원 없음
	MemberInvalidTransition    = "MEMBER_INVALID_TRANSITION"     // 허용되지 않는 상태 변경
	MemberAlreadyDeleted       = "MEMBER_ALREADY_DELETED"        // 이미 삭제된 회원
	MemberPendingApproval      = "MEMBER_PENDING_APPROVAL"       // 승인 대기 중
	MemberSuspended            = "MEMBER_SUSPENDED"              // 정지된 회원
	MemberNotActive            = "MEMBER_NOT_ACTIVE"             // 비활성 회원
	MemberBusinessNumberExists = "MEMBER_BUSINESS_NUMBER_EXISTS" // 사업자번호 중복

	// ==================== 승인 (APPROVAL_) ====================
	ApprovalProfileNotFound = "APPROVAL_PROFILE_NOT_FOUND" // 사업자 프로필 없음
	ApprovalReasonRequired  = "APPROVAL_REASON_REQUIRED"   // 거절 사유 필수

	// ==================== 지역/가격 (REGION_) ====================
	RegionNotFound       = "REGION_NOT_FOUND"       // 지역 없음
	RegionPriceDuplicate = "REGION_PRICE_DUPLICATE" // 지역/카테고리 가격 중복
	RegionInvalidPrice   = "REGION_INVALID_PRICE"   // 잘못된 가격

	// ==================== 알림 (NOTIFICATION_) ====================
	NotificationNotFound = "NOTIFICATION_NOT_FOUND" // 알림 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadFailed          = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
)
