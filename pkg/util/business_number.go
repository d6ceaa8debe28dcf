package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// 국세청 사업자등록번호 가중치 (10자리 검증용)
var businessNumberWeights = []int{1, 3, 7, 1, 3, 7, 1, 3, 5}

// IsValidBusinessNumberFormat 사업자등록번호 형식/체크섬 검증 (하이픈 제외 10자리)
func IsValidBusinessNumberFormat(businessNumber string) bool {
	if len(businessNumber) != 10 {
		return false
	}

	digits := make([]int, 10)
	for i, c := range businessNumber {
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}

	sum := 0
	for i, w := range businessNumberWeights {
		sum += digits[i] * w
	}
	sum += (digits[8] * 5) / 10

	check := (10 - sum%10) % 10
	return check == digits[9]
}

// BusinessStatusRequest 국세청 사업자 상태조회 요청
type BusinessStatusRequest struct {
	BusinessNumbers []string `json:"b_no"`
}

// BusinessStatusResponse 국세청 사업자 상태조회 응답
type BusinessStatusResponse struct {
	RequestCount int                  `json:"request_cnt"`
	StatusCode   string               `json:"status_code"`
	Data         []BusinessStatusData `json:"data"`
}

type BusinessStatusData struct {
	BusinessNumber     string `json:"b_no"`
	BusinessStatus     string `json:"b_stt"`    // 계속사업자, 휴업자, 폐업자
	BusinessStatusCode string `json:"b_stt_cd"` // 01: 계속사업자, 02: 휴업자, 03: 폐업자
	TaxType            string `json:"tax_type"`
	TaxTypeCode        string `json:"tax_type_cd"`
	EndDate            string `json:"end_dt"` // 폐업일 (YYYYMMDD)
}

// BusinessStatusResult 사업자 상태 확인 결과
type BusinessStatusResult struct {
	IsOperating        bool   `json:"is_operating"`
	BusinessStatus     string `json:"business_status"`
	BusinessStatusCode string `json:"business_status_code"`
	TaxType            string `json:"tax_type"`
	Message            string `json:"message"`
}

// CheckBusinessStatus 국세청 API로 사업자 영업 상태 확인
// API 키가 없으면 개발 모드로 간주하고 계속사업자로 처리
func CheckBusinessStatus(businessNumber string) (*BusinessStatusResult, error) {
	apiKey := os.Getenv("BUSINESS_STATUS_API_KEY")
	if apiKey == "" {
		return &BusinessStatusResult{
			IsOperating:    true,
			BusinessStatus: "계속사업자",
			Message:        "개발 모드: 상태조회 생략",
		}, nil
	}

	reqBody := BusinessStatusRequest{BusinessNumbers: []string{businessNumber}}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(
		"https://api.odcloud.kr/api/nts-businessman/v1/status?serviceKey=%s",
		apiKey,
	)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to call business status API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("business status API returned %d: %s", resp.StatusCode, string(body))
	}

	var statusResp BusinessStatusResponse
	if err := json.Unmarshal(body, &statusResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(statusResp.Data) == 0 {
		return &BusinessStatusResult{
			IsOperating: false,
			Message:     "등록되지 않은 사업자등록번호입니다",
		}, nil
	}

	data := statusResp.Data[0]
	return &BusinessStatusResult{
		IsOperating:        data.BusinessStatusCode == "01",
		BusinessStatus:     data.BusinessStatus,
		BusinessStatusCode: data.BusinessStatusCode,
		TaxType:            data.TaxType,
		Message:            data.BusinessStatus,
	}, nil
}
