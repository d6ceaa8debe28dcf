package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/sinsaflower/sinsaflower-backend/config"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
	"github.com/sinsaflower/sinsaflower-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// 행정표준코드 법정동 XLSX에서 배송 지역 마스터를 적재한다
func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Repository 생성
	regionRepo := repository.NewRegionRepository(db.GetDB())

	// 이미 적재된 경우 중복 적재 방지
	count, err := regionRepo.Count()
	if err != nil {
		log.Fatal("Failed to count existing regions:", err)
	}
	if count > 0 {
		fmt.Printf("Regions already seeded (%d rows). Aborting.\n", count)
		return
	}

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	regions, err := readRegionsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total regions to import: %d\n", len(regions))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := regionRepo.BulkCreate(regions); err != nil {
		log.Fatal("Failed to bulk create regions:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total regions imported: %d\n", len(regions))
}

func readRegionsFromXLSX(filePath string) ([]model.Region, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	// 모든 행 읽기
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var regions []model.Region
	seenRegions := make(map[string]bool) // (sido, sigungu) 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			// 헤더 출력 (디버깅용)
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		// 컬럼: 시도명 / 시군구명 / 우편번호 앞자리
		if len(row) < 3 {
			skippedCount++
			continue
		}

		sido := strings.TrimSpace(row[0])
		sigungu := strings.TrimSpace(row[1])
		zipcode := strings.TrimSpace(row[2])

		if sido == "" || sigungu == "" {
			skippedCount++
			continue
		}

		if !isValidRegionName(sido) || !isValidRegionName(sigungu) {
			skippedCount++
			continue
		}

		// 중복 체크 (시도+시군구 기준, 우편번호는 첫 행 것을 사용)
		key := fmt.Sprintf("%s|%s", sido, sigungu)
		if seenRegions[key] {
			skippedCount++
			continue
		}
		seenRegions[key] = true

		regions = append(regions, model.Region{
			Sido:     sido,
			Sigungu:  sigungu,
			Zipcode:  zipcode,
			IsActive: true,
		})

		if len(regions)%100 == 0 {
			fmt.Printf("Processed %d regions...\n", len(regions))
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Total rows: %d\n", len(rows)-1)
	fmt.Printf("  Valid regions: %d\n", len(regions))
	fmt.Printf("  Skipped rows: %d\n", skippedCount)

	return regions, nil
}

// isValidRegionName은 지역명이 유효한지 검증합니다
func isValidRegionName(name string) bool {
	// 숫자/특수문자만 있는 값 제외 (한글 지역명만 허용)
	reg := regexp.MustCompile(`\p{Hangul}`)
	return reg.MatchString(name)
}
