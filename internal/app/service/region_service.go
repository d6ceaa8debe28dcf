package service

import (
	"github.com/sinsaflower/sinsaflower-backend/internal/app/model"
	"github.com/sinsaflower/sinsaflower-backend/internal/app/repository"
)

// RegionService 배송 가능 지역 마스터 조회 (입점 신청/지역 설정 화면용)
type RegionService interface {
	GetAllRegions() ([]model.Region, error)
	GetSidoList() ([]string, error)
	GetSigunguBySido(sido string) ([]string, error)
}

type regionService struct {
	regionRepo repository.RegionRepository
}

func NewRegionService(regionRepo repository.RegionRepository) RegionService {
	return &regionService{regionRepo: regionRepo}
}

func (s *regionService) GetAllRegions() ([]model.Region, error) {
	return s.regionRepo.FindAll()
}

func (s *regionService) GetSidoList() ([]string, error) {
	return s.regionRepo.FindSidoList()
}

func (s *regionService) GetSigunguBySido(sido string) ([]string, error) {
	return s.regionRepo.FindSigunguBySido(sido)
}
