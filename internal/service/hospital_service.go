package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
)

var (
	ErrHospitalNotFound = errors.New("hospital não encontrado")
)

// HospitalService gestão de hospitais
type HospitalService interface {
	Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetByID(ctx context.Context, id string) (*dto.HospitalResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.HospitalResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	Delete(ctx context.Context, id string) error
}

type hospitalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHospitalService cria a implementação de HospitalService
func NewHospitalService(repo *repository.Repository, logger *zap.Logger) HospitalService {
	return &hospitalService{repo: repo, logger: logger}
}

func (s *hospitalService) Create(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital := &model.Hospital{
		HUF: req.HUF,
		UO:  req.UO,
	}
	if err := s.repo.Hospital.Create(ctx, hospital); err != nil {
		s.logger.Error("falha ao criar hospital", zap.Error(err))
		return nil, err
	}
	resp := toHospitalResponse(hospital)
	return &resp, nil
}

func (s *hospitalService) GetByID(ctx context.Context, id string) (*dto.HospitalResponse, error) {
	hospital, err := s.repo.Hospital.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("falha ao buscar hospital", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toHospitalResponse(hospital)
	return &resp, nil
}

func (s *hospitalService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.HospitalResponse, int64, error) {
	hospitals, total, err := s.repo.Hospital.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar hospitais", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.HospitalResponse, 0, len(hospitals))
	for i := range hospitals {
		result = append(result, toHospitalResponse(&hospitals[i]))
	}
	return result, total, nil
}

func (s *hospitalService) Update(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := s.repo.Hospital.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("falha ao buscar hospital", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.HUF != nil {
		hospital.HUF = *req.HUF
	}
	if req.UO != nil {
		hospital.UO = *req.UO
	}

	if err := s.repo.Hospital.Update(ctx, hospital); err != nil {
		s.logger.Error("falha ao atualizar hospital", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toHospitalResponse(hospital)
	return &resp, nil
}

func (s *hospitalService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Hospital.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHospitalNotFound
		}
		return err
	}
	if err := s.repo.Hospital.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir hospital", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Conversões ──

func toHospitalResponse(hospital *model.Hospital) dto.HospitalResponse {
	return dto.HospitalResponse{
		ID:  hospital.HospitalID,
		HUF: hospital.HUF,
		UO:  hospital.UO,
	}
}
