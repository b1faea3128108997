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
	ErrSectorNotFound = errors.New("setor não encontrado")
)

// SectorService gestão de setores assistenciais
type SectorService interface {
	Create(ctx context.Context, req *dto.CreateSectorRequest) (*dto.SectorResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SectorResponse, error)
	List(ctx context.Context, hospitalID string, page *dto.PaginationRequest) ([]dto.SectorResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateSectorRequest) (*dto.SectorResponse, error)
	Delete(ctx context.Context, id string) error
}

type sectorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSectorService cria a implementação de SectorService
func NewSectorService(repo *repository.Repository, logger *zap.Logger) SectorService {
	return &sectorService{repo: repo, logger: logger}
}

func (s *sectorService) Create(ctx context.Context, req *dto.CreateSectorRequest) (*dto.SectorResponse, error) {
	sector := &model.Sector{Name: req.Name}
	if hospitalID := req.HospitalID.String(); hospitalID != "" {
		if _, err := s.repo.Hospital.GetByID(ctx, hospitalID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHospitalNotFound
			}
			return nil, err
		}
		sector.HospitalID = &hospitalID
	}
	if err := s.repo.Sector.Create(ctx, sector); err != nil {
		s.logger.Error("falha ao criar setor", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Sector.GetByID(ctx, sector.SectorID)
	if err != nil {
		return nil, err
	}
	resp := toSectorResponse(created)
	return &resp, nil
}

func (s *sectorService) GetByID(ctx context.Context, id string) (*dto.SectorResponse, error) {
	sector, err := s.repo.Sector.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectorNotFound
		}
		s.logger.Error("falha ao buscar setor", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toSectorResponse(sector)
	return &resp, nil
}

func (s *sectorService) List(ctx context.Context, hospitalID string, page *dto.PaginationRequest) ([]dto.SectorResponse, int64, error) {
	sectors, total, err := s.repo.Sector.List(ctx, hospitalID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar setores", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.SectorResponse, 0, len(sectors))
	for i := range sectors {
		result = append(result, toSectorResponse(&sectors[i]))
	}
	return result, total, nil
}

func (s *sectorService) Update(ctx context.Context, id string, req *dto.UpdateSectorRequest) (*dto.SectorResponse, error) {
	sector, err := s.repo.Sector.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectorNotFound
		}
		s.logger.Error("falha ao buscar setor", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		sector.Name = *req.Name
	}
	if req.HospitalID != nil {
		hospitalID := req.HospitalID.String()
		if hospitalID == "" {
			// string vazia desfaz o vínculo com o hospital
			sector.HospitalID = nil
		} else {
			if _, herr := s.repo.Hospital.GetByID(ctx, hospitalID); herr != nil {
				if errors.Is(herr, gorm.ErrRecordNotFound) {
					return nil, ErrHospitalNotFound
				}
				return nil, herr
			}
			sector.HospitalID = &hospitalID
		}
		sector.Hospital = nil
	}

	if err := s.repo.Sector.Update(ctx, sector); err != nil {
		s.logger.Error("falha ao atualizar setor", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Sector.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSectorResponse(updated)
	return &resp, nil
}

func (s *sectorService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Sector.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectorNotFound
		}
		return err
	}
	if err := s.repo.Sector.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir setor", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Conversões ──

func toSectorResponse(sector *model.Sector) dto.SectorResponse {
	resp := dto.SectorResponse{
		ID:   sector.SectorID,
		Name: sector.Name,
	}
	if sector.HospitalID != nil {
		resp.HospitalID = *sector.HospitalID
	}
	if sector.Hospital != nil {
		resp.Hospital = &dto.HospitalBrief{
			ID:  sector.Hospital.HospitalID,
			HUF: sector.Hospital.HUF,
			UO:  sector.Hospital.UO,
		}
	}
	return resp
}
