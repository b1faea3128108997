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
	ErrTeamNotFound = errors.New("equipe não encontrada")
)

// TeamService gestão de equipes e seus setores
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TeamResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.TeamResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService cria a implementação de TeamService
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	sectorIDs, err := s.validateSectors(ctx, req.SectorIDs)
	if err != nil {
		return nil, err
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Team.Create(ctx, team, sectorIDs); err != nil {
		s.logger.Error("falha ao criar equipe", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Team.GetByID(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}
	resp := toTeamResponse(created)
	return &resp, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("falha ao buscar equipe", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTeamResponse(team)
	return &resp, nil
}

func (s *teamService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.TeamResponse, int64, error) {
	teams, total, err := s.repo.Team.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar equipes", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, toTeamResponse(&teams[i]))
	}
	return result, total, nil
}

func (s *teamService) Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("falha ao buscar equipe", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	// Save com associações pré-carregadas reescreveria o m2m; limpa antes
	team.Sectors = nil
	team.People = nil
	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("falha ao atualizar equipe", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.SectorIDs != nil {
		sectorIDs, serr := s.validateSectors(ctx, *req.SectorIDs)
		if serr != nil {
			return nil, serr
		}
		if err := s.repo.Team.ReplaceSectors(ctx, id, sectorIDs); err != nil {
			s.logger.Error("falha ao trocar setores da equipe", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	updated, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTeamResponse(updated)
	return &resp, nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Team.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if err := s.repo.Team.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir equipe", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *teamService) validateSectors(ctx context.Context, ids []dto.FlexID) ([]string, error) {
	sectorIDs := make([]string, 0, len(ids))
	for _, fid := range ids {
		sid := fid.String()
		if _, err := s.repo.Sector.GetByID(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSectorNotFound
			}
			return nil, err
		}
		sectorIDs = append(sectorIDs, sid)
	}
	return sectorIDs, nil
}

// ── Conversões ──

func toTeamResponse(team *model.Team) dto.TeamResponse {
	resp := dto.TeamResponse{
		ID:          team.TeamID,
		Name:        team.Name,
		Description: team.Description,
		Sectors:     make([]dto.SectorBrief, 0, len(team.Sectors)),
	}
	for _, sec := range team.Sectors {
		brief := dto.SectorBrief{ID: sec.SectorID, Name: sec.Name}
		if sec.HospitalID != nil {
			brief.HospitalID = *sec.HospitalID
		}
		resp.Sectors = append(resp.Sectors, brief)
	}
	for _, p := range team.People {
		resp.People = append(resp.People, dto.PersonBrief{
			ID:        p.PersonID,
			Name:      p.Name,
			Matricula: p.Matricula,
			Cargo:     p.Cargo,
		})
	}
	return resp
}
