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
	ErrPersonNotFound = errors.New("profissional não encontrado")
)

// PersonService gestão de profissionais
type PersonService interface {
	Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PersonResponse, error)
	List(ctx context.Context, req *dto.PersonListRequest) ([]dto.PersonResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdatePersonRequest) (*dto.PersonResponse, error)
	Delete(ctx context.Context, id string) error
}

type personService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonService cria a implementação de PersonService
func NewPersonService(repo *repository.Repository, logger *zap.Logger) PersonService {
	return &personService{repo: repo, logger: logger}
}

func (s *personService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	teamID := req.TeamID.String()
	if _, err := s.repo.Team.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	person := &model.Person{
		Name:      req.Name,
		Phone:     req.Phone,
		Matricula: req.Matricula,
		Cargo:     req.Cargo,
		TeamID:    teamID,
	}
	if err := s.repo.Person.Create(ctx, person); err != nil {
		s.logger.Error("falha ao criar profissional", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Person.GetByID(ctx, person.PersonID)
	if err != nil {
		return nil, err
	}
	resp := toPersonResponse(created)
	return &resp, nil
}

func (s *personService) GetByID(ctx context.Context, id string) (*dto.PersonResponse, error) {
	person, err := s.repo.Person.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("falha ao buscar profissional", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toPersonResponse(person)
	return &resp, nil
}

func (s *personService) List(ctx context.Context, req *dto.PersonListRequest) ([]dto.PersonResponse, int64, error) {
	people, total, err := s.repo.Person.List(ctx, req.TeamID, req.Search, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar profissionais", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.PersonResponse, 0, len(people))
	for i := range people {
		result = append(result, toPersonResponse(&people[i]))
	}
	return result, total, nil
}

func (s *personService) Update(ctx context.Context, id string, req *dto.UpdatePersonRequest) (*dto.PersonResponse, error) {
	person, err := s.repo.Person.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("falha ao buscar profissional", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		person.Name = *req.Name
	}
	if req.Phone != nil {
		person.Phone = *req.Phone
	}
	if req.Matricula != nil {
		person.Matricula = *req.Matricula
	}
	if req.Cargo != nil {
		person.Cargo = *req.Cargo
	}
	if req.TeamID != nil {
		teamID := req.TeamID.String()
		if _, terr := s.repo.Team.GetByID(ctx, teamID); terr != nil {
			if errors.Is(terr, gorm.ErrRecordNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, terr
		}
		person.TeamID = teamID
	}

	if err := s.repo.Person.Update(ctx, person); err != nil {
		s.logger.Error("falha ao atualizar profissional", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toPersonResponse(person)
	return &resp, nil
}

// Delete exclui o profissional. Entradas antigas de escala que apontam
// para ele são preservadas e exibidas como "N/A".
func (s *personService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Person.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPersonNotFound
		}
		return err
	}
	if err := s.repo.Person.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir profissional", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Conversões ──

func toPersonResponse(person *model.Person) dto.PersonResponse {
	resp := dto.PersonResponse{
		ID:        person.PersonID,
		Name:      person.Name,
		Phone:     person.Phone,
		Matricula: person.Matricula,
		Cargo:     person.Cargo,
		TeamID:    person.TeamID,
	}
	if person.Team != nil {
		resp.Team = &dto.TeamBrief{ID: person.Team.TeamID, Name: person.Team.Name}
	}
	return resp
}
