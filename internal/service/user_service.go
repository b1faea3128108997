package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
)

var (
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrUsernameTaken     = errors.New("nome de usuário já em uso")
	ErrTeamAdminsNeedTeam = errors.New("administrador de equipe precisa de uma equipe")
)

// UserService gestão de usuários do painel
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.UserResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService cria a implementação de UserService
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("falha ao verificar nome de usuário", zap.Error(err))
		return nil, err
	}

	var teamID *string
	if req.Role == model.RoleTeamAdmin {
		tid := req.TeamID.String()
		if tid == "" {
			return nil, ErrTeamAdminsNeedTeam
		}
		if _, err := s.repo.Team.GetByID(ctx, tid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		teamID = &tid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("falha ao gerar hash de senha", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		TeamID:       teamID,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("falha ao criar usuário", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.User.GetByID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(created)
	return &resp, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("falha ao buscar usuário", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.UserResponse, int64, error) {
	users, total, err := s.repo.User.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar usuários", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, total, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("falha ao buscar usuário", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		if _, err := s.repo.User.GetByUsername(ctx, *req.Username); err == nil {
			return nil, ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		hash, herr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.TeamID != nil {
		tid := req.TeamID.String()
		if tid == "" {
			user.TeamID = nil
		} else {
			if _, terr := s.repo.Team.GetByID(ctx, tid); terr != nil {
				if errors.Is(terr, gorm.ErrRecordNotFound) {
					return nil, ErrTeamNotFound
				}
				return nil, terr
			}
			user.TeamID = &tid
		}
	}
	if user.Role == model.RoleTeamAdmin && user.TeamID == nil {
		return nil, ErrTeamAdminsNeedTeam
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("falha ao atualizar usuário", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir usuário", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Conversões ──

func toUserResponse(user *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Role:     user.Role,
	}
	if user.TeamID != nil {
		resp.TeamID = *user.TeamID
	}
	if user.Team != nil {
		resp.Team = &dto.TeamBrief{ID: user.Team.TeamID, Name: user.Team.Name}
	}
	return resp
}
