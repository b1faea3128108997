package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/pkg/jwt"
	"sobreaviso/backend/pkg/redis"
)

var (
	ErrInvalidCredentials = errors.New("usuário ou senha incorretos")
	ErrInvalidRefresh     = errors.New("sessão inválida, faça login novamente")
)

// AuthService autenticação do painel administrativo
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	cache  *redis.Client
	logger *zap.Logger
}

// NewAuthService cria a implementação de AuthService
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		cache:  cache,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("falha ao buscar usuário", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user, req.RememberMe)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}

	if s.cache != nil {
		blacklisted, berr := s.cache.IsBlacklisted(ctx, claims.ID)
		if berr != nil {
			s.logger.Warn("falha ao consultar blacklist, seguindo sem ela", zap.Error(berr))
		} else if blacklisted {
			return nil, ErrInvalidRefresh
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		s.logger.Error("falha ao buscar usuário na renovação", zap.Error(err))
		return nil, err
	}

	// rotação: o refresh usado entra na blacklist pelo restante da validade
	if s.cache != nil && claims.ExpiresAt != nil {
		if berr := s.cache.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); berr != nil {
			s.logger.Warn("falha ao invalidar refresh token usado", zap.Error(berr))
		}
	}

	return s.issueTokens(user, claims.RememberMe)
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtMgr.ParseToken(accessToken)
	if err != nil {
		// token já inválido, logout é idempotente
		return nil
	}
	if s.cache == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Error("falha ao registrar logout na blacklist", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("falha ao buscar usuário", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	teamID := ""
	if user.TeamID != nil {
		teamID = *user.TeamID
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, teamID)
	if err != nil {
		s.logger.Error("falha ao gerar access token", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, teamID, rememberMe)
	if err != nil {
		s.logger.Error("falha ao gerar refresh token", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}
