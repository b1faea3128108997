package service

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/internal/roster"
)

var (
	ErrTimeSlotNotFound = errors.New("faixa horária não encontrada")
	ErrInvalidTime      = errors.New("horário inválido, use o formato HH:MM")
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeSlotService gestão do catálogo de faixas horárias
type TimeSlotService interface {
	Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TimeSlotResponse, error)
	List(ctx context.Context) ([]dto.TimeSlotResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	Delete(ctx context.Context, id string) error
}

type timeSlotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeSlotService cria a implementação de TimeSlotService
func NewTimeSlotService(repo *repository.Repository, logger *zap.Logger) TimeSlotService {
	return &timeSlotService{repo: repo, logger: logger}
}

func (s *timeSlotService) Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	if !hhmmPattern.MatchString(req.StartTime) || !hhmmPattern.MatchString(req.EndTime) {
		return nil, ErrInvalidTime
	}

	slot := &model.TimeSlot{
		Label:     req.Label,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.logger.Error("falha ao criar faixa horária", zap.Error(err))
		return nil, err
	}
	resp := toTimeSlotResponse(slot)
	return &resp, nil
}

func (s *timeSlotService) GetByID(ctx context.Context, id string) (*dto.TimeSlotResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("falha ao buscar faixa horária", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTimeSlotResponse(slot)
	return &resp, nil
}

func (s *timeSlotService) List(ctx context.Context) ([]dto.TimeSlotResponse, error) {
	slots, err := s.repo.TimeSlot.ListAll(ctx)
	if err != nil {
		s.logger.Error("falha ao listar faixas horárias", zap.Error(err))
		return nil, err
	}
	result := make([]dto.TimeSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, toTimeSlotResponse(&slots[i]))
	}
	return result, nil
}

func (s *timeSlotService) Update(ctx context.Context, id string, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("falha ao buscar faixa horária", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Label != nil {
		slot.Label = *req.Label
	}
	if req.StartTime != nil {
		if !hhmmPattern.MatchString(*req.StartTime) {
			return nil, ErrInvalidTime
		}
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !hhmmPattern.MatchString(*req.EndTime) {
			return nil, ErrInvalidTime
		}
		slot.EndTime = *req.EndTime
	}

	if err := s.repo.TimeSlot.Update(ctx, slot); err != nil {
		s.logger.Error("falha ao atualizar faixa horária", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTimeSlotResponse(slot)
	return &resp, nil
}

// Delete exclui a faixa. Entradas antigas que a referenciam são
// preservadas e exibidas como "N/A".
func (s *timeSlotService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.TimeSlot.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeSlotNotFound
		}
		return err
	}
	if err := s.repo.TimeSlot.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir faixa horária", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── Conversões ──

func toTimeSlotResponse(slot *model.TimeSlot) dto.TimeSlotResponse {
	duration, err := roster.SlotDurationHours(slot.StartTime, slot.EndTime)
	if err != nil {
		duration = 0
	}
	return dto.TimeSlotResponse{
		ID:        slot.TimeSlotID,
		Label:     slot.Label,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Code:      roster.ShortCode(slot.Label),
		Duration:  duration,
	}
}
