package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"sobreaviso/backend/internal/dto"
)

func TestTimeSlotService_CreateDerivesCodeAndDuration(t *testing.T) {
	env := newMockEnv()
	svc := NewTimeSlotService(env.repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTimeSlotRequest{
		Label: "Sobreaviso Noturno", StartTime: "19:00", EndTime: "07:00",
	})
	if err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}
	if created.Code != "SN" {
		t.Errorf("código = %q, esperado SN", created.Code)
	}
	// pernoite: a subtração não positiva ganha 24h
	if created.Duration != 12.0 {
		t.Errorf("duração = %v, esperado 12", created.Duration)
	}

	sdn, err := svc.Create(ctx, &dto.CreateTimeSlotRequest{
		Label: "Sobreaviso Diurno e Noturno", StartTime: "07:00", EndTime: "07:00",
	})
	if err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}
	if sdn.Code != "SDN" {
		t.Errorf("código = %q, esperado SDN (conector \"e\" descartado)", sdn.Code)
	}
	if sdn.Duration != 24.0 {
		t.Errorf("duração = %v, esperado 24", sdn.Duration)
	}
}

func TestTimeSlotService_CreateRejectsBadTimes(t *testing.T) {
	env := newMockEnv()
	svc := NewTimeSlotService(env.repo, zap.NewNop())
	ctx := context.Background()

	for _, tc := range []struct{ start, end string }{
		{"25:00", "07:00"},
		{"19:00", "7:00"},
		{"19h00", "07:00"},
		{"", "07:00"},
	} {
		if _, err := svc.Create(ctx, &dto.CreateTimeSlotRequest{
			Label: "Plantão", StartTime: tc.start, EndTime: tc.end,
		}); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("horário %q-%q deveria falhar com ErrInvalidTime, veio %v", tc.start, tc.end, err)
		}
	}
}

func TestTimeSlotService_UpdateAndDelete(t *testing.T) {
	env := newMockEnv()
	svc := NewTimeSlotService(env.repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateTimeSlotRequest{
		Label: "Plantão", StartTime: "08:00", EndTime: "17:00",
	})
	if err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}

	label := "Apoio & Retaguarda"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateTimeSlotRequest{Label: &label})
	if err != nil {
		t.Fatalf("atualização falhou: %v", err)
	}
	if updated.Code != "AR" {
		t.Errorf("código após renomear = %q, esperado AR", updated.Code)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("exclusão falhou: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, ErrTimeSlotNotFound) {
		t.Errorf("esperado ErrTimeSlotNotFound, veio %v", err)
	}
}
