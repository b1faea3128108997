package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/model"
)

func testOnDutyConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Timezone:       "UTC",
			OnDutyCacheTTL: time.Minute,
		},
	}
}

func TestOnDutyService_TodayGroupsByTeam(t *testing.T) {
	env := newMockEnv()
	svc := NewOnDutyService(testOnDutyConfig(), env.repo, nil, zap.NewNop())
	ctx := context.Background()

	team := &model.Team{
		Name: "Cardiologia",
		Sectors: []model.Sector{
			{Name: "Hemodinâmica", Hospital: &model.Hospital{UO: "HGG"}},
		},
	}
	if err := env.repo.Team.Create(ctx, team, nil); err != nil {
		t.Fatalf("criação da equipe falhou: %v", err)
	}
	person := &model.Person{Name: "Elisa Prado", Phone: "(62) 99999-0001", TeamID: team.TeamID}
	if err := env.repo.Person.Create(ctx, person); err != nil {
		t.Fatalf("criação de pessoa falhou: %v", err)
	}
	slot := &model.TimeSlot{Label: "Sobreaviso Noturno", StartTime: "19:00", EndTime: "07:00"}
	if err := env.repo.TimeSlot.Create(ctx, slot); err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}

	now := time.Now().UTC()
	schedule := &model.Schedule{TeamID: team.TeamID, Month: now.Format("2006-01")}
	entries := []model.ScheduleEntry{
		{Day: now.Day(), SlotID: slot.TimeSlotID, PersonID: person.PersonID},
	}
	if err := env.repo.Schedule.Create(ctx, schedule, []string{person.PersonID}, entries); err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	resp, err := svc.Today(ctx, "")
	if err != nil {
		t.Fatalf("projeção de hoje falhou: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("grupos = %d, esperado 1", len(resp.Data))
	}
	group := resp.Data[0]
	if group.Team != "Cardiologia" || group.Sector != "Hemodinâmica" || group.Hospital != "HGG" {
		t.Errorf("derivação equipe/setor/hospital incorreta: %+v", group)
	}
	if len(group.OnDuty) != 1 {
		t.Fatalf("plantonistas = %d, esperado 1", len(group.OnDuty))
	}
	onDuty := group.OnDuty[0]
	if onDuty.Name != "Elisa Prado" || onDuty.Phone != "(62) 99999-0001" || onDuty.TimeSlot != "Sobreaviso Noturno" {
		t.Errorf("plantonista incorreta: %+v", onDuty)
	}
}

func TestOnDutyService_TodaySkipsOtherDays(t *testing.T) {
	env := newMockEnv()
	svc := NewOnDutyService(testOnDutyConfig(), env.repo, nil, zap.NewNop())
	ctx := context.Background()

	team := &model.Team{Name: "Neurologia"}
	if err := env.repo.Team.Create(ctx, team, nil); err != nil {
		t.Fatalf("criação da equipe falhou: %v", err)
	}
	person := &model.Person{Name: "Fábio Nunes", TeamID: team.TeamID}
	if err := env.repo.Person.Create(ctx, person); err != nil {
		t.Fatalf("criação de pessoa falhou: %v", err)
	}
	slot := &model.TimeSlot{Label: "Sobreaviso Diurno", StartTime: "07:00", EndTime: "19:00"}
	if err := env.repo.TimeSlot.Create(ctx, slot); err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}

	// entrada em outro dia do mês não conta como plantão de hoje
	now := time.Now().UTC()
	otherDay := now.Day()%28 + 1
	schedule := &model.Schedule{TeamID: team.TeamID, Month: now.Format("2006-01")}
	entries := []model.ScheduleEntry{
		{Day: otherDay, SlotID: slot.TimeSlotID, PersonID: person.PersonID},
	}
	if err := env.repo.Schedule.Create(ctx, schedule, []string{person.PersonID}, entries); err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	resp, err := svc.Today(ctx, "")
	if err != nil {
		t.Fatalf("projeção de hoje falhou: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("nenhuma equipe deveria aparecer, veio %+v", resp.Data)
	}
}

func TestOnDutyService_MissingRefsDegradeToNA(t *testing.T) {
	env := newMockEnv()
	svc := NewOnDutyService(testOnDutyConfig(), env.repo, nil, zap.NewNop())
	ctx := context.Background()

	team := &model.Team{Name: "Pediatria"}
	if err := env.repo.Team.Create(ctx, team, nil); err != nil {
		t.Fatalf("criação da equipe falhou: %v", err)
	}

	// entrada aponta para pessoa e faixa que já não existem
	now := time.Now().UTC()
	schedule := &model.Schedule{TeamID: team.TeamID, Month: now.Format("2006-01")}
	entries := []model.ScheduleEntry{
		{Day: now.Day(), SlotID: "slot-removido", PersonID: "pessoa-removida"},
	}
	if err := env.repo.Schedule.Create(ctx, schedule, nil, entries); err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	resp, err := svc.Today(ctx, "")
	if err != nil {
		t.Fatalf("projeção de hoje falhou: %v", err)
	}
	if len(resp.Data) != 1 || len(resp.Data[0].OnDuty) != 1 {
		t.Fatalf("resposta inesperada: %+v", resp.Data)
	}
	onDuty := resp.Data[0].OnDuty[0]
	if onDuty.Name != "N/A" || onDuty.TimeSlot != "N/A" {
		t.Errorf("referências ausentes deveriam degradar para N/A: %+v", onDuty)
	}
}

func TestOnDutyService_GroupBySector(t *testing.T) {
	env := newMockEnv()
	svc := NewOnDutyService(testOnDutyConfig(), env.repo, nil, zap.NewNop())
	ctx := context.Background()

	slot := &model.TimeSlot{Label: "Sobreaviso Diurno", StartTime: "07:00", EndTime: "19:00"}
	if err := env.repo.TimeSlot.Create(ctx, slot); err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}

	// duas equipes no mesmo setor devem cair no mesmo grupo
	now := time.Now().UTC()
	for _, teamName := range []string{"Cardiologia A", "Cardiologia B"} {
		team := &model.Team{
			Name: teamName,
			Sectors: []model.Sector{
				{Name: "Hemodinâmica", Hospital: &model.Hospital{UO: "HGG"}},
			},
		}
		if err := env.repo.Team.Create(ctx, team, nil); err != nil {
			t.Fatalf("criação da equipe falhou: %v", err)
		}
		person := &model.Person{Name: "Plantonista " + teamName, TeamID: team.TeamID}
		if err := env.repo.Person.Create(ctx, person); err != nil {
			t.Fatalf("criação de pessoa falhou: %v", err)
		}
		schedule := &model.Schedule{TeamID: team.TeamID, Month: now.Format("2006-01")}
		entries := []model.ScheduleEntry{
			{Day: now.Day(), SlotID: slot.TimeSlotID, PersonID: person.PersonID},
		}
		if err := env.repo.Schedule.Create(ctx, schedule, []string{person.PersonID}, entries); err != nil {
			t.Fatalf("criação da escala falhou: %v", err)
		}
	}

	resp, err := svc.Today(ctx, "sector")
	if err != nil {
		t.Fatalf("projeção por setor falhou: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("grupos = %d, esperado 1 setor", len(resp.Data))
	}
	group := resp.Data[0]
	if group.Sector != "Hemodinâmica" || group.Hospital != "HGG" {
		t.Errorf("setor/hospital incorretos: %+v", group)
	}
	if len(group.OnDuty) != 2 {
		t.Errorf("plantonistas = %d, esperado 2", len(group.OnDuty))
	}
}
