package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/roster"
	pkgerrors "sobreaviso/backend/pkg/errors"
)

// seedRosterFixtures equipe com três pessoas e o par de faixas SD/SN
func seedRosterFixtures(t *testing.T, env *mockEnv) (teamID string, peopleIDs []string, sdID, snID string) {
	t.Helper()
	ctx := context.Background()

	team := &model.Team{Name: "Cirurgia Geral"}
	if err := env.repo.Team.Create(ctx, team, nil); err != nil {
		t.Fatalf("criação da equipe falhou: %v", err)
	}
	for _, name := range []string{"Ana Souza", "Bruno Lima", "Carla Dias"} {
		p := &model.Person{Name: name, TeamID: team.TeamID}
		if err := env.repo.Person.Create(ctx, p); err != nil {
			t.Fatalf("criação de pessoa falhou: %v", err)
		}
		peopleIDs = append(peopleIDs, p.PersonID)
	}

	sd := &model.TimeSlot{Label: "Sobreaviso Diurno", StartTime: "07:00", EndTime: "19:00"}
	sn := &model.TimeSlot{Label: "Sobreaviso Noturno", StartTime: "19:00", EndTime: "07:00"}
	if err := env.repo.TimeSlot.Create(ctx, sd); err != nil {
		t.Fatalf("criação da faixa diurna falhou: %v", err)
	}
	if err := env.repo.TimeSlot.Create(ctx, sn); err != nil {
		t.Fatalf("criação da faixa noturna falhou: %v", err)
	}
	return team.TeamID, peopleIDs, sd.TimeSlotID, sn.TimeSlotID
}

func flexIDs(ids []string) []dto.FlexID {
	out := make([]dto.FlexID, 0, len(ids))
	for _, id := range ids {
		out = append(out, dto.FlexID(id))
	}
	return out
}

func TestScheduleService_CreateAndDuplicateRejection(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()

	req := &dto.CreateScheduleRequest{
		Month:            "2025-02",
		TeamID:           dto.FlexID(teamID),
		SEIProcess:       "23000.123456/2025-01",
		VisiblePeopleIDs: flexIDs(people),
		Entries: []dto.EntryPayload{
			{Day: 1, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[0])},
		},
	}
	created, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}
	if created.Version != 1 {
		t.Errorf("versão inicial = %d, esperado 1", created.Version)
	}
	if len(created.Entries) != 1 || created.Entries[0].PersonID != people[0] {
		t.Errorf("entradas persistidas incorretas: %+v", created.Entries)
	}
	if len(created.People) != 3 {
		t.Errorf("pessoas visíveis = %d, esperado 3", len(created.People))
	}

	// mesma equipe e mesmo mês são rejeitados antes de qualquer escrita
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrDuplicateSchedule) {
		t.Errorf("duplicada deveria falhar com ErrDuplicateSchedule, veio %v", err)
	}
}

func TestScheduleService_CreateValidatesEntries(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()

	outsider := &model.Person{Name: "Fulano de Tal", TeamID: "outra-equipe"}
	env.people.people["p-fora"] = outsider

	cases := []struct {
		name    string
		entry   dto.EntryPayload
		wantErr error
	}{
		{"dia fora do mês", dto.EntryPayload{Day: 30, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[0])}, ErrEntryDayOutOfRange},
		{"faixa inexistente", dto.EntryPayload{Day: 1, SlotID: "slot-fantasma", PersonID: dto.FlexID(people[0])}, ErrEntrySlotUnknown},
		{"pessoa de outra equipe", dto.EntryPayload{Day: 1, SlotID: dto.FlexID(sdID), PersonID: "p-fora"}, ErrEntryPersonNotInTeam},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &dto.CreateScheduleRequest{
				Month:            "2025-02",
				TeamID:           dto.FlexID(teamID),
				VisiblePeopleIDs: flexIDs(people),
				Entries:          []dto.EntryPayload{tc.entry},
			}
			if _, err := svc.Create(ctx, req); !errors.Is(err, tc.wantErr) {
				t.Errorf("esperado %v, veio %v", tc.wantErr, err)
			}
		})
	}
}

func createTestSchedule(t *testing.T, svc ScheduleService, teamID string, people []string) *dto.ScheduleResponse {
	t.Helper()
	created, err := svc.Create(context.Background(), &dto.CreateScheduleRequest{
		Month:            "2025-02",
		TeamID:           dto.FlexID(teamID),
		VisiblePeopleIDs: flexIDs(people),
	})
	if err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}
	return created
}

func TestScheduleService_SetAssignment(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()
	sched := createTestSchedule(t, svc, teamID, people)

	personA := dto.FlexID(people[0])
	updated, err := svc.SetAssignment(ctx, sched.ID, &dto.AssignmentRequest{
		Day: 5, SlotID: dto.FlexID(sdID), PersonID: &personA, Version: 1,
	})
	if err != nil {
		t.Fatalf("atribuição falhou: %v", err)
	}
	if got := roster.SlotOccupant(updated.Entries, 5, sdID); got != people[0] {
		t.Errorf("ocupante do dia 5 = %q, esperado %q", got, people[0])
	}
	if updated.Version != 2 {
		t.Errorf("versão após atribuição = %d, esperado 2", updated.Version)
	}

	// substituição pela pessoa B na mesma célula
	personB := dto.FlexID(people[1])
	updated, err = svc.SetAssignment(ctx, sched.ID, &dto.AssignmentRequest{
		Day: 5, SlotID: dto.FlexID(sdID), PersonID: &personB, Version: 2,
	})
	if err != nil {
		t.Fatalf("substituição falhou: %v", err)
	}
	if len(updated.Entries) != 1 {
		t.Fatalf("substituição não pode duplicar a célula: %+v", updated.Entries)
	}
	if updated.Entries[0].PersonID != people[1] {
		t.Errorf("ocupante = %q, esperado %q", updated.Entries[0].PersonID, people[1])
	}

	// remoção com pessoa nula
	updated, err = svc.SetAssignment(ctx, sched.ID, &dto.AssignmentRequest{
		Day: 5, SlotID: dto.FlexID(sdID), PersonID: nil, Version: 3,
	})
	if err != nil {
		t.Fatalf("remoção falhou: %v", err)
	}
	if len(updated.Entries) != 0 {
		t.Errorf("célula deveria ficar vazia, veio %+v", updated.Entries)
	}
}

func TestScheduleService_VersionConflict(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()
	sched := createTestSchedule(t, svc, teamID, people)

	personA := dto.FlexID(people[0])
	if _, err := svc.SetAssignment(ctx, sched.ID, &dto.AssignmentRequest{
		Day: 1, SlotID: dto.FlexID(sdID), PersonID: &personA, Version: 99,
	}); !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("versão divergente deveria falhar com ErrOptimisticLock, veio %v", err)
	}
}

func TestScheduleService_SetVisiblePeoplePrunesEntries(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, snID := seedRosterFixtures(t, env)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateScheduleRequest{
		Month:            "2025-02",
		TeamID:           dto.FlexID(teamID),
		VisiblePeopleIDs: flexIDs(people),
		Entries: []dto.EntryPayload{
			{Day: 1, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[0])},
			{Day: 1, SlotID: dto.FlexID(snID), PersonID: dto.FlexID(people[1])},
			{Day: 2, SlotID: dto.FlexID(snID), PersonID: dto.FlexID(people[2])},
		},
	})
	if err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	// oculta a pessoa B; a entrada dela é podada
	updated, err := svc.SetVisiblePeople(ctx, created.ID, &dto.VisiblePeopleRequest{
		PersonIDs: flexIDs([]string{people[0], people[2]}),
		Version:   1,
	})
	if err != nil {
		t.Fatalf("troca de pessoas visíveis falhou: %v", err)
	}
	if len(updated.People) != 2 {
		t.Errorf("pessoas visíveis = %d, esperado 2", len(updated.People))
	}
	for _, e := range updated.Entries {
		if e.PersonID == people[1] {
			t.Errorf("entrada de pessoa oculta não foi podada: %+v", e)
		}
	}
	if len(updated.Entries) != 2 {
		t.Errorf("entradas restantes = %d, esperado 2", len(updated.Entries))
	}
}

func TestScheduleService_AutoFillFebruary(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, snID := seedRosterFixtures(t, env)
	ctx := context.Background()
	sched := createTestSchedule(t, svc, teamID, people)

	filled, err := svc.AutoFill(ctx, sched.ID, &dto.AutoFillRequest{
		StartPersonID: dto.FlexID(people[0]),
		Version:       1,
	})
	if err != nil {
		t.Fatalf("escadinha falhou: %v", err)
	}

	// fevereiro de 2025: 8 dias de fim de semana com dupla cobertura e
	// 20 dias úteis com uma entrada
	if len(filled.Entries) != 36 {
		t.Fatalf("entradas geradas = %d, esperado 36", len(filled.Entries))
	}
	if filled.Summary == nil || filled.Summary.Shifts != 36 || filled.Summary.People != 3 {
		t.Errorf("resumo inesperado: %+v", filled.Summary)
	}
	// 36 plantões de 12h
	if filled.Summary != nil && filled.Summary.HoursLabel != "432" {
		t.Errorf("horas totais = %q, esperado 432", filled.Summary.HoursLabel)
	}
	if got := roster.SlotOccupant(filled.Entries, 1, sdID); got != people[0] {
		t.Errorf("dia 1 SD = %q, esperado %q", got, people[0])
	}
	if got := roster.SlotOccupant(filled.Entries, 1, snID); got != people[1] {
		t.Errorf("dia 1 SN = %q, esperado %q", got, people[1])
	}
	if got := roster.SlotOccupant(filled.Entries, 2, sdID); got != people[2] {
		t.Errorf("dia 2 SD = %q, esperado %q", got, people[2])
	}
	if got := roster.SlotOccupant(filled.Entries, 2, snID); got != people[0] {
		t.Errorf("dia 2 SN = %q, esperado %q", got, people[0])
	}
	if got := roster.SlotOccupant(filled.Entries, 3, snID); got != people[1] {
		t.Errorf("dia 3 SN = %q, esperado %q", got, people[1])
	}
}

func TestScheduleService_AutoFillWithoutNightSlot(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	ctx := context.Background()

	team := &model.Team{Name: "Ortopedia"}
	if err := env.repo.Team.Create(ctx, team, nil); err != nil {
		t.Fatalf("criação da equipe falhou: %v", err)
	}
	p := &model.Person{Name: "Diego Rocha", TeamID: team.TeamID}
	if err := env.repo.Person.Create(ctx, p); err != nil {
		t.Fatalf("criação de pessoa falhou: %v", err)
	}
	// catálogo sem faixa noturna
	plantao := &model.TimeSlot{Label: "Plantão", StartTime: "08:00", EndTime: "17:00"}
	if err := env.repo.TimeSlot.Create(ctx, plantao); err != nil {
		t.Fatalf("criação da faixa falhou: %v", err)
	}

	sched := createTestSchedule(t, svc, team.TeamID, []string{p.PersonID})
	if _, err := svc.AutoFill(ctx, sched.ID, &dto.AutoFillRequest{Version: 1}); !errors.Is(err, roster.ErrAutoFillNoNightSlot) {
		t.Errorf("sem faixa SN deveria falhar com ErrAutoFillNoNightSlot, veio %v", err)
	}
}

func TestScheduleService_UpdateReplacesAndBumpsVersion(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()
	sched := createTestSchedule(t, svc, teamID, people)

	sei := "23000.654321/2025-09"
	updated, err := svc.Update(ctx, sched.ID, &dto.UpdateScheduleRequest{
		SEIProcess:       &sei,
		HolidayDays:      []int{12},
		VisiblePeopleIDs: flexIDs(people),
		Entries: []dto.EntryPayload{
			{Day: 12, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[2])},
		},
		Version: 1,
	})
	if err != nil {
		t.Fatalf("atualização falhou: %v", err)
	}
	if updated.SEIProcess != sei {
		t.Errorf("sei_process = %q, esperado %q", updated.SEIProcess, sei)
	}
	if len(updated.HolidayDays) != 1 || updated.HolidayDays[0] != 12 {
		t.Errorf("feriados = %v, esperado [12]", updated.HolidayDays)
	}
	if updated.Version != 2 {
		t.Errorf("versão = %d, esperado 2", updated.Version)
	}

	// versão antiga não grava mais
	if _, err := svc.Update(ctx, sched.ID, &dto.UpdateScheduleRequest{
		VisiblePeopleIDs: flexIDs(people),
		Version:          1,
	}); !errors.Is(err, pkgerrors.ErrOptimisticLock) {
		t.Errorf("esperado ErrOptimisticLock, veio %v", err)
	}
}

func TestScheduleService_DeleteThenGetFails(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, _, _ := seedRosterFixtures(t, env)
	ctx := context.Background()
	sched := createTestSchedule(t, svc, teamID, people)

	if err := svc.Delete(ctx, sched.ID); err != nil {
		t.Fatalf("exclusão falhou: %v", err)
	}
	if _, err := svc.GetByID(ctx, sched.ID); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("esperado ErrScheduleNotFound, veio %v", err)
	}
}

func TestScheduleService_Projections(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, snID := seedRosterFixtures(t, env)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateScheduleRequest{
		Month:            "2025-02",
		TeamID:           dto.FlexID(teamID),
		VisiblePeopleIDs: flexIDs(people),
		HolidayDays:      []int{12},
		Entries: []dto.EntryPayload{
			{Day: 1, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[0])},
			{Day: 1, SlotID: dto.FlexID(snID), PersonID: dto.FlexID(people[1])},
		},
	})
	if err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	cal, err := svc.Calendar(ctx, created.ID, nil)
	if err != nil {
		t.Fatalf("projeção de calendário falhou: %v", err)
	}
	if cal.MonthName != "Fevereiro/2025" {
		t.Errorf("mês = %q, esperado Fevereiro/2025", cal.MonthName)
	}
	if len(cal.Days[0].Entries) != 2 {
		t.Errorf("dia 1 com %d entradas, esperado 2", len(cal.Days[0].Entries))
	}
	if !cal.Days[11].Holiday {
		t.Errorf("dia 12 deveria estar marcado como feriado")
	}

	matrix, err := svc.Matrix(ctx, created.ID)
	if err != nil {
		t.Fatalf("projeção de matriz falhou: %v", err)
	}
	if len(matrix.Rows) != 3 {
		t.Fatalf("linhas da matriz = %d, esperado 3", len(matrix.Rows))
	}
	if matrix.Rows[0].Cells[0].Code != "SD" {
		t.Errorf("célula (Ana, dia 1) = %q, esperado SD", matrix.Rows[0].Cells[0].Code)
	}
	if matrix.Rows[0].HoursLabel != "12" {
		t.Errorf("horas de Ana = %q, esperado 12", matrix.Rows[0].HoursLabel)
	}
}

func TestScheduleService_CalendarRejectsForeignFilter(t *testing.T) {
	env := newMockEnv()
	svc := NewScheduleService(env.repo, zap.NewNop())
	teamID, people, sdID, _ := seedRosterFixtures(t, env)
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateScheduleRequest{
		Month:            "2025-02",
		TeamID:           dto.FlexID(teamID),
		VisiblePeopleIDs: flexIDs(people),
		Entries: []dto.EntryPayload{
			{Day: 1, SlotID: dto.FlexID(sdID), PersonID: dto.FlexID(people[0])},
		},
	})
	if err != nil {
		t.Fatalf("criação da escala falhou: %v", err)
	}

	if _, err := svc.Calendar(ctx, created.ID, []string{"pessoa-de-fora"}); !errors.Is(err, ErrPersonNotInTeam) {
		t.Errorf("esperado ErrPersonNotInTeam, veio %v", err)
	}

	// filtro por alguém da própria escala continua válido
	cal, err := svc.Calendar(ctx, created.ID, []string{people[0]})
	if err != nil {
		t.Fatalf("filtro por membro da equipe falhou: %v", err)
	}
	if len(cal.Days[0].Entries) != 1 {
		t.Errorf("dia 1 com %d entradas, esperado 1", len(cal.Days[0].Entries))
	}
}
