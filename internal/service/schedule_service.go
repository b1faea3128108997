package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/internal/roster"
)

// ── Erros de negócio do módulo de escalas ──

var (
	ErrScheduleNotFound     = errors.New("escala não encontrada")
	ErrDuplicateSchedule    = errors.New("já existe uma escala desta equipe para este mês")
	ErrInvalidMonth         = errors.New("mês inválido, use o formato AAAA-MM")
	ErrEntryDayOutOfRange   = errors.New("entrada com dia fora do mês da escala")
	ErrEntrySlotUnknown     = errors.New("entrada referencia faixa horária inexistente")
	ErrEntryPersonNotInTeam = errors.New("entrada referencia profissional de outra equipe")
	ErrPersonNotInTeam      = errors.New("profissional não pertence à equipe da escala")
	ErrScheduleForbidden    = errors.New("sem permissão para acessar escalas de outra equipe")
)

// ScheduleService ciclo de vida da escala mensal: criação, substituição
// integral, atribuição célula a célula, escadinha e projeções de visão
type ScheduleService interface {
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error

	SetAssignment(ctx context.Context, id string, req *dto.AssignmentRequest) (*dto.ScheduleResponse, error)
	SetVisiblePeople(ctx context.Context, id string, req *dto.VisiblePeopleRequest) (*dto.ScheduleResponse, error)
	AutoFill(ctx context.Context, id string, req *dto.AutoFillRequest) (*dto.ScheduleResponse, error)

	Calendar(ctx context.Context, id string, filterPersonIDs []string) (*roster.CalendarMonth, error)
	Matrix(ctx context.Context, id string) (*roster.Matrix, error)
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService cria a implementação de ScheduleService
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *scheduleService) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	year, month, err := roster.ParseMonth(req.Month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	teamID := req.TeamID.String()
	team, err := s.repo.Team.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	// rejeita duplicada antes de qualquer escrita
	if _, err := s.repo.Schedule.GetByTeamMonth(ctx, teamID, req.Month); err == nil {
		return nil, ErrDuplicateSchedule
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("falha ao verificar escala existente", zap.Error(err))
		return nil, err
	}

	peopleIDs, err := s.resolveVisiblePeople(ctx, team, req.VisiblePeopleIDs)
	if err != nil {
		return nil, err
	}

	entries, err := s.validateEntries(ctx, req.Entries, roster.DaysInMonth(year, month), team)
	if err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		TeamID:      teamID,
		Month:       req.Month,
		SEIProcess:  req.SEIProcess,
		HolidayDays: model.IntArray(req.HolidayDays),
	}
	if schedule.HolidayDays == nil {
		schedule.HolidayDays = model.IntArray{}
	}

	if err := s.repo.Schedule.Create(ctx, schedule, peopleIDs, toModelEntries(entries)); err != nil {
		s.logger.Error("falha ao criar escala", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, schedule.ScheduleID)
}

// ────────────────────── GetByID / List ──────────────────────

func (s *scheduleService) GetByID(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toScheduleResponse(schedule)

	_, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		s.logger.Error("falha ao montar o resumo da escala", zap.Error(err))
		return nil, err
	}
	resp.Summary = summarizeEntries(schedule.Entries, slots)
	return &resp, nil
}

// summarizeEntries agrega pessoas distintas, plantões e horas totais.
// Faixas removidas do catálogo não somam horas.
func summarizeEntries(entries []model.ScheduleEntry, slots map[string]roster.SlotInfo) *dto.ScheduleSummary {
	sum := &dto.ScheduleSummary{}
	seen := make(map[string]bool)
	for _, e := range entries {
		sum.Shifts++
		if !seen[e.PersonID] {
			seen[e.PersonID] = true
			sum.People++
		}
		if slot, ok := slots[e.SlotID]; ok {
			if h, derr := roster.SlotDurationHours(slot.StartTime, slot.EndTime); derr == nil {
				sum.TotalHours += h
			}
		}
	}
	sum.HoursLabel = roster.FormatHours(sum.TotalHours)
	return sum
}

func (s *scheduleService) List(ctx context.Context, req *dto.ScheduleListRequest) ([]dto.ScheduleResponse, int64, error) {
	schedules, total, err := s.repo.Schedule.List(ctx, req.TeamID, req.Month, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar escalas", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		result = append(result, toScheduleResponse(&schedules[i]))
	}
	return result, total, nil
}

// ────────────────────── Update ──────────────────────

// Update substitui a escala por inteiro, condicionada à versão enviada
func (s *scheduleService) Update(ctx context.Context, id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	year, month, _ := roster.ParseMonth(schedule.Month)

	team, err := s.repo.Team.GetByID(ctx, schedule.TeamID)
	if err != nil {
		return nil, err
	}

	peopleIDs, err := s.resolveVisiblePeople(ctx, team, req.VisiblePeopleIDs)
	if err != nil {
		return nil, err
	}

	entries, err := s.validateEntries(ctx, req.Entries, roster.DaysInMonth(year, month), team)
	if err != nil {
		return nil, err
	}

	if req.SEIProcess != nil {
		schedule.SEIProcess = *req.SEIProcess
	}
	if req.HolidayDays != nil {
		schedule.HolidayDays = model.IntArray(req.HolidayDays)
	}

	if err := s.repo.Schedule.UpdateVersioned(ctx, schedule, req.Version, peopleIDs, toModelEntries(entries)); err != nil {
		s.logger.Error("falha ao atualizar escala", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.loadSchedule(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		s.logger.Error("falha ao excluir escala", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── SetAssignment ──────────────────────

// SetAssignment aplica uma única atribuição de célula. PersonID ausente
// remove a ocupante de (dia, faixa).
func (s *scheduleService) SetAssignment(ctx context.Context, id string, req *dto.AssignmentRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	year, month, _ := roster.ParseMonth(schedule.Month)
	if req.Day < 1 || req.Day > roster.DaysInMonth(year, month) {
		return nil, ErrEntryDayOutOfRange
	}

	slotID := req.SlotID.String()
	if _, err := s.repo.TimeSlot.GetByID(ctx, slotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntrySlotUnknown
		}
		return nil, err
	}

	personID := ""
	if req.PersonID != nil {
		personID = req.PersonID.String()
	}
	if personID != "" {
		person, perr := s.repo.Person.GetByID(ctx, personID)
		if perr != nil {
			if errors.Is(perr, gorm.ErrRecordNotFound) {
				return nil, ErrPersonNotFound
			}
			return nil, perr
		}
		if person.TeamID != schedule.TeamID {
			return nil, ErrPersonNotInTeam
		}
	}

	entries := roster.SetAssignment(entriesFromModel(schedule.Entries), req.Day, slotID, personID)

	if err := s.repo.Schedule.UpdateVersioned(ctx, schedule, req.Version, currentPeopleIDs(schedule), toModelEntries(entries)); err != nil {
		s.logger.Error("falha ao gravar atribuição", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── SetVisiblePeople ──────────────────────

// SetVisiblePeople troca as linhas visíveis da escala. Entradas de
// pessoas que saíram do conjunto são podadas.
func (s *scheduleService) SetVisiblePeople(ctx context.Context, id string, req *dto.VisiblePeopleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.Team.GetByID(ctx, schedule.TeamID)
	if err != nil {
		return nil, err
	}

	peopleIDs, err := s.resolveVisiblePeople(ctx, team, req.PersonIDs)
	if err != nil {
		return nil, err
	}

	pruned := roster.Prune(entriesFromModel(schedule.Entries), peopleIDs)

	if err := s.repo.Schedule.UpdateVersioned(ctx, schedule, req.Version, peopleIDs, toModelEntries(pruned)); err != nil {
		s.logger.Error("falha ao trocar pessoas visíveis", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── AutoFill ──────────────────────

// AutoFill regenera o mês inteiro pela escadinha, substituindo todas as
// entradas. As faixas SN e SD são localizadas no catálogo pelo código
// derivado do rótulo.
func (s *scheduleService) AutoFill(ctx context.Context, id string, req *dto.AutoFillRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	year, month, _ := roster.ParseMonth(schedule.Month)

	slots, err := s.repo.TimeSlot.ListAll(ctx)
	if err != nil {
		s.logger.Error("falha ao listar faixas para a escadinha", zap.Error(err))
		return nil, err
	}
	nightSlotID, daySlotID := "", ""
	for _, slot := range slots {
		switch roster.ShortCode(slot.Label) {
		case "SN":
			if nightSlotID == "" {
				nightSlotID = slot.TimeSlotID
			}
		case "SD":
			if daySlotID == "" {
				daySlotID = slot.TimeSlotID
			}
		}
	}

	holidayDays := []int(schedule.HolidayDays)
	if req.HolidayDays != nil {
		holidayDays = req.HolidayDays
		schedule.HolidayDays = model.IntArray(req.HolidayDays)
	}

	entries, err := roster.AutoFill(roster.AutoFillInput{
		Year:          year,
		Month:         int(month),
		PeopleIDs:     currentPeopleIDs(schedule),
		NightSlotID:   nightSlotID,
		DaySlotID:     daySlotID,
		HolidayDays:   holidayDays,
		StartPersonID: req.StartPersonID.String(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.Schedule.UpdateVersioned(ctx, schedule, req.Version, currentPeopleIDs(schedule), toModelEntries(entries)); err != nil {
		s.logger.Error("falha ao gravar escadinha", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Projeções ──────────────────────

func (s *scheduleService) Calendar(ctx context.Context, id string, filterPersonIDs []string) (*roster.CalendarMonth, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	people, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		return nil, err
	}
	if err := validateFilterPeople(filterPersonIDs, people); err != nil {
		return nil, err
	}
	return roster.BuildCalendar(schedule.Month, entriesFromModel(schedule.Entries), people, slots, []int(schedule.HolidayDays), filterPersonIDs)
}

// validateFilterPeople rejeita filtros que referenciam profissionais
// desconhecidos da escala
func validateFilterPeople(filterPersonIDs []string, people map[string]roster.PersonInfo) error {
	for _, raw := range filterPersonIDs {
		pid := roster.NormalizeID(raw)
		if pid == "" {
			continue
		}
		if _, ok := people[pid]; !ok {
			return fmt.Errorf("%w: %s", ErrPersonNotInTeam, pid)
		}
	}
	return nil
}

func (s *scheduleService) Matrix(ctx context.Context, id string) (*roster.Matrix, error) {
	schedule, err := s.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	_, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		return nil, err
	}
	return roster.BuildMatrix(schedule.Month, entriesFromModel(schedule.Entries), visiblePersonInfos(schedule), slots, []int(schedule.HolidayDays))
}

// ── Auxiliares internos ──

func (s *scheduleService) loadSchedule(ctx context.Context, id string) (*model.Schedule, error) {
	schedule, err := s.repo.Schedule.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("falha ao buscar escala", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return schedule, nil
}

// resolveVisiblePeople valida que as pessoas pertencem à equipe e
// preserva a ordem enviada. Lista vazia recai em toda a equipe.
func (s *scheduleService) resolveVisiblePeople(ctx context.Context, team *model.Team, ids []dto.FlexID) ([]string, error) {
	if len(ids) == 0 {
		people, err := s.repo.Person.ListByTeam(ctx, team.TeamID)
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(people))
		for _, p := range people {
			out = append(out, p.PersonID)
		}
		return out, nil
	}

	teamPeople := make(map[string]bool, len(team.People))
	for _, p := range team.People {
		teamPeople[p.PersonID] = true
	}

	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, fid := range ids {
		pid := roster.NormalizeID(fid.String())
		if pid == "" || seen[pid] {
			continue
		}
		if !teamPeople[pid] {
			return nil, fmt.Errorf("%w: %s", ErrPersonNotInTeam, pid)
		}
		seen[pid] = true
		out = append(out, pid)
	}
	return out, nil
}

// validateEntries normaliza, deduplica e valida o lote de entradas
func (s *scheduleService) validateEntries(ctx context.Context, payload []dto.EntryPayload, daysInMonth int, team *model.Team) ([]roster.Entry, error) {
	teamPeople := make(map[string]bool, len(team.People))
	for _, p := range team.People {
		teamPeople[p.PersonID] = true
	}

	entries := make([]roster.Entry, 0, len(payload))
	slotSeen := make(map[string]bool)
	for _, ep := range payload {
		e := ep.ToEntry()
		if e.PersonID == "" {
			// slot sem pessoa não é persistido
			continue
		}
		if e.Day < 1 || e.Day > daysInMonth {
			return nil, ErrEntryDayOutOfRange
		}
		if !slotSeen[e.SlotID] {
			if _, err := s.repo.TimeSlot.GetByID(ctx, e.SlotID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrEntrySlotUnknown
				}
				return nil, err
			}
			slotSeen[e.SlotID] = true
		}
		if !teamPeople[e.PersonID] {
			return nil, ErrEntryPersonNotInTeam
		}
		entries = append(entries, e)
	}
	return roster.Dedupe(entries), nil
}

// ── Conversões ──

func entriesFromModel(entries []model.ScheduleEntry) []roster.Entry {
	out := make([]roster.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, roster.Entry{Day: e.Day, SlotID: e.SlotID, PersonID: e.PersonID})
	}
	return out
}

func toModelEntries(entries []roster.Entry) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.ScheduleEntry{Day: e.Day, SlotID: e.SlotID, PersonID: e.PersonID})
	}
	return out
}

func currentPeopleIDs(schedule *model.Schedule) []string {
	out := make([]string, 0, len(schedule.People))
	for _, sp := range schedule.People {
		out = append(out, sp.PersonID)
	}
	return out
}

func visiblePersonInfos(schedule *model.Schedule) []roster.PersonInfo {
	out := make([]roster.PersonInfo, 0, len(schedule.People))
	for _, sp := range schedule.People {
		info := roster.PersonInfo{ID: sp.PersonID, Name: "N/A"}
		if sp.Person != nil {
			info.Name = sp.Person.Name
			info.Matricula = sp.Person.Matricula
			info.Cargo = sp.Person.Cargo
		}
		out = append(out, info)
	}
	return out
}

// buildLookups monta os mapas de consulta de pessoas e faixas usados
// pelas projeções. Compartilhado com a exportação.
func buildLookups(ctx context.Context, repo *repository.Repository, schedule *model.Schedule) (map[string]roster.PersonInfo, map[string]roster.SlotInfo, error) {
	people := make(map[string]roster.PersonInfo)
	for _, sp := range schedule.People {
		if sp.Person != nil {
			people[sp.PersonID] = roster.PersonInfo{
				ID:        sp.PersonID,
				Name:      sp.Person.Name,
				Matricula: sp.Person.Matricula,
				Cargo:     sp.Person.Cargo,
			}
		}
	}
	// entradas podem referenciar pessoas fora da lista visível (dados
	// antigos); busca o restante em lote
	var missing []string
	seen := make(map[string]bool)
	for _, e := range schedule.Entries {
		if _, ok := people[e.PersonID]; !ok && !seen[e.PersonID] {
			seen[e.PersonID] = true
			missing = append(missing, e.PersonID)
		}
	}
	if len(missing) > 0 {
		extra, err := repo.Person.GetByIDs(ctx, missing)
		if err != nil {
			return nil, nil, err
		}
		for _, p := range extra {
			people[p.PersonID] = roster.PersonInfo{
				ID:        p.PersonID,
				Name:      p.Name,
				Matricula: p.Matricula,
				Cargo:     p.Cargo,
			}
		}
	}

	slotList, err := repo.TimeSlot.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	slots := make(map[string]roster.SlotInfo, len(slotList))
	for _, sl := range slotList {
		slots[sl.TimeSlotID] = roster.SlotInfo{
			ID:        sl.TimeSlotID,
			Label:     sl.Label,
			StartTime: sl.StartTime,
			EndTime:   sl.EndTime,
		}
	}
	return people, slots, nil
}

func toScheduleResponse(schedule *model.Schedule) dto.ScheduleResponse {
	resp := dto.ScheduleResponse{
		ID:          schedule.ScheduleID,
		Month:       schedule.Month,
		TeamID:      schedule.TeamID,
		SEIProcess:  schedule.SEIProcess,
		HolidayDays: []int(schedule.HolidayDays),
		People:      make([]dto.PersonBrief, 0, len(schedule.People)),
		Entries:     entriesFromModel(schedule.Entries),
		Version:     schedule.Version,
		CreatedAt:   schedule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   schedule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if resp.HolidayDays == nil {
		resp.HolidayDays = []int{}
	}
	if schedule.Team != nil {
		resp.Team = &dto.TeamBrief{ID: schedule.Team.TeamID, Name: schedule.Team.Name}
	}
	for _, sp := range schedule.People {
		brief := dto.PersonBrief{ID: sp.PersonID, Name: "N/A"}
		if sp.Person != nil {
			brief.Name = sp.Person.Name
			brief.Matricula = sp.Person.Matricula
			brief.Cargo = sp.Person.Cargo
		}
		resp.People = append(resp.People, brief)
	}
	return resp
}
