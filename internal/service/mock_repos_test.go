package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/internal/repository"
	pkgerrors "sobreaviso/backend/pkg/errors"
)

// Dublês de repositório em memória para os testes de serviço. Cada um
// implementa a interface real sobre um mapa simples e devolve
// gorm.ErrRecordNotFound quando a chave não existe.

// ── UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, int64(len(m.users)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── PersonRepository ──

type mockPersonRepo struct {
	people map[string]*model.Person
	seq    int
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{people: make(map[string]*model.Person)}
}

func (m *mockPersonRepo) Create(_ context.Context, person *model.Person) error {
	if person.PersonID == "" {
		m.seq++
		person.PersonID = fmt.Sprintf("person-%d", m.seq)
	}
	cp := *person
	m.people[person.PersonID] = &cp
	return nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id string) (*model.Person, error) {
	p, ok := m.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPersonRepo) GetByIDs(_ context.Context, ids []string) ([]model.Person, error) {
	var out []model.Person
	for _, id := range ids {
		if p, ok := m.people[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPersonRepo) List(_ context.Context, teamID, search string, offset, limit int) ([]model.Person, int64, error) {
	var out []model.Person
	for _, p := range m.people {
		if teamID != "" && p.TeamID != teamID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockPersonRepo) ListByTeam(_ context.Context, teamID string) ([]model.Person, error) {
	var out []model.Person
	for _, p := range m.people {
		if p.TeamID == teamID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPersonRepo) Update(_ context.Context, person *model.Person) error {
	if _, ok := m.people[person.PersonID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *person
	m.people[person.PersonID] = &cp
	return nil
}

func (m *mockPersonRepo) Delete(_ context.Context, id string) error {
	delete(m.people, id)
	return nil
}

// ── TeamRepository ──

type mockTeamRepo struct {
	teams   map[string]*model.Team
	sectors map[string][]string
	people  *mockPersonRepo
	seq     int
}

func newMockTeamRepo(people *mockPersonRepo) *mockTeamRepo {
	return &mockTeamRepo{
		teams:   make(map[string]*model.Team),
		sectors: make(map[string][]string),
		people:  people,
	}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team, sectorIDs []string) error {
	if team.TeamID == "" {
		m.seq++
		team.TeamID = fmt.Sprintf("team-%d", m.seq)
	}
	cp := *team
	m.teams[team.TeamID] = &cp
	m.sectors[team.TeamID] = sectorIDs
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	t, ok := m.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	// simula o preload de pessoas da equipe
	cp.People = nil
	for _, p := range m.people.people {
		if p.TeamID == id {
			cp.People = append(cp.People, *p)
		}
	}
	return &cp, nil
}

func (m *mockTeamRepo) List(_ context.Context, offset, limit int) ([]model.Team, int64, error) {
	var out []model.Team
	for _, t := range m.teams {
		out = append(out, *t)
	}
	return out, int64(len(m.teams)), nil
}

func (m *mockTeamRepo) ListAll(_ context.Context) ([]model.Team, error) {
	var out []model.Team
	for _, t := range m.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	if _, ok := m.teams[team.TeamID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *team
	m.teams[team.TeamID] = &cp
	return nil
}

func (m *mockTeamRepo) ReplaceSectors(_ context.Context, teamID string, sectorIDs []string) error {
	m.sectors[teamID] = sectorIDs
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id string) error {
	delete(m.teams, id)
	delete(m.sectors, id)
	return nil
}

// ── SectorRepository ──

type mockSectorRepo struct {
	sectors map[string]*model.Sector
	seq     int
}

func newMockSectorRepo() *mockSectorRepo {
	return &mockSectorRepo{sectors: make(map[string]*model.Sector)}
}

func (m *mockSectorRepo) Create(_ context.Context, sector *model.Sector) error {
	if sector.SectorID == "" {
		m.seq++
		sector.SectorID = fmt.Sprintf("sector-%d", m.seq)
	}
	cp := *sector
	m.sectors[sector.SectorID] = &cp
	return nil
}

func (m *mockSectorRepo) GetByID(_ context.Context, id string) (*model.Sector, error) {
	s, ok := m.sectors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSectorRepo) List(_ context.Context, hospitalID string, offset, limit int) ([]model.Sector, int64, error) {
	var out []model.Sector
	for _, s := range m.sectors {
		if hospitalID != "" && (s.HospitalID == nil || *s.HospitalID != hospitalID) {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockSectorRepo) Update(_ context.Context, sector *model.Sector) error {
	if _, ok := m.sectors[sector.SectorID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *sector
	m.sectors[sector.SectorID] = &cp
	return nil
}

func (m *mockSectorRepo) Delete(_ context.Context, id string) error {
	delete(m.sectors, id)
	return nil
}

// ── HospitalRepository ──

type mockHospitalRepo struct {
	hospitals map[string]*model.Hospital
	seq       int
}

func newMockHospitalRepo() *mockHospitalRepo {
	return &mockHospitalRepo{hospitals: make(map[string]*model.Hospital)}
}

func (m *mockHospitalRepo) Create(_ context.Context, hospital *model.Hospital) error {
	if hospital.HospitalID == "" {
		m.seq++
		hospital.HospitalID = fmt.Sprintf("hospital-%d", m.seq)
	}
	cp := *hospital
	m.hospitals[hospital.HospitalID] = &cp
	return nil
}

func (m *mockHospitalRepo) GetByID(_ context.Context, id string) (*model.Hospital, error) {
	h, ok := m.hospitals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	return &cp, nil
}

func (m *mockHospitalRepo) List(_ context.Context, offset, limit int) ([]model.Hospital, int64, error) {
	var out []model.Hospital
	for _, h := range m.hospitals {
		out = append(out, *h)
	}
	return out, int64(len(m.hospitals)), nil
}

func (m *mockHospitalRepo) Update(_ context.Context, hospital *model.Hospital) error {
	if _, ok := m.hospitals[hospital.HospitalID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *hospital
	m.hospitals[hospital.HospitalID] = &cp
	return nil
}

func (m *mockHospitalRepo) Delete(_ context.Context, id string) error {
	delete(m.hospitals, id)
	return nil
}

// ── TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots map[string]*model.TimeSlot
	order []string
	seq   int
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{slots: make(map[string]*model.TimeSlot)}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	if slot.TimeSlotID == "" {
		m.seq++
		slot.TimeSlotID = fmt.Sprintf("slot-%d", m.seq)
	}
	cp := *slot
	m.slots[slot.TimeSlotID] = &cp
	m.order = append(m.order, slot.TimeSlotID)
	return nil
}

func (m *mockTimeSlotRepo) GetByID(_ context.Context, id string) (*model.TimeSlot, error) {
	s, ok := m.slots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockTimeSlotRepo) GetByIDs(_ context.Context, ids []string) ([]model.TimeSlot, error) {
	var out []model.TimeSlot
	for _, id := range ids {
		if s, ok := m.slots[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockTimeSlotRepo) ListAll(_ context.Context) ([]model.TimeSlot, error) {
	var out []model.TimeSlot
	for _, id := range m.order {
		if s, ok := m.slots[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockTimeSlotRepo) Update(_ context.Context, slot *model.TimeSlot) error {
	if _, ok := m.slots[slot.TimeSlotID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *slot
	m.slots[slot.TimeSlotID] = &cp
	return nil
}

func (m *mockTimeSlotRepo) Delete(_ context.Context, id string) error {
	delete(m.slots, id)
	return nil
}

// ── ScheduleRepository ──

type mockScheduleRepo struct {
	schedules map[string]*model.Schedule
	people    *mockPersonRepo
	teams     *mockTeamRepo
	seq       int
}

func newMockScheduleRepo(people *mockPersonRepo, teams *mockTeamRepo) *mockScheduleRepo {
	return &mockScheduleRepo{
		schedules: make(map[string]*model.Schedule),
		people:    people,
		teams:     teams,
	}
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *model.Schedule, peopleIDs []string, entries []model.ScheduleEntry) error {
	if schedule.ScheduleID == "" {
		m.seq++
		schedule.ScheduleID = fmt.Sprintf("schedule-%d", m.seq)
	}
	cp := *schedule
	cp.Version = 1
	cp.People = m.materializePeople(schedule.ScheduleID, peopleIDs)
	cp.Entries = copyEntries(schedule.ScheduleID, entries)
	m.schedules[schedule.ScheduleID] = &cp
	schedule.Version = 1
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.Schedule, error) {
	s, ok := m.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.hydrate(s), nil
}

func (m *mockScheduleRepo) GetByTeamMonth(_ context.Context, teamID, month string) (*model.Schedule, error) {
	for _, s := range m.schedules {
		if s.TeamID == teamID && s.Month == month {
			return m.hydrate(s), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) List(_ context.Context, teamID, month string, offset, limit int) ([]model.Schedule, int64, error) {
	var out []model.Schedule
	for _, s := range m.schedules {
		if teamID != "" && s.TeamID != teamID {
			continue
		}
		if month != "" && s.Month != month {
			continue
		}
		out = append(out, *m.hydrate(s))
	}
	return out, int64(len(out)), nil
}

func (m *mockScheduleRepo) ListByMonth(_ context.Context, month string) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, s := range m.schedules {
		if s.Month == month {
			out = append(out, *m.hydrate(s))
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) UpdateVersioned(_ context.Context, schedule *model.Schedule, expectedVersion int, peopleIDs []string, entries []model.ScheduleEntry) error {
	stored, ok := m.schedules[schedule.ScheduleID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if stored.Version != expectedVersion {
		return pkgerrors.ErrOptimisticLock
	}
	stored.SEIProcess = schedule.SEIProcess
	stored.HolidayDays = schedule.HolidayDays
	stored.Version++
	stored.People = m.materializePeople(schedule.ScheduleID, peopleIDs)
	stored.Entries = copyEntries(schedule.ScheduleID, entries)
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	delete(m.schedules, id)
	return nil
}

func (m *mockScheduleRepo) materializePeople(scheduleID string, peopleIDs []string) []model.SchedulePerson {
	out := make([]model.SchedulePerson, 0, len(peopleIDs))
	for i, pid := range peopleIDs {
		sp := model.SchedulePerson{ScheduleID: scheduleID, PersonID: pid, Position: i}
		if p, ok := m.people.people[pid]; ok {
			cp := *p
			sp.Person = &cp
		}
		out = append(out, sp)
	}
	return out
}

func (m *mockScheduleRepo) hydrate(s *model.Schedule) *model.Schedule {
	cp := *s
	cp.People = m.materializePeople(s.ScheduleID, peopleIDsOf(s))
	cp.Entries = copyEntries(s.ScheduleID, s.Entries)
	if t, ok := m.teams.teams[s.TeamID]; ok {
		tc := *t
		cp.Team = &tc
	}
	return &cp
}

func peopleIDsOf(s *model.Schedule) []string {
	out := make([]string, 0, len(s.People))
	for _, sp := range s.People {
		out = append(out, sp.PersonID)
	}
	return out
}

func copyEntries(scheduleID string, entries []model.ScheduleEntry) []model.ScheduleEntry {
	out := make([]model.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		e.ScheduleID = scheduleID
		out = append(out, e)
	}
	return out
}

// ── Montagem do agregado ──

type mockEnv struct {
	repo      *repository.Repository
	users     *mockUserRepo
	people    *mockPersonRepo
	teams     *mockTeamRepo
	sectors   *mockSectorRepo
	hospitals *mockHospitalRepo
	slots     *mockTimeSlotRepo
	schedules *mockScheduleRepo
}

func newMockEnv() *mockEnv {
	users := newMockUserRepo()
	people := newMockPersonRepo()
	teams := newMockTeamRepo(people)
	sectors := newMockSectorRepo()
	hospitals := newMockHospitalRepo()
	slots := newMockTimeSlotRepo()
	schedules := newMockScheduleRepo(people, teams)
	return &mockEnv{
		repo: &repository.Repository{
			User:     users,
			Person:   people,
			Team:     teams,
			Sector:   sectors,
			Hospital: hospitals,
			TimeSlot: slots,
			Schedule: schedules,
		},
		users:     users,
		people:    people,
		teams:     teams,
		sectors:   sectors,
		hospitals: hospitals,
		slots:     slots,
		schedules: schedules,
	}
}
