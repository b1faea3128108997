package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/repository"
	"sobreaviso/backend/pkg/redis"
)

const onDutyCachePrefix = "onduty:"

// OnDutyService projeção pública de quem está de sobreaviso hoje,
// agregada por equipe com setor e hospital derivados. groupBy "sector"
// reagrupa a resposta por setor.
type OnDutyService interface {
	Today(ctx context.Context, groupBy string) (*dto.OnDutyResponse, error)
}

type onDutyService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *redis.Client // pode ser nil; a projeção degrada sem cache
	logger *zap.Logger
}

// NewOnDutyService cria a implementação de OnDutyService
func NewOnDutyService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) OnDutyService {
	return &onDutyService{cfg: cfg, repo: repo, cache: cache, logger: logger}
}

// Today devolve, por equipe, as pessoas com entrada no dia corrente.
// O dia inteiro conta como "de plantão", sem recorte por horário.
// O cache guarda sempre o agrupamento por equipe; o reagrupamento por
// setor é derivado depois.
func (s *onDutyService) Today(ctx context.Context, groupBy string) (*dto.OnDutyResponse, error) {
	loc, err := time.LoadLocation(s.cfg.App.Timezone)
	if err != nil {
		loc = time.Local
	}
	now := time.Now().In(loc)
	month := now.Format("2006-01")
	day := now.Day()

	cacheKey := onDutyCachePrefix + now.Format("2006-01-02")
	if s.cache != nil {
		if raw, cerr := s.cache.GetCached(ctx, cacheKey); cerr == nil {
			var groups []dto.OnDutyGroup
			if jerr := json.Unmarshal(raw, &groups); jerr == nil {
				if groupBy == "sector" {
					groups = regroupBySector(groups)
				}
				return &dto.OnDutyResponse{Now: now.Format(time.RFC3339), Data: groups}, nil
			}
		}
	}

	groups, err := s.buildGroups(ctx, month, day)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, jerr := json.Marshal(groups); jerr == nil {
			if cerr := s.cache.SetCached(ctx, cacheKey, raw, s.cfg.App.OnDutyCacheTTL); cerr != nil {
				s.logger.Warn("falha ao gravar cache do plantão público", zap.Error(cerr))
			}
		}
	}

	if groupBy == "sector" {
		groups = regroupBySector(groups)
	}
	return &dto.OnDutyResponse{Now: now.Format(time.RFC3339), Data: groups}, nil
}

// regroupBySector funde os grupos de equipe que compartilham setor.
// Equipes sem setor caem no grupo "N/A".
func regroupBySector(teamGroups []dto.OnDutyGroup) []dto.OnDutyGroup {
	bySector := make(map[string]*dto.OnDutyGroup)
	order := make([]string, 0, len(teamGroups))
	for _, g := range teamGroups {
		sector := g.Sector
		if sector == "" {
			sector = "N/A"
		}
		merged, ok := bySector[sector]
		if !ok {
			merged = &dto.OnDutyGroup{Sector: sector, Hospital: g.Hospital}
			bySector[sector] = merged
			order = append(order, sector)
		}
		merged.OnDuty = append(merged.OnDuty, g.OnDuty...)
	}

	groups := make([]dto.OnDutyGroup, 0, len(order))
	sort.Strings(order)
	for _, sector := range order {
		g := bySector[sector]
		sort.Slice(g.OnDuty, func(a, b int) bool {
			if g.OnDuty[a].TimeSlot != g.OnDuty[b].TimeSlot {
				return g.OnDuty[a].TimeSlot < g.OnDuty[b].TimeSlot
			}
			return g.OnDuty[a].Name < g.OnDuty[b].Name
		})
		groups = append(groups, *g)
	}
	return groups
}

func (s *onDutyService) buildGroups(ctx context.Context, month string, day int) ([]dto.OnDutyGroup, error) {
	schedules, err := s.repo.Schedule.ListByMonth(ctx, month)
	if err != nil {
		s.logger.Error("falha ao listar escalas do mês", zap.String("month", month), zap.Error(err))
		return nil, err
	}

	slotList, err := s.repo.TimeSlot.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	slotLabels := make(map[string]string, len(slotList))
	for _, slot := range slotList {
		slotLabels[slot.TimeSlotID] = slot.Label
	}

	groups := make([]dto.OnDutyGroup, 0, len(schedules))
	for i := range schedules {
		schedule := &schedules[i]

		people := make(map[string]*dto.OnDutyPerson)
		for _, sp := range schedule.People {
			if sp.Person != nil {
				people[sp.PersonID] = &dto.OnDutyPerson{
					ID:    sp.PersonID,
					Name:  sp.Person.Name,
					Phone: sp.Person.Phone,
				}
			}
		}

		var onDuty []dto.OnDutyPerson
		for _, e := range schedule.Entries {
			if e.Day != day {
				continue
			}
			p := dto.OnDutyPerson{ID: e.PersonID, Name: "N/A"}
			if known, ok := people[e.PersonID]; ok {
				p.Name = known.Name
				p.Phone = known.Phone
			}
			p.TimeSlot = slotLabels[e.SlotID]
			if p.TimeSlot == "" {
				p.TimeSlot = "N/A"
			}
			onDuty = append(onDuty, p)
		}
		if len(onDuty) == 0 {
			continue
		}
		sort.Slice(onDuty, func(a, b int) bool {
			if onDuty[a].TimeSlot != onDuty[b].TimeSlot {
				return onDuty[a].TimeSlot < onDuty[b].TimeSlot
			}
			return onDuty[a].Name < onDuty[b].Name
		})

		group := dto.OnDutyGroup{OnDuty: onDuty}
		if schedule.Team != nil {
			group.Team = schedule.Team.Name
		}
		// setor e hospital derivam do primeiro setor da equipe
		if team, terr := s.repo.Team.GetByID(ctx, schedule.TeamID); terr == nil && len(team.Sectors) > 0 {
			group.Sector = team.Sectors[0].Name
			if team.Sectors[0].Hospital != nil {
				group.Hospital = team.Sectors[0].Hospital.UO
			}
		}
		groups = append(groups, group)
	}

	sort.Slice(groups, func(a, b int) bool { return groups[a].Team < groups[b].Team })
	return groups, nil
}
