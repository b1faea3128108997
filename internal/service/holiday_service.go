package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"sobreaviso/backend/internal/dto"
	"sobreaviso/backend/internal/roster"
)

var (
	ErrInvalidICS       = errors.New("calendário ICS inválido")
	ErrMissingICSSource = errors.New("informe o conteúdo ICS ou a URL do calendário")
	ErrICSFetch         = errors.New("falha ao baixar o calendário da URL informada")
)

// Limite de leitura para calendários remotos
const maxICSBytes = 2 << 20

// HolidayService extrai de um arquivo ICS os dias de feriado de um mês,
// prontos para alimentar o preenchimento automático da escala
type HolidayService interface {
	Preview(ctx context.Context, req *dto.HolidayPreviewRequest) (*dto.HolidayPreviewResponse, error)
}

type holidayService struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHolidayService cria a implementação de HolidayService
func NewHolidayService(logger *zap.Logger) HolidayService {
	return &holidayService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (s *holidayService) Preview(ctx context.Context, req *dto.HolidayPreviewRequest) (*dto.HolidayPreviewResponse, error) {
	if _, _, err := roster.ParseMonth(req.Month); err != nil {
		return nil, ErrInvalidMonth
	}

	raw := req.ICS
	if raw == "" {
		if req.URL == "" {
			return nil, ErrMissingICSSource
		}
		fetched, err := s.fetchICS(ctx, req.URL)
		if err != nil {
			s.logger.Warn("falha ao baixar calendário ICS", zap.String("url", req.URL), zap.Error(err))
			return nil, ErrICSFetch
		}
		raw = fetched
	}

	cal, err := ics.ParseCalendar(strings.NewReader(raw))
	if err != nil {
		s.logger.Warn("falha ao interpretar ICS", zap.Error(err))
		return nil, ErrInvalidICS
	}

	seen := make(map[int]string)
	for _, evt := range cal.Events() {
		start := evt.GetProperty(ics.ComponentPropertyDtStart)
		if start == nil || start.Value == "" {
			continue
		}
		date, ok := parseICSDate(start.Value)
		if !ok {
			continue
		}
		if date.Format("2006-01") != req.Month {
			continue
		}
		day := date.Day()
		if _, exists := seen[day]; exists {
			continue
		}
		name := ""
		if summary := evt.GetProperty(ics.ComponentPropertySummary); summary != nil {
			name = summary.Value
		}
		seen[day] = name
	}

	resp := &dto.HolidayPreviewResponse{
		Month:    req.Month,
		Days:     make([]int, 0, len(seen)),
		Holidays: make([]dto.HolidayItem, 0, len(seen)),
	}
	for day := range seen {
		resp.Days = append(resp.Days, day)
	}
	sort.Ints(resp.Days)
	for _, day := range resp.Days {
		resp.Holidays = append(resp.Holidays, dto.HolidayItem{Day: day, Name: seen[day]})
	}
	return resp, nil
}

func (s *holidayService) fetchICS(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status inesperado %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxICSBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// parseICSDate aceita os formatos de DTSTART usuais: data pura, data e
// hora locais e data e hora em UTC
func parseICSDate(value string) (time.Time, bool) {
	for _, layout := range []string{"20060102", "20060102T150405", "20060102T150405Z"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
