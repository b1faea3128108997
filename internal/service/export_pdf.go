package service

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"sobreaviso/backend/internal/roster"
)

// ────────────────────── PDF: matriz ──────────────────────

func (s *exportService) MatrixPDF(ctx context.Context, scheduleID string) (*ExportFile, error) {
	schedule, header, err := s.loadSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	_, slots, err := buildLookups(ctx, s.repo, schedule)
	if err != nil {
		return nil, err
	}
	matrix, err := roster.BuildMatrix(schedule.Month, entriesFromModel(schedule.Entries), visiblePersonInfos(schedule), slots, []int(schedule.HolidayDays))
	if err != nil {
		return nil, err
	}

	data, err := renderMatrixPDF(matrix, header)
	if err != nil {
		s.logger.Error("falha ao gerar PDF da matriz", zap.String("id", scheduleID), zap.Error(err))
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename(header.TeamName, schedule.Month, "matriz", "pdf"),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

func renderMatrixPDF(matrix *roster.Matrix, header exportHeader) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(40, 40, 40)
	pdf.SetAutoPageBreak(false, 40)

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 80

	const (
		matricW   = 50.0
		cargoW    = 80.0
		countW    = 22.0
		hoursW    = 32.0
		dayW      = 15.0
		headerH   = 26.0
		rowH      = 14.0
		gridHeadH = 22.0
	)
	nameW := contentW - matricW - cargoW - countW - hoursW - dayW*float64(len(matrix.Days))

	drawPageHeader := func() {
		pdf.SetTextColor(15, 23, 42)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(contentW, 18, tr(header.Title), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 14, tr(headerLine(header)), "", 1, "C", false, 0, "")
		pdf.Ln(6)
	}

	drawGridHeader := func() {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.SetFillColor(226, 232, 240)
		pdf.SetDrawColor(148, 163, 184)
		pdf.SetTextColor(15, 23, 42)
		x, y := pdf.GetX(), pdf.GetY()

		pdf.CellFormat(matricW, gridHeadH, tr("Matrícula"), "1", 0, "C", true, 0, "")
		pdf.CellFormat(nameW, gridHeadH, "Nome", "1", 0, "C", true, 0, "")
		pdf.CellFormat(cargoW, gridHeadH, "Cargo", "1", 0, "C", true, 0, "")
		for _, day := range matrix.Days {
			if day.Weekend || day.Holiday {
				pdf.SetFillColor(203, 213, 225)
			} else {
				pdf.SetFillColor(226, 232, 240)
			}
			dx := pdf.GetX()
			pdf.CellFormat(dayW, gridHeadH/2, intString(day.Day), "1", 0, "C", true, 0, "")
			pdf.SetXY(dx, y+gridHeadH/2)
			pdf.CellFormat(dayW, gridHeadH/2, day.Initial, "1", 0, "C", true, 0, "")
			pdf.SetXY(dx+dayW, y)
		}
		pdf.SetFillColor(226, 232, 240)
		pdf.CellFormat(countW, gridHeadH, "P", "1", 0, "C", true, 0, "")
		pdf.CellFormat(hoursW, gridHeadH, "H", "1", 0, "C", true, 0, "")
		pdf.SetXY(x, y+gridHeadH)
	}

	pdf.AddPage()
	drawPageHeader()
	drawGridHeader()

	for _, row := range matrix.Rows {
		if pdf.GetY()+rowH > pageH-40 {
			pdf.AddPage()
			drawPageHeader()
			drawGridHeader()
		}
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(matricW, rowH, tr(row.Matricula), "1", 0, "C", false, 0, "")
		pdf.CellFormat(nameW, rowH, tr(fitName(pdf, tr, row.Name, nameW-4)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(cargoW, rowH, tr(clipText(pdf, tr, row.Cargo, cargoW-4)), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 7)
		for _, c := range row.Cells {
			if c.Code == "" {
				pdf.SetTextColor(148, 163, 184)
				pdf.CellFormat(dayW, rowH, "-", "1", 0, "C", false, 0, "")
				continue
			}
			color := roster.ColorFor(c.Code)
			fr, fg, fb := color.FillRGB()
			cr, cg, cb := color.TextRGB()
			pdf.SetFillColor(fr, fg, fb)
			pdf.SetTextColor(cr, cg, cb)
			pdf.CellFormat(dayW, rowH, c.Code, "1", 0, "C", true, 0, "")
		}
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(15, 23, 42)
		pdf.CellFormat(countW, rowH, intString(row.ShiftCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(hoursW, rowH, row.HoursLabel, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ────────────────────── PDF: calendário ──────────────────────

func (s *exportService) CalendarPDF(ctx context.Context, scheduleID string, filterPersonIDs []string) (*ExportFile, error) {
	schedule, header, err := s.loadSchedule(ctx, scheduleID)
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
	cal, err := roster.BuildCalendar(schedule.Month, entriesFromModel(schedule.Entries), people, slots, []int(schedule.HolidayDays), filterPersonIDs)
	if err != nil {
		return nil, err
	}

	data, err := renderCalendarPDF(cal, header)
	if err != nil {
		s.logger.Error("falha ao gerar PDF do calendário", zap.String("id", scheduleID), zap.Error(err))
		return nil, err
	}
	return &ExportFile{
		Filename:    exportFilename(header.TeamName, schedule.Month, "calendario", "pdf"),
		ContentType: contentTypePDF,
		Data:        data,
	}, nil
}

func renderCalendarPDF(cal *roster.CalendarMonth, header exportHeader) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(40, 40, 40)
	pdf.SetAutoPageBreak(false, 40)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 80
	colW := contentW / 7

	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 18, tr(header.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 14, tr(headerLine(header)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(226, 232, 240)
	pdf.SetDrawColor(148, 163, 184)
	for _, ini := range []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"} {
		pdf.CellFormat(colW, 16, tr(ini), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	totalCells := cal.LeadingBlanks + len(cal.Days)
	weekRows := (totalCells + 6) / 7
	cellH := (pageH - pdf.GetY() - 40) / float64(weekRows)
	const lineH = 9.0
	maxLines := int((cellH - 14) / lineH)
	if maxLines < 1 {
		maxLines = 1
	}

	gridX, gridY := pdf.GetX(), pdf.GetY()
	dayIdx := 0
	for wr := 0; wr < weekRows; wr++ {
		for wc := 0; wc < 7; wc++ {
			cellIdx := wr*7 + wc
			x := gridX + float64(wc)*colW
			y := gridY + float64(wr)*cellH
			if cellIdx < cal.LeadingBlanks || dayIdx >= len(cal.Days) {
				pdf.Rect(x, y, colW, cellH, "D")
				continue
			}
			day := cal.Days[dayIdx]
			dayIdx++

			if day.Weekend || day.Holiday {
				pdf.SetFillColor(241, 245, 249)
				pdf.Rect(x, y, colW, cellH, "FD")
			} else {
				pdf.Rect(x, y, colW, cellH, "D")
			}

			pdf.SetFont("Helvetica", "B", 8)
			pdf.SetTextColor(15, 23, 42)
			pdf.SetXY(x+3, y+2)
			pdf.CellFormat(colW-6, 10, intString(day.Day), "", 0, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 7)
			for i, e := range day.Entries {
				if i >= maxLines {
					break
				}
				cr, cg, cb := roster.ColorFor(e.SlotCode).TextRGB()
				pdf.SetTextColor(cr, cg, cb)
				line := e.SlotCode + " " + e.FirstName
				pdf.SetXY(x+3, y+13+float64(i)*lineH)
				pdf.CellFormat(colW-6, lineH, tr(clipText(pdf, tr, line, colW-8)), "", 0, "L", false, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── Ajuste de texto ──

// fitName encurta um nome para caber na largura dada: primeiro abrevia
// apenas o penúltimo nome para a inicial com ponto, depois recorre à
// reticência. Nenhum outro token é alterado.
func fitName(pdf *gofpdf.Fpdf, tr func(string) string, name string, width float64) string {
	if pdf.GetStringWidth(tr(name)) <= width {
		return name
	}
	tokens := strings.Fields(name)
	if len(tokens) >= 3 {
		idx := len(tokens) - 2
		abbreviated := string([]rune(tokens[idx])[0]) + "."
		shortened := append(append([]string{}, tokens[:idx]...), abbreviated)
		shortened = append(shortened, tokens[idx+1:]...)
		candidate := strings.Join(shortened, " ")
		if pdf.GetStringWidth(tr(candidate)) <= width {
			return candidate
		}
		name = candidate
	}
	return clipText(pdf, tr, name, width)
}

// clipText recorta o texto com reticência quando excede a largura
func clipText(pdf *gofpdf.Fpdf, tr func(string) string, text string, width float64) string {
	if pdf.GetStringWidth(tr(text)) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + "…"
		if pdf.GetStringWidth(tr(candidate)) <= width {
			return candidate
		}
	}
	return "…"
}

func intString(v int) string {
	return strconv.Itoa(v)
}
