package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"parts-analyzer/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	reportSheet       = "Анализ запчастей"
	reportMaxColWidth = 50
	reportColumns     = 10
)

var supplierFills = map[models.SupplierCode]string{
	models.SupplierIndustrialSupply: "CCFFCC",
	models.SupplierMachineParts:     "F9CB9C",
	models.SupplierFactoryStock:     "FFFFCC",
}

// ReportService renders price analyses into an .xlsx workbook on disk.
type ReportService struct {
	dir    string
	now    func() time.Time
	logger *zap.Logger
}

func NewReportService(dir string, logger *zap.Logger) *ReportService {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("Failed to create reports directory", zap.Error(err))
	}
	return &ReportService{dir: dir, now: time.Now, logger: logger}
}

func (s *ReportService) Dir() string {
	return s.dir
}

// Generate writes the workbook and returns its file name inside the reports directory.
func (s *ReportService) Generate(analyses []*models.PriceAnalysis, requester *models.Requester) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	now := s.now()
	w, err := newReportWriter()
	if err != nil {
		return "", err
	}
	defer func() {
		if err := w.f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := w.render(analyses, requester, now); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	fileName := fmt.Sprintf("parts_report_%s_%s.xlsx", now.Format("20060102_150405"), uuid.NewString()[:8])
	if err := w.f.SaveAs(filepath.Join(s.dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("Report generated", zap.String("file", fileName), zap.Int("parts", len(analyses)))
	return fileName, nil
}

type reportWriter struct {
	f      *excelize.File
	widths map[int]int
	styles reportStyles
}

type reportStyles struct {
	title, partHeader, tableHeader, bold int
	minRow, medianRow                    map[models.SupplierCode]int
	plainRow                             map[models.SupplierCode]int
}

func newReportWriter() (*reportWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		_ = f.Close()
		return nil, err
	}
	w := &reportWriter{f: f, widths: make(map[int]int)}
	if err := w.initStyles(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func (w *reportWriter) initStyles() error {
	var err error
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	if w.styles.title, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}, Alignment: center}); err != nil {
		return err
	}
	if w.styles.partHeader, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: "000000"}, Fill: solidFill("DDDDDD")}); err != nil {
		return err
	}
	if w.styles.tableHeader, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Fill: solidFill("CCCCCC"), Alignment: center}); err != nil {
		return err
	}
	if w.styles.bold, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return err
	}

	w.styles.plainRow = make(map[models.SupplierCode]int)
	w.styles.minRow = make(map[models.SupplierCode]int)
	w.styles.medianRow = make(map[models.SupplierCode]int)
	for code, color := range supplierFills {
		if w.styles.plainRow[code], err = w.f.NewStyle(&excelize.Style{Fill: solidFill(color)}); err != nil {
			return err
		}
		if w.styles.minRow[code], err = w.f.NewStyle(&excelize.Style{Fill: solidFill(color), Font: &excelize.Font{Bold: true, Color: "FF8C00"}}); err != nil {
			return err
		}
		if w.styles.medianRow[code], err = w.f.NewStyle(&excelize.Style{Fill: solidFill(color), Font: &excelize.Font{Bold: true, Color: "0000FF"}}); err != nil {
			return err
		}
	}
	return nil
}

func (w *reportWriter) set(col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(fmt.Sprint(value)); n > w.widths[col] {
		w.widths[col] = n
	}
	return w.f.SetCellValue(reportSheet, cell, value)
}

func (w *reportWriter) styleRange(fromCol, toCol, row, style int) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(reportSheet, from, to, style)
}

// mergedRow writes a value across columns 1..toCol. Merged cells do not count towards column width.
func (w *reportWriter) mergedRow(row, toCol int, value string, style int) error {
	from, _ := excelize.CoordinatesToCellName(1, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	if err := w.f.MergeCell(reportSheet, from, to); err != nil {
		return err
	}
	if err := w.f.SetCellValue(reportSheet, from, value); err != nil {
		return err
	}
	return w.f.SetCellStyle(reportSheet, from, to, style)
}

func (w *reportWriter) render(analyses []*models.PriceAnalysis, requester *models.Requester, now time.Time) error {
	title := "Отчет анализа промышленных запчастей\n" + now.Format("02.01.2006 15:04")
	if err := w.mergedRow(1, reportColumns, title, w.styles.title); err != nil {
		return err
	}
	if err := w.f.SetRowHeight(reportSheet, 1, 36); err != nil {
		return err
	}

	if requester != nil {
		username := requester.Username
		if username == "" {
			username = "Неизвестно"
		}
		if err := w.set(1, 2, "Пользователь: "+username); err != nil {
			return err
		}
		if err := w.set(2, 2, fmt.Sprintf("ID: %d", requester.UserID)); err != nil {
			return err
		}
	}

	row := 4
	for _, a := range analyses {
		next, err := w.renderPart(a, row)
		if err != nil {
			return fmt.Errorf("part %s: %w", a.PartNumber, err)
		}
		row = next
	}

	for col, width := range w.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(reportSheet, name, name, float64(min(width+2, reportMaxColWidth))); err != nil {
			return err
		}
	}
	return nil
}

func (w *reportWriter) renderPart(a *models.PriceAnalysis, row int) (int, error) {
	if err := w.mergedRow(row, reportColumns, fmt.Sprintf("Запчасть: %s - %s", a.PartNumber, a.Name), w.styles.partHeader); err != nil {
		return 0, err
	}
	row++

	info := [][2]string{
		{"Бренды", strings.Join(a.Brands, ", ")},
		{"Мин. цена", fmt.Sprintf("%d руб. (%s)", a.MinQuote.Price, a.MinQuote.SupplierName)},
		{"Мед. цена", fmt.Sprintf("%d руб. (%s)", a.MedianQuote.Price, a.MedianQuote.SupplierName)},
		{"Срок доставки", fmt.Sprintf("%d дней (мин.)", a.MinQuote.DeliveryDays)},
	}
	for _, kv := range info {
		if err := w.set(1, row, kv[0]); err != nil {
			return 0, err
		}
		if err := w.set(2, row, kv[1]); err != nil {
			return 0, err
		}
		row++
	}
	row++

	for i, header := range []string{"Поставщик", "Бренд", "Цена (руб.)", "Срок (дней)", "Примечание"} {
		if err := w.set(i+1, row, header); err != nil {
			return 0, err
		}
	}
	if err := w.styleRange(1, 5, row, w.styles.tableHeader); err != nil {
		return 0, err
	}
	row++

	for _, q := range a.AllQuotes {
		values := []interface{}{q.SupplierName, q.Brand, q.Price, q.DeliveryDays}
		for i, v := range values {
			if err := w.set(i+1, row, v); err != nil {
				return 0, err
			}
		}

		style, hasFill := w.styles.plainRow[q.Supplier]
		switch q.Price {
		case a.MinQuote.Price:
			if err := w.set(5, row, "МИНИМАЛЬНАЯ ЦЕНА"); err != nil {
				return 0, err
			}
			style, hasFill = w.rowStyle(w.styles.minRow, q.Supplier)
		case a.MedianQuote.Price:
			if err := w.set(5, row, "МЕДИАННАЯ ЦЕНА"); err != nil {
				return 0, err
			}
			style, hasFill = w.rowStyle(w.styles.medianRow, q.Supplier)
		}
		if hasFill {
			if err := w.styleRange(1, 5, row, style); err != nil {
				return 0, err
			}
		}
		row++
	}
	row++

	if err := w.mergedRow(row, 5, "Доступные аналоги:", w.styles.bold); err != nil {
		return 0, err
	}
	row++

	for _, est := range a.AnalogEstimates {
		if err := w.set(1, row, est.PartNumber); err != nil {
			return 0, err
		}
		if err := w.set(2, row, fmt.Sprintf("~%s руб.", est.EstimatedPrice.StringFixed(0))); err != nil {
			return 0, err
		}
		if err := w.set(3, row, string(est.Availability)); err != nil {
			return 0, err
		}
		row++
	}

	return row + 2, nil
}

// rowStyle falls back to a bold style for suppliers without a colour.
func (w *reportWriter) rowStyle(styles map[models.SupplierCode]int, code models.SupplierCode) (int, bool) {
	if style, ok := styles[code]; ok {
		return style, true
	}
	return w.styles.bold, true
}
