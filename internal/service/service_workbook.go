package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/kessan-converter/internal/logger"
	"github.com/MKhiriev/kessan-converter/models"
	"github.com/xuri/excelize/v2"
)

// statementSheet is one worksheet of the 事業年度終了届出書 workbook.
type statementSheet struct {
	Name  string
	Title string
}

// statementSheets mirrors the layout of the prefecture's filing form: one
// sheet per numbered form page.
var statementSheets = []statementSheet{
	{Name: "１５ (１)", Title: "貸借対照表（資産の部）"},
	{Name: "１５（２）", Title: "貸借対照表（負債の部）"},
	{Name: "１５（３）", Title: "貸借対照表（純資産の部）"},
	{Name: "１６（４）", Title: "損益計算書"},
	{Name: "１６（５）", Title: "損益計算書（営業外損益）・完成工事原価報告書"},
	{Name: "１７（６）", Title: "株主資本等変動計算書"},
}

// Header cells written on every sheet.
const (
	cellTitle        = "A1"
	cellSourceLabel  = "A3"
	cellSourceValue  = "B3"
	cellIDLabel      = "A4"
	cellIDValue      = "B4"
	cellCreatedLabel = "A5"
	cellCreatedValue = "B5"
	defaultSheetName = "Sheet1"
	labelColumnWidth = 14
	valueColumnWidth = 48
)

type excelWorkbookBuilder struct {
	now    func() time.Time
	logger *logger.Logger
}

// NewWorkbookBuilder returns a [WorkbookBuilder] that produces the filing
// workbook skeleton with excelize. The sheets carry their titles and the
// upload's metadata; figures are left for the user to fill in.
func NewWorkbookBuilder(logger *logger.Logger) WorkbookBuilder {
	return &excelWorkbookBuilder{
		now:    time.Now,
		logger: logger,
	}
}

func (b *excelWorkbookBuilder) Sheets() []string {
	names := make([]string, 0, len(statementSheets))
	for _, s := range statementSheets {
		names = append(names, s.Name)
	}
	return names
}

func (b *excelWorkbookBuilder) Build(ctx context.Context, doc models.ConvertDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			b.logger.Warn().Err(err).Msg("failed to close workbook")
		}
	}()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EEEEEE"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	created := b.now().Format("2006-01-02 15:04:05")

	for i, sheet := range statementSheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		cells := []struct {
			cell  string
			value any
		}{
			{cellTitle, sheet.Title},
			{cellSourceLabel, "元ファイル"},
			{cellSourceValue, doc.FileName},
			{cellIDLabel, "受付ID"},
			{cellIDValue, doc.ID},
			{cellCreatedLabel, "作成日時"},
			{cellCreatedValue, created},
		}
		for _, c := range cells {
			if err := f.SetCellValue(sheet.Name, c.cell, c.value); err != nil {
				return nil, fmt.Errorf("write %s!%s: %w", sheet.Name, c.cell, err)
			}
		}

		if err := f.SetCellStyle(sheet.Name, cellTitle, cellTitle, titleStyle); err != nil {
			return nil, fmt.Errorf("style %s: %w", sheet.Name, err)
		}
		if err := f.SetCellStyle(sheet.Name, cellSourceLabel, cellCreatedLabel, labelStyle); err != nil {
			return nil, fmt.Errorf("style %s: %w", sheet.Name, err)
		}
		if err := f.SetColWidth(sheet.Name, "A", "A", labelColumnWidth); err != nil {
			return nil, fmt.Errorf("column width %s: %w", sheet.Name, err)
		}
		if err := f.SetColWidth(sheet.Name, "B", "B", valueColumnWidth); err != nil {
			return nil, fmt.Errorf("column width %s: %w", sheet.Name, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   models.DefaultDownloadName,
		Subject: doc.FileName,
		Creator: "kessan-converter",
	}); err != nil {
		return nil, fmt.Errorf("set document properties: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	b.logger.Debug().Str("file", doc.FileName).Int("bytes", buf.Len()).Msg("workbook built")
	return buf.Bytes(), nil
}
