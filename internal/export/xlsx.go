// Package export writes a user's Sprachgarten as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// ContentType is the MIME type of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"Nemački", "Član", "Prevod", "Vrsta reči", "Napomena", "Dodato"}

// VocabularyXLSX writes one sheet per vocabulary tab, in tab order. Words
// keep the order they are given in. Tabs without words still get a sheet
// with the header row.
func VocabularyXLSX(w io.Writer, words []domain.VocabularyWord) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	byTab := make(map[domain.VocabularyTab][]domain.VocabularyWord, len(domain.AllTabs))
	for _, word := range words {
		byTab[word.Tab()] = append(byTab[word.Tab()], word)
	}

	for i, tab := range domain.AllTabs {
		sheet := string(tab)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, bold, byTab[tab]); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, words []domain.VocabularyWord) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header of %s: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("style header of %s: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "C", 24); err != nil {
		return fmt.Errorf("set widths of %s: %w", sheet, err)
	}

	for i, word := range words {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			word.German,
			word.Article,
			word.Serbian,
			string(word.PartOfSpeech),
			word.Info,
			word.AddedAt.Format("2006-01-02"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, sheet, err)
		}
	}
	return nil
}
