package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// DetectFormat picks a Format from the input file extension, defaulting to
// CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return FormatXLSX
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatCSV
	}
}

// ReadRows parses a spreadsheet export into positional rows.
func ReadRows(format Format, r io.Reader) ([][]string, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatXLSX:
		return readXLSX(r)
	case FormatHTML:
		return readHTML(r)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", format)
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %s: %w", sheet, err)
	}
	for i := range rows {
		rows[i] = padRow(rows[i])
	}
	return rows, nil
}

func readHTML(r io.Reader) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("read html: no table found")
	}

	rows := [][]string{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := []string{}
		row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, padRow(cells))
	})
	return rows, nil
}

// padRow widens rows to the expected column count; the xlsx and html readers
// drop trailing empty cells.
func padRow(cells []string) []string {
	for len(cells) < rowWidth {
		cells = append(cells, "")
	}
	return cells
}
