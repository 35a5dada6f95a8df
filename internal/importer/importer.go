// Package importer reads oil lists into ledger rows from CSV and Excel
// files, and whole recipes from the legacy web calculator's JSON dump.
// CSV import supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/latherlab/saponify/internal/model"
)

// ImportResult holds the results of an import operation. Rows that
// could not be parsed land in Errors; recoverable oddities in Warnings.
type ImportResult struct {
	Oils     []model.OilEntry
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name    int
	Weight  int
	Percent int
	SAP     int
	Iodine  int
	INS     int
}

// headerAliases maps canonical column names to their accepted aliases
// (all lowercase).
var headerAliases = map[string][]string{
	"name":    {"name", "oil", "oil name", "ingredient", "fat", "label"},
	"weight":  {"weight", "weight_g", "grams", "g", "amount", "mass"},
	"percent": {"percent", "pct", "%", "share", "ratio"},
	"sap":     {"sap", "sap koh", "sap_koh", "sap value", "saponification"},
	"iodine":  {"iodine", "iodine value", "iodine_value", "iv"},
	"ins":     {"ins", "ins value", "ins_value"},
}

// DetectCSVDelimiter determines the most likely CSV delimiter among
// comma, semicolon, tab and pipe. The delimiter producing the most
// consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// matches case-insensitively against known aliases for each role.
// Returns the mapping and true if a header was detected, or a default
// positional mapping (name, weight, percent, sap, iodine) and false.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Name: -1, Weight: -1, Percent: -1, SAP: -1, Iodine: -1, INS: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "name":
					if mapping.Name == -1 {
						mapping.Name = i
					}
				case "weight":
					if mapping.Weight == -1 {
						mapping.Weight = i
					}
				case "percent":
					if mapping.Percent == -1 {
						mapping.Percent = i
					}
				case "sap":
					if mapping.SAP == -1 {
						mapping.SAP = i
					}
				case "iodine":
					if mapping.Iodine == -1 {
						mapping.Iodine = i
					}
				case "ins":
					if mapping.INS == -1 {
						mapping.INS = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Name: 0, Weight: 1, Percent: 2, SAP: 3, Iodine: 4, INS: -1}, false
	}
	return mapping, true
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts an oil entry from a row using the given mapping.
// Returns the entry, an error message, and a warning message; empty
// strings mean none.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, oilCount int) (model.OilEntry, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Oil %d", oilCount+1)
	}
	oil := model.NewOilEntry(name)

	var warning string
	weightStr := getCell(row, mapping.Weight)
	percentStr := getCell(row, mapping.Percent)
	if weightStr == "" && percentStr == "" {
		return model.OilEntry{}, fmt.Sprintf("%s: missing both weight and percent", rowLabel), ""
	}

	if weightStr != "" {
		w, err := strconv.ParseFloat(weightStr, 64)
		if err != nil || w < 0 {
			return model.OilEntry{}, fmt.Sprintf("%s: invalid weight '%s'", rowLabel, weightStr), ""
		}
		oil.WeightG = w
		oil.LastEdited = model.FieldWeight
	}
	if percentStr != "" {
		p, err := strconv.ParseFloat(strings.TrimSuffix(percentStr, "%"), 64)
		if err != nil || p < 0 {
			return model.OilEntry{}, fmt.Sprintf("%s: invalid percent '%s'", rowLabel, percentStr), ""
		}
		oil.Percent = p
		if weightStr == "" {
			oil.LastEdited = model.FieldPercent
		}
	}

	if s := getCell(row, mapping.SAP); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			warning = fmt.Sprintf("%s: ignoring invalid SAP value '%s'", rowLabel, s)
		} else {
			oil.SAPKoh = v
		}
	}
	if s := getCell(row, mapping.Iodine); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 {
			oil.IodineValue = v
		}
	}
	if s := getCell(row, mapping.INS); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 {
			oil.INSValue = v
		}
	}

	return oil, "", warning
}

// parseRows converts raw rows into an ImportResult, detecting a header
// row first.
func parseRows(rows [][]string) ImportResult {
	var result ImportResult
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "file contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		result.Warnings = append(result.Warnings, "no header row detected; assuming name, weight, percent, sap, iodine columns")
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("row %d", i+1)
		oil, errMsg, warnMsg := parseRow(row, mapping, rowLabel, len(result.Oils))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warnMsg != "" {
			result.Warnings = append(result.Warnings, warnMsg)
		}
		result.Oils = append(result.Oils, oil)
	}
	return result
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSVData parses an oil list from raw CSV bytes.
func ImportCSVData(data []byte) ImportResult {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to parse CSV: %v", err)}}
	}
	return parseRows(rows)
}

// ImportCSV reads an oil list from a CSV file.
func ImportCSV(path string) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read CSV file: %w", err)
	}
	return ImportCSVData(data), nil
}

// ImportXLSX reads an oil list from the first sheet of an Excel file.
func ImportXLSX(path string) (ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"workbook contains no sheets"}}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return parseRows(rows), nil
}

// Import dispatches on the file extension: .xlsx goes through Excel
// import, everything else is treated as CSV.
func Import(path string) (ImportResult, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ImportXLSX(path)
	}
	return ImportCSV(path)
}
