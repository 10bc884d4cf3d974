// Package export writes a snapshot of a recipe list to a spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/pocketchef/internal/domain"
)

const sheet = "Recipes"

// Header is the column layout shared by every format.
var Header = []string{
	"id", "title", "cook_time_min", "servings", "cost_per_serving", "difficulty",
	"tags", "calories", "protein_g", "carbs_g", "fat_g",
}

// Write saves recipes to path. The format follows the extension: .xlsx or
// .csv. Anything else fails with domain.ErrUnsupportedFormat.
func Write(path string, recipes []*domain.Recipe) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, recipes)
	case ".csv":
		return writeCSV(path, recipes)
	}
	return fmt.Errorf("%w: %q (use .xlsx or .csv)", domain.ErrUnsupportedFormat, path)
}

// Row flattens a recipe into Header order.
func Row(r *domain.Recipe) []string {
	return []string{
		r.ID,
		r.Title,
		strconv.Itoa(r.CookTime),
		strconv.Itoa(r.Servings),
		num(r.CostPerServing),
		r.Difficulty.String(),
		strings.Join(r.Tags, ", "),
		num(r.Nutrition.Calories),
		num(r.Nutrition.Protein),
		num(r.Nutrition.Carbs),
		num(r.Nutrition.Fat),
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(path string, recipes []*domain.Recipe) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, r := range recipes {
		if err := w.Write(Row(r)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeXLSX(path string, recipes []*domain.Recipe) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", cells(Header)); err != nil {
		return err
	}
	for i, r := range recipes {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(addr, xlsxRow(r)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// xlsxRow keeps numeric columns numeric so spreadsheets can sort them.
func xlsxRow(r *domain.Recipe) []interface{} {
	return []interface{}{
		r.ID,
		r.Title,
		r.CookTime,
		r.Servings,
		r.CostPerServing,
		r.Difficulty.String(),
		strings.Join(r.Tags, ", "),
		r.Nutrition.Calories,
		r.Nutrition.Protein,
		r.Nutrition.Carbs,
		r.Nutrition.Fat,
	}
}

func cells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
