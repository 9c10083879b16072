package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	permeability "Darcy/internal/calc/permeability"
	sensitivity "Darcy/internal/calc/sensitivity"
)

// Workbook builds one sheet per swept axis: a header row followed by the
// 50 (value, k) pairs, ready for charting in a spreadsheet.
func Workbook(in permeability.Input, axes []sensitivity.Axis) (*excelize.File, error) {
	series, err := sensitivity.SweepAll(axes, in)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	for i, s := range series {
		sheet := string(s.Axis)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellValue(sheet, "A1", s.Label); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "B1", "Permeability (mD)"); err != nil {
			return nil, err
		}
		for row, p := range s.Points {
			if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), p.Value); err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), p.PermeabilityMD); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
