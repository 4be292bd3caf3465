package store

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names, matching the reference workbook shipped with the
// service. Transport entries keep their order for button lists.
var workbookLayout = map[Airport]struct {
	facilities string
	transport  []sheetRef
	visa       string
	gcc        string
}{
	AirportBangalore: {
		facilities: "Bangalore airport facilities",
		transport: []sheetRef{
			{"bus", "Bangalore bus"},
			{"car rental", "Bangalore car rental"},
			{"taxis", "Bangalore taxis"},
			{"train", "Bangalore Train"},
			{"services", "Bangalore Transport service"},
		},
		visa: "Visa on Arrival Bangalore",
	},
	AirportDubai: {
		facilities: "Dubai Airport facilities",
		transport: []sheetRef{
			{"metro", "Dubai metro"},
			{"car rental", "Dubai car rental"},
			{"services", "Dubai Transport services"},
		},
		visa: "Visa on Arrival Dubai",
		gcc:  "GCC",
	},
}

type sheetRef struct {
	category string
	sheet    string
}

// LoadWorkbook parses the xlsx workbook at path into the nested
// airport -> category -> table mapping. Called once at process start.
func LoadWorkbook(path string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open workbook %s", path)
	}
	defer f.Close()

	airports := make(map[Airport]*AirportData, len(workbookLayout))
	for airport, layout := range workbookLayout {
		data := &AirportData{Transport: make(map[string]*Table)}

		if data.Facilities, err = loadSheet(f, layout.facilities); err != nil {
			return nil, err
		}
		if data.Visa, err = loadSheet(f, layout.visa); err != nil {
			return nil, err
		}
		for _, ref := range layout.transport {
			table, err := loadSheet(f, ref.sheet)
			if err != nil {
				return nil, err
			}
			table.Roles = ResolveColumnRoles(table.Columns)
			data.Transport[ref.category] = table
			data.TransportNames = append(data.TransportNames, ref.category)
		}
		if layout.gcc != "" {
			if data.GCC, err = loadSheet(f, layout.gcc); err != nil {
				return nil, err
			}
		}
		airports[airport] = data
	}

	return New(airports), nil
}

func loadSheet(f *excelize.File, sheet string) (*Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read sheet %q", sheet)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{}
	for _, header := range rows[0] {
		table.Columns = append(table.Columns, header)
	}
	for _, raw := range rows[1:] {
		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			if i >= len(raw) {
				break
			}
			if v, ok := ParseCell(raw[i]); ok {
				row[col] = v
			}
		}
		if len(row) > 0 {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}
