package main

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/pivolan/corner_plots/domain/models"
)

// ErrMissingColumn is the cause returned when a chart operation references a
// column absent from the table. The batch checks for it to decide whether a
// failure was a data-shape problem rather than a render problem.
var ErrMissingColumn = errors.New("missing column")

// Dataset is a table loaded from a JSON array of records. Numeric and text
// values are kept in separate column maps; rows that omit a column are padded
// with NaN (numeric) or "" (text) so every column has the same length.
type Dataset struct {
	numeric map[string][]float64
	text    map[string][]string
	rows    int
}

// ParseDataset decodes a JSON array of flat records into a Dataset. Any JSON
// that is not an array of objects is a parse error; no schema is enforced
// beyond that.
func ParseDataset(body []byte) (*Dataset, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "decode json table")
	}

	d := &Dataset{
		numeric: map[string][]float64{},
		text:    map[string][]string{},
		rows:    len(records),
	}
	for i, record := range records {
		for name, value := range record {
			switch v := value.(type) {
			case float64:
				col := d.numeric[name]
				for len(col) < i {
					col = append(col, math.NaN())
				}
				d.numeric[name] = append(col, v)
			case string:
				col := d.text[name]
				for len(col) < i {
					col = append(col, "")
				}
				d.text[name] = append(col, v)
			}
		}
	}
	// Trailing rows that omitted a column still need padding.
	for name, col := range d.numeric {
		for len(col) < d.rows {
			col = append(col, math.NaN())
		}
		d.numeric[name] = col
	}
	for name, col := range d.text {
		for len(col) < d.rows {
			col = append(col, "")
		}
		d.text[name] = col
	}
	return d, nil
}

func (d *Dataset) Rows() int { return d.rows }

// Column returns a numeric column or ErrMissingColumn.
func (d *Dataset) Column(name string) ([]float64, error) {
	col, ok := d.numeric[name]
	if !ok {
		return nil, errors.Wrap(ErrMissingColumn, name)
	}
	return col, nil
}

// TextColumn returns a text column or ErrMissingColumn.
func (d *Dataset) TextColumn(name string) ([]string, error) {
	col, ok := d.text[name]
	if !ok {
		return nil, errors.Wrap(ErrMissingColumn, name)
	}
	return col, nil
}

// NumericColumns lists the numeric column names in sorted order.
func (d *Dataset) NumericColumns() []string {
	names := make([]string, 0, len(d.numeric))
	for name := range d.numeric {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Melt reshapes the named columns into long form: one LongRow per original
// row x column, column by column. NaN padding values are dropped.
func (d *Dataset) Melt(columns []string) ([]models.LongRow, error) {
	var long []models.LongRow
	for _, name := range columns {
		col, err := d.Column(name)
		if err != nil {
			return nil, err
		}
		for _, v := range col {
			if math.IsNaN(v) {
				continue
			}
			long = append(long, models.LongRow{Metric: name, Value: v})
		}
	}
	return long, nil
}

// TopN returns the n rows with the largest (descending) or smallest
// (ascending) values of the given column, labeled with the name column.
// Rows with NaN in the sort column are skipped.
func (d *Dataset) TopN(by string, n int, descending bool) (names []string, values []float64, err error) {
	col, err := d.Column(by)
	if err != nil {
		return nil, nil, err
	}
	labels, err := d.TextColumn("name")
	if err != nil {
		return nil, nil, err
	}

	idx := make([]int, 0, len(col))
	for i, v := range col {
		if !math.IsNaN(v) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return col[idx[a]] > col[idx[b]]
		}
		return col[idx[a]] < col[idx[b]]
	})
	if n > len(idx) {
		n = len(idx)
	}

	for _, i := range idx[:n] {
		names = append(names, labels[i])
		values = append(values, col[i])
	}
	return names, values, nil
}
