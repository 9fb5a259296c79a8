// Package tabular implements ports.TabularEngine with gota data frames.
//
// Column types are inferred from the data (int, float, bool, string). Empty
// cells and the literals "NA", "NaN" and "<nil>" are missing values.
// Equality follows the filter value's JSON type:
//
//	string  matches string cells with the same text
//	number  matches int and float cells with the same numeric value
//	bool    matches bool cells with the same value
//	null    matches missing cells
package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	tab "github.com/jsamuelsen11/dataworks/internal/domain/tabular"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

var _ ports.TabularEngine = Engine{}

// Errors returned by FilterEqual.
var (
	ErrColumnNotFound   = errors.New("column not found")
	ErrUnsupportedValue = errors.New("unsupported filter value")
)

var naValues = []string{"", "NA", "NaN", "<nil>"}

// Engine filters CSV data.
type Engine struct{}

// New returns an Engine.
func New() Engine {
	return Engine{}
}

// FilterEqual loads src as CSV with a header row and returns the rows whose
// column equals value. A header with no data rows yields an empty, non-nil
// slice as long as column is in the header.
func (Engine) FilterEqual(ctx context.Context, src io.Reader, column string, value any) ([]tab.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	match, err := comparator(value)
	if err != nil {
		return nil, err
	}

	records, err := csv.NewReader(src).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	// gota refuses a frame without data rows.
	if len(records) == 1 {
		if !slices.Contains(records[0], column) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
		}
		return []tab.Row{}, nil
	}

	df := dataframe.LoadRecords(records, dataframe.NaNValues(naValues))
	if df.Err != nil {
		return nil, fmt.Errorf("reading csv: %w", df.Err)
	}

	names := df.Names()
	if !slices.Contains(names, column) {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	mask, err := df.Col(column).Compare(series.CompFunc, match).Bool()
	if err != nil {
		return nil, fmt.Errorf("filtering on %q: %w", column, err)
	}

	rows := make([]tab.Row, 0)
	for i, keep := range mask {
		if !keep {
			continue
		}
		values := make([]any, len(names))
		for j := range names {
			values[j] = df.Elem(i, j).Val()
		}
		rows = append(rows, tab.Row{Columns: names, Values: values})
	}
	return rows, nil
}

// comparator builds the element predicate for a decoded JSON filter value.
func comparator(value any) (func(series.Element) bool, error) {
	switch v := value.(type) {
	case nil:
		return func(el series.Element) bool { return el.IsNA() }, nil

	case string:
		return func(el series.Element) bool {
			return !el.IsNA() && el.Type() == series.String && el.String() == v
		}, nil

	case bool:
		return func(el series.Element) bool {
			if el.IsNA() || el.Type() != series.Bool {
				return false
			}
			b, err := el.Bool()
			return err == nil && b == v
		}, nil

	case float64:
		return numeric(v), nil
	case float32:
		return numeric(float64(v)), nil
	case int:
		return numeric(float64(v)), nil
	case int64:
		return numeric(float64(v)), nil

	default:
		return nil, fmt.Errorf("%w of type %T", ErrUnsupportedValue, value)
	}
}

func numeric(want float64) func(series.Element) bool {
	return func(el series.Element) bool {
		if el.IsNA() {
			return false
		}
		switch el.Type() {
		case series.Int:
			n, err := el.Int()
			return err == nil && float64(n) == want
		case series.Float:
			return el.Float() == want
		default:
			return false
		}
	}
}
