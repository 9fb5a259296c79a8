package tabular_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/jsamuelsen11/dataworks/internal/domain/tabular"
)

func TestRow_MarshalJSONPreservesColumnOrder(t *testing.T) {
	t.Parallel()

	row := tabular.Row{
		Columns: []string{"status", "name", "age"},
		Values:  []any{"active", "zed", 31},
	}

	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"status":"active","name":"zed","age":31}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestRow_MarshalJSONNaNIsNull(t *testing.T) {
	t.Parallel()

	row := tabular.Row{Columns: []string{"score"}, Values: []any{math.NaN()}}

	got, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != `{"score":null}` {
		t.Errorf("Marshal() = %s, want {\"score\":null}", got)
	}
}

func TestRow_MarshalJSONMismatchedLengths(t *testing.T) {
	t.Parallel()

	row := tabular.Row{Columns: []string{"a", "b"}, Values: []any{1}}
	if _, err := json.Marshal(row); err == nil {
		t.Fatal("Marshal() error = nil, want error for mismatched row")
	}
}

func TestRow_Get(t *testing.T) {
	t.Parallel()

	row := tabular.Row{Columns: []string{"a", "b"}, Values: []any{1, "x"}}

	if v, ok := row.Get("b"); !ok || v != "x" {
		t.Errorf("Get(b) = %v, %v; want x, true", v, ok)
	}
	if _, ok := row.Get("missing"); ok {
		t.Error("Get(missing) ok = true, want false")
	}
}
