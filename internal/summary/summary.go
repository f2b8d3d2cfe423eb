// Package summary folds a team's matches into season totals.
//
// Additive columns are summed into totals keyed by their output name. Possession and
// pass accuracy are averaged over the matches that recorded them, then rounded to the
// nearest integer. Values that are missing or not numeric count as zero.
package summary

import (
	"math"
	"strconv"
	"strings"
)

// Summary maps an output key (goals_for, shots, possession_avg, ...) to its value.
// A summary of zero matches is empty.
type Summary map[string]float64

// additive maps a match column to the total it is summed into.
var additive = []struct {
	column string
	key    string
}{
	{"team_score", "goals_for"},
	{"opponent_score", "goals_against"},
	{"shots", "shots"},
	{"shots_on_target", "shots_on_target"},
	{"corners", "corners"},
	{"fouls", "fouls"},
	{"offsides", "offsides"},
	{"xg", "xg"},
	{"passes", "passes"},
	{"tackles", "tackles"},
	{"saves", "saves"},
}

// averaged maps a match column to the key its rounded mean is stored under.
var averaged = []struct {
	column string
	key    string
}{
	{"possession", "possession_avg"},
	{"pass_accuracy", "pass_accuracy_avg"},
}

// mean accumulates a column over the rows where it is present.
type mean struct {
	count int
	sum   float64
}

// Summarize computes the summary of rows, one map per match keyed by column name.
func Summarize(rows []map[string]any) Summary {
	out := Summary{}
	means := make([]mean, len(averaged))

	for _, row := range rows {
		for _, f := range additive {
			out[f.key] += Number(row[f.column])
		}
		for i, f := range averaged {
			v, ok := row[f.column]
			if !ok || isNull(v) {
				continue
			}
			means[i].count++
			means[i].sum += Number(v)
		}
	}

	for i, f := range averaged {
		if means[i].count > 0 {
			out[f.key] = round(means[i].sum / float64(means[i].count))
		}
	}
	return out
}

// Number coerces v to a float64. Anything that is not a finite number, a numeric
// string or a boolean is zero.
func Number(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case bool:
		if n {
			f = 1
		}
	case string:
		f = parse(n)
	case []byte:
		f = parse(string(n))
	case *float64:
		if n != nil {
			f = *n
		}
	case *int:
		if n != nil {
			f = float64(*n)
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func isNull(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case *float64:
		return n == nil
	case *int:
		return n == nil
	}
	return false
}

func parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// round rounds half toward positive infinity.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
