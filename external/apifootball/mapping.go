package apifootball

import "strconv"

// fieldRule fills one target field from a source record. Each resource declares its
// rules as a table; reshape applies them in order.
type fieldRule[S any, T any] struct {
	field string
	apply func(src *S, dst *T)
}

func reshape[S any, T any](src *S, rules []fieldRule[S, T]) T {
	var out T
	if src == nil {
		src = new(S)
	}
	for _, rule := range rules {
		rule.apply(src, &out)
	}
	return out
}

func reshapeAll[S any, T any](items []S, rules []fieldRule[S, T]) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		out = append(out, reshape(&items[i], rules))
	}
	return out
}

func stringOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func int64Or(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// yearOr renders a season year, falling back when the year is absent or zero.
func yearOr(v *int, fallback string) string {
	if v == nil || *v == 0 {
		return fallback
	}
	return strconv.Itoa(*v)
}

// splitChars turns "WWDLW" into ["W","W","D","L","W"]; an absent form yields an empty slice.
func splitChars(v *string) []string {
	if v == nil {
		return []string{}
	}
	out := make([]string, 0, len(*v))
	for _, r := range *v {
		out = append(out, string(r))
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// deref helpers for optional nested objects.

func firstSeason(items []leagueSeason) *leagueSeason {
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

func firstStats(items []scorerStats) *scorerStats {
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}

func orEmpty[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}
