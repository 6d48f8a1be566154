package patch

import "time"

// Coalesce dereferences an optional request field, or returns fallback when it was omitted.
func Coalesce[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Minutes turns an optional whole-minute field into a duration; omitted is zero.
func Minutes(p *int) time.Duration {
	return time.Duration(Coalesce(p, 0)) * time.Minute
}
