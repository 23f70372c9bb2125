package model

import (
	"encoding/json"
	"time"
)

// Millis is an epoch-millisecond timestamp that tolerates the loose
// formats found in stored blobs and authored catalog data: a number, a
// date string, or nothing at all. Unparseable input decodes to zero and
// is backfilled by the normalizers.
type Millis int64

func ToMillis(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	var n int64
	if err := json.Unmarshal(b, &n); err == nil {
		*m = Millis(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = ParseAuthoredTime(s)
		return nil
	}

	// Anything else (null, object) reads as absent.
	*m = 0
	return nil
}

// authoredLayouts covers the date formats used in hand-written catalog
// seeds.
var authoredLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseAuthoredTime parses an authoring-time date string into epoch
// milliseconds, returning zero when it cannot.
func ParseAuthoredTime(s string) Millis {
	for _, layout := range authoredLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ToMillis(t)
		}
	}
	return 0
}
