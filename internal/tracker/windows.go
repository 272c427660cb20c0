package tracker

import (
	"time"

	"github.com/MKhiriev/go-job-tracker/models"
)

// bucketStart returns the UTC start of the w bucket containing t.
func bucketStart(w models.Window, t time.Time) time.Time {
	t = t.UTC()
	switch w {
	case models.WindowMinute:
		return t.Truncate(time.Minute)
	case models.WindowHour:
		return t.Truncate(time.Hour)
	default:
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

// bucketEnd returns the exclusive end of the w bucket containing t.
func bucketEnd(w models.Window, t time.Time) time.Time {
	start := bucketStart(w, t)
	switch w {
	case models.WindowMinute:
		return start.Add(time.Minute)
	case models.WindowHour:
		return start.Add(time.Hour)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// bucketID is a sortable label of the w bucket containing t.
func bucketID(w models.Window, t time.Time) string {
	start := bucketStart(w, t)
	switch w {
	case models.WindowMinute:
		return start.Format("200601021504")
	case models.WindowHour:
		return start.Format("2006010215")
	default:
		return start.Format("20060102")
	}
}
