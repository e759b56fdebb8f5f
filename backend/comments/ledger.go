package comments

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"eduplus/backend/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrDuplicate = errors.New("comment already submitted")

var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Prepend returns a new list with c first. A comment with the same
// (timestamp, userId) as an existing one is rejected with ErrDuplicate.
func Prepend(existing []models.Comment, c models.Comment) ([]models.Comment, error) {
	for _, e := range existing {
		if e.Timestamp == c.Timestamp && e.UserID == c.UserID {
			return nil, ErrDuplicate
		}
	}
	out := make([]models.Comment, 0, len(existing)+1)
	out = append(out, c)
	return append(out, existing...), nil
}

// SortNewestFirst returns a copy ordered by timestamp, newest first.
func SortNewestFirst(list []models.Comment) []models.Comment {
	out := make([]models.Comment, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := parseTimestamp(out[i].Timestamp)
		tj, okJ := parseTimestamp(out[j].Timestamp)
		if okI && okJ {
			return ti.After(tj)
		}
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// FormatTimestamp renders t the way stored comments carry it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatFecha renders a long Spanish date, e.g. "5 de marzo de 2024".
func FormatFecha(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

// New builds a comment for author at the given time. A blank timestamp
// means now.
func New(author models.User, rating int, text, timestamp string, now time.Time) (models.Comment, error) {
	ts := strings.TrimSpace(timestamp)
	at := now
	if ts == "" {
		ts = FormatTimestamp(now)
	} else {
		parsed, ok := parseTimestamp(ts)
		if !ok {
			return models.Comment{}, fmt.Errorf("invalid timestamp %q", ts)
		}
		at = parsed
	}
	return models.Comment{
		Usuario:      author.DisplayName(),
		Fecha:        FormatFecha(at),
		Calificacion: rating,
		Comentario:   strings.TrimSpace(text),
		UserID:       author.ID,
		UserEmail:    author.Email,
		Timestamp:    ts,
	}, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
