package catalog

import (
	"sort"
	"strings"

	"eduplus/backend/models"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

const (
	SortTitle  = "titulo"
	SortRecent = "recientes"
	SortRating = "calificacion"
)

type Query struct {
	Search   string
	Category string
	Level    string
	Sort     string
	Page     int
	PageSize int
}

type Page struct {
	Courses  []models.Course
	Total    int
	Page     int
	PageSize int
}

// Apply runs the whole catalog pipeline over the full course list:
// dedupe, filter, sort, paginate.
func Apply(courses []models.Course, q Query) Page {
	filtered := Filter(Dedupe(courses), q)
	Sort(filtered, q.Sort)
	return Paginate(filtered, q.Page, q.PageSize)
}

// Dedupe drops courses whose display title was already seen. First wins.
func Dedupe(courses []models.Course) []models.Course {
	seen := make(map[string]struct{}, len(courses))
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		key := strings.ToLower(c.DisplayTitle())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func Filter(courses []models.Course, q Query) []models.Course {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	category := Normalize(q.Category)
	level := Normalize(q.Level)

	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if search != "" && !strings.Contains(strings.ToLower(c.DisplayTitle()), search) {
			continue
		}
		if !isAll(q.Category) && Normalize(c.Categoria) != category {
			continue
		}
		if !isAll(q.Level) && Normalize(c.Nivel) != level {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Sort orders courses in place. Unknown keys keep the store order.
func Sort(courses []models.Course, key string) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortTitle:
		sort.SliceStable(courses, func(i, j int) bool {
			return strings.ToLower(courses[i].DisplayTitle()) < strings.ToLower(courses[j].DisplayTitle())
		})
	case SortRecent:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].FechaCreacion.After(courses[j].FechaCreacion)
		})
	case SortRating:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].AverageRating() > courses[j].AverageRating()
		})
	}
}

// Paginate slices a 1-based page. Pages past the end are empty but keep Total.
func Paginate(courses []models.Course, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pageSize = min(pageSize, MaxPageSize)
	if page < 1 {
		page = 1
	}
	total := len(courses)
	// compare before multiplying so huge page numbers cannot overflow
	start := total
	if page-1 <= total/pageSize {
		start = min((page-1)*pageSize, total)
	}
	end := start + min(pageSize, total-start)

	return Page{
		Courses:  courses[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// Categories lists "Todos" then each distinct category in first-seen order.
func Categories(courses []models.Course) []string {
	out := []string{AllValues}
	seen := map[string]struct{}{}
	for _, c := range courses {
		cat := strings.TrimSpace(c.Categoria)
		if cat == "" {
			continue
		}
		key := Normalize(cat)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cat)
	}
	return out
}
