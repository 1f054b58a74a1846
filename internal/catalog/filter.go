// Package catalog holds the pure course filter-sort engine and the
// draft/active filter committer. The engine is a function of
// (records, filters, sort key) and does no I/O.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nerkartran297/english-center-api/internal/model"
)

// FilterState carries the user-entered criteria as free-text strings.
// An empty field means "no constraint"; numeric fields are coerced only at
// comparison time.
type FilterState struct {
	TeacherName string `json:"teacherName" query:"teacherName"`
	PriceFrom   string `json:"priceFrom" query:"priceFrom"`
	PriceTo     string `json:"priceTo" query:"priceTo"`
	MinRating   string `json:"minRating" query:"minRating"`
	MinStudents string `json:"minStudents" query:"minStudents"`
}

// IsZero reports whether no filter is active.
func (f FilterState) IsZero() bool {
	return f == FilterState{}
}

type SortKey string

const (
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortRatingDesc   SortKey = "rating-desc"
	SortStudentsDesc SortKey = "students-desc"

	DefaultSort = SortRatingDesc
)

// Match reports whether a course passes every active filter condition.
// A non-empty numeric field that fails to parse matches no record at all,
// the same way a NaN comparison excluded everything in the legacy client;
// the HTTP layer rejects such input earlier, but data reaching the engine
// must never widen the result set.
func Match(c model.Course, f FilterState) bool {
	if f.TeacherName != "" {
		needle := strings.ToLower(f.TeacherName)
		found := false
		for _, t := range c.Teachers {
			if strings.Contains(strings.ToLower(t.Name), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return geq(c.Price, f.PriceFrom) &&
		leq(c.Price, f.PriceTo) &&
		geq(c.Rating, f.MinRating) &&
		geq(float64(c.CurrentStudent), f.MinStudents)
}

func geq(value float64, filter string) bool {
	if filter == "" {
		return true
	}
	bound, err := strconv.ParseFloat(filter, 64)
	if err != nil {
		return false
	}
	return value >= bound
}

func leq(value float64, filter string) bool {
	if filter == "" {
		return true
	}
	bound, err := strconv.ParseFloat(filter, 64)
	if err != nil {
		return false
	}
	return value <= bound
}

// FilterSort returns the courses passing the filter, stably ordered by the
// sort key. An unrecognized key keeps the incoming order. The input slice is
// not modified.
func FilterSort(courses []model.Course, f FilterState, key SortKey) []model.Course {
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if Match(c, f) {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortPriceAsc:
			return a.Price < b.Price
		case SortPriceDesc:
			return a.Price > b.Price
		case SortRatingDesc:
			return a.Rating > b.Rating
		case SortStudentsDesc:
			return a.CurrentStudent > b.CurrentStudent
		default:
			return false
		}
	})
	return out
}
