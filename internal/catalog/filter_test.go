package catalog_test

import (
	"testing"

	"github.com/nerkartran297/english-center-api/internal/catalog"
	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/stretchr/testify/require"
)

func course(id string, price, rating float64, students int, teachers ...string) model.Course {
	c := model.Course{ID: id, Price: price, Rating: rating, CurrentStudent: students}
	for _, t := range teachers {
		c.Teachers = append(c.Teachers, model.Teacher{Name: t})
	}
	return c
}

func ids(courses []model.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestMatch_PriceRange(t *testing.T) {
	records := []model.Course{
		course("a", 100, 0, 0),
		course("b", 200, 0, 0),
		course("c", 300, 0, 0),
	}
	f := catalog.FilterState{PriceFrom: "150", PriceTo: "250"}

	got := catalog.FilterSort(records, f, "")
	require.Equal(t, []string{"b"}, ids(got))
}

func TestMatch_MinRating(t *testing.T) {
	records := []model.Course{
		course("a", 0, 4.8, 0),
		course("b", 0, 4.2, 0),
		course("c", 0, 4.9, 0),
	}
	got := catalog.FilterSort(records, catalog.FilterState{MinRating: "4.5"}, "")
	require.Equal(t, []string{"a", "c"}, ids(got))
}

func TestMatch_TeacherSubstringAnyTeacher(t *testing.T) {
	records := []model.Course{
		course("a", 0, 0, 0, "John Doe", "Jane Smith"),
		course("b", 0, 0, 0, "Pham Minh"),
	}

	got := catalog.FilterSort(records, catalog.FilterState{TeacherName: "smith"}, "")
	require.Equal(t, []string{"a"}, ids(got))

	got = catalog.FilterSort(records, catalog.FilterState{TeacherName: "MINH"}, "")
	require.Equal(t, []string{"b"}, ids(got))
}

func TestMatch_MinStudents(t *testing.T) {
	records := []model.Course{
		course("a", 0, 0, 12),
		course("b", 0, 0, 3),
	}
	got := catalog.FilterSort(records, catalog.FilterState{MinStudents: "10"}, "")
	require.Equal(t, []string{"a"}, ids(got))
}

func TestMatch_EmptyFilterPassesEverything(t *testing.T) {
	records := []model.Course{course("a", 100, 1, 1), course("b", 0, 0, 0)}
	got := catalog.FilterSort(records, catalog.FilterState{}, "")
	require.Len(t, got, 2)
}

func TestMatch_NonNumericFilterExcludesAll(t *testing.T) {
	// Matches the legacy NaN-comparison contract: a garbage numeric filter
	// must never widen the result set.
	records := []model.Course{course("a", 100, 5, 10)}
	got := catalog.FilterSort(records, catalog.FilterState{PriceFrom: "abc"}, "")
	require.Empty(t, got)
}

func TestFilterSort_Orders(t *testing.T) {
	records := []model.Course{
		course("a", 300, 4.7, 5),
		course("b", 100, 4.9, 20),
		course("c", 200, 4.8, 10),
	}

	require.Equal(t, []string{"b", "c", "a"},
		ids(catalog.FilterSort(records, catalog.FilterState{}, catalog.SortPriceAsc)))
	require.Equal(t, []string{"a", "c", "b"},
		ids(catalog.FilterSort(records, catalog.FilterState{}, catalog.SortPriceDesc)))
	require.Equal(t, []string{"b", "c", "a"},
		ids(catalog.FilterSort(records, catalog.FilterState{}, catalog.SortRatingDesc)))
	require.Equal(t, []string{"b", "c", "a"},
		ids(catalog.FilterSort(records, catalog.FilterState{}, catalog.SortStudentsDesc)))
}

func TestFilterSort_UnknownKeyKeepsOrder(t *testing.T) {
	records := []model.Course{
		course("a", 300, 4.7, 5),
		course("b", 100, 4.9, 20),
	}
	got := catalog.FilterSort(records, catalog.FilterState{}, "bogus")
	require.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterSort_StableOnTies(t *testing.T) {
	records := []model.Course{
		course("a", 100, 4.5, 0),
		course("b", 100, 4.5, 0),
		course("c", 100, 4.5, 0),
	}
	got := catalog.FilterSort(records, catalog.FilterState{}, catalog.SortPriceAsc)
	require.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestFilterSort_DoesNotMutateInput(t *testing.T) {
	records := []model.Course{
		course("a", 300, 0, 0),
		course("b", 100, 0, 0),
	}
	_ = catalog.FilterSort(records, catalog.FilterState{}, catalog.SortPriceAsc)
	require.Equal(t, []string{"a", "b"}, ids(records))
}
