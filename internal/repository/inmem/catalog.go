// Package inmem is the demo-mode catalog: the same CourseRepository and
// ClassRepository contracts as the Postgres store, backed by a seeded
// in-memory map. It serves the demo data the legacy frontend shipped
// hard-coded in its pages without requiring courses to be seeded in
// Postgres; the rest of the system (users, payments, events) still runs on
// its usual collaborators.
package inmem

import (
	"context"
	"database/sql"
	"sync"

	"github.com/nerkartran297/english-center-api/internal/model"

	"github.com/google/uuid"
)

type Catalog struct {
	mu      sync.RWMutex
	courses map[string]*model.Course
	order   []string
}

func NewCatalog() *Catalog {
	c := &Catalog{courses: make(map[string]*model.Course)}
	for i := range demoCourses {
		course := demoCourses[i]
		c.courses[course.ID] = &course
		c.order = append(c.order, course.ID)
	}
	return c
}

func (c *Catalog) List(ctx context.Context) ([]model.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Course, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.courses[id])
	}
	return out, nil
}

func (c *Catalog) FindByID(ctx context.Context, courseID string) (*model.Course, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	course, ok := c.courses[courseID]
	if !ok {
		return nil, nil
	}
	copied := *course
	return &copied, nil
}

func (c *Catalog) Create(ctx context.Context, course *model.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *course
	if _, exists := c.courses[copied.ID]; !exists {
		c.order = append(c.order, copied.ID)
	}
	c.courses[copied.ID] = &copied
	return nil
}

func (c *Catalog) Update(ctx context.Context, course *model.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	existing, ok := c.courses[course.ID]
	if !ok {
		return sql.ErrNoRows
	}
	copied := *course
	copied.Classes = existing.Classes
	c.courses[course.ID] = &copied
	return nil
}

func (c *Catalog) Delete(ctx context.Context, courseID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.courses, courseID)
	for i, id := range c.order {
		if id == courseID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindClassByID searches every course's class list.
func (c *Catalog) FindClassByID(ctx context.Context, classID string) (*model.Class, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, course := range c.courses {
		for i := range course.Classes {
			if course.Classes[i].ID == classID {
				copied := course.Classes[i]
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (c *Catalog) CreateClass(ctx context.Context, class *model.Class) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	course, ok := c.courses[class.CourseID]
	if !ok {
		return sql.ErrNoRows
	}
	course.Classes = append(course.Classes, *class)
	return nil
}

func (c *Catalog) UpdateClass(ctx context.Context, class *model.Class) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, course := range c.courses {
		for i := range course.Classes {
			if course.Classes[i].ID == class.ID {
				updated := *class
				updated.CourseID = course.Classes[i].CourseID
				course.Classes[i] = updated
				return nil
			}
		}
	}
	return sql.ErrNoRows
}

// ListByStudent returns the whole demo catalog: demo mode has no
// enrollment table, every visitor sees every class.
func (c *Catalog) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Course, error) {
	return c.List(ctx)
}

// ClassView adapts the catalog to the ClassRepository contract, which names
// its methods the same as CourseRepository but for classes.
type ClassView struct {
	Catalog *Catalog
}

func (v ClassView) FindByID(ctx context.Context, classID string) (*model.Class, error) {
	return v.Catalog.FindClassByID(ctx, classID)
}

func (v ClassView) Create(ctx context.Context, class *model.Class) error {
	return v.Catalog.CreateClass(ctx, class)
}

func (v ClassView) Update(ctx context.Context, class *model.Class) error {
	return v.Catalog.UpdateClass(ctx, class)
}

func (v ClassView) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Course, error) {
	return v.Catalog.ListByStudent(ctx, studentID)
}
