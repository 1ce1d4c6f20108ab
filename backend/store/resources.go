package store

import (
	"github.com/google/uuid"
)

// ShareResource persists a shared resource with a fresh random id and the
// current timestamp. Resources are immutable and have no delete path.
func (s *Store) ShareResource(r *SharedResource) error {
	r.ID = uuid.NewString()
	r.Date = nowMillis()
	return wrap(s.db.Create(r).Error)
}

// ListResources returns every shared resource.
func (s *Store) ListResources() ([]SharedResource, error) {
	var rs []SharedResource
	if err := s.db.Find(&rs).Error; err != nil {
		return nil, wrap(err)
	}
	return rs, nil
}

// ListResourcesForCourse returns the resources shared for one course.
func (s *Store) ListResourcesForCourse(courseID string) ([]SharedResource, error) {
	var rs []SharedResource
	if err := s.db.Where("course_id = ?", courseID).Find(&rs).Error; err != nil {
		return nil, wrap(err)
	}
	return rs, nil
}
