package domain

// Class is the enrollment boundary: a student may only see classes whose
// student set contains their user id.
type Class struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Students []string `json:"students"`
}

// HasStudent reports whether userID is enrolled in the class.
func (c *Class) HasStudent(userID string) bool {
	for _, id := range c.Students {
		if id == userID {
			return true
		}
	}
	return false
}

// Question is a single prompt within a lesson.
type Question struct {
	Text string `json:"text" bson:"text"`
}

// Lesson is scoped to exactly one class.
type Lesson struct {
	ID        string     `json:"id"`
	ClassID   string     `json:"classId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Questions []Question `json:"questions"`
}
