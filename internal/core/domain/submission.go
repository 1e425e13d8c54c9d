package domain

import "time"

// Answer pairs a question label with the answer the student gave.
// The answer value is stored as submitted; the core never interprets it.
type Answer struct {
	Question string `json:"question" bson:"question"`
	Answer   any    `json:"answer" bson:"answer"`
}

// Submission is a student's answer set for a lesson. Grade is nil from
// creation until the first grading operation sets it; grading unconditionally
// overwrites whatever value was there before (last writer wins), so a
// submission may be re-graded indefinitely. Submissions are never deleted.
type Submission struct {
	ID          string    `json:"id"`
	StudentName string    `json:"studentName"`
	ClassID     string    `json:"classId"`
	LessonID    string    `json:"lessonId,omitempty"`
	Answers     []Answer  `json:"answers"`
	SubmittedAt time.Time `json:"date"`
	Grade       any       `json:"grade"`
}

// Graded reports whether a grading operation has run at least once.
func (s *Submission) Graded() bool {
	return s.Grade != nil
}
