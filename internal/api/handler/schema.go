package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type submitAnswersRequest struct {
	ClassID  string `json:"classId"  validate:"required"`
	LessonID string `json:"lessonId"`
	// Answers may be bare values or {question, answer} objects; bare values
	// get positional Q1, Q2, … labels downstream.
	Answers []any `json:"answers" validate:"required"`
}

type markRequest struct {
	SubmissionID string `json:"submissionId" validate:"required"`
	// Grade is stored as supplied; grade semantics belong to the grading UI.
	Grade any `json:"grade"`
}
