package dto

import "time"

// GenerateQuizRequest is the request body for quiz generation
// @Description Parameters for generating a new quiz page
type GenerateQuizRequest struct {
	Topic         string `json:"topic"`
	QuestionCount int    `json:"question_count"`
	Difficulty    string `json:"difficulty"`
	PageColor     string `json:"page_color,omitempty"`
}

// QuizRecordResponse represents a stored quiz in the API response
// @Description Stored quiz metadata
type QuizRecordResponse struct {
	ID            string    `json:"id"`
	Topic         string    `json:"topic"`
	QuestionCount int       `json:"question_count"`
	Difficulty    string    `json:"difficulty"`
	PageColor     string    `json:"page_color"`
	HTMLPath      string    `json:"html_path"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
