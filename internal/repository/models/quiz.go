package models

import "time"

// Quiz is the database row for a generated quiz.
type Quiz struct {
	ID            string    `db:"id"`
	Topic         string    `db:"topic"`
	QuestionCount int       `db:"question_count"`
	Difficulty    string    `db:"difficulty"`
	PageColor     string    `db:"page_color"`
	HTMLPath      string    `db:"html_path"`
	CreatedAt     time.Time `db:"created_at"`
}
