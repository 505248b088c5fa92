package domain

import (
	"context"
	"strings"
	"time"
)

const (
	// DefaultPageColor is applied when a request omits the page color.
	DefaultPageColor = "#ffffff"

	MinQuestionCount = 1
	MaxQuestionCount = 20
)

// QuizRequest carries the parameters for one quiz generation.
type QuizRequest struct {
	Topic         string
	QuestionCount int
	Difficulty    string
	PageColor     string
}

// Normalize trims the topic and fills in the default page color.
func (r *QuizRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	if r.PageColor == "" {
		r.PageColor = DefaultPageColor
	}
}

// Validate checks the request before any network call is made.
func (r *QuizRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return NewValidationError("topic is required")
	}
	if r.QuestionCount < MinQuestionCount || r.QuestionCount > MaxQuestionCount {
		return NewValidationError("question count must be between 1 and 20")
	}
	return nil
}

// Question is a single parsed multiple-choice question. Options keep the
// model's "A) ..." prefixes; CorrectAnswer is the letter the model reported.
// The renderer carries it through without consuming it.
type Question struct {
	Text          string
	Options       []string
	CorrectAnswer string
}

// QuestionSet is the parsed representation of a model reply. A malformed
// reply is not an error: Failed is set and Raw keeps the original text for
// diagnostic rendering.
type QuestionSet struct {
	Questions []Question
	Failed    bool
	Raw       string
}

// QuizRecord is the persisted trace of one generated quiz.
type QuizRecord struct {
	ID            string
	Topic         string
	QuestionCount int
	Difficulty    string
	PageColor     string
	HTMLPath      string
	CreatedAt     time.Time
}

// QuizRepository is the record store for generated quizzes.
// GetQuizByID returns (nil, nil) when no record exists.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, record *QuizRecord) error
	GetQuizByID(ctx context.Context, id string) (*QuizRecord, error)
	ListQuizzes(ctx context.Context) ([]*QuizRecord, error)
}

// CompletionClient issues a single blocking request to a chat-completion
// API and returns the trimmed assistant message content.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
