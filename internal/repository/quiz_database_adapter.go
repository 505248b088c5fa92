package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"quiz-page/internal/domain"
	"quiz-page/internal/repository/models"
	"quiz-page/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// SaveQuiz implements domain.QuizRepository. The record id is assigned
// here; the caller's record is updated in place.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, record *domain.QuizRecord) error {
	if record == nil {
		return fmt.Errorf("cannot save nil quiz record")
	}

	model := toModelQuiz(record)
	model.ID = util.NewULID()
	model.CreatedAt = time.Now()

	query := `INSERT INTO quizzes (
		id, topic, question_count, difficulty, page_color, html_path, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := a.db.ExecContext(ctx, query,
		model.ID,
		model.Topic,
		model.QuestionCount,
		model.Difficulty,
		model.PageColor,
		model.HTMLPath,
		model.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	record.ID = model.ID
	record.CreatedAt = model.CreatedAt
	return nil
}

// GetQuizByID implements domain.QuizRepository. Returns (nil, nil) when no
// record exists for id.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.QuizRecord, error) {
	var model models.Quiz
	query := `SELECT id, topic, question_count, difficulty, page_color, html_path, created_at
	FROM quizzes
	WHERE id = ?`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&model), nil
}

// ListQuizzes implements domain.QuizRepository. Records are ordered by
// creation time; an empty store yields an empty slice.
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.QuizRecord, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT id, topic, question_count, difficulty, page_color, html_path, created_at
	FROM quizzes
	ORDER BY created_at ASC, id ASC`

	if err := a.db.SelectContext(ctx, &modelQuizzes, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	records := make([]*domain.QuizRecord, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		records = append(records, toDomainQuiz(&modelQuizzes[i]))
	}
	return records, nil
}

func toModelQuiz(record *domain.QuizRecord) *models.Quiz {
	return &models.Quiz{
		ID:            record.ID,
		Topic:         record.Topic,
		QuestionCount: record.QuestionCount,
		Difficulty:    record.Difficulty,
		PageColor:     record.PageColor,
		HTMLPath:      record.HTMLPath,
		CreatedAt:     record.CreatedAt,
	}
}

func toDomainQuiz(model *models.Quiz) *domain.QuizRecord {
	return &domain.QuizRecord{
		ID:            model.ID,
		Topic:         model.Topic,
		QuestionCount: model.QuestionCount,
		Difficulty:    model.Difficulty,
		PageColor:     model.PageColor,
		HTMLPath:      model.HTMLPath,
		CreatedAt:     model.CreatedAt,
	}
}
