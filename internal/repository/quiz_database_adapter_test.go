package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"quiz-page/internal/domain"
	"quiz-page/internal/validation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func quizColumns() []string {
	return []string{"id", "topic", "question_count", "difficulty", "page_color", "html_path", "created_at"}
}

func TestSaveQuiz_AssignsIDAndTimestamp(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	record := &domain.QuizRecord{
		Topic:         "Go",
		QuestionCount: 3,
		Difficulty:    "médio",
		PageColor:     "#ffffff",
		HTMLPath:      "quiz-html/quiz_x.html",
	}

	mock.ExpectExec("INSERT INTO quizzes").
		WithArgs(sqlmock.AnyArg(), "Go", 3, "médio", "#ffffff", "quiz-html/quiz_x.html", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := adapter.SaveQuiz(context.Background(), record)

	require.NoError(t, err)
	assert.True(t, validation.IsValidULID(record.ID), "assigned id must be a ULID, got %q", record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveQuiz_NilRecord(t *testing.T) {
	db, _ := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	assert.Error(t, adapter.SaveQuiz(context.Background(), nil))
}

func TestSaveQuiz_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectExec("INSERT INTO quizzes").WillReturnError(sql.ErrConnDone)

	err := adapter.SaveQuiz(context.Background(), &domain.QuizRecord{Topic: "Go"})

	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestGetQuizByID_Found(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	createdAt := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM quizzes").
		WithArgs("01HZXCVBNM0123456789ABCDEF").
		WillReturnRows(sqlmock.NewRows(quizColumns()).
			AddRow("01HZXCVBNM0123456789ABCDEF", "Go", 3, "médio", "#ffffff", "quiz-html/quiz_x.html", createdAt))

	record, err := adapter.GetQuizByID(context.Background(), "01HZXCVBNM0123456789ABCDEF")

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Go", record.Topic)
	assert.Equal(t, 3, record.QuestionCount)
	assert.Equal(t, "quiz-html/quiz_x.html", record.HTMLPath)
	assert.Equal(t, createdAt, record.CreatedAt)
}

func TestGetQuizByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery("SELECT (.+) FROM quizzes").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	record, err := adapter.GetQuizByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestListQuizzes_ReturnsAllInOrder(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM quizzes").
		WillReturnRows(sqlmock.NewRows(quizColumns()).
			AddRow("01HZXCVBNM0123456789ABCDE1", "Go", 3, "fácil", "#ffffff", "quiz-html/a.html", now.Add(-time.Hour)).
			AddRow("01HZXCVBNM0123456789ABCDE2", "SQL", 5, "difícil", "#eeeeee", "quiz-html/b.html", now))

	records, err := adapter.ListQuizzes(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Go", records[0].Topic)
	assert.Equal(t, "SQL", records[1].Topic)
}

func TestListQuizzes_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	adapter := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery("SELECT (.+) FROM quizzes").
		WillReturnRows(sqlmock.NewRows(quizColumns()))

	records, err := adapter.ListQuizzes(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
