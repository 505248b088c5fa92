package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"quiz-page/internal/cache"
	"quiz-page/internal/domain"
	"quiz-page/internal/dto"
	"quiz-page/internal/logger"
	"quiz-page/internal/quiz"
	"quiz-page/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation and retrieval
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizRecordResponse, error)
	GetQuizHTML(ctx context.Context, id string) (string, error)
	ListQuizzes(ctx context.Context) ([]*dto.QuizRecordResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo        domain.QuizRepository
	completions domain.CompletionClient
	documents   domain.DocumentStore
	htmlCache   domain.Cache // optional, nil when no cache backend is configured
	outputDir   string
	cacheTTL    time.Duration
}

// NewQuizService creates a new instance of quizService. htmlCache may be
// nil; document retrieval then always goes to the store.
func NewQuizService(
	repo domain.QuizRepository,
	completions domain.CompletionClient,
	documents domain.DocumentStore,
	htmlCache domain.Cache,
	outputDir string,
	cacheTTL time.Duration,
) QuizService {
	return &quizService{
		repo:        repo,
		completions: completions,
		documents:   documents,
		htmlCache:   htmlCache,
		outputDir:   outputDir,
		cacheTTL:    cacheTTL,
	}
}

// GenerateQuiz implements QuizService. Validation failures never reach the
// completion API. If the document write fails no record is created; if the
// record write fails after the document was stored, the file is orphaned
// and left in place.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizRecordResponse, error) {
	request := &domain.QuizRequest{
		Topic:         req.Topic,
		QuestionCount: req.QuestionCount,
		Difficulty:    req.Difficulty,
		PageColor:     req.PageColor,
	}
	request.Normalize()
	if err := request.Validate(); err != nil {
		return nil, err
	}

	logger.Get().Info("Generating quiz",
		zap.String("topic", request.Topic),
		zap.Int("question_count", request.QuestionCount),
		zap.String("difficulty", request.Difficulty),
	)

	prompt := quiz.BuildPrompt(request)
	content, err := s.completions.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed := quiz.ParseQuestionSet(content)
	if parsed.Failed {
		// Degraded, not fatal: the document still renders with a
		// diagnostic block containing the raw reply.
		logger.Get().Warn("Model reply could not be parsed, rendering diagnostic page",
			zap.String("topic", request.Topic),
		)
	} else if len(parsed.Questions) != request.QuestionCount {
		logger.Get().Warn("Model returned a different question count than requested",
			zap.Int("requested", request.QuestionCount),
			zap.Int("returned", len(parsed.Questions)),
		)
	}

	html := quiz.RenderHTML(request, parsed)

	path := filepath.Join(s.outputDir, fmt.Sprintf("quiz_%s.html", util.NewULID()))
	if err := s.documents.Write(path, html); err != nil {
		return nil, domain.NewStorageError("Failed to store quiz document", err)
	}

	record := &domain.QuizRecord{
		Topic:         request.Topic,
		QuestionCount: request.QuestionCount,
		Difficulty:    request.Difficulty,
		PageColor:     request.PageColor,
		HTMLPath:      path,
	}
	if err := s.repo.SaveQuiz(ctx, record); err != nil {
		// The written document is now orphaned; acceptable, no cleanup.
		return nil, domain.NewStorageError("Failed to save quiz record", err)
	}

	logger.Get().Info("Quiz generated",
		zap.String("id", record.ID),
		zap.String("html_path", record.HTMLPath),
	)

	return toQuizRecordResponse(record), nil
}

// GetQuizHTML implements QuizService. A missing record or a record whose
// underlying file was deleted both surface as not-found.
func (s *quizService) GetQuizHTML(ctx context.Context, id string) (string, error) {
	if s.htmlCache != nil {
		cached, err := s.htmlCache.Get(ctx, cache.QuizHTMLKey(id))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Quiz HTML cache read failed",
				zap.String("id", id),
				zap.Error(err),
			)
		}
	}

	record, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return "", domain.NewStorageError("Failed to load quiz record", err)
	}
	if record == nil {
		return "", domain.NewQuizNotFoundError(id)
	}

	html, err := s.documents.Read(record.HTMLPath)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return "", domain.NewNotFoundError(fmt.Sprintf("Quiz document not found: %s", record.HTMLPath))
		}
		return "", domain.NewStorageError("Failed to read quiz document", err)
	}

	if s.htmlCache != nil {
		if err := s.htmlCache.Set(ctx, cache.QuizHTMLKey(id), html, s.cacheTTL); err != nil {
			logger.Get().Warn("Quiz HTML cache write failed",
				zap.String("id", id),
				zap.Error(err),
			)
		}
	}

	return html, nil
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context) ([]*dto.QuizRecordResponse, error) {
	records, err := s.repo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewStorageError("Failed to list quizzes", err)
	}

	responses := make([]*dto.QuizRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toQuizRecordResponse(record))
	}
	return responses, nil
}

func toQuizRecordResponse(record *domain.QuizRecord) *dto.QuizRecordResponse {
	return &dto.QuizRecordResponse{
		ID:            record.ID,
		Topic:         record.Topic,
		QuestionCount: record.QuestionCount,
		Difficulty:    record.Difficulty,
		PageColor:     record.PageColor,
		HTMLPath:      record.HTMLPath,
		CreatedAt:     record.CreatedAt,
	}
}
