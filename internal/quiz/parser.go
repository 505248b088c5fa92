package quiz

import (
	"encoding/json"
	"strings"

	"quiz-page/internal/domain"
)

// optionsPerQuestion is fixed by the prompt (A, B, C).
const optionsPerQuestion = 3

// rawQuestion mirrors the JSON object shape the prompt demands from the model.
type rawQuestion struct {
	Pergunta        string   `json:"pergunta"`
	Alternativas    []string `json:"alternativas"`
	RespostaCorreta string   `json:"resposta_correta"`
}

// ParseQuestionSet decodes a model reply into an ordered question set.
// Models sometimes wrap the array in prose despite the prompt, so the text
// is first sliced from the first '[' to the last ']'. ParseQuestionSet
// never fails: any structural problem yields a failed set carrying the raw
// text for diagnostic rendering.
func ParseQuestionSet(raw string) domain.QuestionSet {
	sliced := raw
	if start := strings.Index(sliced, "["); start != -1 {
		sliced = sliced[start:]
	}
	if end := strings.LastIndex(sliced, "]"); end != -1 {
		sliced = sliced[:end+1]
	}

	var items []rawQuestion
	if err := json.Unmarshal([]byte(sliced), &items); err != nil {
		return domain.QuestionSet{Failed: true, Raw: raw}
	}

	questions := make([]domain.Question, 0, len(items))
	for _, item := range items {
		if item.Pergunta == "" || len(item.Alternativas) != optionsPerQuestion {
			return domain.QuestionSet{Failed: true, Raw: raw}
		}
		for _, option := range item.Alternativas {
			// The renderer takes the leading letter of each option as the
			// selectable value, so empty options are a shape error.
			if option == "" {
				return domain.QuestionSet{Failed: true, Raw: raw}
			}
		}
		questions = append(questions, domain.Question{
			Text:          item.Pergunta,
			Options:       item.Alternativas,
			CorrectAnswer: item.RespostaCorreta,
		})
	}

	return domain.QuestionSet{Questions: questions}
}
