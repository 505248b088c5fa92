// Package quiz holds the generation core: prompt construction, parsing of
// model replies into question sets, and deterministic HTML rendering.
package quiz

import (
	"fmt"

	"quiz-page/internal/domain"
)

// BuildPrompt produces the instruction string sent to the completion API.
// It demands a bare JSON array with exactly 3 labeled options per question;
// the parser and renderer depend on that shape.
func BuildPrompt(req *domain.QuizRequest) string {
	return fmt.Sprintf(
		"Crie exatamente %d perguntas de múltipla escolha sobre o tema \"%s\" com dificuldade %s. "+
			"Cada pergunta deve ter exatamente 3 alternativas (A, B, C). "+
			"Retorne APENAS um JSON válido no formato: "+
			`[{"pergunta": "texto da pergunta", "alternativas": ["A) primeira opção", "B) segunda opção", "C) terceira opção"], "resposta_correta": "A"}]. `+
			"Não inclua texto antes ou depois do JSON.",
		req.QuestionCount, req.Topic, req.Difficulty)
}
