package service

import (
	"fmt"
	"math"
	"strings"

	"reel_lingo_backend/internal/model"
)

// Evaluation is the kind-independent outcome of grading one submission.
// Score/Correct/Total are only meaningful for reading; Scores only for
// speaking.
type Evaluation struct {
	Score    int
	Correct  int
	Total    int
	Feedback string
	Scores   map[string]int
}

// Evaluator grades submissions. It is pure: no storage access, deterministic
// output for a given input. External assessment (OpenAI essay feedback,
// pronunciation scoring) is not called here; when unconfigured the evaluator
// returns the placeholder feedback instead.
type Evaluator struct {
	openAIKey string
}

func NewEvaluator(openAIKey string) *Evaluator {
	return &Evaluator{openAIKey: openAIKey}
}

// EvaluateReading compares answers against the answer key. Score is the
// percentage of correct answers; a text without questions scores 0. Wrong or
// missing answers are listed in a review line keyed by question text.
func (e *Evaluator) EvaluateReading(questions []*model.ReadingQuestion, answers map[string]string) Evaluation {
	total := len(questions)
	correct := 0
	var wrong []*model.ReadingQuestion
	for _, q := range questions {
		// An absent answer is always wrong, even against an empty answer key.
		if ans, ok := answers[q.QuestionID.String()]; ok && ans == q.CorrectAnswer {
			correct++
		} else {
			wrong = append(wrong, q)
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(correct) / float64(total) * 100))
	}

	feedback := fmt.Sprintf("You got %d/%d (%d%%) correct.", correct, total, pct)
	if len(wrong) > 0 {
		items := make([]string, 0, len(wrong))
		for _, q := range wrong {
			items = append(items, fmt.Sprintf("(%q → %s)", q.Question, q.CorrectAnswer))
		}
		feedback += "\nReview: " + strings.Join(items, "; ")
	}

	return Evaluation{Score: pct, Correct: correct, Total: total, Feedback: feedback}
}

// EvaluateListening only acknowledges the translation; grading against the
// transcript is manual for now.
func (e *Evaluator) EvaluateListening(transcript *string) Evaluation {
	if transcript == nil || *transcript == "" {
		return Evaluation{Feedback: "Translation submitted. Enable reference transcript for detailed feedback."}
	}
	return Evaluation{Feedback: "Compare your translation with the transcript and improve where needed."}
}

// EvaluateWriting returns placeholder feedback; the OpenAI call sits behind
// the key check so the flow works without credentials.
func (e *Evaluator) EvaluateWriting() Evaluation {
	if e.openAIKey == "" {
		return Evaluation{Feedback: "Essay submitted. Enable OPENAI_API_KEY for AI feedback on grammar and clarity."}
	}
	return Evaluation{Feedback: "Essay submitted. AI feedback can be added here via OpenAI."}
}

// EvaluateSpeaking echoes whichever sub-scores were supplied. Range checks
// happen at the request boundary, not here.
func (e *Evaluator) EvaluateSpeaking(pronunciation, fluency, dictation *int) Evaluation {
	scores := map[string]int{}
	var parts []string
	if pronunciation != nil {
		scores["pronunciation"] = *pronunciation
		parts = append(parts, fmt.Sprintf("Pronunciation: %d/10", *pronunciation))
	}
	if fluency != nil {
		scores["fluency"] = *fluency
		parts = append(parts, fmt.Sprintf("Fluency: %d/10", *fluency))
	}
	if dictation != nil {
		scores["dictation"] = *dictation
		parts = append(parts, fmt.Sprintf("Dictation: %d/10", *dictation))
	}

	if len(parts) == 0 {
		return Evaluation{Feedback: "Speaking attempt recorded. Enable assessment API for scores.", Scores: scores}
	}
	return Evaluation{Feedback: strings.Join(parts, ". "), Scores: scores}
}

// EvaluateReelAnswer checks the batch question answer. Comparison is exact;
// whitespace trimming happens where the answer enters the system.
func (e *Evaluator) EvaluateReelAnswer(question *model.ReelBatchQuestion, answer string) bool {
	return answer == question.CorrectAnswer
}
