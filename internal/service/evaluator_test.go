package service

import (
	"testing"

	"reel_lingo_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func question(text, correct string) *model.ReadingQuestion {
	return &model.ReadingQuestion{
		QuestionID:    uuid.New(),
		Question:      text,
		CorrectAnswer: correct,
	}
}

func Test_Evaluator_EvaluateReading(t *testing.T) {
	e := NewEvaluator("")

	q1 := question("What does Ana buy?", "Bread")
	q2 := question("Who does Ana greet?", "A fisherman")
	q3 := question("Where is the market?", "By the harbor")
	qEmpty := question("Unanswerable", "")

	tests := []struct {
		name         string
		questions    []*model.ReadingQuestion
		answers      map[string]string
		wantScore    int
		wantCorrect  int
		wantTotal    int
		wantFeedback string
	}{
		{
			name:         "all correct",
			questions:    []*model.ReadingQuestion{q1, q2},
			answers:      map[string]string{q1.QuestionID.String(): "Bread", q2.QuestionID.String(): "A fisherman"},
			wantScore:    100,
			wantCorrect:  2,
			wantTotal:    2,
			wantFeedback: "You got 2/2 (100%) correct.",
		},
		{
			name:        "one wrong gets a review line",
			questions:   []*model.ReadingQuestion{q1, q2},
			answers:     map[string]string{q1.QuestionID.String(): "Bread", q2.QuestionID.String(): "A baker"},
			wantScore:   50,
			wantCorrect: 1,
			wantTotal:   2,
			wantFeedback: "You got 1/2 (50%) correct.\n" +
				`Review: ("Who does Ana greet?" → A fisherman)`,
		},
		{
			name:        "missing answers count as wrong",
			questions:   []*model.ReadingQuestion{q1, q2},
			answers:     map[string]string{},
			wantScore:   0,
			wantCorrect: 0,
			wantTotal:   2,
			wantFeedback: "You got 0/2 (0%) correct.\n" +
				`Review: ("What does Ana buy?" → Bread); ("Who does Ana greet?" → A fisherman)`,
		},
		{
			name:      "two of three rounds up to 67",
			questions: []*model.ReadingQuestion{q1, q2, q3},
			answers: map[string]string{
				q1.QuestionID.String(): "Bread",
				q2.QuestionID.String(): "A fisherman",
				q3.QuestionID.String(): "In town",
			},
			wantScore:   67,
			wantCorrect: 2,
			wantTotal:   3,
			wantFeedback: "You got 2/3 (67%) correct.\n" +
				`Review: ("Where is the market?" → By the harbor)`,
		},
		{
			name:        "one of three rounds down to 33",
			questions:   []*model.ReadingQuestion{q1, q2, q3},
			answers:     map[string]string{q1.QuestionID.String(): "Bread"},
			wantScore:   33,
			wantCorrect: 1,
			wantTotal:   3,
			wantFeedback: "You got 1/3 (33%) correct.\n" +
				`Review: ("Who does Ana greet?" → A fisherman); ("Where is the market?" → By the harbor)`,
		},
		{
			name:        "absent answer is wrong even against an empty key",
			questions:   []*model.ReadingQuestion{qEmpty},
			answers:     map[string]string{},
			wantScore:   0,
			wantCorrect: 0,
			wantTotal:   1,
			wantFeedback: "You got 0/1 (0%) correct.\n" +
				`Review: ("Unanswerable" → )`,
		},
		{
			name:         "unknown question ids are ignored",
			questions:    []*model.ReadingQuestion{q1},
			answers:      map[string]string{q1.QuestionID.String(): "Bread", uuid.NewString(): "Anything"},
			wantScore:    100,
			wantCorrect:  1,
			wantTotal:    1,
			wantFeedback: "You got 1/1 (100%) correct.",
		},
		{
			name:         "no questions scores zero",
			questions:    nil,
			answers:      map[string]string{"x": "y"},
			wantScore:    0,
			wantCorrect:  0,
			wantTotal:    0,
			wantFeedback: "You got 0/0 (0%) correct.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.EvaluateReading(tt.questions, tt.answers)
			assert.Equal(t, tt.wantScore, ev.Score)
			assert.Equal(t, tt.wantCorrect, ev.Correct)
			assert.Equal(t, tt.wantTotal, ev.Total)
			assert.Equal(t, tt.wantFeedback, ev.Feedback)
		})
	}
}

func Test_Evaluator_EvaluateListening(t *testing.T) {
	e := NewEvaluator("")

	transcript := "Dobar dan!"
	empty := ""

	tests := []struct {
		name       string
		transcript *string
		want       string
	}{
		{"no transcript", nil, "Translation submitted. Enable reference transcript for detailed feedback."},
		{"empty transcript", &empty, "Translation submitted. Enable reference transcript for detailed feedback."},
		{"with transcript", &transcript, "Compare your translation with the transcript and improve where needed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.EvaluateListening(tt.transcript).Feedback)
		})
	}
}

func Test_Evaluator_EvaluateWriting(t *testing.T) {
	assert.Equal(t,
		"Essay submitted. Enable OPENAI_API_KEY for AI feedback on grammar and clarity.",
		NewEvaluator("").EvaluateWriting().Feedback)

	assert.Equal(t,
		"Essay submitted. AI feedback can be added here via OpenAI.",
		NewEvaluator("sk-test").EvaluateWriting().Feedback)
}

func Test_Evaluator_EvaluateSpeaking(t *testing.T) {
	e := NewEvaluator("")

	seven := 7
	nine := 9
	four := 4

	tests := []struct {
		name          string
		pronunciation *int
		fluency       *int
		dictation     *int
		wantFeedback  string
		wantScores    map[string]int
	}{
		{
			name:         "no scores",
			wantFeedback: "Speaking attempt recorded. Enable assessment API for scores.",
			wantScores:   map[string]int{},
		},
		{
			name:          "single score",
			pronunciation: &seven,
			wantFeedback:  "Pronunciation: 7/10",
			wantScores:    map[string]int{"pronunciation": 7},
		},
		{
			name:          "all scores in fixed order",
			pronunciation: &seven,
			fluency:       &nine,
			dictation:     &four,
			wantFeedback:  "Pronunciation: 7/10. Fluency: 9/10. Dictation: 4/10",
			wantScores:    map[string]int{"pronunciation": 7, "fluency": 9, "dictation": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := e.EvaluateSpeaking(tt.pronunciation, tt.fluency, tt.dictation)
			assert.Equal(t, tt.wantFeedback, ev.Feedback)
			assert.Equal(t, tt.wantScores, ev.Scores)
		})
	}
}

func Test_Evaluator_EvaluateReelAnswer(t *testing.T) {
	e := NewEvaluator("")
	q := &model.ReelBatchQuestion{CorrectAnswer: "Street food"}

	assert.True(t, e.EvaluateReelAnswer(q, "Street food"))
	// The comparator is exact; callers strip whitespace before handing the
	// answer over.
	assert.False(t, e.EvaluateReelAnswer(q, "  Street food  "))
	assert.False(t, e.EvaluateReelAnswer(q, "street food"))
	assert.False(t, e.EvaluateReelAnswer(q, "Fine dining"))
}
