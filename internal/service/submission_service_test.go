package service

import (
	"context"
	"errors"
	"testing"

	"reel_lingo_backend/internal/model"
	repomocks "reel_lingo_backend/internal/repository/mocks"
	svcmocks "reel_lingo_backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	catalog  *repomocks.CatalogRepository
	attempts *repomocks.AttemptRepository
	feedback *repomocks.FeedbackRepository
	reels    *repomocks.ReelRepository
	progress *svcmocks.ProgressService
	svc      SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	f := &submissionFixture{
		catalog:  new(repomocks.CatalogRepository),
		attempts: new(repomocks.AttemptRepository),
		feedback: new(repomocks.FeedbackRepository),
		reels:    new(repomocks.ReelRepository),
		progress: new(svcmocks.ProgressService),
	}
	f.svc = NewSubmissionService(setupTestDB(t), f.catalog, f.attempts, f.feedback, f.reels, f.progress, NewEvaluator(""))
	return f
}

func (f *submissionFixture) assertExpectations(t *testing.T) {
	f.catalog.AssertExpectations(t)
	f.attempts.AssertExpectations(t)
	f.feedback.AssertExpectations(t)
	f.reels.AssertExpectations(t)
	f.progress.AssertExpectations(t)
}

func Test_submissionService_SubmitReading(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	levelID := uuid.New()
	textID := uuid.New()

	text := &model.ReadingText{ReadingTextID: textID, LevelID: levelID, Title: "A Morning in Zagreb"}
	q1 := &model.ReadingQuestion{QuestionID: uuid.New(), ReadingTextID: textID, Question: "Q1", CorrectAnswer: "A"}
	q2 := &model.ReadingQuestion{QuestionID: uuid.New(), ReadingTextID: textID, Question: "Q2", CorrectAnswer: "B"}

	t.Run("correct submission stores attempt and feedback then recomputes", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.catalog.On("FindReadingText", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return(text, nil).Once()
		f.catalog.On("ListQuestions", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return([]*model.ReadingQuestion{q1, q2}, nil).Once()
		f.attempts.On("CreateReadingAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReadingAttempt")).
			Run(func(args mock.Arguments) {
				attempt := args.Get(2).(*model.ReadingAttempt)
				assert.Equal(t, userID, attempt.UserID)
				assert.Equal(t, textID, attempt.ReadingTextID)
				assert.Equal(t, 100, attempt.Score)
				assert.NotEqual(t, uuid.Nil, attempt.AttemptID)
			}).Return(nil).Once()
		f.feedback.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Feedback")).
			Run(func(args mock.Arguments) {
				fb := args.Get(2).(*model.Feedback)
				assert.Equal(t, model.KindReading, fb.Type)
				assert.Equal(t, "You got 2/2 (100%) correct.", fb.Content)
				require.NotNil(t, fb.ReadingAttemptID)
			}).Return(nil).Once()
		f.progress.On("RecomputeCompletion", ctx, userID, levelID).Return(nil).Once()

		result, err := f.svc.SubmitReading(ctx, userID, textID, &model.SubmitReadingRequest{
			Answers: map[string]string{q1.QuestionID.String(): "A", q2.QuestionID.String(): "B"},
		})
		require.NoError(t, err)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, 2, result.Correct)
		assert.Equal(t, 2, result.Total)

		f.assertExpectations(t)
	})

	t.Run("unknown text returns not found", func(t *testing.T) {
		f := newSubmissionFixture(t)
		f.catalog.On("FindReadingText", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return(nil, model.ErrNotFound).Once()

		_, err := f.svc.SubmitReading(ctx, userID, textID, &model.SubmitReadingRequest{Answers: map[string]string{}})
		assert.ErrorIs(t, err, model.ErrNotFound)
		f.assertExpectations(t)
	})

	t.Run("recompute failure does not fail the submission", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.catalog.On("FindReadingText", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return(text, nil).Once()
		f.catalog.On("ListQuestions", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return([]*model.ReadingQuestion{q1}, nil).Once()
		f.attempts.On("CreateReadingAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReadingAttempt")).Return(nil).Once()
		f.feedback.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Feedback")).Return(nil).Once()
		f.progress.On("RecomputeCompletion", ctx, userID, levelID).Return(errors.New("db down")).Once()

		result, err := f.svc.SubmitReading(ctx, userID, textID, &model.SubmitReadingRequest{
			Answers: map[string]string{q1.QuestionID.String(): "A"},
		})
		require.NoError(t, err)
		assert.NotNil(t, result)
		f.assertExpectations(t)
	})

	t.Run("duplicate feedback for the attempt surfaces conflict", func(t *testing.T) {
		f := newSubmissionFixture(t)

		f.catalog.On("FindReadingText", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return(text, nil).Once()
		f.catalog.On("ListQuestions", ctx, mock.AnythingOfType("*gorm.DB"), textID).Return([]*model.ReadingQuestion{q1}, nil).Once()
		f.attempts.On("CreateReadingAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReadingAttempt")).Return(nil).Once()
		f.feedback.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Feedback")).Return(model.ErrConflict).Once()

		_, err := f.svc.SubmitReading(ctx, userID, textID, &model.SubmitReadingRequest{
			Answers: map[string]string{q1.QuestionID.String(): "A"},
		})
		assert.ErrorIs(t, err, model.ErrConflict)
		f.assertExpectations(t)
	})
}

func Test_submissionService_SubmitListening(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	levelID := uuid.New()
	audioID := uuid.New()

	transcript := "Dobar dan!"
	audio := &model.ListeningAudio{ListeningAudioID: audioID, LevelID: levelID, Title: "Ordering Coffee", Transcript: &transcript}

	f := newSubmissionFixture(t)
	f.catalog.On("FindListeningAudio", ctx, mock.AnythingOfType("*gorm.DB"), audioID).Return(audio, nil).Once()
	f.attempts.On("CreateListeningAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ListeningAttempt")).
		Run(func(args mock.Arguments) {
			attempt := args.Get(2).(*model.ListeningAttempt)
			assert.Equal(t, "Good day!", attempt.UserTranslation)
		}).Return(nil).Once()
	f.feedback.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Feedback")).
		Run(func(args mock.Arguments) {
			fb := args.Get(2).(*model.Feedback)
			assert.Equal(t, model.KindListening, fb.Type)
			assert.Equal(t, "Compare your translation with the transcript and improve where needed.", fb.Content)
		}).Return(nil).Once()
	f.progress.On("RecomputeCompletion", ctx, userID, levelID).Return(nil).Once()

	result, err := f.svc.SubmitListening(ctx, userID, audioID, &model.SubmitListeningRequest{UserTranslation: "Good day!"})
	require.NoError(t, err)
	assert.Equal(t, "Compare your translation with the transcript and improve where needed.", result.Feedback)
	f.assertExpectations(t)
}

func Test_submissionService_SubmitSpeaking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	levelID := uuid.New()
	exerciseID := uuid.New()

	exercise := &model.SpeakingExercise{SpeakingExerciseID: exerciseID, LevelID: levelID, Type: model.SpeakingTypeReadAloud}
	seven := 7

	f := newSubmissionFixture(t)
	f.catalog.On("FindSpeakingExercise", ctx, mock.AnythingOfType("*gorm.DB"), exerciseID).Return(exercise, nil).Once()
	f.attempts.On("CreateSpeakingAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.SpeakingAttempt")).Return(nil).Once()
	f.feedback.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Feedback")).
		Run(func(args mock.Arguments) {
			fb := args.Get(2).(*model.Feedback)
			assert.Equal(t, "Pronunciation: 7/10", fb.Content)
			require.NotNil(t, fb.Scores)
			assert.JSONEq(t, `{"pronunciation":7}`, *fb.Scores)
		}).Return(nil).Once()
	f.progress.On("RecomputeCompletion", ctx, userID, levelID).Return(nil).Once()

	result, err := f.svc.SubmitSpeaking(ctx, userID, exerciseID, &model.SubmitSpeakingRequest{Pronunciation: &seven})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pronunciation": 7}, result.Scores)
	f.assertExpectations(t)
}

func Test_submissionService_SubmitReelAnswer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	batchID := uuid.New()
	levelID := uuid.New()

	question := &model.ReelBatchQuestion{
		QuestionID:    uuid.New(),
		ReelBatchID:   batchID,
		Question:      "What food is shown?",
		Options:       `["Street food","Fine dining"]`,
		CorrectAnswer: "Street food",
	}

	t.Run("attached batch recomputes its level, no feedback row", func(t *testing.T) {
		f := newSubmissionFixture(t)
		batch := &model.ReelBatch{ReelBatchID: batchID, LevelID: &levelID}

		f.reels.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		f.reels.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(question, nil).Once()
		f.attempts.On("CreateReelBatchAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReelBatchAttempt")).
			Run(func(args mock.Arguments) {
				attempt := args.Get(2).(*model.ReelBatchAttempt)
				assert.True(t, attempt.Correct)
			}).Return(nil).Once()
		f.progress.On("RecomputeCompletion", ctx, userID, levelID).Return(nil).Once()

		result, err := f.svc.SubmitReelAnswer(ctx, userID, batchID, &model.SubmitReelAnswerRequest{Answer: "Street food"})
		require.NoError(t, err)
		assert.True(t, result.Correct)
		assert.Equal(t, "Street food", result.CorrectAnswer)
		f.assertExpectations(t)
	})

	t.Run("answer whitespace is stripped before grading and storing", func(t *testing.T) {
		f := newSubmissionFixture(t)
		batch := &model.ReelBatch{ReelBatchID: batchID, LevelID: nil}

		f.reels.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		f.reels.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(question, nil).Once()
		f.attempts.On("CreateReelBatchAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReelBatchAttempt")).
			Run(func(args mock.Arguments) {
				attempt := args.Get(2).(*model.ReelBatchAttempt)
				assert.Equal(t, "Street food", attempt.Answer)
				assert.True(t, attempt.Correct)
			}).Return(nil).Once()

		result, err := f.svc.SubmitReelAnswer(ctx, userID, batchID, &model.SubmitReelAnswerRequest{Answer: "  Street food  "})
		require.NoError(t, err)
		assert.True(t, result.Correct)
		f.assertExpectations(t)
	})

	t.Run("detached batch skips progress entirely", func(t *testing.T) {
		f := newSubmissionFixture(t)
		batch := &model.ReelBatch{ReelBatchID: batchID, LevelID: nil}

		f.reels.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		f.reels.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(question, nil).Once()
		f.attempts.On("CreateReelBatchAttempt", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReelBatchAttempt")).Return(nil).Once()

		result, err := f.svc.SubmitReelAnswer(ctx, userID, batchID, &model.SubmitReelAnswerRequest{Answer: "Fine dining"})
		require.NoError(t, err)
		assert.False(t, result.Correct)
		f.assertExpectations(t)
	})

	t.Run("batch without question returns not found", func(t *testing.T) {
		f := newSubmissionFixture(t)
		batch := &model.ReelBatch{ReelBatchID: batchID}

		f.reels.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		f.reels.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(nil, model.ErrNotFound).Once()

		_, err := f.svc.SubmitReelAnswer(ctx, userID, batchID, &model.SubmitReelAnswerRequest{Answer: "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
		f.assertExpectations(t)
	})
}
