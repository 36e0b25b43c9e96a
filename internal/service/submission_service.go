//go:generate mockery --name SubmissionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService runs the shared submission pipeline for every activity
// kind: load the activity, evaluate, persist the attempt plus its feedback in
// one transaction, then recompute level completion. Recompute failures are
// logged but never surfaced; the attempt row is already the durable record.
type SubmissionService interface {
	SubmitReading(ctx context.Context, userID, textID uuid.UUID, req *model.SubmitReadingRequest) (*model.ReadingResult, error)
	SubmitListening(ctx context.Context, userID, audioID uuid.UUID, req *model.SubmitListeningRequest) (*model.ListeningResult, error)
	SubmitWriting(ctx context.Context, userID, topicID uuid.UUID, req *model.SubmitWritingRequest) (*model.WritingResult, error)
	SubmitSpeaking(ctx context.Context, userID, exerciseID uuid.UUID, req *model.SubmitSpeakingRequest) (*model.SpeakingResult, error)
	SubmitReelAnswer(ctx context.Context, userID, batchID uuid.UUID, req *model.SubmitReelAnswerRequest) (*model.ReelAnswerResult, error)
}

type submissionService struct {
	db           *gorm.DB
	catalogRepo  repository.CatalogRepository
	attemptRepo  repository.AttemptRepository
	feedbackRepo repository.FeedbackRepository
	reelRepo     repository.ReelRepository
	progress     ProgressService
	evaluator    *Evaluator
}

func NewSubmissionService(db *gorm.DB, catalogRepo repository.CatalogRepository, attemptRepo repository.AttemptRepository, feedbackRepo repository.FeedbackRepository, reelRepo repository.ReelRepository, progress ProgressService, evaluator *Evaluator) SubmissionService {
	return &submissionService{
		db:           db,
		catalogRepo:  catalogRepo,
		attemptRepo:  attemptRepo,
		feedbackRepo: feedbackRepo,
		reelRepo:     reelRepo,
		progress:     progress,
		evaluator:    evaluator,
	}
}

// recompute runs after the attempt transaction committed. The submission has
// already succeeded at this point, so a recompute error only degrades the
// progress view and must not fail the request.
func (s *submissionService) recompute(ctx context.Context, userID, levelID uuid.UUID) {
	if err := s.progress.RecomputeCompletion(ctx, userID, levelID); err != nil {
		middleware.GetLogger(ctx).Error("Progress recompute failed after submission",
			"error", err, "user_id", userID.String(), "level_id", levelID.String())
	}
}

func (s *submissionService) SubmitReading(ctx context.Context, userID, textID uuid.UUID, req *model.SubmitReadingRequest) (*model.ReadingResult, error) {
	text, err := s.catalogRepo.FindReadingText(ctx, s.db, textID)
	if err != nil {
		return nil, err
	}
	questions, err := s.catalogRepo.ListQuestions(ctx, s.db, textID)
	if err != nil {
		return nil, err
	}

	ev := s.evaluator.EvaluateReading(questions, req.Answers)

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("submissionService.SubmitReading: marshal answers: %w", err)
	}

	attempt := &model.ReadingAttempt{
		AttemptID:     uuid.New(),
		UserID:        userID,
		ReadingTextID: textID,
		Answers:       string(answersJSON),
		Score:         ev.Score,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.CreateReadingAttempt(ctx, tx, attempt); err != nil {
			return err
		}
		feedback := &model.Feedback{
			FeedbackID:       uuid.New(),
			UserID:           userID,
			Type:             model.KindReading,
			Content:          ev.Feedback,
			ReadingAttemptID: &attempt.AttemptID,
		}
		return s.feedbackRepo.Create(ctx, tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	s.recompute(ctx, userID, text.LevelID)

	return &model.ReadingResult{
		AttemptID: attempt.AttemptID,
		Score:     ev.Score,
		Correct:   ev.Correct,
		Total:     ev.Total,
		Feedback:  ev.Feedback,
	}, nil
}

func (s *submissionService) SubmitListening(ctx context.Context, userID, audioID uuid.UUID, req *model.SubmitListeningRequest) (*model.ListeningResult, error) {
	audio, err := s.catalogRepo.FindListeningAudio(ctx, s.db, audioID)
	if err != nil {
		return nil, err
	}

	ev := s.evaluator.EvaluateListening(audio.Transcript)

	attempt := &model.ListeningAttempt{
		AttemptID:        uuid.New(),
		UserID:           userID,
		ListeningAudioID: audioID,
		UserTranslation:  req.UserTranslation,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.CreateListeningAttempt(ctx, tx, attempt); err != nil {
			return err
		}
		feedback := &model.Feedback{
			FeedbackID:         uuid.New(),
			UserID:             userID,
			Type:               model.KindListening,
			Content:            ev.Feedback,
			ListeningAttemptID: &attempt.AttemptID,
		}
		return s.feedbackRepo.Create(ctx, tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	s.recompute(ctx, userID, audio.LevelID)

	return &model.ListeningResult{AttemptID: attempt.AttemptID, Feedback: ev.Feedback}, nil
}

func (s *submissionService) SubmitWriting(ctx context.Context, userID, topicID uuid.UUID, req *model.SubmitWritingRequest) (*model.WritingResult, error) {
	topic, err := s.catalogRepo.FindWritingTopic(ctx, s.db, topicID)
	if err != nil {
		return nil, err
	}

	ev := s.evaluator.EvaluateWriting()

	submission := &model.WritingSubmission{
		SubmissionID:   uuid.New(),
		UserID:         userID,
		WritingTopicID: topicID,
		Content:        req.Content,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.CreateWritingSubmission(ctx, tx, submission); err != nil {
			return err
		}
		feedback := &model.Feedback{
			FeedbackID:          uuid.New(),
			UserID:              userID,
			Type:                model.KindWriting,
			Content:             ev.Feedback,
			WritingSubmissionID: &submission.SubmissionID,
		}
		return s.feedbackRepo.Create(ctx, tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	s.recompute(ctx, userID, topic.LevelID)

	return &model.WritingResult{SubmissionID: submission.SubmissionID, Feedback: ev.Feedback}, nil
}

func (s *submissionService) SubmitSpeaking(ctx context.Context, userID, exerciseID uuid.UUID, req *model.SubmitSpeakingRequest) (*model.SpeakingResult, error) {
	exercise, err := s.catalogRepo.FindSpeakingExercise(ctx, s.db, exerciseID)
	if err != nil {
		return nil, err
	}

	ev := s.evaluator.EvaluateSpeaking(req.Pronunciation, req.Fluency, req.Dictation)

	var scoresJSON *string
	if len(ev.Scores) > 0 {
		raw, err := json.Marshal(ev.Scores)
		if err != nil {
			return nil, fmt.Errorf("submissionService.SubmitSpeaking: marshal scores: %w", err)
		}
		str := string(raw)
		scoresJSON = &str
	}

	attempt := &model.SpeakingAttempt{
		AttemptID:          uuid.New(),
		UserID:             userID,
		SpeakingExerciseID: exerciseID,
		AudioURL:           req.AudioURL,
		Transcript:         req.Transcript,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.attemptRepo.CreateSpeakingAttempt(ctx, tx, attempt); err != nil {
			return err
		}
		feedback := &model.Feedback{
			FeedbackID:        uuid.New(),
			UserID:            userID,
			Type:              model.KindSpeaking,
			Content:           ev.Feedback,
			Scores:            scoresJSON,
			SpeakingAttemptID: &attempt.AttemptID,
		}
		return s.feedbackRepo.Create(ctx, tx, feedback)
	})
	if err != nil {
		return nil, err
	}

	s.recompute(ctx, userID, exercise.LevelID)

	return &model.SpeakingResult{AttemptID: attempt.AttemptID, Feedback: ev.Feedback, Scores: ev.Scores}, nil
}

func (s *submissionService) SubmitReelAnswer(ctx context.Context, userID, batchID uuid.UUID, req *model.SubmitReelAnswerRequest) (*model.ReelAnswerResult, error) {
	batch, err := s.reelRepo.FindBatch(ctx, s.db, batchID)
	if err != nil {
		return nil, err
	}
	question, err := s.reelRepo.FindBatchQuestion(ctx, s.db, batchID)
	if err != nil {
		return nil, err
	}

	// Strip surrounding whitespace at the boundary; the comparison itself is
	// exact and the attempt stores what was compared.
	answer := strings.TrimSpace(req.Answer)
	correct := s.evaluator.EvaluateReelAnswer(question, answer)

	attempt := &model.ReelBatchAttempt{
		AttemptID:   uuid.New(),
		UserID:      userID,
		ReelBatchID: batchID,
		Answer:      answer,
		Correct:     correct,
	}
	// Reel answers return correctness inline; no feedback row.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.attemptRepo.CreateReelBatchAttempt(ctx, tx, attempt)
	})
	if err != nil {
		return nil, err
	}

	if batch.LevelID != nil {
		s.recompute(ctx, userID, *batch.LevelID)
	}

	return &model.ReelAnswerResult{
		AttemptID:     attempt.AttemptID,
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}
