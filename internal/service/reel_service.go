//go:generate mockery --name ReelService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReelService serves the reel feed and manages reel batches with their single
// comprehension question.
type ReelService interface {
	ListReels(ctx context.Context) ([]model.ReelResponse, error)
	GetReel(ctx context.Context, reelID uuid.UUID) (*model.ReelResponse, error)
	GetDubbing(ctx context.Context, reelID uuid.UUID, language string) (*model.ReelDubbingResponse, error)

	CreateBatch(ctx context.Context, req *model.CreateReelBatchRequest) (*model.ReelBatchResponse, error)
	ListBatches(ctx context.Context) ([]model.ReelBatchResponse, error)
	// GetBatch returns the batch with its reels and question. The answer key
	// is included only when includeAnswer is set (creator view).
	GetBatch(ctx context.Context, batchID uuid.UUID, includeAnswer bool) (*model.ReelBatchResponse, error)
	SetBatchQuestion(ctx context.Context, batchID uuid.UUID, req *model.SetBatchQuestionRequest) (*model.ReelBatchQuestionResponse, error)
}

type reelService struct {
	db          *gorm.DB
	reelRepo    repository.ReelRepository
	catalogRepo repository.CatalogRepository
}

func NewReelService(db *gorm.DB, reelRepo repository.ReelRepository, catalogRepo repository.CatalogRepository) ReelService {
	return &reelService{db: db, reelRepo: reelRepo, catalogRepo: catalogRepo}
}

func toReelResponse(reel *model.Reel) model.ReelResponse {
	dubbings := make([]model.ReelDubbingResponse, 0, len(reel.Dubbings))
	for _, d := range reel.Dubbings {
		dubbings = append(dubbings, model.ReelDubbingResponse{
			ID:         d.DubbingID,
			Language:   d.Language,
			AudioURL:   d.AudioURL,
			Transcript: d.Transcript,
		})
	}
	return model.ReelResponse{
		ID:              reel.ReelID,
		Title:           reel.Title,
		Description:     reel.Description,
		VideoURL:        reel.VideoURL,
		ThumbnailURL:    reel.ThumbnailURL,
		DurationSeconds: reel.DurationSeconds,
		Language:        reel.Language,
		Order:           reel.Order,
		BatchID:         reel.BatchID,
		OrderInBatch:    reel.OrderInBatch,
		Dubbings:        dubbings,
	}
}

func (s *reelService) ListReels(ctx context.Context) ([]model.ReelResponse, error) {
	reels, err := s.reelRepo.ListReels(ctx, s.db)
	if err != nil {
		return nil, err
	}
	responses := make([]model.ReelResponse, 0, len(reels))
	for _, reel := range reels {
		responses = append(responses, toReelResponse(reel))
	}
	return responses, nil
}

func (s *reelService) GetReel(ctx context.Context, reelID uuid.UUID) (*model.ReelResponse, error) {
	reel, err := s.reelRepo.FindReel(ctx, s.db, reelID)
	if err != nil {
		return nil, err
	}
	resp := toReelResponse(reel)
	return &resp, nil
}

func (s *reelService) GetDubbing(ctx context.Context, reelID uuid.UUID, language string) (*model.ReelDubbingResponse, error) {
	if _, err := s.reelRepo.FindReel(ctx, s.db, reelID); err != nil {
		return nil, err
	}
	dubbing, err := s.reelRepo.FindDubbing(ctx, s.db, reelID, language)
	if err != nil {
		return nil, err
	}
	return &model.ReelDubbingResponse{
		ID:         dubbing.DubbingID,
		Language:   dubbing.Language,
		AudioURL:   dubbing.AudioURL,
		Transcript: dubbing.Transcript,
	}, nil
}

func (s *reelService) CreateBatch(ctx context.Context, req *model.CreateReelBatchRequest) (*model.ReelBatchResponse, error) {
	if req.LevelID != nil {
		if _, err := s.catalogRepo.FindLevel(ctx, s.db, *req.LevelID); err != nil {
			return nil, err
		}
	}

	batch := &model.ReelBatch{
		ReelBatchID: uuid.New(),
		LevelID:     req.LevelID,
		Title:       req.Title,
		Order:       req.Order,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reelRepo.CreateBatch(ctx, tx, batch)
	})
	if err != nil {
		return nil, err
	}

	createdAt := batch.CreatedAt
	return &model.ReelBatchResponse{
		ID:        batch.ReelBatchID,
		LevelID:   batch.LevelID,
		Title:     batch.Title,
		Order:     batch.Order,
		CreatedAt: &createdAt,
		Reels:     []model.ReelResponse{},
	}, nil
}

func (s *reelService) ListBatches(ctx context.Context) ([]model.ReelBatchResponse, error) {
	batches, err := s.reelRepo.ListBatches(ctx, s.db)
	if err != nil {
		return nil, err
	}
	responses := make([]model.ReelBatchResponse, 0, len(batches))
	for _, batch := range batches {
		resp, err := s.batchResponse(ctx, batch, false)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *reelService) GetBatch(ctx context.Context, batchID uuid.UUID, includeAnswer bool) (*model.ReelBatchResponse, error) {
	batch, err := s.reelRepo.FindBatch(ctx, s.db, batchID)
	if err != nil {
		return nil, err
	}
	return s.batchResponse(ctx, batch, includeAnswer)
}

func (s *reelService) batchResponse(ctx context.Context, batch *model.ReelBatch, includeAnswer bool) (*model.ReelBatchResponse, error) {
	reels, err := s.reelRepo.ListBatchReels(ctx, s.db, batch.ReelBatchID)
	if err != nil {
		return nil, err
	}
	reelResponses := make([]model.ReelResponse, 0, len(reels))
	for _, reel := range reels {
		reelResponses = append(reelResponses, toReelResponse(reel))
	}

	resp := &model.ReelBatchResponse{
		ID:      batch.ReelBatchID,
		LevelID: batch.LevelID,
		Title:   batch.Title,
		Order:   batch.Order,
		Reels:   reelResponses,
	}
	createdAt := batch.CreatedAt
	resp.CreatedAt = &createdAt

	question, err := s.reelRepo.FindBatchQuestion(ctx, s.db, batch.ReelBatchID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return resp, nil
		}
		return nil, err
	}

	logger := middleware.GetLogger(ctx)
	options := question.Options
	resp.Question = &model.ReelBatchQuestionResponse{
		ID:       question.QuestionID,
		Question: question.Question,
		Options:  decodeOptions(logger, &options),
	}
	if includeAnswer {
		resp.Question.CorrectAnswer = question.CorrectAnswer
	}
	return resp, nil
}

func (s *reelService) SetBatchQuestion(ctx context.Context, batchID uuid.UUID, req *model.SetBatchQuestionRequest) (*model.ReelBatchQuestionResponse, error) {
	if _, err := s.reelRepo.FindBatch(ctx, s.db, batchID); err != nil {
		return nil, err
	}

	optionsJSON, err := json.Marshal(req.Options)
	if err != nil {
		return nil, fmt.Errorf("reelService.SetBatchQuestion: marshal options: %w", err)
	}

	existing, err := s.reelRepo.FindBatchQuestion(ctx, s.db, batchID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	question := existing
	if question == nil {
		question = &model.ReelBatchQuestion{
			QuestionID:  uuid.New(),
			ReelBatchID: batchID,
		}
	}
	question.Question = req.Question
	question.Options = string(optionsJSON)
	// The stored answer key is the exact string submissions are compared
	// against, so it is stripped here once.
	question.CorrectAnswer = strings.TrimSpace(req.CorrectAnswer)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reelRepo.SaveBatchQuestion(ctx, tx, question)
	})
	if err != nil {
		return nil, err
	}

	return &model.ReelBatchQuestionResponse{
		ID:            question.QuestionID,
		Question:      question.Question,
		Options:       req.Options,
		CorrectAnswer: question.CorrectAnswer,
	}, nil
}
