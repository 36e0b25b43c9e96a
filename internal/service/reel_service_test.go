package service

import (
	"context"
	"testing"

	"reel_lingo_backend/internal/model"
	repomocks "reel_lingo_backend/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_reelService_SetBatchQuestion(t *testing.T) {
	ctx := context.Background()
	batchID := uuid.New()
	batch := &model.ReelBatch{ReelBatchID: batchID}

	req := &model.SetBatchQuestionRequest{
		Question:      "What food is shown?",
		Options:       []string{"Street food", "Fine dining"},
		CorrectAnswer: "  Street food  ",
	}

	t.Run("creates the question with a stripped answer key", func(t *testing.T) {
		reelRepo := new(repomocks.ReelRepository)
		catalogRepo := new(repomocks.CatalogRepository)
		svc := NewReelService(setupTestDB(t), reelRepo, catalogRepo)

		reelRepo.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		reelRepo.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(nil, model.ErrNotFound).Once()
		reelRepo.On("SaveBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReelBatchQuestion")).
			Run(func(args mock.Arguments) {
				q := args.Get(2).(*model.ReelBatchQuestion)
				assert.Equal(t, "Street food", q.CorrectAnswer)
				assert.Equal(t, batchID, q.ReelBatchID)
				assert.JSONEq(t, `["Street food","Fine dining"]`, q.Options)
			}).Return(nil).Once()

		resp, err := svc.SetBatchQuestion(ctx, batchID, req)
		require.NoError(t, err)
		assert.Equal(t, "Street food", resp.CorrectAnswer)
		reelRepo.AssertExpectations(t)
	})

	t.Run("updates an existing question in place", func(t *testing.T) {
		reelRepo := new(repomocks.ReelRepository)
		catalogRepo := new(repomocks.CatalogRepository)
		svc := NewReelService(setupTestDB(t), reelRepo, catalogRepo)

		existing := &model.ReelBatchQuestion{
			QuestionID:    uuid.New(),
			ReelBatchID:   batchID,
			Question:      "Old question",
			CorrectAnswer: "Old answer",
		}
		reelRepo.On("FindBatch", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(batch, nil).Once()
		reelRepo.On("FindBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), batchID).Return(existing, nil).Once()
		reelRepo.On("SaveBatchQuestion", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ReelBatchQuestion")).
			Run(func(args mock.Arguments) {
				q := args.Get(2).(*model.ReelBatchQuestion)
				assert.Equal(t, existing.QuestionID, q.QuestionID)
				assert.Equal(t, "What food is shown?", q.Question)
				assert.Equal(t, "Street food", q.CorrectAnswer)
			}).Return(nil).Once()

		resp, err := svc.SetBatchQuestion(ctx, batchID, req)
		require.NoError(t, err)
		assert.Equal(t, existing.QuestionID, resp.ID)
		reelRepo.AssertExpectations(t)
	})
}
