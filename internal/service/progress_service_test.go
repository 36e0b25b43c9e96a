package service

import (
	"context"
	"testing"
	"time"

	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite handle used only as the transaction
// carrier; all data access goes through mocked repositories.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func testLevel(categoryID, levelID uuid.UUID, kind model.ActivityKind) *model.Level {
	return &model.Level{
		LevelID:    levelID,
		CategoryID: categoryID,
		Order:      1,
		Name:       "Level 1",
		Category: &model.Category{
			CategoryID: categoryID,
			Slug:       string(kind),
			Name:       "Test Category",
			Kind:       kind,
		},
	}
}

func Test_progressService_RecomputeCompletion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	levelID := uuid.New()
	activityIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	fixedNow := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	level := testLevel(categoryID, levelID, model.KindReading)

	tests := []struct {
		name      string
		setupMock func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository)
		wantErr   bool
	}{
		{
			name: "partial coverage writes nothing",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return(activityIDs, nil).Once()
				attempts.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindReading, activityIDs).Return(int64(2), nil).Once()
				// No progress repo calls expected.
			},
		},
		{
			name: "empty level writes nothing",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return([]uuid.UUID{}, nil).Once()
			},
		},
		{
			name: "full coverage creates completed row stamped once",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return(activityIDs, nil).Once()
				attempts.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindReading, activityIDs).Return(int64(3), nil).Once()
				progress.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, categoryID, levelID).Return(nil, model.ErrNotFound).Once()
				progress.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserLevelProgress")).
					Run(func(args mock.Arguments) {
						row := args.Get(2).(*model.UserLevelProgress)
						assert.True(t, row.Completed)
						require.NotNil(t, row.CompletedAt)
						assert.Equal(t, fixedNow, *row.CompletedAt)
						assert.Equal(t, userID, row.UserID)
						assert.Equal(t, categoryID, row.CategoryID)
						assert.Equal(t, levelID, row.LevelID)
					}).Return(nil).Once()
			},
		},
		{
			name: "already completed row is never re-stamped",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				earlier := fixedNow.Add(-48 * time.Hour)
				existing := &model.UserLevelProgress{
					ProgressID:  uuid.New(),
					UserID:      userID,
					CategoryID:  categoryID,
					LevelID:     levelID,
					Completed:   true,
					CompletedAt: &earlier,
				}
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return(activityIDs, nil).Once()
				attempts.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindReading, activityIDs).Return(int64(3), nil).Once()
				progress.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, categoryID, levelID).Return(existing, nil).Once()
				// No Save expected: CompletedAt keeps its original stamp.
			},
		},
		{
			name: "create conflict from concurrent submission is not an error",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return(activityIDs, nil).Once()
				attempts.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindReading, activityIDs).Return(int64(3), nil).Once()
				progress.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, categoryID, levelID).Return(nil, model.ErrNotFound).Once()
				progress.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserLevelProgress")).Return(model.ErrConflict).Once()
			},
		},
		{
			name: "existing incomplete row is flipped and stamped",
			setupMock: func(catalog *mocks.CatalogRepository, attempts *mocks.AttemptRepository, progress *mocks.ProgressRepository) {
				existing := &model.UserLevelProgress{
					ProgressID: uuid.New(),
					UserID:     userID,
					CategoryID: categoryID,
					LevelID:    levelID,
					Completed:  false,
				}
				catalog.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
				catalog.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindReading, levelID).Return(activityIDs, nil).Once()
				attempts.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindReading, activityIDs).Return(int64(3), nil).Once()
				progress.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), userID, categoryID, levelID).Return(existing, nil).Once()
				progress.On("Save", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserLevelProgress")).
					Run(func(args mock.Arguments) {
						row := args.Get(2).(*model.UserLevelProgress)
						assert.True(t, row.Completed)
						require.NotNil(t, row.CompletedAt)
						assert.Equal(t, fixedNow, *row.CompletedAt)
					}).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			catalogRepo := new(mocks.CatalogRepository)
			attemptRepo := new(mocks.AttemptRepository)
			progressRepo := new(mocks.ProgressRepository)

			svc := NewProgressService(db, catalogRepo, attemptRepo, progressRepo)
			svc.(*progressService).now = func() time.Time { return fixedNow }

			tt.setupMock(catalogRepo, attemptRepo, progressRepo)

			err := svc.RecomputeCompletion(ctx, userID, levelID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			catalogRepo.AssertExpectations(t)
			attemptRepo.AssertExpectations(t)
			progressRepo.AssertExpectations(t)
		})
	}
}

func Test_progressService_CompletionState(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()
	levelID := uuid.New()
	activityIDs := []uuid.UUID{uuid.New(), uuid.New()}

	level := testLevel(categoryID, levelID, model.KindWriting)

	tests := []struct {
		name      string
		ids       []uuid.UUID
		attempted int64
		want      model.CompletionState
	}{
		{"empty level is not started", []uuid.UUID{}, 0, model.StateNotStarted},
		{"no attempts is not started", activityIDs, 0, model.StateNotStarted},
		{"partial coverage is in progress", activityIDs, 1, model.StateInProgress},
		{"full coverage is completed", activityIDs, 2, model.StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			catalogRepo := new(mocks.CatalogRepository)
			attemptRepo := new(mocks.AttemptRepository)
			progressRepo := new(mocks.ProgressRepository)

			catalogRepo.On("FindLevel", ctx, mock.AnythingOfType("*gorm.DB"), levelID).Return(level, nil).Once()
			catalogRepo.On("ListActivityIDs", ctx, mock.AnythingOfType("*gorm.DB"), model.KindWriting, levelID).Return(tt.ids, nil).Once()
			if len(tt.ids) > 0 {
				attemptRepo.On("CountDistinctActivities", ctx, mock.AnythingOfType("*gorm.DB"), userID, model.KindWriting, tt.ids).Return(tt.attempted, nil).Once()
			}

			svc := NewProgressService(db, catalogRepo, attemptRepo, progressRepo)
			state, err := svc.CompletionState(ctx, userID, levelID)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, state)

			catalogRepo.AssertExpectations(t)
			attemptRepo.AssertExpectations(t)
		})
	}
}

func Test_progressService_LevelStatuses(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	category := &model.Category{CategoryID: categoryID, Slug: "reading", Name: "Reading", Kind: model.KindReading}

	level1 := &model.Level{LevelID: uuid.New(), CategoryID: categoryID, Order: 1, Name: "Level 1"}
	level2 := &model.Level{LevelID: uuid.New(), CategoryID: categoryID, Order: 2, Name: "Level 2"}
	level3 := &model.Level{LevelID: uuid.New(), CategoryID: categoryID, Order: 3, Name: "Level 3"}
	levels := []*model.Level{level1, level2, level3}

	completedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		progressRows []*model.UserLevelProgress
		wantUnlocked []bool
		wantDone     []bool
	}{
		{
			name:         "nothing completed unlocks only the first level",
			progressRows: nil,
			wantUnlocked: []bool{true, false, false},
			wantDone:     []bool{false, false, false},
		},
		{
			name: "completing level 1 unlocks level 2",
			progressRows: []*model.UserLevelProgress{
				{UserID: userID, CategoryID: categoryID, LevelID: level1.LevelID, Completed: true, CompletedAt: &completedAt},
			},
			wantUnlocked: []bool{true, true, false},
			wantDone:     []bool{true, false, false},
		},
		{
			name: "completion of a later level does not unlock past a gap",
			progressRows: []*model.UserLevelProgress{
				{UserID: userID, CategoryID: categoryID, LevelID: level2.LevelID, Completed: true, CompletedAt: &completedAt},
			},
			wantUnlocked: []bool{true, false, true},
			wantDone:     []bool{false, true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			catalogRepo := new(mocks.CatalogRepository)
			attemptRepo := new(mocks.AttemptRepository)
			progressRepo := new(mocks.ProgressRepository)

			catalogRepo.On("ListLevels", ctx, mock.AnythingOfType("*gorm.DB"), categoryID).Return(levels, nil).Once()
			progressRepo.On("FindByUserAndCategory", ctx, mock.AnythingOfType("*gorm.DB"), userID, categoryID).Return(tt.progressRows, nil).Once()

			svc := NewProgressService(db, catalogRepo, attemptRepo, progressRepo)
			statuses, err := svc.LevelStatuses(ctx, userID, category)
			assert.NoError(t, err)
			require.Len(t, statuses, 3)

			for i := range statuses {
				assert.Equal(t, tt.wantUnlocked[i], statuses[i].Unlocked, "unlocked[%d]", i)
				assert.Equal(t, tt.wantDone[i], statuses[i].Completed, "completed[%d]", i)
			}

			catalogRepo.AssertExpectations(t)
			progressRepo.AssertExpectations(t)
		})
	}
}
