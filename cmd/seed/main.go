// cmd/seed/main.go
//
// Development seeder: migrates the schema and loads a small content catalog
// (categories, levels, activities, one reel batch). Safe to re-run; it exits
// without writing when categories already exist.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"reel_lingo_backend/internal/config"
	"reel_lingo_backend/internal/model"
	"reel_lingo_backend/internal/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := migrate(db); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Schema migrated.")

	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		slog.Error("Error checking existing catalog", slog.Any("error", err))
		os.Exit(1)
	}
	if count > 0 {
		slog.Info("Catalog already seeded, nothing to do.", slog.Int64("categories", count))
		return
	}

	if err := db.Transaction(seed); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Catalog seeded.")
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Level{},
		&model.ReadingText{},
		&model.ReadingQuestion{},
		&model.ListeningAudio{},
		&model.WritingTopic{},
		&model.SpeakingExercise{},
		&model.ReelBatch{},
		&model.ReelBatchQuestion{},
		&model.Reel{},
		&model.ReelDubbing{},
		&model.ReadingAttempt{},
		&model.ListeningAttempt{},
		&model.WritingSubmission{},
		&model.SpeakingAttempt{},
		&model.ReelBatchAttempt{},
		&model.Feedback{},
		&model.UserLevelProgress{},
	)
}

func seed(tx *gorm.DB) error {
	type categorySpec struct {
		slug string
		name string
		kind model.ActivityKind
	}
	specs := []categorySpec{
		{"reading", "Reading", model.KindReading},
		{"listening", "Listening", model.KindListening},
		{"writing", "Writing", model.KindWriting},
		{"speaking", "Speaking", model.KindSpeaking},
		{"reels", "Reels", model.KindReelBatch},
	}

	levelsByCategory := map[string][]uuid.UUID{}
	for i, spec := range specs {
		category := &model.Category{
			CategoryID:  uuid.New(),
			Slug:        spec.slug,
			Name:        spec.name,
			Description: strPtr(fmt.Sprintf("Practice your %s skills level by level.", spec.slug)),
			Kind:        spec.kind,
			Order:       i + 1,
		}
		if err := tx.Create(category).Error; err != nil {
			return err
		}

		for order := 1; order <= 3; order++ {
			level := &model.Level{
				LevelID:     uuid.New(),
				CategoryID:  category.CategoryID,
				Order:       order,
				Name:        fmt.Sprintf("Level %d", order),
				Description: strPtr(fmt.Sprintf("%s practice, level %d.", spec.name, order)),
			}
			if err := tx.Create(level).Error; err != nil {
				return err
			}
			levelsByCategory[spec.slug] = append(levelsByCategory[spec.slug], level.LevelID)
		}
	}

	if err := seedReading(tx, levelsByCategory["reading"][0]); err != nil {
		return err
	}
	if err := seedListening(tx, levelsByCategory["listening"][0]); err != nil {
		return err
	}
	if err := seedWriting(tx, levelsByCategory["writing"][0]); err != nil {
		return err
	}
	if err := seedSpeaking(tx, levelsByCategory["speaking"][0]); err != nil {
		return err
	}
	return seedReels(tx, levelsByCategory["reels"][0])
}

func seedReading(tx *gorm.DB, levelID uuid.UUID) error {
	text := &model.ReadingText{
		ReadingTextID: uuid.New(),
		LevelID:       levelID,
		Title:         "A Morning in Zagreb",
		Body:          "Ana wakes up early and walks to the market. She buys bread, cheese and fresh tomatoes. On her way home she greets her neighbour, an old fisherman who tells her about the sea.",
		Order:         1,
	}
	if err := tx.Create(text).Error; err != nil {
		return err
	}

	questions := []*model.ReadingQuestion{
		{
			QuestionID:    uuid.New(),
			ReadingTextID: text.ReadingTextID,
			Question:      "What does Ana buy at the market?",
			Options:       strPtr(`["Bread, cheese and tomatoes","Fish and olives","Milk and eggs"]`),
			CorrectAnswer: "Bread, cheese and tomatoes",
			Order:         1,
		},
		{
			QuestionID:    uuid.New(),
			ReadingTextID: text.ReadingTextID,
			Question:      "Who does Ana greet on her way home?",
			Options:       strPtr(`["A baker","An old fisherman","Her teacher"]`),
			CorrectAnswer: "An old fisherman",
			Order:         2,
		},
	}
	for _, q := range questions {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedListening(tx *gorm.DB, levelID uuid.UUID) error {
	audio := &model.ListeningAudio{
		ListeningAudioID: uuid.New(),
		LevelID:          levelID,
		Title:            "Ordering Coffee",
		AudioURL:         "https://cdn.example.com/audio/ordering-coffee.mp3",
		Transcript:       strPtr("Dobar dan! Jednu kavu s mlijekom, molim."),
		DurationSeconds:  intPtr(14),
		Order:            1,
	}
	return tx.Create(audio).Error
}

func seedWriting(tx *gorm.DB, levelID uuid.UUID) error {
	topic := &model.WritingTopic{
		WritingTopicID: uuid.New(),
		LevelID:        levelID,
		Title:          "My Weekend",
		Prompt:         "Write 5-8 sentences about what you did last weekend.",
		Order:          1,
	}
	return tx.Create(topic).Error
}

func seedSpeaking(tx *gorm.DB, levelID uuid.UUID) error {
	exercise := &model.SpeakingExercise{
		SpeakingExerciseID: uuid.New(),
		LevelID:            levelID,
		Type:               model.SpeakingTypeReadAloud,
		Title:              "Introduce Yourself",
		Prompt:             "Read this aloud: 'Hello, my name is... I am learning a new language.'",
		Order:              1,
	}
	return tx.Create(exercise).Error
}

func seedReels(tx *gorm.DB, levelID uuid.UUID) error {
	batch := &model.ReelBatch{
		ReelBatchID: uuid.New(),
		LevelID:     &levelID,
		Title:       strPtr("Street Food Tour"),
		Order:       1,
	}
	if err := tx.Create(batch).Error; err != nil {
		return err
	}

	for i := 1; i <= 5; i++ {
		order := i
		reel := &model.Reel{
			ReelID:          uuid.New(),
			Title:           fmt.Sprintf("Street Food Tour %d/5", i),
			Description:     strPtr("A short clip from the market."),
			VideoURL:        fmt.Sprintf("https://cdn.example.com/reels/street-food-%d.mp4", i),
			DurationSeconds: intPtr(30),
			Language:        "hr",
			Order:           i,
			BatchID:         &batch.ReelBatchID,
			OrderInBatch:    &order,
		}
		if err := tx.Create(reel).Error; err != nil {
			return err
		}

		dubbing := &model.ReelDubbing{
			DubbingID:  uuid.New(),
			ReelID:     reel.ReelID,
			Language:   "en",
			AudioURL:   fmt.Sprintf("https://cdn.example.com/reels/street-food-%d-en.mp3", i),
			Transcript: strPtr("English narration of the clip."),
		}
		if err := tx.Create(dubbing).Error; err != nil {
			return err
		}
	}

	question := &model.ReelBatchQuestion{
		QuestionID:    uuid.New(),
		ReelBatchID:   batch.ReelBatchID,
		Question:      "What kind of food is shown in the videos?",
		Options:       `["Street food","Fine dining","Home cooking"]`,
		CorrectAnswer: "Street food",
	}
	return tx.Create(question).Error
}
