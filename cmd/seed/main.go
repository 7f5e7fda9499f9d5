package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kangsm1989-hue/ai-counsel-web/internal/entity"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/implementation"
	"github.com/kangsm1989-hue/ai-counsel-web/internal/repository/specification"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/database"
	"github.com/kangsm1989-hue/ai-counsel-web/pkg/insight"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with two weeks of diary entries so the insight
// dashboard has something to show on a fresh install.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	userRepo := implementation.NewUserRepository(db)
	diaryRepo := implementation.NewDiaryRepository(db)

	existing, err := userRepo.FindOne(ctx, specification.ByEmail{Email: "demo@example.com"})
	if err != nil {
		log.Fatalf("Error: lookup demo user: %v", err)
	}
	if existing != nil {
		log.Println("Demo user already exists, nothing to do.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: hash password: %v", err)
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "demo@example.com",
		Nickname:     "demo",
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Error: create demo user: %v", err)
	}

	moods := []int{6, 7, 5, 4, 6, 8, 7, 5, 6, 7, 8, 6, 7, 9}
	emotionSets := [][]string{
		{"calm"}, {"joy", "calm"}, {"tired"}, {"anxious"}, {"calm"},
		{"joy"}, {"grateful"}, {"tired", "anxious"}, {"calm"}, {"joy"},
		{"joy", "grateful"}, {"calm"}, {"grateful"}, {"joy", "proud"},
	}

	today := time.Now()
	for i, mood := range moods {
		entryDate := insight.AddDays(today, -(len(moods) - 1 - i))
		entry := &entity.DiaryEntry{
			Id:           uuid.New(),
			UserId:       user.Id,
			EntryDate:    entryDate,
			Mood:         mood,
			Energy:       insight.ClampRating(mood - 1),
			Relationship: insight.ClampRating(mood + 1),
			Achievement:  mood,
			Emotions:     emotionSets[i],
			Content:      "Seeded demo entry.",
			CreatedAt:    time.Now(),
		}
		if err := diaryRepo.Create(ctx, entry); err != nil {
			log.Fatalf("Error: create diary entry: %v", err)
		}
	}

	log.Printf("Seeded demo user %s with %d diary entries.", user.Email, len(moods))
}
