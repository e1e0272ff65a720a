package main

import (
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soulsyync/soulsyync-api/internal/config"
	"github.com/soulsyync/soulsyync-api/internal/db"
	"github.com/soulsyync/soulsyync-api/internal/models"
	"github.com/soulsyync/soulsyync-api/pkg/logger"
)

// Seeds the database with the admin account, the service catalog and a
// couple of starter blog posts. Safe to run on every deploy: it skips
// everything when any user already exists.
func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment())
	defer logger.Sync()

	database := db.NewDB(cfg)

	var count int64
	if err := database.Model(&models.User{}).Count(&count).Error; err != nil {
		logger.Log.Fatal("failed to inspect users table", zap.Error(err))
	}
	if count > 0 {
		logger.Log.Info("database already contains data, skipping seed")
		return
	}

	if err := seed(database); err != nil {
		logger.Log.Fatal("seed failed", zap.Error(err))
	}

	logger.Log.Info("database seeded successfully")
}

func seed(database *gorm.DB) error {
	password := getEnv("ADMIN_PASSWORD", "password")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: getEnv("ADMIN_USERNAME", "admin"),
		Password: string(hashed),
		Email:    getEnv("ADMIN_EMAIL", "admin@soulsyync.com"),
		FullName: "Admin User",
		Role:     models.RoleAdmin,
	}
	if err := database.Create(&admin).Error; err != nil {
		return err
	}

	services := []models.Service{
		{
			Name:        "Spiritual Counseling",
			Description: "One-on-one sessions to explore your spiritual path, overcome obstacles, and find inner peace.",
			Price:       8000,
			Duration:    60,
			ImageURL:    "https://images.pexels.com/photos/6541343/pexels-photo-6541343.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:        "Chakra Balancing",
			Description: "Realign your energy centers to promote physical, emotional, and spiritual well-being.",
			Price:       9500,
			Duration:    75,
			ImageURL:    "https://images.pexels.com/photos/8964774/pexels-photo-8964774.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:        "Aura Cleansing",
			Description: "Clear negative energies and strengthen your energetic field for protection and vitality.",
			Price:       8500,
			Duration:    60,
			ImageURL:    "https://images.pexels.com/photos/3047319/pexels-photo-3047319.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:        "Past Life Regression",
			Description: "Journey into your past lives to gain insights into your current challenges and soul's purpose.",
			Price:       12000,
			Duration:    90,
			ImageURL:    "https://images.pexels.com/photos/935830/pexels-photo-935830.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:        "Tarot Reading",
			Description: "Gain spiritual guidance and clarity on life questions through the symbolic language of tarot.",
			Price:       7500,
			Duration:    45,
			ImageURL:    "https://images.pexels.com/photos/6633336/pexels-photo-6633336.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
	}
	if err := database.Create(&services).Error; err != nil {
		return err
	}

	now := time.Now()
	posts := []models.BlogPost{
		{
			Title: "5 Morning Meditation Practices to Start Your Day",
			Content: "<p>Starting your day with meditation can set a positive tone for the hours ahead. " +
				"Here are five practices to try: mindful breathing, gratitude meditation, a body scan, " +
				"intention setting, and loving-kindness meditation.</p>" +
				"<p>Even just 10 minutes of morning meditation can transform your day. " +
				"The key is consistency, not duration. Start small and make it a daily habit.</p>",
			AuthorID:    admin.ID,
			Category:    "Meditation",
			ImageURL:    "https://images.pexels.com/photos/3560044/pexels-photo-3560044.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Featured:    true,
			PublishedAt: now,
		},
		{
			Title: "The Beginner's Guide to Crystal Healing: Properties & Uses",
			Content: "<p>Crystal healing is an ancient practice that uses the natural energetic properties " +
				"of crystals to promote wellness. Essential crystals for beginners include clear quartz, " +
				"amethyst, rose quartz, black tourmaline and citrine.</p>" +
				"<p>Cleanse your crystals regularly to remove accumulated energies. Crystal healing works " +
				"best as a complement to other wellness practices, not as a replacement for professional healthcare.</p>",
			AuthorID:    admin.ID,
			Category:    "Crystal Healing",
			ImageURL:    "https://images.pexels.com/photos/3059750/pexels-photo-3059750.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Featured:    false,
			PublishedAt: now,
		},
	}
	return database.Create(&posts).Error
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
