// Command seed clears and repopulates the consultants and users collections
// with demo records for local development.
package main

import (
	"context"
	"flag"
	"time"

	"consultly/config"
	"consultly/database"
	consultantRepoPkg "consultly/database/repository/consultant"
	userRepoPkg "consultly/database/repository/user"
	"consultly/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	consultants := flag.Int("consultants", 12, "number of consultants to create")
	users := flag.Int("users", 5, "number of users to create")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	client := database.InitDB(logger)
	defer client.Disconnect(context.Background())
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, coll := range []string{"consultants", "users"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			logger.Fatal("Failed to clear collection", zap.String("collection", coll), zap.Error(err))
		}
	}

	consultantRepo := consultantRepoPkg.NewMongoConsultantRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	if err := consultantRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure consultant indexes", zap.Error(err))
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure user indexes", zap.Error(err))
	}

	for _, c := range demoConsultants(*consultants) {
		if err := consultantRepo.Create(ctx, &c); err != nil {
			logger.Fatal("Failed to insert consultant", zap.String("id", c.ID), zap.Error(err))
		}
	}
	for _, u := range demoUsers(*users) {
		if err := userRepo.Create(ctx, &u); err != nil {
			logger.Fatal("Failed to insert user", zap.String("id", u.ID), zap.Error(err))
		}
	}

	logger.Info("Seed complete", zap.Int("consultants", *consultants), zap.Int("users", *users))
}
