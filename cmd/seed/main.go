// Seeds the feedback table with sample records and runs the categorization
// step over them, mirroring a fresh production install.
package main

import (
	"context"

	"github.com/SUDD-dawg/Low-Risk/classifier"
	"github.com/SUDD-dawg/Low-Risk/config"
	"github.com/SUDD-dawg/Low-Risk/db"
	"github.com/SUDD-dawg/Low-Risk/db/mongo"
	"github.com/SUDD-dawg/Low-Risk/db/postgres"
	"github.com/SUDD-dawg/Low-Risk/models"
	"github.com/SUDD-dawg/Low-Risk/repository"

	"go.uber.org/zap"
)

var sampleFeedback = []models.Feedback{
	{
		OverallExperience: models.ExperienceExcellent,
		HelpfulRating:     models.HelpfulVery,
		Suggestions:       "The eligibility calculator was very helpful and easy to use. The interface is intuitive and the results were accurate.",
	},
	{
		OverallExperience: models.ExperienceGood,
		HelpfulRating:     models.HelpfulGood,
		Suggestions:       "The risk assessment tool is useful, but could benefit from more detailed explanations of the risk factors.",
	},
	{
		OverallExperience: models.ExperienceAverage,
		HelpfulRating:     models.HelpfulGood,
		Suggestions:       "The feedback form is straightforward, but the loading time could be improved.",
	},
	{
		OverallExperience: models.ExperiencePoor,
		HelpfulRating:     models.HelpfulAverage,
		Suggestions:       "The website needs significant improvements in terms of user experience and design. The navigation is confusing and the forms are too long.",
	},
	{
		OverallExperience: models.ExperienceExcellent,
		HelpfulRating:     models.HelpfulVery,
		Suggestions:       "Absolutely love this service! The risk calculator helped me understand my financial situation better. Keep up the great work!",
	},
}

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var feedbackRepo repository.FeedbackRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pg.Disconnect()

		feedbackRepo = repository.NewPostgresFeedbackRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logger.Fatal("mongo connection failed", zap.Error(err))
		}
		defer mg.Disconnect()

		feedbackRepo = repository.NewMongoFeedbackRepo(mg.Client)

	default:
		logger.Fatal("DB_TYPE not supported", zap.String("db_type", cfg.DBType))
	}

	ctx := context.Background()
	rules := classifier.NewRuleClassifier()

	for i := range sampleFeedback {
		fb := sampleFeedback[i]
		if err := feedbackRepo.Create(ctx, &fb); err != nil {
			logger.Fatal("seed insert failed", zap.Error(err))
		}

		category, confidence := rules.Classify(fb.OverallExperience, fb.HelpfulRating)
		if err := feedbackRepo.UpdateCategory(ctx, fb.ID, category, confidence); err != nil {
			logger.Fatal("seed categorization failed", zap.Int64("id", fb.ID), zap.Error(err))
		}

		logger.Info("seeded feedback",
			zap.Int64("id", fb.ID),
			zap.String("category", category),
			zap.Float64("confidence", confidence),
		)
	}

	logger.Info("database seeded with sample feedback",
		zap.String("dashboard", "http://localhost:"+cfg.Port+"/dashboard"),
		zap.String("feedback_form", "http://localhost:"+cfg.Port+"/feedback"),
	)
}
