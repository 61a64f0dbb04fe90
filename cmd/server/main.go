package main

import (
	"context"
	"net/http"

	"github.com/SUDD-dawg/Low-Risk/classifier"
	"github.com/SUDD-dawg/Low-Risk/config"
	"github.com/SUDD-dawg/Low-Risk/db"
	"github.com/SUDD-dawg/Low-Risk/db/mongo"
	"github.com/SUDD-dawg/Low-Risk/db/postgres"
	"github.com/SUDD-dawg/Low-Risk/handlers"
	"github.com/SUDD-dawg/Low-Risk/repository"
	"github.com/SUDD-dawg/Low-Risk/routes"
	"github.com/SUDD-dawg/Low-Risk/utils"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.SecretKey == "" {
		logger.Fatal("SECRET_KEY must be set")
	}
	secret := []byte(cfg.SecretKey)

	var userRepo repository.UserRepository
	var feedbackRepo repository.FeedbackRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		if err := db.RunMigrations(cfg.PostgresURL); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		logger.Info("migrations applied")

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		feedbackRepo = repository.NewPostgresFeedbackRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			logger.Fatal("mongo connection failed", zap.Error(err))
		}
		defer mg.Disconnect()

		mongoUsers := repository.NewMongoUserRepo(mg.Client)
		if err := mongoUsers.EnsureIndexes(context.Background()); err != nil {
			logger.Fatal("mongo index creation failed", zap.Error(err))
		}

		userRepo = mongoUsers
		feedbackRepo = repository.NewMongoFeedbackRepo(mg.Client)

	default:
		logger.Fatal("DB_TYPE not supported", zap.String("db_type", cfg.DBType))
	}

	tmpl, err := handlers.NewTemplates(logger)
	if err != nil {
		logger.Fatal("template parsing failed", zap.Error(err))
	}

	// Report export is optional; without R2 settings the endpoint responds
	// with a service-unavailable message.
	var uploader *utils.R2Uploader
	if cfg.R2Bucket != "" {
		uploader, err = utils.NewR2Uploader(utils.R2Config{
			Bucket:          cfg.R2Bucket,
			AccountID:       cfg.R2AccountID,
			PublicURL:       cfg.R2PublicURL,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
		})
		if err != nil {
			logger.Fatal("R2 setup failed", zap.Error(err))
		}
	}

	authHandler := &handlers.AuthHandler{
		Users:      userRepo,
		Secret:     secret,
		SessionTTL: cfg.SessionTTL,
		Log:        logger,
		Tmpl:       tmpl,
	}
	calcHandler := &handlers.CalcHandler{Log: logger, Tmpl: tmpl}
	feedbackHandler := &handlers.FeedbackHandler{
		Repo:       feedbackRepo,
		Classifier: classifier.NewRuleClassifier(),
		Log:        logger,
		Tmpl:       tmpl,
	}
	apiHandler := &handlers.APIHandler{Log: logger}
	reportHandler := &handlers.ReportHandler{
		Repo:     feedbackRepo,
		Uploader: uploader,
		Log:      logger,
		Tmpl:     tmpl,
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, secret, logger,
		authHandler, calcHandler, feedbackHandler, apiHandler, reportHandler)

	logger.Info("server running", zap.String("port", cfg.Port), zap.String("db_type", cfg.DBType))
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
