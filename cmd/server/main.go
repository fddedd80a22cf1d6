package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"studytrack/internal/application/services"
	"studytrack/internal/application/session"
	"studytrack/internal/config"
	"studytrack/internal/delivery/handler"
	"studytrack/internal/i18n"
	"studytrack/internal/infrastructure"
	"studytrack/internal/infrastructure/db/cached"
	"studytrack/internal/infrastructure/db/supabase"
	"studytrack/internal/messaging"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("Loaded env from", p)
			return
		}
	}
}

func main() {
	loadDotenv()
	cfg := config.Load()

	translator := i18n.Empty()
	if cfg.TranslationsPath != "" {
		loaded, err := i18n.Load(cfg.TranslationsPath)
		if err != nil {
			log.Printf("Failed to load translations from %s: %v", cfg.TranslationsPath, err)
		} else {
			translator = loaded
		}
	}

	store := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.RequestTimeout)
	cache := infrastructure.NewRedisCache()
	defer cache.Close()

	publisher := messaging.Connect(cfg.NatsURL)
	defer publisher.Close()

	userRepo := cached.NewUserRepository(supabase.NewUserRepository(store), cache, cfg.UserCacheTTL)
	teacherRepo := supabase.NewTeacherRepository(store)
	doubtRepo := supabase.NewDoubtRepository(store)
	studyLogRepo := supabase.NewStudyLogRepository(store)
	classRepo := cached.NewClassDataRepository(supabase.NewClassDataRepository(store), cache, cfg.ClassCacheTTL)
	quizRepo := supabase.NewQuizRepository(store)
	mockTestRepo := supabase.NewMockTestRepository(store)

	emailService := infrastructure.NewEmailService()
	doubtLimiter := infrastructure.NewRateLimiter(cfg.DoubtRateWindow, cfg.DoubtRateLimit)

	userService := services.NewUserService(userRepo, teacherRepo, publisher)
	doubtService := services.NewDoubtService(doubtRepo, userRepo, doubtLimiter, emailService, publisher, cfg.ItemsPerPage)
	studyLogService := services.NewStudyLogService(studyLogRepo, userService, cfg.ItemsPerPage)
	classService := services.NewClassService(classRepo)
	quizService := services.NewQuizService(quizRepo)
	mockTestService := services.NewMockTestService(mockTestRepo, cfg.ItemsPerPage)

	registry := session.NewRegistry()

	h := handler.NewHandler(
		userService,
		doubtService,
		studyLogService,
		classService,
		quizService,
		mockTestService,
		registry,
		translator,
		cfg.RequestTimeout,
		cfg.HTTPRateLimit,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	h.RegisterRoutes(e)

	log.Println("Server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
