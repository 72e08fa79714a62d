package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"herbaverse/config"
	"herbaverse/database"
	"herbaverse/router"

	// Reasoning client + catalog
	"herbaverse/pkg/ai"
	"herbaverse/pkg/catalog"

	// Recommendation pipeline
	recCtrlImp "herbaverse/pkg/recommend/controllerImp"
	recRepoImp "herbaverse/pkg/recommend/repositoryImp"
	recSvcImp "herbaverse/pkg/recommend/serviceImp"

	// Quiz
	quizCtrlImp "herbaverse/pkg/quiz/controllerImp"
	quizRepoImp "herbaverse/pkg/quiz/repositoryImp"
	quizSvcImp "herbaverse/pkg/quiz/serviceImp"

	// User content
	bmCtrlImp "herbaverse/pkg/bookmark/controllerImp"
	bmRepoImp "herbaverse/pkg/bookmark/repositoryImp"
	noteCtrlImp "herbaverse/pkg/note/controllerImp"
	noteRepoImp "herbaverse/pkg/note/repositoryImp"
	remCtrlImp "herbaverse/pkg/remedy/controllerImp"
	remRepoImp "herbaverse/pkg/remedy/repositoryImp"
	tourCtrlImp "herbaverse/pkg/tour/controllerImp"
	tourRepoImp "herbaverse/pkg/tour/repositoryImp"

	// Plants
	plantCtrlImp "herbaverse/pkg/plant/controllerImp"

	// Auth + Health
	authCtrlImp "herbaverse/pkg/auth/controllerImp"
	healthCtrlImp "herbaverse/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Plant catalog (builtins + optional CSV/XLSX extras)
	cat, err := catalog.LoadFromFiles(cfg.CatalogCSV, cfg.CatalogXLSX)
	if err != nil {
		log.Printf("catalog warn: %v", err)
	}
	log.Printf("[catalog] %d plants loaded", len(cat.All()))

	// 4) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[ai] no endpoint configured, using mock client")
		llm = ai.NewMock()
	}

	// 5) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 6) Repos/Services/Controllers
	recRepo := recRepoImp.New(db)
	recSvc := recSvcImp.New(cat, llm, recRepo)
	recCtrl := recCtrlImp.New(recSvc)

	quizRepo := quizRepoImp.New(db)
	quizSvc := quizSvcImp.New(llm, quizRepo)
	quizCtrl := quizCtrlImp.New(quizSvc)

	bmCtrl := bmCtrlImp.New(bmRepoImp.New(db))
	noteCtrl := noteCtrlImp.New(noteRepoImp.New(db))
	remCtrl := remCtrlImp.New(remRepoImp.New(db))
	tourCtrl := tourCtrlImp.New(tourRepoImp.New(db))
	plantCtrl := plantCtrlImp.New(cat)

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(
		e,
		cfg.RequireUser,
		plantCtrl,
		recCtrl,
		quizCtrl,
		bmCtrl,
		noteCtrl,
		remCtrl,
		tourCtrl,
		authCtrl,
		hCtrl,
	)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
