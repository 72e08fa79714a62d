package router

import (
	"github.com/labstack/echo/v4"

	"herbaverse/pkg/middleware"
)

func New(
	e *echo.Echo,
	requireUser bool,
	plantCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
	},
	recCtrl interface {
		Suggest(echo.Context) error
		History(echo.Context) error
	},
	quizCtrl interface {
		Generate(echo.Context) error
		SubmitScore(echo.Context) error
		Scores(echo.Context) error
	},
	bmCtrl interface {
		ToggleBookmark(echo.Context) error
		ListBookmarks(echo.Context) error
		ToggleLike(echo.Context) error
		CountLikes(echo.Context) error
	},
	noteCtrl interface {
		Upsert(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	remedyCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		IngestURL(echo.Context) error
	},
	tourCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		PatchProgress(echo.Context) error
		GetProgress(echo.Context) error
		ListProgress(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	// Identity applies to the api group only; /health stays open for probes.
	api := e.Group("")
	if requireUser {
		api.Use(middleware.RequireUser(true))
	} else {
		api.Use(middleware.DevLogin())
	}

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.GET("/plants", plantCtrl.List)
	api.GET("/plants/:id", plantCtrl.Get)

	api.POST("/recommendations", recCtrl.Suggest)
	api.GET("/recommendations/history", recCtrl.History)

	api.POST("/quiz/generate", quizCtrl.Generate)
	api.POST("/quiz/scores", quizCtrl.SubmitScore)
	api.GET("/quiz/scores", quizCtrl.Scores)

	api.POST("/plants/:id/bookmark", bmCtrl.ToggleBookmark)
	api.GET("/bookmarks", bmCtrl.ListBookmarks)
	api.POST("/plants/:id/like", bmCtrl.ToggleLike)
	api.GET("/plants/:id/likes", bmCtrl.CountLikes)

	api.PUT("/plants/:id/note", noteCtrl.Upsert)
	api.GET("/notes", noteCtrl.List)
	api.DELETE("/notes/:note_id", noteCtrl.Delete)

	api.POST("/remedies", remedyCtrl.Create)
	api.GET("/remedies", remedyCtrl.List)
	api.GET("/remedies/:id", remedyCtrl.Get)
	api.POST("/remedies/ingest/url", remedyCtrl.IngestURL)

	api.GET("/tours", tourCtrl.List)
	api.GET("/tours/:id", tourCtrl.Get)
	api.PATCH("/tours/:id/progress", tourCtrl.PatchProgress)
	api.GET("/tours/:id/progress", tourCtrl.GetProgress)
	api.GET("/tours/progress", tourCtrl.ListProgress)

	return e
}
