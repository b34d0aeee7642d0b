package internal

import (
	"net/http"
	"sld/internal/controllers"
	"sld/internal/providers"
	"sld/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, conf *structures.Config) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/score", http.HandlerFunc(apiController.SubmitScore))
	routers.Get("/leaderboard", http.HandlerFunc(apiController.GetLeaderboard))
	routers.Get("/leaderboards", http.HandlerFunc(apiController.GetAllLeaderboards))
	routers.Get("/rank", http.HandlerFunc(apiController.GetUserRank))
	routers.Post("/admin/reset", http.HandlerFunc(apiController.TriggerManualReset))
	routers.Get("/admin/reset/preview", http.HandlerFunc(apiController.PreviewResetResults))
	routers.Get("/admin/reset/status", http.HandlerFunc(apiController.GetResetStatus))
	routers.Post("/admin/schedule", http.HandlerFunc(apiController.UpdateResetSchedule))
	return routers
}
