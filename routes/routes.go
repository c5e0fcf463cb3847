package routes

import (
	"rangba/controllers/admin"
	"rangba/controllers/cron"
	"rangba/controllers/game"
	"rangba/controllers/user"
	"rangba/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/user/register", user.RegisterUser)
	app.Post("/user/session", user.CreateSession)

	userroutes := app.Group("/user", middlewares.UserAuth)
	userroutes.Post("/balance", user.CheckBalance)

	gameroutes := app.Group("/game", middlewares.UserAuth)
	gameroutes.Post("/bet", game.PlaceBet)
	gameroutes.Get("/round", game.CurrentRound)
	gameroutes.Get("/rounds", game.RoundHistory)
	gameroutes.Get("/mybets", game.MyBets)

	adminroutes := app.Group("/admin", middlewares.AdminAuth)
	adminroutes.Post("/rounds/create", admin.CreateRound)
	adminroutes.Post("/rounds/lock", admin.LockRound)
	adminroutes.Post("/rounds/result", admin.SetResult)
	adminroutes.Post("/rounds/cancel", admin.CancelRound)
	adminroutes.Get("/controller", admin.GetController)
	adminroutes.Post("/controller", admin.UpdateController)
	adminroutes.Post("/wallet/adjust", admin.AdjustBalance)

	// trigger surface for the external scheduler
	app.Post("/internal/controller/tick", middlewares.CronAuth, cron.RunTick)
}
