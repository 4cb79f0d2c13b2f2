package main

import (
	"github.com/seangowans32/burnbyte/config"
	"github.com/seangowans32/burnbyte/routes"
	"github.com/seangowans32/burnbyte/services"
)

func main() {
	config.InitLogger()
	config.InitDB()

	// Background daily reset: archives and zeroes per-user counters at each
	// user's local midnight. Started once; lives for the whole process.
	scheduler := services.NewDailyResetScheduler(config.DB, config.Log)
	scheduler.Start()

	r := routes.SetupRouter()
	r.Run(":" + config.Getenv("PORT", "8080"))
}
