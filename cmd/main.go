package main

import (
	"github.com/saini-nikhil/MealMaster/config"
	"github.com/saini-nikhil/MealMaster/routes"
	"github.com/saini-nikhil/MealMaster/services"
	"github.com/saini-nikhil/MealMaster/utils"
)

func main() {
	config.InitLogger()
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
