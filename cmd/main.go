package main

import (
	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/routes"
	"github.com/andrewdphillips61/Vita-AI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
