package main

import (
	"github.com/Bishesh15/smartpantry/config"
	"github.com/Bishesh15/smartpantry/routes"
	"github.com/Bishesh15/smartpantry/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
