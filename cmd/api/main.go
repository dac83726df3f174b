package main

import (
	"fmt"
	"os"

	"calcplanner/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CalcPlanner API
// @version         1.0
// @description     Construction cost estimates: material catalog, saved estimates and PDF/HTML export.

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
