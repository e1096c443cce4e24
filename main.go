package main

import (
	"flag"

	"github.com/joho/godotenv"

	"food-delivery-analytics/config"
	"food-delivery-analytics/seed"
	"food-delivery-analytics/store"
	"food-delivery-analytics/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("no .env file found, using environment as-is")
	}

	var (
		runSeed   = flag.Bool("seed", false, "populate the database with a simulated year of data")
		seedValue = flag.Int64("seed-value", 42, "random seed for deterministic data generation")
		users     = flag.Int("users", 0, "override the number of generated users")
		orders    = flag.Int("orders", 0, "override the target number of generated orders")
	)
	flag.Parse()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to initialise database: %v", err)
	}
	utils.InfoLogger.Println("database migrated, schema constraints installed")

	if !*runSeed {
		return
	}

	cfg := seed.DefaultConfig()
	cfg.Seed = *seedValue
	cfg.Log = utils.InfoLogger
	if *users > 0 {
		cfg.Users = *users
	}
	if *orders > 0 {
		cfg.TargetOrders = *orders
	}

	if err := seed.Run(store.New(db), cfg); err != nil {
		utils.ErrorLogger.Fatalf("seeding failed: %v", err)
	}
}
