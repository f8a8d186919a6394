package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"travel-itinerary-service/internal/infrastructure/config"
	"travel-itinerary-service/internal/interface/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds the m_airports reference table from a CSV file with columns:
// airport_code,airport_name,city_code,city_name,gmt_tz,tz_name
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seed_airports <airports.csv>")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}

	if err := db.AutoMigrate(&repository.Airports{}); err != nil {
		log.Fatalf("Failed to migrate m_airports: %v", err)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read CSV: %v", err)
		}
		if len(record) < 6 {
			log.Printf("Skipping short row: %v", record)
			continue
		}

		airport := repository.Airports{
			AirportCode: record[0],
			AirportName: record[1],
			CityCode:    record[2],
			CityName:    record[3],
			GmtTz:       record[4],
			TzName:      record[5],
		}
		result := db.Where("airport_code = ?", airport.AirportCode).FirstOrCreate(&airport)
		if result.Error != nil {
			log.Fatalf("Failed to upsert airport %s: %v", airport.AirportCode, result.Error)
		}
		count++
	}

	fmt.Printf("Seeded %d airports\n", count)
}
