package main

import (
	"fmt"
	"log"
	"time"

	"railbook/internal/routes"
	"railbook/internal/seats"
	"railbook/internal/shared/config"
	"railbook/internal/shared/database"
	"railbook/internal/trains"
	"railbook/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting RailBook Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"bookings",
		"passengers",
		"seats",
		"routes",
		"trains",
		"users",
	}

	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			// Table may not exist yet on a fresh database
			fmt.Printf("⚠️  Skipping %s: %v\n", table, err)
		}
	}

	return nil
}

// SeedAll populates the database with an admin account and a sample timetable
func (s *Seeder) SeedAll() error {
	admin, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	fmt.Printf("👤 Admin account ready: %s\n", admin.Username)

	trainList, err := s.seedTrains()
	if err != nil {
		return fmt.Errorf("failed to seed trains: %w", err)
	}
	fmt.Printf("🚆 Seeded %d trains\n", len(trainList))

	routeCount, seatCount, err := s.seedRoutes(trainList)
	if err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}
	fmt.Printf("🗺️  Seeded %d routes with %d seats\n", routeCount, seatCount)

	return nil
}

func (s *Seeder) seedUsers() (*users.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &users.User{
		Username: "admin",
		FullName: "System Administrator",
		Password: string(hashedPassword),
		Role:     users.RoleAdmin,
	}
	if err := s.db.PostgreSQL.Create(admin).Error; err != nil {
		return nil, err
	}

	demoPassword, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	demo := &users.User{
		Username: "demo",
		FullName: "Demo Traveller",
		Password: string(demoPassword),
		Role:     users.RoleUser,
	}
	if err := s.db.PostgreSQL.Create(demo).Error; err != nil {
		return nil, err
	}

	return admin, nil
}

func (s *Seeder) seedTrains() ([]trains.Train, error) {
	trainList := []trains.Train{
		{Number: "101", Name: "Coastal Express", Type: "EXPRESS"},
		{Number: "205", Name: "Night Star", Type: "SLEEPER"},
		{Number: "310", Name: "Valley Local", Type: "REGIONAL"},
	}

	for i := range trainList {
		if err := s.db.PostgreSQL.Create(&trainList[i]).Error; err != nil {
			return nil, err
		}
	}

	return trainList, nil
}

func (s *Seeder) seedRoutes(trainList []trains.Train) (int, int, error) {
	type routeSpec struct {
		train     int
		from, to  string
		departure time.Time
		arrival   time.Time
		price     float64
		seatCount int
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(time.Hour)

	specs := []routeSpec{
		{0, "Riverton", "Port Haven", tomorrow.Add(8 * time.Hour), tomorrow.Add(12 * time.Hour), 45.00, 30},
		{0, "Port Haven", "Riverton", tomorrow.Add(14 * time.Hour), tomorrow.Add(18 * time.Hour), 45.00, 30},
		{1, "Riverton", "Northgate", tomorrow.Add(22 * time.Hour), tomorrow.Add(30 * time.Hour), 80.00, 40},
		{2, "Riverton", "Milldale", tomorrow.Add(9 * time.Hour), tomorrow.Add(10 * time.Hour), 12.50, 20},
	}

	totalSeats := 0
	for _, spec := range specs {
		route := &routes.Route{
			TrainID:          trainList[spec.train].ID,
			DepartureStation: spec.from,
			ArrivalStation:   spec.to,
			DepartureTime:    spec.departure,
			ArrivalTime:      spec.arrival,
			BasePrice:        spec.price,
		}
		if err := s.db.PostgreSQL.Create(route).Error; err != nil {
			return 0, 0, err
		}

		layout := seats.BuildSeatLayout(route.ID, spec.seatCount)
		if err := s.db.PostgreSQL.Create(&layout).Error; err != nil {
			return 0, 0, err
		}
		totalSeats += len(layout)
	}

	return len(specs), totalSeats, nil
}
