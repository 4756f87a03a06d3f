package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/franchisehub/franchisehub-backend/config"
	"github.com/franchisehub/franchisehub-backend/internal/app/model"
	"github.com/franchisehub/franchisehub-backend/internal/app/repository"
	"github.com/franchisehub/franchisehub-backend/internal/db"
	"github.com/franchisehub/franchisehub-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Seeds the database: imports franchises from an xlsx sheet and optionally
// creates an admin account for the moderation endpoints.
//
// Usage:
//
//	go run ./cmd/seed -file franchises.xlsx
//	go run ./cmd/seed -admin-email admin@example.com -admin-password secret
func main() {
	filePath := flag.String("file", "", "xlsx file with franchises to import")
	adminEmail := flag.String("admin-email", "", "admin account email to create")
	adminPassword := flag.String("admin-password", "", "admin account password")
	flag.Parse()

	if *filePath == "" && *adminEmail == "" {
		log.Fatal("Usage: seed -file <xlsx_file> and/or -admin-email <email> -admin-password <password>")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if *adminEmail != "" {
		if *adminPassword == "" {
			log.Fatal("-admin-password is required with -admin-email")
		}
		if err := createAdmin(*adminEmail, *adminPassword); err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		fmt.Printf("Admin account created: %s\n", *adminEmail)
	}

	if *filePath == "" {
		return
	}

	fmt.Printf("Reading XLSX file: %s\n", *filePath)
	franchises, err := readFranchisesFromXLSX(*filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total franchises to import: %d\n", len(franchises))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	franchiseRepo := repository.NewFranchiseRepository(db.GetDB())

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := franchiseRepo.BulkCreate(franchises, batchSize); err != nil {
		log.Fatal("Failed to bulk create franchises:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total franchises imported: %d\n", len(franchises))
}

func createAdmin(email, password string) error {
	userRepo := repository.NewUserRepository(db.GetDB())

	if _, err := userRepo.FindByEmail(email); err == nil {
		return fmt.Errorf("user %s already exists", email)
	}

	hashed, err := util.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return userRepo.Create(&model.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	})
}

// readFranchisesFromXLSX expects columns:
// name | category | description | min_investment | max_investment | logo_url
func readFranchisesFromXLSX(filePath string) ([]model.Franchise, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var franchises []model.Franchise
	seen := make(map[string]bool)
	skipped := 0

	// First row is the header
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 2 {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[0])
		category := strings.TrimSpace(row[1])
		if name == "" || category == "" {
			skipped++
			continue
		}

		// Dedup on name within the sheet
		if seen[name] {
			skipped++
			continue
		}
		seen[name] = true

		franchise := model.Franchise{
			Name:     name,
			Category: category,
			Status:   model.StatusPending,
			IsActive: model.StatusPending.IsActive(),
		}

		if len(row) > 2 {
			franchise.Description = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64); err == nil {
				franchise.MinInvestment = &v
			}
		}
		if len(row) > 4 {
			if v, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64); err == nil {
				franchise.MaxInvestment = &v
			}
		}
		if len(row) > 5 {
			franchise.LogoURL = strings.TrimSpace(row[5])
		}

		franchises = append(franchises, franchise)
	}

	if skipped > 0 {
		fmt.Printf("Skipped %d rows (missing fields or duplicates)\n", skipped)
	}

	return franchises, nil
}
