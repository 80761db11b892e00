// Seeds a local database with a demo owner, sitter, dog and listing.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"petsitter/internal/database"
	"petsitter/internal/domain"
	"petsitter/internal/repository"
)

func main() {
	_ = os.Setenv("TZ", "UTC")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "petsitter.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	dogs := repository.NewDogRepository(db)
	listings := repository.NewListingRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	owner := &domain.User{
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		FirstName:    "Olivia",
		LastName:     "Ramos",
		Role:         domain.RoleOwner,
	}
	if err := users.Create(ctx, owner); err != nil {
		log.Fatal(err)
	}

	sitter := &domain.User{
		Email:        "sitter@example.com",
		PasswordHash: string(hash),
		FirstName:    "Sam",
		LastName:     "Keller",
		Role:         domain.RoleSitter,
	}
	if err := users.Create(ctx, sitter); err != nil {
		log.Fatal(err)
	}

	buddy := &domain.Dog{
		OwnerID:     owner.ID,
		Name:        "Buddy",
		Age:         3,
		Size:        domain.SizeMedium,
		Temperament: []domain.Temperament{domain.TemperamentPlayful, domain.TemperamentFriendly},
		IsActive:    true,
	}
	if err := dogs.Create(ctx, buddy); err != nil {
		log.Fatal(err)
	}

	dayRate := 150.0
	nightRate := 90.0
	l := &domain.SitterListing{
		SitterID:    sitter.ID,
		Title:       "Experienced sitter with a big yard",
		Description: "Walks, daycare and overnight care for dogs of all sizes.",
		ServicesOffered: []domain.ServiceType{
			domain.ServiceDogWalking,
			domain.ServiceDaycare,
			domain.ServiceOvernightCare,
		},
		PricePerHour:    25,
		PricePerDay:     &dayRate,
		PricePerNight:   &nightRate,
		MaxDogs:         3,
		AcceptsSizes:    []domain.DogSize{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge},
		Location:        "Springfield",
		RadiusKm:        10,
		ExperienceYears: 4,
		HasYard:         true,
		IsActive:        true,
	}
	if err := listings.Create(ctx, l); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded owner=%d sitter=%d dog=%d listing=%d", owner.ID, sitter.ID, buddy.ID, l.ID)
}
