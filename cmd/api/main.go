package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"petsitter/internal/database"
	"petsitter/internal/middleware"
	"petsitter/internal/modules/booking"
	"petsitter/internal/modules/dog"
	"petsitter/internal/modules/listing"
	"petsitter/internal/modules/message"
	"petsitter/internal/modules/review"
	"petsitter/internal/modules/user"
	"petsitter/internal/repository"
)

func main() {
	_ = godotenv.Load()

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

	userRepo := repository.NewUserRepository(db)
	dogRepo := repository.NewDogRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo))
	dogHandler := dog.NewHandler(dog.NewService(dogRepo, userRepo))
	listingHandler := listing.NewHandler(listing.NewService(listingRepo, userRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, userRepo, dogRepo, listingRepo))
	messageHandler := message.NewHandler(message.NewService(messageRepo, bookingRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, bookingRepo, userRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		dogHandler.RegisterRoutes(v1)
		listingHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		messageHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
