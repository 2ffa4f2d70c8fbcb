package main

import (
	"context"
	"log"
	"os"

	"notehub-be/internal/controller"
	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/repository"
	"notehub-be/internal/service"
	"notehub-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New())
	app.Use(serverutils.ErrorHandlerMiddleware())

	pool := database.NewPool(database.ConnectDB(os.Getenv("DB_CONNECTION_STRING")))

	noteRepository := repository.NewNoteRepository(pool)
	categoryRepository := repository.NewCategoryRepository(pool)
	userRepository := repository.NewUserRepository(pool)
	tagStatRepository := repository.NewTagStatRepository(pool)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisherService := service.NewPublisherService(
		os.Getenv("NOTE_CHANGED_TOPIC_NAME"),
		pubSub,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		os.Getenv("NOTE_CHANGED_TOPIC_NAME"),
		noteRepository,
		tagStatRepository,
		pool,
	)

	noteService := service.NewNoteService(noteRepository, categoryRepository, tagStatRepository, publisherService)
	transferService := service.NewTransferService(noteRepository, categoryRepository, publisherService, pool)
	categoryService := service.NewCategoryService(categoryRepository)
	userService := service.NewUserService(userRepository)

	noteController := controller.NewNoteController(noteService, transferService)
	categoryController := controller.NewCategoryController(categoryService)
	userController := controller.NewUserController(userService)

	api := app.Group("/api")
	noteController.RegisterRoutes(api)
	categoryController.RegisterRoutes(api)
	userController.RegisterRoutes(api)

	err := consumerService.Consume(context.Background())
	if err != nil {
		panic(err)
	}

	log.Fatal(app.Listen(":3030"))
}
