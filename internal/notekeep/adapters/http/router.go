// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/internal/notekeep/adapters/http/auth"
	"notekeep/internal/notekeep/adapters/http/middleware"
	"notekeep/internal/notekeep/adapters/http/notes"
	"notekeep/internal/notekeep/adapters/http/tags"
	"notekeep/internal/notekeep/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, noteUseCase api.NoteUseCase, tagUseCase api.TagUseCase) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)
	tagsHandler := tags.NewHandler(tagUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные, кроме logout - он принимает токен в заголовке).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(middleware.NewAuthMiddleware(authUseCase))
	userRoutes.Get("/profile", authHandler.GetProfile)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(authUseCase))
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/share/check", notesHandler.CheckShareTarget)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Patch("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Маршруты тегов (требуют авторизации).
	tagsRoutes := apiV1.Group("/tags")
	tagsRoutes.Use(middleware.NewAuthMiddleware(authUseCase))
	tagsRoutes.Get("/", tagsHandler.ListTags)
	tagsRoutes.Post("/", tagsHandler.AddTag)
	tagsRoutes.Patch("/:tag_id", tagsHandler.RenameTag)
	tagsRoutes.Delete("/:tag_id", tagsHandler.RemoveTag)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
