// Package tags содержит HTTP-обработчики для управления тегами.
package tags

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notekeep/adapters/http/dto"
	"notekeep/internal/notekeep/adapters/http/middleware"
	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/ports/api"
	"notekeep/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListTags  = "handling list tags request"
	LogHandlerAddTag    = "handling add tag request"
	LogHandlerRenameTag = "handling rename tag request"
	LogHandlerRemoveTag = "handling remove tag request"

	ErrMsgInvalidTagID       = "invalid tag id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgUnauthorized       = "unauthorized"
)

// Handler обработчик HTTP-запросов для работы с тегами.
type Handler struct {
	tagUseCase api.TagUseCase
}

// NewHandler создает новый экземпляр обработчика тегов.
func NewHandler(tagUseCase api.TagUseCase) *Handler {
	return &Handler{
		tagUseCase: tagUseCase,
	}
}

// handleError отправляет клиенту статус и текст доменной ошибки.
func handleError(ctx fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, entities.ErrTagNotFound) {
		status = http.StatusNotFound
	}
	if sendErr := ctx.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	}); sendErr != nil {
		return fmt.Errorf("error sending response: %w", sendErr)
	}
	return nil
}

// ListTags обрабатывает запрос на получение тегов текущего пользователя.
func (h *Handler) ListTags(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListTags"))
	log.Debug(requestCtx, LogHandlerListTags)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	tagList, err := h.tagUseCase.List(requestCtx, sess.Email)
	if err != nil {
		log.Error(requestCtx, "failed to list tags", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(tagList); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// AddTag обрабатывает запрос на создание нового тега.
func (h *Handler) AddTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.AddTag"))
	log.Debug(requestCtx, LogHandlerAddTag)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	tag, err := h.tagUseCase.Add(requestCtx, sess.Email)
	if err != nil {
		log.Error(requestCtx, "failed to add tag", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(tag); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RenameTag обрабатывает запрос на переименование тега. Пустое после обрезки
// пробелов имя игнорируется без ошибки.
func (h *Handler) RenameTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.RenameTag"))
	log.Debug(requestCtx, LogHandlerRenameTag)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	tagID := ctx.Params("tag_id")
	if tagID == "" {
		log.Error(requestCtx, ErrMsgInvalidTagID)
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrMsgInvalidTagID})
	}

	var req dto.RenameTagRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	if err := h.tagUseCase.Rename(requestCtx, sess.Email, tagID, req.Name); err != nil {
		log.Error(requestCtx, "failed to rename tag", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RemoveTag обрабатывает запрос на удаление тега.
func (h *Handler) RemoveTag(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.RemoveTag"))
	log.Debug(requestCtx, LogHandlerRemoveTag)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	tagID := ctx.Params("tag_id")
	if tagID == "" {
		log.Error(requestCtx, ErrMsgInvalidTagID)
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrMsgInvalidTagID})
	}

	if err := h.tagUseCase.Remove(requestCtx, sess.Email, tagID); err != nil {
		log.Error(requestCtx, "failed to remove tag", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
