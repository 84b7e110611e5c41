// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

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
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"
	LogHandlerShareCheck = "handling share check request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgInvalidDateFilter  = "invalid date filter, expected YYYY-MM-DD"
	ErrMsgInvalidOwnedOnly   = "invalid owned_only parameter"
	ErrMsgUnauthorized       = "unauthorized"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// statusForError сопоставляет доменную ошибку с HTTP статусом.
func statusForError(err error) int {
	switch {
	case errors.Is(err, entities.ErrNoteNotFound),
		errors.Is(err, entities.ErrShareTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrNoteAccessDenied),
		errors.Is(err, entities.ErrNoteOwnerMismatch):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrEmptyNoteField),
		errors.Is(err, entities.ErrShareEmptyEmail),
		errors.Is(err, entities.ErrShareInvalidEmail),
		errors.Is(err, entities.ErrShareSelf),
		errors.Is(err, entities.ErrShareDuplicate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError отправляет клиенту статус и текст доменной ошибки.
func handleError(ctx fiber.Ctx, err error) error {
	if sendErr := ctx.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	}); sendErr != nil {
		return fmt.Errorf("error sending response: %w", sendErr)
	}
	return nil
}

func sendBadRequest(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendBadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.Create(requestCtx, sess, entities.NoteDraft{
		Title:         req.Title,
		Content:       req.Content,
		Tag:           req.Tag,
		BackgroundURL: req.BackgroundURL,
		SharedWith:    req.SharedWith,
	})
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendBadRequest(ctx, ErrMsgInvalidNoteID)
	}

	note, err := h.noteUseCase.Get(requestCtx, sess, noteID)
	if err != nil {
		log.Error(requestCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// parseCriteria разбирает параметры фильтра из строки запроса.
func parseCriteria(ctx fiber.Ctx) (entities.FilterCriteria, error) {
	criteria := entities.FilterCriteria{
		SelectedTag: ctx.Query("tag"),
		SearchText:  ctx.Query("search"),
		StartDate:   ctx.Query("start_date"),
		EndDate:     ctx.Query("end_date"),
	}

	if criteria.StartDate != "" {
		if _, err := time.Parse(entities.DateLayout, criteria.StartDate); err != nil {
			return entities.FilterCriteria{}, fmt.Errorf("%s: %w", ErrMsgInvalidDateFilter, err)
		}
	}
	if criteria.EndDate != "" {
		if _, err := time.Parse(entities.DateLayout, criteria.EndDate); err != nil {
			return entities.FilterCriteria{}, fmt.Errorf("%s: %w", ErrMsgInvalidDateFilter, err)
		}
	}

	if ownedOnly := ctx.Query("owned_only"); ownedOnly != "" {
		parsed, err := strconv.ParseBool(ownedOnly)
		if err != nil {
			return entities.FilterCriteria{}, fmt.Errorf("%s: %w", ErrMsgInvalidOwnedOnly, err)
		}
		criteria.OwnedOnly = parsed
	}

	return criteria, nil
}

// ListNotes обрабатывает запрос на получение видимых заметок с фильтрацией.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	criteria, err := parseCriteria(ctx)
	if err != nil {
		log.Error(requestCtx, "invalid filter parameters", zap.Error(err))
		return sendBadRequest(ctx, err.Error())
	}

	notes, err := h.noteUseCase.List(requestCtx, sess, criteria)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendBadRequest(ctx, ErrMsgInvalidNoteID)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendBadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	note, err := h.noteUseCase.Update(requestCtx, sess, noteID, entities.NotePatch{
		Title:         req.Title,
		Content:       req.Content,
		Tag:           req.Tag,
		BackgroundURL: req.BackgroundURL,
		SharedWith:    req.SharedWith,
	})
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки. Для владельца заметка
// удаляется целиком, для участника доступа - только его членство в списке.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendBadRequest(ctx, ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.Delete(requestCtx, sess, noteID); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(http.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CheckShareTarget обрабатывает проверку адресата перед добавлением доступа.
func (h *Handler) CheckShareTarget(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestCtx(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CheckShareTarget"))
	log.Debug(requestCtx, LogHandlerShareCheck)

	sess, ok := middleware.SessionFromLocals(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": ErrMsgUnauthorized})
	}

	var req dto.ShareCheckRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendBadRequest(ctx, ErrMsgInvalidRequestBody)
	}

	if err := h.noteUseCase.ValidateShareTarget(requestCtx, sess, req.SharedWith, req.Target); err != nil {
		log.Debug(requestCtx, "share target rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"ok": true,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
