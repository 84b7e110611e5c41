package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/domain/services"
	"notekeep/internal/notekeep/ports/api"
	"notekeep/internal/notekeep/ports/repositories"
	"notekeep/pkg/logger"
)

const (
	methodNoteCreate = "NoteCreate"
	methodNoteGet    = "NoteGet"
	methodNoteList   = "NoteList"
	methodNoteUpdate = "NoteUpdate"
	methodNoteDelete = "NoteDelete"
	methodShareCheck = "ValidateShareTarget"

	msgNoteCreated        = "note created"
	msgNoteUpdated        = "note updated"
	msgNoteDeleted        = "note deleted by owner"
	msgNoteLeftByShared   = "shared user removed from note"
	msgNoteAccessDenied   = "note access denied"
	msgEmptyRequiredField = "required note field is empty"
	msgShareRejected      = "share target rejected"

	msgErrCreateNote = "failed to create note"
	msgErrGetNote    = "failed to get note"
	msgErrListNotes  = "failed to list notes"
	msgErrUpdateNote = "failed to update note"
	msgErrDeleteNote = "failed to delete note"

	errCtxValidatingNote  = "validating note fields"
	errCtxCreatingNote    = "creating note"
	errCtxGettingNote     = "getting note"
	errCtxListingNotes    = "listing notes"
	errCtxUpdatingNote    = "updating note"
	errCtxDeletingNote    = "deleting note"
	errCtxCheckingAccess  = "checking note access"
	errCtxValidatingShare = "validating share target"
)

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
	userRepo repositories.UserRepository
}

// NewNoteUseCase создает новый экземпляр сервиса заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository, userRepo repositories.UserRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
		userRepo: userRepo,
	}
}

// Create создает заметку от имени сессии. Название, контент и тег обязательны.
func (n *NoteUseCaseImpl) Create(ctx context.Context, sess *services.Session, draft entities.NoteDraft) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodNoteCreate), zap.String("owner", sess.Email))

	if strings.TrimSpace(draft.Title) == "" ||
		strings.TrimSpace(draft.Content) == "" ||
		strings.TrimSpace(draft.Tag) == "" {
		log.Debug(ctx, msgEmptyRequiredField)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrEmptyNoteField)
	}

	sharedWith := draft.SharedWith
	if sharedWith == nil {
		sharedWith = []string{}
	}

	now := time.Now()
	note := &entities.Note{
		ID:            entities.NewNoteID(now),
		Title:         draft.Title,
		Content:       draft.Content,
		Tag:           draft.Tag,
		BackgroundURL: draft.BackgroundURL,
		Owner:         sess.Email,
		CreatedAt:     now,
		SharedWith:    sharedWith,
	}

	if err := n.noteRepo.Create(ctx, note); err != nil {
		log.Error(ctx, msgErrCreateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", note.ID))
	return note, nil
}

// Get возвращает заметку, если она видна сессии.
func (n *NoteUseCaseImpl) Get(ctx context.Context, sess *services.Session, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodNoteGet), zap.String("noteID", id))

	note, err := n.noteRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, msgErrGetNote, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	if !note.VisibleTo(sess.Email) {
		log.Debug(ctx, msgNoteAccessDenied, zap.String("email", sess.Email))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingAccess, entities.ErrNoteAccessDenied)
	}

	return note, nil
}

// List возвращает видимые сессии заметки, пропущенные через фильтр.
func (n *NoteUseCaseImpl) List(ctx context.Context, sess *services.Session, criteria entities.FilterCriteria) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodNoteList), zap.String("email", sess.Email))

	notes, err := n.noteRepo.ListVisible(ctx, sess.Email)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return FilterNotes(notes, criteria, sess.Email), nil
}

// Update применяет частичное обновление к заметке. Изменять заметку может
// владелец или пользователь из списка доступа; остальным отказано, и
// сохраненная заметка при отказе не меняется.
func (n *NoteUseCaseImpl) Update(ctx context.Context, sess *services.Session, id string, patch entities.NotePatch) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodNoteUpdate), zap.String("noteID", id))

	note, err := n.noteRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, msgErrGetNote, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	if !note.CanEdit(sess.Email) {
		log.Debug(ctx, msgNoteAccessDenied, zap.String("email", sess.Email))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingAccess, entities.ErrNoteAccessDenied)
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Tag != nil {
		note.Tag = *patch.Tag
	}
	if patch.BackgroundURL != nil {
		note.BackgroundURL = *patch.BackgroundURL
	}
	if patch.SharedWith != nil {
		note.SharedWith = *patch.SharedWith
	}

	if err := n.noteRepo.Update(ctx, note); err != nil {
		log.Error(ctx, msgErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("email", sess.Email))
	return note, nil
}

// Delete удаляет заметку целиком, если сессия принадлежит владельцу.
// Пользователь из списка доступа исключает только себя - заметка остается
// у владельца и остальных участников. Прочим отказано.
func (n *NoteUseCaseImpl) Delete(ctx context.Context, sess *services.Session, id string) error {
	log := logger.Log(ctx).With(zap.String("method", methodNoteDelete), zap.String("noteID", id))

	note, err := n.noteRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, msgErrGetNote, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	switch {
	case note.IsOwner(sess.Email):
		if err := n.noteRepo.Delete(ctx, id); err != nil {
			log.Error(ctx, msgErrDeleteNote, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
		}
		log.Info(ctx, msgNoteDeleted, zap.String("owner", sess.Email))
		return nil

	case note.IsSharedWith(sess.Email):
		note.RemoveSharedUser(sess.Email)
		if err := n.noteRepo.Update(ctx, note); err != nil {
			log.Error(ctx, msgErrUpdateNote, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
		}
		log.Info(ctx, msgNoteLeftByShared, zap.String("email", sess.Email))
		return nil

	default:
		log.Debug(ctx, msgNoteAccessDenied, zap.String("email", sess.Email))
		return fmt.Errorf("%s: %w", errCtxCheckingAccess, entities.ErrNoteAccessDenied)
	}
}

// ValidateShareTarget проверяет адресата перед добавлением в список доступа.
// Проверки идут по порядку, первая неудачная прерывает цепочку: пустой email,
// формат, попытка поделиться с собой, дубликат, незарегистрированный адресат.
func (n *NoteUseCaseImpl) ValidateShareTarget(ctx context.Context, sess *services.Session, current []string, target string) error {
	log := logger.Log(ctx).With(zap.String("method", methodShareCheck), zap.String("target", target))

	if strings.TrimSpace(target) == "" {
		log.Debug(ctx, msgShareRejected, zap.Error(entities.ErrShareEmptyEmail))
		return fmt.Errorf("%s: %w", errCtxValidatingShare, entities.ErrShareEmptyEmail)
	}
	if !emailPattern.MatchString(target) {
		log.Debug(ctx, msgShareRejected, zap.Error(entities.ErrShareInvalidEmail))
		return fmt.Errorf("%s: %w", errCtxValidatingShare, entities.ErrShareInvalidEmail)
	}
	if target == sess.Email {
		log.Debug(ctx, msgShareRejected, zap.Error(entities.ErrShareSelf))
		return fmt.Errorf("%s: %w", errCtxValidatingShare, entities.ErrShareSelf)
	}
	for _, email := range current {
		if email == target {
			log.Debug(ctx, msgShareRejected, zap.Error(entities.ErrShareDuplicate))
			return fmt.Errorf("%s: %w", errCtxValidatingShare, entities.ErrShareDuplicate)
		}
	}

	if _, err := n.userRepo.FindByEmail(ctx, target); err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgShareRejected, zap.Error(entities.ErrShareTargetNotFound))
			return fmt.Errorf("%s: %w", errCtxValidatingShare, entities.ErrShareTargetNotFound)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return nil
}
