package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notekeep/app"
	"notekeep/internal/notekeep/domain/entities"
	"notekeep/internal/notekeep/domain/services"
)

var (
	ownerSess    = &services.Session{Email: "owner@example.com", TokenID: "t1"}
	sharedSess   = &services.Session{Email: "shared@example.com", TokenID: "t2"}
	strangerSess = &services.Session{Email: "stranger@example.com", TokenID: "t3"}
)

func sampleNote() *entities.Note {
	return &entities.Note{
		ID:         "100",
		Title:      "groceries",
		Content:    "milk and bread",
		Tag:        "home",
		Owner:      ownerSess.Email,
		CreatedAt:  time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		SharedWith: []string{sharedSess.Email},
	}
}

func TestNoteCreate(t *testing.T) {
	tests := []struct {
		name        string
		draft       entities.NoteDraft
		expectedErr error
	}{
		{
			name:  "Success - all required fields set",
			draft: entities.NoteDraft{Title: "t", Content: "c", Tag: "g"},
		},
		{
			name:        "Error - blank title",
			draft:       entities.NoteDraft{Title: "   ", Content: "c", Tag: "g"},
			expectedErr: entities.ErrEmptyNoteField,
		},
		{
			name:        "Error - blank content",
			draft:       entities.NoteDraft{Title: "t", Content: "", Tag: "g"},
			expectedErr: entities.ErrEmptyNoteField,
		},
		{
			name:        "Error - blank tag",
			draft:       entities.NoteDraft{Title: "t", Content: "c", Tag: " "},
			expectedErr: entities.ErrEmptyNoteField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noteRepo := new(mockNoteRepository)
			if tt.expectedErr == nil {
				noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
					return n.Owner == ownerSess.Email && n.ID != "" && n.SharedWith != nil
				})).Return(nil).Once()
			}

			noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

			note, err := noteUseCase.Create(context.Background(), ownerSess, tt.draft)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				require.NotNil(t, note)
				assert.Equal(t, ownerSess.Email, note.Owner)
				assert.NotEmpty(t, note.ID)
				assert.NotNil(t, note.SharedWith)
				assert.Empty(t, note.SharedWith)
				assert.False(t, note.CreatedAt.IsZero())
			}

			noteRepo.AssertExpectations(t)
		})
	}
}

func TestNoteGet(t *testing.T) {
	tests := []struct {
		name        string
		sess        *services.Session
		expectedErr error
	}{
		{name: "Success - owner sees note", sess: ownerSess},
		{name: "Success - shared user sees note", sess: sharedSess},
		{name: "Error - stranger denied", sess: strangerSess, expectedErr: entities.ErrNoteAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := sampleNote()
			noteRepo := new(mockNoteRepository)
			noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()

			noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

			got, err := noteUseCase.Get(context.Background(), tt.sess, note.ID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, note.ID, got.ID)
			}
		})
	}
}

func TestNoteUpdate(t *testing.T) {
	newTitle := "updated title"

	t.Run("Success - shared user can edit", func(t *testing.T) {
		note := sampleNote()
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Title == newTitle && n.Content == note.Content
		})).Return(nil).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		updated, err := noteUseCase.Update(context.Background(), sharedSess, note.ID, entities.NotePatch{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)

		noteRepo.AssertExpectations(t)
	})

	t.Run("Error - stranger denied, note not written", func(t *testing.T) {
		note := sampleNote()
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		updated, err := noteUseCase.Update(context.Background(), strangerSess, note.ID, entities.NotePatch{Title: &newTitle})
		assert.ErrorIs(t, err, entities.ErrNoteAccessDenied)
		assert.Nil(t, updated)

		noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Error - note not found", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, "missing").Return(nil, entities.ErrNoteNotFound).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		_, err := noteUseCase.Update(context.Background(), ownerSess, "missing", entities.NotePatch{Title: &newTitle})
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteDelete(t *testing.T) {
	t.Run("Owner deletes note entirely", func(t *testing.T) {
		note := sampleNote()
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()
		noteRepo.On("Delete", mock.Anything, note.ID).Return(nil).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		require.NoError(t, noteUseCase.Delete(context.Background(), ownerSess, note.ID))
		noteRepo.AssertExpectations(t)
		noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Shared user only leaves the share list", func(t *testing.T) {
		note := sampleNote()
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.ID == note.ID && !n.IsSharedWith(sharedSess.Email)
		})).Return(nil).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		require.NoError(t, noteUseCase.Delete(context.Background(), sharedSess, note.ID))
		noteRepo.AssertExpectations(t)
		noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Stranger denied", func(t *testing.T) {
		note := sampleNote()
		noteRepo := new(mockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, note.ID).Return(note, nil).Once()

		noteUseCase := app.NewNoteUseCase(noteRepo, new(mockUserRepository))

		err := noteUseCase.Delete(context.Background(), strangerSess, note.ID)
		assert.ErrorIs(t, err, entities.ErrNoteAccessDenied)
		noteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestValidateShareTarget(t *testing.T) {
	current := []string{"shared@example.com"}

	tests := []struct {
		name        string
		target      string
		setupMocks  func(userRepo *mockUserRepository)
		expectedErr error
	}{
		{
			name:   "Success - registered user not yet in list",
			target: "new@example.com",
			setupMocks: func(userRepo *mockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "new@example.com").
					Return(&entities.User{Email: "new@example.com"}, nil).Once()
			},
		},
		{
			name:        "Error - empty email checked first",
			target:      "   ",
			setupMocks:  func(*mockUserRepository) {},
			expectedErr: entities.ErrShareEmptyEmail,
		},
		{
			name:        "Error - invalid format",
			target:      "not-an-email",
			setupMocks:  func(*mockUserRepository) {},
			expectedErr: entities.ErrShareInvalidEmail,
		},
		{
			name:        "Error - sharing with yourself",
			target:      ownerSess.Email,
			setupMocks:  func(*mockUserRepository) {},
			expectedErr: entities.ErrShareSelf,
		},
		{
			name:        "Error - duplicate entry",
			target:      "shared@example.com",
			setupMocks:  func(*mockUserRepository) {},
			expectedErr: entities.ErrShareDuplicate,
		},
		{
			name:   "Error - unknown user checked last",
			target: "ghost@example.com",
			setupMocks: func(userRepo *mockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrShareTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			tt.setupMocks(userRepo)

			noteUseCase := app.NewNoteUseCase(new(mockNoteRepository), userRepo)

			err := noteUseCase.ValidateShareTarget(context.Background(), ownerSess, current, tt.target)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			userRepo.AssertExpectations(t)
		})
	}
}
