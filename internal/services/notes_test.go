package services

import (
	"context"
	"strings"
	"testing"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PublishInput {
	return PublishInput{
		AuthorID: "507f1f77bcf86cd799439011",
		Title:    "Kyoto",
		Content:  "Autumn leaves.",
	}
}

func TestValidatePublish(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PublishInput)
		wantErr bool
	}{
		{name: "valid", mutate: func(in *PublishInput) {}},
		{name: "empty title", mutate: func(in *PublishInput) { in.Title = "" }, wantErr: true},
		{name: "title at limit", mutate: func(in *PublishInput) { in.Title = strings.Repeat("a", 100) }},
		{name: "title too long", mutate: func(in *PublishInput) { in.Title = strings.Repeat("a", 101) }, wantErr: true},
		{name: "empty content", mutate: func(in *PublishInput) { in.Content = "" }, wantErr: true},
		{name: "content at limit", mutate: func(in *PublishInput) { in.Content = strings.Repeat("b", 5000) }},
		{name: "content too long", mutate: func(in *PublishInput) { in.Content = strings.Repeat("b", 5001) }, wantErr: true},
		{name: "missing author", mutate: func(in *PublishInput) { in.AuthorID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := validatePublish(in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePublishCountsRunesNotBytes(t *testing.T) {
	// 100 CJK characters are 300 bytes but must pass the 100-character limit.
	in := validInput()
	in.Title = strings.Repeat("山", 100)
	assert.NoError(t, validatePublish(in))

	in.Title = strings.Repeat("山", 101)
	assert.ErrorIs(t, validatePublish(in), apperr.ErrValidation)
}

func TestPublishNoteRejectsMalformedAuthorID(t *testing.T) {
	in := validInput()
	in.AuthorID = "not-an-object-id"
	_, err := PublishNote(context.Background(), in)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestReviewNoteRejectsInvalidState(t *testing.T) {
	for _, state := range []int{models.StatePending, -1, 3, 99} {
		err := ReviewNote(context.Background(), "507f1f77bcf86cd799439011", state, "")
		assert.ErrorIs(t, err, apperr.ErrValidation, "state %d", state)
	}
}

func TestReviewNoteRejectsMalformedID(t *testing.T) {
	err := ReviewNote(context.Background(), "nope", models.StateApproved, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSoftDeleteAndRestoreRejectMalformedID(t *testing.T) {
	assert.ErrorIs(t, SoftDeleteNote(context.Background(), ""), apperr.ErrValidation)
	assert.ErrorIs(t, RestoreNote(context.Background(), "xyz"), apperr.ErrValidation)
}

func TestNoteDetailRejectsMalformedID(t *testing.T) {
	_, err := NoteDetail(context.Background(), "not-hex")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMyPublishedRejectsMalformedAuthorID(t *testing.T) {
	_, err := MyPublished(context.Background(), "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestPublicVisiblePredicate(t *testing.T) {
	pred := publicVisible()
	assert.Equal(t, models.StateApproved, pred["state"])
	assert.Equal(t, false, pred["is_deleted"])
}
