package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gnb-666/pgy-travel-back/internal/apperr"
	"github.com/gnb-666/pgy-travel-back/internal/database"
	"github.com/gnb-666/pgy-travel-back/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	notesCollection = "travel_notes"
	usersCollection = "users"

	maxTitleLen   = 100
	maxContentLen = 5000
)

// PublishInput carries the mutable fields of a note. ID is empty for a new
// note and set when the author edits an existing one.
type PublishInput struct {
	ID       string
	AuthorID string
	Title    string
	Content  string
	ImgList  []string
	Video    string
}

func validatePublish(in PublishInput) error {
	titleLen := utf8.RuneCountInString(in.Title)
	if titleLen == 0 || titleLen > maxTitleLen {
		return fmt.Errorf("%w: title must be 1-%d characters", apperr.ErrValidation, maxTitleLen)
	}
	contentLen := utf8.RuneCountInString(in.Content)
	if contentLen == 0 || contentLen > maxContentLen {
		return fmt.Errorf("%w: content must be 1-%d characters", apperr.ErrValidation, maxContentLen)
	}
	if in.AuthorID == "" {
		return fmt.Errorf("%w: author id is required", apperr.ErrValidation)
	}
	return nil
}

// PublishNote creates a note in the pending state, or, when the input carries
// an id, overwrites the mutable fields of that note and forces it back to
// pending — any edit invalidates a prior review. The publish time is set once
// at creation and survives edits.
func PublishNote(ctx context.Context, in PublishInput) (*models.TravelNote, error) {
	if err := validatePublish(in); err != nil {
		return nil, err
	}
	authorID, err := primitive.ObjectIDFromHex(in.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid author id", apperr.ErrValidation)
	}
	if in.ImgList == nil {
		in.ImgList = []string{}
	}

	notes := database.DB.Collection(notesCollection)

	if in.ID == "" {
		note := models.TravelNote{
			ID:          primitive.NewObjectID(),
			AuthorID:    authorID,
			Title:       in.Title,
			Content:     in.Content,
			ImgList:     in.ImgList,
			Video:       in.Video,
			State:       models.StatePending,
			PublishTime: time.Now(),
			IsDeleted:   false,
		}
		if _, err := notes.InsertOne(ctx, note); err != nil {
			return nil, err
		}
		return &note, nil
	}

	noteID, err := primitive.ObjectIDFromHex(in.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid note id", apperr.ErrValidation)
	}

	update := bson.M{
		"$set": bson.M{
			"author_id": authorID,
			"title":     in.Title,
			"content":   in.Content,
			"img_list":  in.ImgList,
			"video":     in.Video,
			"state":     models.StatePending,
		},
		"$setOnInsert": bson.M{
			"publish_time":  time.Now(),
			"is_deleted":    false,
			"reject_reason": "",
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var note models.TravelNote
	if err := notes.FindOneAndUpdate(ctx, bson.M{"_id": noteID}, update, opts).Decode(&note); err != nil {
		return nil, err
	}
	return &note, nil
}

// ReviewNote applies a moderator decision. The rejection reason is stored
// only when the decision is a rejection; approving a note leaves any earlier
// reason untouched.
func ReviewNote(ctx context.Context, id string, state int, rejectReason string) error {
	if state != models.StateApproved && state != models.StateRejected {
		return fmt.Errorf("%w: review state must be %d or %d", apperr.ErrValidation, models.StateApproved, models.StateRejected)
	}
	noteID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid note id", apperr.ErrValidation)
	}

	set := bson.M{"state": state}
	if state == models.StateRejected && rejectReason != "" {
		set["reject_reason"] = rejectReason
	}

	result, err := database.DB.Collection(notesCollection).UpdateOne(ctx, bson.M{"_id": noteID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}
	return nil
}

// SoftDeleteNote hides a note from every listing without removing it. The
// moderation state is left as-is so a later restore brings the note back in
// the same state.
func SoftDeleteNote(ctx context.Context, id string) error {
	return setDeleted(ctx, id, true)
}

// RestoreNote clears the soft-delete flag.
func RestoreNote(ctx context.Context, id string) error {
	return setDeleted(ctx, id, false)
}

func setDeleted(ctx context.Context, id string, deleted bool) error {
	noteID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid note id", apperr.ErrValidation)
	}
	result, err := database.DB.Collection(notesCollection).UpdateOne(
		ctx,
		bson.M{"_id": noteID},
		bson.M{"$set": bson.M{"is_deleted": deleted}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}
	return nil
}

// publicVisible is the feed predicate: only approved, non-deleted notes are
// ever shown to end users.
func publicVisible() bson.M {
	return bson.M{
		"state":      models.StateApproved,
		"is_deleted": false,
	}
}

// PublicFeed returns the approved, non-deleted notes joined with their
// authors, newest first.
func PublicFeed(ctx context.Context) ([]models.NoteWithAuthor, error) {
	pipeline := []bson.M{{"$match": publicVisible()}}
	pipeline = append(pipeline, authorLookup()...)
	pipeline = append(pipeline, bson.M{"$sort": noteSort})
	return runNotePipeline(ctx, pipeline)
}

// NoteDetail returns a single note joined with its author.
func NoteDetail(ctx context.Context, id string) (*models.NoteWithAuthor, error) {
	noteID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid note id", apperr.ErrValidation)
	}
	pipeline := []bson.M{{"$match": bson.M{"_id": noteID}}}
	pipeline = append(pipeline, authorLookup()...)

	results, err := runNotePipeline(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: note %s", apperr.ErrNotFound, id)
	}
	return &results[0], nil
}

// SearchPublicNotes matches the term as a case-insensitive substring against
// note titles and author usernames. Only publicly visible notes are returned;
// an empty term falls back to the whole feed.
func SearchPublicNotes(ctx context.Context, term string) ([]models.NoteWithAuthor, error) {
	pipeline := []bson.M{{"$match": publicVisible()}}
	pipeline = append(pipeline, authorLookup()...)
	if term != "" {
		pipeline = append(pipeline, bson.M{"$match": substringMatch(term)})
	}
	pipeline = append(pipeline, bson.M{"$sort": noteSort})
	return runNotePipeline(ctx, pipeline)
}

// MyPublished returns an author's notes, soft-deleted ones excluded, newest
// first. Pending and rejected notes are included so authors can see review
// outcomes.
func MyPublished(ctx context.Context, authorID string) ([]models.TravelNote, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid author id", apperr.ErrValidation)
	}

	findOptions := options.Find().SetSort(noteSort)
	cursor, err := database.DB.Collection(notesCollection).Find(
		ctx,
		bson.M{"author_id": author, "is_deleted": false},
		findOptions,
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []models.TravelNote{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// AdminListNotes runs the paginated admin listing and the matching count in
// one call. The total reflects the filter before pagination so clients can
// compute page counts.
func AdminListNotes(ctx context.Context, p ListParams, statusLabels map[string]int) ([]models.NoteWithAuthor, int64, error) {
	p = p.Normalize()

	items, err := runNotePipeline(ctx, ListPipeline(p, statusLabels))
	if err != nil {
		return nil, 0, err
	}

	total, err := runCountPipeline(ctx, CountPipeline(p, statusLabels))
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func runNotePipeline(ctx context.Context, pipeline []bson.M) ([]models.NoteWithAuthor, error) {
	cursor, err := database.DB.Collection(notesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []models.NoteWithAuthor{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func runCountPipeline(ctx context.Context, pipeline []bson.M) (int64, error) {
	cursor, err := database.DB.Collection(notesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &counts); err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0].Total, nil
}
