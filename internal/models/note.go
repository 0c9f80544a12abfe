package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Moderation states for a travel note. Every note starts out pending and
// stays invisible to the public feed until a reviewer approves it.
const (
	StatePending  = 0
	StateApproved = 1
	StateRejected = 2
)

// TravelNote is a user-published journal entry.
// RejectReason only carries meaning while State == StateRejected; approving a
// previously rejected note leaves the old reason in place, so readers must
// gate on State.
type TravelNote struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID     primitive.ObjectID `bson:"author_id" json:"author_id"`
	Title        string             `bson:"title" json:"title"`
	Content      string             `bson:"content" json:"content"`
	ImgList      []string           `bson:"img_list" json:"img_list"`
	Video        string             `bson:"video" json:"video"` // empty means no video
	State        int                `bson:"state" json:"state"`
	RejectReason string             `bson:"reject_reason" json:"reject_reason"`
	PublishTime  time.Time          `bson:"publish_time" json:"publish_time"`
	IsDeleted    bool               `bson:"is_deleted" json:"is_deleted"`
}

// NoteAuthor is the slice of a user record that listings expose next to a note.
type NoteAuthor struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

// NoteWithAuthor is the joined shape produced by the listing aggregations.
// Author is nil when the author record no longer resolves; admin listings
// must tolerate that.
type NoteWithAuthor struct {
	TravelNote `bson:",inline"`
	Author     *NoteAuthor `bson:"author" json:"author,omitempty"`
}
