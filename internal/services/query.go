package services

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultPageSize is used when the caller omits the size.
	DefaultPageSize = 10
	// MaxPageSize caps the admin listing page size regardless of what the
	// caller asks for.
	MaxPageSize = 50
)

// ListParams are the admin-listing inputs. Search and Status combine with a
// logical AND when both are present.
type ListParams struct {
	Page   int
	Size   int
	Search string
	Status *int
}

// Normalize clamps paging to sane bounds: page >= 1, size in [1, MaxPageSize]
// with DefaultPageSize when unset.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

// noteSort orders listings newest first; _id breaks publish-time ties so
// pagination stays stable.
var noteSort = bson.D{
	{Key: "publish_time", Value: -1},
	{Key: "_id", Value: -1},
}

// authorLookup joins each note with its author record. The unwind preserves
// notes whose author no longer resolves, so admin tooling still sees them.
func authorLookup() []bson.M {
	return []bson.M{
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}},
		{"$unwind": bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}},
	}
}

// substringMatch matches term case-insensitively against the note title or
// the joined author's username.
func substringMatch(term string) bson.M {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{"$or": []bson.M{
		{"title": re},
		{"author.username": re},
	}}
}

// listConditions turns the search/status inputs into match conditions.
// A search that exactly equals one of the configured status labels becomes an
// exact state filter; the label match takes precedence over substring search.
// An empty search contributes nothing, so it matches everything.
func listConditions(p ListParams, statusLabels map[string]int) []bson.M {
	var conds []bson.M
	if p.Search != "" {
		if code, ok := statusLabels[p.Search]; ok {
			conds = append(conds, bson.M{"state": code})
		} else {
			conds = append(conds, substringMatch(p.Search))
		}
	}
	if p.Status != nil {
		// An unknown status value simply matches no documents.
		conds = append(conds, bson.M{"state": *p.Status})
	}
	return conds
}

// ListPipeline builds the paginated admin-listing aggregation: join, filter,
// sort, skip, limit. No visibility filter is applied — admins see soft-deleted
// notes and every moderation state unless they ask for one.
func ListPipeline(p ListParams, statusLabels map[string]int) []bson.M {
	pipeline := authorLookup()
	if conds := listConditions(p, statusLabels); len(conds) > 0 {
		pipeline = append(pipeline, bson.M{"$match": bson.M{"$and": conds}})
	}
	pipeline = append(pipeline,
		bson.M{"$sort": noteSort},
		bson.M{"$skip": (p.Page - 1) * p.Size},
		bson.M{"$limit": p.Size},
	)
	return pipeline
}

// CountPipeline counts the documents the same filter matches, before
// pagination. It must share the match conditions with ListPipeline so the
// reported total always agrees with the pages.
func CountPipeline(p ListParams, statusLabels map[string]int) []bson.M {
	pipeline := authorLookup()
	if conds := listConditions(p, statusLabels); len(conds) > 0 {
		pipeline = append(pipeline, bson.M{"$match": bson.M{"$and": conds}})
	}
	return append(pipeline, bson.M{"$count": "total"})
}
