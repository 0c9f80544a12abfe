package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testLabels = map[string]int{
	"待审核": 0,
	"已通过": 1,
	"已驳回": 2,
}

func intPtr(v int) *int { return &v }

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       ListParams
		wantPage int
		wantSize int
	}{
		{name: "defaults", in: ListParams{}, wantPage: 1, wantSize: 10},
		{name: "zero page", in: ListParams{Page: 0, Size: 20}, wantPage: 1, wantSize: 20},
		{name: "negative page", in: ListParams{Page: -3, Size: 20}, wantPage: 1, wantSize: 20},
		{name: "oversized page size clamped", in: ListParams{Page: 2, Size: 1000}, wantPage: 2, wantSize: 50},
		{name: "negative size falls back to default", in: ListParams{Page: 2, Size: -1}, wantPage: 2, wantSize: 10},
		{name: "in range untouched", in: ListParams{Page: 3, Size: 50}, wantPage: 3, wantSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestListParamsNormalizeTrimsSearch(t *testing.T) {
	got := ListParams{Search: "  kyoto  "}.Normalize()
	assert.Equal(t, "kyoto", got.Search)
}

func TestListConditionsEmptySearchMatchesEverything(t *testing.T) {
	conds := listConditions(ListParams{}.Normalize(), testLabels)
	assert.Empty(t, conds)
}

func TestListConditionsStatusLabelBeatsSubstring(t *testing.T) {
	conds := listConditions(ListParams{Search: "已通过"}.Normalize(), testLabels)
	require.Len(t, conds, 1)
	assert.Equal(t, bson.M{"state": 1}, conds[0])
}

func TestListConditionsSubstringSearch(t *testing.T) {
	conds := listConditions(ListParams{Search: "kyoto"}.Normalize(), testLabels)
	require.Len(t, conds, 1)

	or, ok := conds[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	titleRe, ok := or[0]["title"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "kyoto", titleRe.Pattern)
	assert.Equal(t, "i", titleRe.Options)

	authorRe, ok := or[1]["author.username"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "kyoto", authorRe.Pattern)
}

func TestListConditionsEscapesRegexMetacharacters(t *testing.T) {
	conds := listConditions(ListParams{Search: "a.b*"}.Normalize(), testLabels)
	require.Len(t, conds, 1)

	or := conds[0]["$or"].([]bson.M)
	re := or[0]["title"].(primitive.Regex)
	assert.Equal(t, `a\.b\*`, re.Pattern)
}

func TestListConditionsSearchAndStatusCombineWithAnd(t *testing.T) {
	p := ListParams{Search: "kyoto", Status: intPtr(2)}.Normalize()
	conds := listConditions(p, testLabels)
	require.Len(t, conds, 2)
	assert.Contains(t, conds, bson.M{"state": 2})
}

func TestListConditionsUnknownStatusStillFilters(t *testing.T) {
	// An unknown status code must reach the query untouched so it yields
	// zero rows rather than an error.
	conds := listConditions(ListParams{Status: intPtr(99)}.Normalize(), testLabels)
	require.Len(t, conds, 1)
	assert.Equal(t, bson.M{"state": 99}, conds[0])
}

func TestListPipelineShape(t *testing.T) {
	p := ListParams{Page: 3, Size: 20, Search: "已驳回"}.Normalize()
	pipeline := ListPipeline(p, testLabels)

	// lookup, unwind, match, sort, skip, limit
	require.Len(t, pipeline, 6)
	assert.Contains(t, pipeline[0], "$lookup")
	assert.Contains(t, pipeline[1], "$unwind")
	assert.Equal(t, bson.M{"$match": bson.M{"$and": []bson.M{{"state": 2}}}}, pipeline[2])
	assert.Equal(t, bson.M{"$sort": noteSort}, pipeline[3])
	assert.Equal(t, bson.M{"$skip": 40}, pipeline[4])
	assert.Equal(t, bson.M{"$limit": 20}, pipeline[5])
}

func TestListPipelineWithoutFiltersHasNoMatchStage(t *testing.T) {
	pipeline := ListPipeline(ListParams{}.Normalize(), testLabels)

	require.Len(t, pipeline, 5)
	for _, stage := range pipeline {
		assert.NotContains(t, stage, "$match")
	}
	assert.Equal(t, bson.M{"$sort": noteSort}, pipeline[2])
	assert.Equal(t, bson.M{"$skip": 0}, pipeline[3])
	assert.Equal(t, bson.M{"$limit": 10}, pipeline[4])
}

func TestCountPipelineSharesMatchWithListPipeline(t *testing.T) {
	// The label search must count the same set as the equivalent status
	// filter, whatever the page.
	labelParams := ListParams{Page: 7, Size: 10, Search: "已通过"}.Normalize()
	statusParams := ListParams{Page: 1, Size: 50, Status: intPtr(1)}.Normalize()

	labelCount := CountPipeline(labelParams, testLabels)
	statusCount := CountPipeline(statusParams, testLabels)

	assert.Equal(t, labelCount, statusCount)

	last := labelCount[len(labelCount)-1]
	assert.Equal(t, bson.M{"$count": "total"}, last)
}

func TestCountPipelineHasNoPagination(t *testing.T) {
	pipeline := CountPipeline(ListParams{Page: 5, Size: 10, Search: "kyoto"}.Normalize(), testLabels)
	for _, stage := range pipeline {
		assert.NotContains(t, stage, "$skip")
		assert.NotContains(t, stage, "$limit")
		assert.NotContains(t, stage, "$sort")
	}
}

func TestNoteSortIsPublishTimeThenID(t *testing.T) {
	require.Len(t, noteSort, 2)
	assert.Equal(t, "publish_time", noteSort[0].Key)
	assert.Equal(t, -1, noteSort[0].Value)
	assert.Equal(t, "_id", noteSort[1].Key)
	assert.Equal(t, -1, noteSort[1].Value)
}

func TestAuthorLookupPreservesMissingAuthors(t *testing.T) {
	stages := authorLookup()
	require.Len(t, stages, 2)

	unwind, ok := stages[1]["$unwind"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
}
