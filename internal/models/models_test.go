package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pullpush-docs/internal/models"
)

const searchResultJSON = `{
  "data": [
    {
      "author": "testuser",
      "body": "This is a comment",
      "created_utc": 1620000100,
      "id": "comment1",
      "link_id": "t3_abc123",
      "score": 5,
      "subreddit": "test"
    },
    "gx1y2z3",
    {
      "author": "testuser",
      "title": "Test post",
      "selftext": "This is a test post",
      "created_utc": 1620000000,
      "id": "abc123",
      "score": 42,
      "num_comments": 7,
      "subreddit": "test"
    }
  ],
  "metadata": {"total_results": 3}
}`

func TestSearchResultDecodesVariantsInOrder(t *testing.T) {
	var res models.SearchResult
	require.NoError(t, json.Unmarshal([]byte(searchResultJSON), &res))
	require.Len(t, res.Data, 3)

	comment, ok := res.Data[0].(models.Comment)
	require.True(t, ok, "first element should be a Comment, got %T", res.Data[0])
	assert.Equal(t, "t3_abc123", comment.LinkID)
	assert.Equal(t, int64(1620000100), comment.CreatedUTC)

	assert.Equal(t, models.Opaque("gx1y2z3"), res.Data[1])

	sub, ok := res.Data[2].(models.Submission)
	require.True(t, ok, "third element should be a Submission, got %T", res.Data[2])
	assert.Equal(t, "Test post", sub.Title)
	assert.Equal(t, 7, sub.NumComments)

	assert.Equal(t, float64(3), res.Metadata["total_results"])
}

func TestSearchResultEncodePreservesOrder(t *testing.T) {
	res := models.SearchResult{
		Data: []models.DataRecord{
			models.Opaque("b"),
			models.Submission{ID: "s1", Title: "t"},
			models.Opaque("a"),
		},
		Metadata: map[string]interface{}{},
	}

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var back models.SearchResult
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back.Data, 3)
	assert.Equal(t, models.Opaque("b"), back.Data[0])
	assert.Equal(t, "s1", back.Data[1].(models.Submission).ID)
	assert.Equal(t, models.Opaque("a"), back.Data[2])
}

func TestSearchResultRejectsUnsupportedElements(t *testing.T) {
	var res models.SearchResult
	err := json.Unmarshal([]byte(`{"data": [42], "metadata": {}}`), &res)
	assert.ErrorContains(t, err, "data[0]")
}

func TestSearchResultEncodesEmptyCollections(t *testing.T) {
	b, err := json.Marshal(models.SearchResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": [], "metadata": {}}`, string(b))

	b, err = json.Marshal(&models.SearchResult{Data: []models.DataRecord{models.Opaque("x")}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": ["x"], "metadata": {}}`, string(b))
}
