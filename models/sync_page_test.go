package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncPage_Decode(t *testing.T) {
	body := []byte(`{
		"items": [
			{"sys": {"id": "e1", "type": "Entry", "revision": 2,
			         "contentType": {"sys": {"id": "blogPost"}}},
			 "fields": {"title": {"en-US": "Hello"}}},
			{"sys": {"id": "a9", "type": "DeletedAsset", "deletedAt": "2026-01-02T03:04:05Z"}}
		],
		"nextPageUrl": "https://cdn.example.com/spaces/s/environments/master/sync?sync_token=abc%3D%3D"
	}`)

	var page SyncPage
	require.NoError(t, json.Unmarshal(body, &page))

	require.Len(t, page.Items, 2)
	assert.Equal(t, "e1", page.Items[0].ID())
	assert.Equal(t, "blogPost", page.Items[0].ContentTypeID())
	assert.JSONEq(t, `{"title": {"en-US": "Hello"}}`, string(page.Items[0].Fields))
	assert.True(t, page.Items[1].Sys.Type.IsDeletion())
	assert.NotNil(t, page.Items[1].Sys.DeletedAt)

	assert.True(t, page.HasMorePages())
	assert.Equal(t, "abc==", page.SyncToken())
}

func TestSyncPage_LastPageUsesNextSyncURL(t *testing.T) {
	page := SyncPage{NextSyncURL: "/sync?sync_token=final"}

	assert.False(t, page.HasMorePages())
	assert.Equal(t, "final", page.SyncToken())
}

func TestSyncPage_MissingToken(t *testing.T) {
	assert.Empty(t, SyncPage{}.SyncToken())
	assert.Empty(t, SyncPage{NextSyncURL: "/sync"}.SyncToken())
	assert.Empty(t, SyncPage{NextSyncURL: "://bad url"}.SyncToken())
}
