package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

// RecordService defines the interface for interacting with the Notion API.
// This interface enables mocking and testing of Notion operations.
type RecordService interface {
	// CreatePage creates a new page in a Notion database with the given properties.
	CreatePage(ctx context.Context, databaseID string, properties notionapi.Properties) (*notionapi.Page, error)

	// QueryDatabase queries a Notion database with the given request.
	QueryDatabase(ctx context.Context, databaseID string, req *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
}
