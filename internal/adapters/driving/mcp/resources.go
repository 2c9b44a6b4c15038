package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Slotcheck resources.
	uriScheme = "slotcheck://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing ground truth entries.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "truth",
		Name:        "truth",
		Description: "List of all stored ground truth labelings",
		MIMEType:    "application/json",
	}, s.handleTruthListResource)

	// Template for a single labeling.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "truth/{imagePath}",
		Name:        "truth-entry",
		Description: "Ground truth labeling for a specific image",
		MIMEType:    "application/json",
	}, s.handleTruthEntryResource)
}

// handleTruthListResource returns all stored ground truth entries.
func (s *Server) handleTruthListResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Truth == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	entries, err := s.ports.Truth.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing truth entries: %w", err)
	}

	// Build simplified entry list.
	type truthInfo struct {
		ImagePath string `json:"image_path"`
		ItemCount int    `json:"item_count"`
	}

	infos := make([]truthInfo, len(entries))
	for i := range entries {
		infos[i] = truthInfo{
			ImagePath: entries[i].ImagePath,
			ItemCount: len(entries[i].Items),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling truth entries: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTruthEntryResource returns the labeling for a specific image.
func (s *Server) handleTruthEntryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Truth == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract imagePath from URI: slotcheck://truth/{imagePath}
	imagePath := extractImagePath(req.Params.URI)
	if imagePath == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	entry, err := s.ports.Truth.Get(ctx, imagePath)
	if err != nil {
		return nil, fmt.Errorf("getting truth entry: %w", err)
	}

	data, err := json.MarshalIndent(map[string]any{
		"image_path": entry.ImagePath,
		"items":      entry.Items,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling truth entry: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractImagePath extracts the image path from a URI like slotcheck://truth/{imagePath}.
func extractImagePath(uri string) string {
	const prefix = uriScheme + "truth/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
