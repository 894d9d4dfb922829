package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	groupsURI = "evcal://groups"
	eventsURI = "evcal://events"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerGroupsResource(srv, svc)
	registerEventsResource(srv, svc)
	registerMonthTemplate(srv, svc)
	registerDayTemplate(srv, svc)
}

func registerGroupsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		groupsURI,
		"Groups",
		mcp.WithResourceDescription("Event groups with color and visibility."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		groups := svc.Groups()
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"groups": groups,
			"count":  len(groups),
		})
	})
}

func registerEventsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		eventsURI,
		"Events",
		mcp.WithResourceDescription("Every event, including those of hidden or deleted groups."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		events, err := svc.ListEvents("", true)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"events": events,
			"count":  len(events),
		})
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"evcal://months/{month}",
		"Month Grid",
		mcp.WithTemplateDescription("Month grid for a YYYY-MM month."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month, _ := request.Params.Arguments["month"].(string)
		if month == "" {
			return nil, fmt.Errorf("month is required")
		}
		dto, err := svc.Month(month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerDayTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"evcal://days/{date}",
		"Day Events",
		mcp.WithTemplateDescription("Visible events on a YYYY-MM-DD day."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		date, _ := request.Params.Arguments["date"].(string)
		if date == "" {
			return nil, fmt.Errorf("date is required")
		}
		events, err := svc.ListEvents(date, false)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"date":   date,
			"events": events,
			"count":  len(events),
		})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
