package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerQuickCreateTool(srv, svc)
	registerListEventsTool(srv, svc)
	registerUpdateEventTool(srv, svc)
	registerDeleteEventTool(srv, svc)
	registerMonthGridTool(srv, svc)
	registerListGroupsTool(srv, svc)
	registerAddGroupTool(srv, svc)
	registerDeleteGroupTool(srv, svc)
	registerToggleGroupTool(srv, svc)
	registerSetGroupColorTool(srv, svc)
}

func registerQuickCreateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"quick_create",
		mcp.WithDescription("Create an event from a quick-create command such as 'wed work meeting', 'tom birthday party #personal' or '14 deadline'. The first word is the date (day number, tod, tom or a weekday abbreviation), an optional #tag picks the group."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("Quick-create command line."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		command, err := request.RequireString("command")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.QuickCreate(command)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEventsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_events",
		mcp.WithDescription("List events in creation order."),
		mcp.WithString("date",
			mcp.Description("Optional YYYY-MM-DD day to filter on."),
		),
		mcp.WithBoolean("include_hidden",
			mcp.Description("Include events whose group is hidden or deleted."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		events, err := svc.ListEvents(
			request.GetString("date", ""),
			request.GetBool("include_hidden", false),
		)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"events": events,
			"count":  len(events),
		})
	})
}

func registerUpdateEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_event",
		mcp.WithDescription("Change the title, date or group of an event. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier."),
		),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("date", mcp.Description("New YYYY-MM-DD date.")),
		mcp.WithString("group", mcp.Description("New group name.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Date  string `json:"date"`
			Group string `json:"group"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.UpdateEvent(args.ID, args.Title, args.Date, args.Group)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEventTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_event",
		mcp.WithDescription("Delete an event."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Event identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteEvent(id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": id})
	})
}

func registerMonthGridTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"month_grid",
		mcp.WithDescription("Monday-first month grid including placeholder days of the adjacent months and the visible events per day."),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM, defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Month(request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListGroupsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_groups",
		mcp.WithDescription("List groups with their color and visibility."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groups := svc.Groups()
		return toJSONResult(map[string]any{
			"groups": groups,
			"count":  len(groups),
		})
	})
}

func registerAddGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_group",
		mcp.WithDescription("Create a group. Whitespace is removed from the name; duplicate names are rejected."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name."),
		),
		mcp.WithString("color",
			mcp.Description("Hex color such as #ff8800, defaults to white."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		g, err := svc.AddGroup(name, request.GetString("color", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(g)
	})
}

func registerDeleteGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_group",
		mcp.WithDescription("Delete a group. The default group cannot be deleted."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteGroup(name); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": name})
	})
}

func registerToggleGroupTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_group",
		mcp.WithDescription("Show or hide the events of a group."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		g, err := svc.ToggleGroup(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(g)
	})
}

func registerSetGroupColorTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_group_color",
		mcp.WithDescription("Change the display color of a group."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Group name."),
		),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Hex color such as #ff8800."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		color, err := request.RequireString("color")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		g, err := svc.SetGroupColor(name, color)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(g)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
