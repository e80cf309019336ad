package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpfoley73/landmarks/internal/adapters/driving/mcp"
	"github.com/mpfoley73/landmarks/internal/core/services"
	"github.com/mpfoley73/landmarks/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

While serving, the data directory is watched for changed import files
and the vector indexes are reloaded automatically. Disable with
--watch=false.

Examples:
  # Stdio mode (default, for Claude Desktop)
  landmarks mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  landmarks mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "landmarks": {
        "command": "/path/to/landmarks",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", true, "reload indexes when import files change")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Resolver: resolverService,
		Index:    indexService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if watch && indexService != nil {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		watcher := services.NewRefreshWatcher(dir, indexService, 0)
		go func() {
			if err := watcher.Start(cmd.Context()); err != nil {
				logger.Warn("Refresh watcher stopped: %v", err)
			}
		}()
		defer watcher.Stop()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
