package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/charta/internal/adapters/driving/mcp"
	"github.com/custodia-labs/charta/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can suggest
templates, generate charters and estimate freight.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  charta mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  charta mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "charta": {
        "command": "/path/to/charta",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Catalog: catalogService,
		Advisor: routeAdvisor,
		Charter: charterService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(commandContext(cmd), addr)
	}

	// Stdout carries JSON-RPC; keep stderr quiet too.
	logger.SetQuiet(true)
	return server.Run(commandContext(cmd))
}
