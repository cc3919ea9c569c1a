package main

import (
	"fmt"
	"log"
	"os"

	"github.com/namescout/domain-tools-mcp/internal/imagetools"
	"github.com/namescout/domain-tools-mcp/internal/mcp"
	"github.com/namescout/domain-tools-mcp/internal/scratch"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-edit-mcp - MCP server for image editing")
			fmt.Println()
			fmt.Println("Usage: image-edit-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_EDIT_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("IMAGE_EDIT_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Image Edit MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	dir, err := scratch.New("image_edit_")
	if err != nil {
		log.Fatalf("Failed to create scratch directory: %v", err)
	}
	defer dir.Close()

	srv := mcp.New("image-edit-mcp", Version, imagetools.New(dir))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
