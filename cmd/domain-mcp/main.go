package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/namescout/domain-tools-mcp/internal/availability"
	"github.com/namescout/domain-tools-mcp/internal/domaintools"
	"github.com/namescout/domain-tools-mcp/internal/lookup"
	"github.com/namescout/domain-tools-mcp/internal/mcp"
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
			fmt.Printf("domain-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("domain-mcp - MCP server for domain availability checking")
			fmt.Println()
			fmt.Println("Usage: domain-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DOMAIN_MCP_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println("  DOMAIN_MCP_DNS_SERVER=ip:port  Query a specific DNS server")
			fmt.Println("  DOMAIN_MCP_DNS_TIMEOUT=5s      DNS lookup timeout")
			fmt.Println("  DOMAIN_MCP_WHOIS_TIMEOUT=10s   WHOIS query timeout")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("DOMAIN_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Domain MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	whoisTimeout := durationEnv("DOMAIN_MCP_WHOIS_TIMEOUT", lookup.DefaultWHOISTimeout)
	dnsTimeout := durationEnv("DOMAIN_MCP_DNS_TIMEOUT", lookup.DefaultDNSTimeout)
	dnsServer := os.Getenv("DOMAIN_MCP_DNS_SERVER")

	resolver := availability.New(
		lookup.NewWHOIS(whoisTimeout),
		lookup.NewDNS(lookup.DNSConfig{Timeout: dnsTimeout, Server: dnsServer}),
	)

	srv := mcp.New("domain-mcp", Version, domaintools.New(resolver))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// durationEnv reads a duration from the environment, keeping the fallback
// on absence or a malformed value.
func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, raw, err)
		return fallback
	}
	return d
}
