// Package domaintools exposes the availability resolver as MCP tools.
package domaintools

import "github.com/namescout/domain-tools-mcp/internal/mcp"

// Tools returns the domain checker's tool definitions.
func (t *ToolSet) Tools() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "check_domain",
			Description: "Check if a single domain name is available for registration. Combines a WHOIS registry lookup with a DNS resolution check. Useful for product name research and brand validation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"domain": map[string]interface{}{
						"type":        "string",
						"description": "Fully qualified domain name to check (e.g. example.com)",
					},
				},
				"required": []string{"domain"},
			},
		},
		{
			Name:        "check_multiple_domains",
			Description: "Check availability for multiple domain names at once. Domains are checked concurrently and results come back in the same order as the input list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"domains": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Domain names to check (non-empty)",
					},
				},
				"required": []string{"domains"},
			},
		},
		{
			Name:        "check_domain_variations",
			Description: "Check availability for a base name across multiple TLD extensions. Defaults to .com, .net, .org, .io, .app, .dev and .tech when no extensions are given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base_name": map[string]interface{}{
						"type":        "string",
						"description": "Base name without an extension (e.g. mybrand)",
					},
					"extensions": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Extensions to append, each including the leading dot (e.g. [\".com\", \".ai\"])",
					},
				},
				"required": []string{"base_name"},
			},
		},
	}
}
