package domaintools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/namescout/domain-tools-mcp/internal/availability"
)

// ToolSet wires the availability resolver into the MCP tool surface.
type ToolSet struct {
	resolver *availability.Resolver
}

// New creates the domain checker toolset.
func New(resolver *availability.Resolver) *ToolSet {
	return &ToolSet{resolver: resolver}
}

// Call dispatches a tool invocation.
func (t *ToolSet) Call(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "check_domain":
		return t.handleCheckDomain(args)
	case "check_multiple_domains":
		return t.handleCheckMultipleDomains(args)
	case "check_domain_variations":
		return t.handleCheckDomainVariations(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

type checkDomainArgs struct {
	Domain string `json:"domain"`
}

func (t *ToolSet) handleCheckDomain(args json.RawMessage) (interface{}, error) {
	var a checkDomainArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Domain == "" {
		return nil, errors.New("domain is required")
	}

	result := t.resolver.ResolveOne(context.Background(), a.Domain)
	return formatSingle(result), nil
}

type checkMultipleDomainsArgs struct {
	Domains []string `json:"domains"`
}

func (t *ToolSet) handleCheckMultipleDomains(args json.RawMessage) (interface{}, error) {
	var a checkMultipleDomainsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	results, err := t.resolver.ResolveMany(context.Background(), a.Domains)
	if err != nil {
		return nil, err
	}
	return formatBatch(results), nil
}

type checkDomainVariationsArgs struct {
	BaseName   string   `json:"base_name"`
	Extensions []string `json:"extensions"`
}

func (t *ToolSet) handleCheckDomainVariations(args json.RawMessage) (interface{}, error) {
	var a checkDomainVariationsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.BaseName == "" {
		return nil, errors.New("base_name is required")
	}

	results, err := t.resolver.ResolveVariations(context.Background(), a.BaseName, a.Extensions)
	if err != nil {
		return nil, err
	}
	return formatBatch(results), nil
}

// statusLabel renders a verdict for human consumption.
func statusLabel(v availability.Verdict) string {
	switch v {
	case availability.Available:
		return "LIKELY AVAILABLE"
	case availability.NotAvailable:
		return "NOT AVAILABLE"
	default:
		return "UNCLEAR"
	}
}

// formatSingle renders one result as verdict text plus the raw signal
// detail as JSON.
func formatSingle(r availability.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Domain: %s\n", r.Domain)
	fmt.Fprintf(&b, "Status: %s\n\n", statusLabel(r.Verdict))
	fmt.Fprintf(&b, "WHOIS: %s\n", r.Registration.Reason)
	fmt.Fprintf(&b, "DNS: %s\n", r.Resolution.Reason)

	detail, err := json.MarshalIndent(r, "", "  ")
	if err == nil {
		fmt.Fprintf(&b, "\nDetails:\n%s\n", detail)
	}
	if r.Err != "" {
		fmt.Fprintf(&b, "\nError: %s\n", r.Err)
	}
	return b.String()
}

// formatBatch renders an aligned verdict table followed by the full
// per-domain detail as JSON.
func formatBatch(results []availability.Result) string {
	var b strings.Builder
	b.WriteString("Domain Availability Check Results:\n\n")
	for _, r := range results {
		fmt.Fprintf(&b, "%-30s %s\n", r.Domain, statusLabel(r.Verdict))
	}

	detail, err := json.MarshalIndent(results, "", "  ")
	if err == nil {
		fmt.Fprintf(&b, "\nDetailed results:\n%s\n", detail)
	}
	return b.String()
}
