package domaintools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/namescout/domain-tools-mcp/internal/availability"
)

type stubRegistration struct{}

func (stubRegistration) CheckRegistration(_ context.Context, domain string) (availability.RegistrationSignal, error) {
	if strings.HasPrefix(domain, "taken") {
		return availability.RegistrationSignal{
			State:     availability.RegisteredActive,
			Reason:    "domain has registrar",
			Registrar: "Example Registrar Inc.",
		}, nil
	}
	return availability.RegistrationSignal{
		State:  availability.LikelyUnregistered,
		Reason: "no record found",
	}, nil
}

type stubResolution struct{}

func (stubResolution) CheckResolution(_ context.Context, domain string) (availability.ResolutionSignal, error) {
	if strings.HasPrefix(domain, "taken") {
		return availability.ResolutionSignal{
			State:     availability.Resolves,
			Reason:    "resolves to addresses",
			Addresses: []string{"93.184.216.34"},
		}, nil
	}
	return availability.ResolutionSignal{State: availability.DoesNotResolve, Reason: "NXDOMAIN"}, nil
}

func newTestToolSet() *ToolSet {
	return New(availability.New(stubRegistration{}, stubResolution{}))
}

func call(t *testing.T, ts *ToolSet, name string, args interface{}) string {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	result, err := ts.Call(name, raw)
	if err != nil {
		t.Fatalf("Call(%s) failed: %v", name, err)
	}
	text, ok := result.(string)
	if !ok {
		t.Fatalf("Call(%s) result is %T, want string", name, result)
	}
	return text
}

func TestCheckDomain_Taken(t *testing.T) {
	text := call(t, newTestToolSet(), "check_domain", map[string]string{"domain": "taken.com"})

	if !strings.Contains(text, "Status: NOT AVAILABLE") {
		t.Errorf("missing verdict line:\n%s", text)
	}
	if !strings.Contains(text, "domain has registrar") {
		t.Errorf("missing registration reason:\n%s", text)
	}
	if !strings.Contains(text, "resolves to addresses") {
		t.Errorf("missing resolution reason:\n%s", text)
	}
	if !strings.Contains(text, "93.184.216.34") {
		t.Errorf("missing address detail:\n%s", text)
	}
}

func TestCheckDomain_Available(t *testing.T) {
	text := call(t, newTestToolSet(), "check_domain", map[string]string{"domain": "fresh-name.dev"})

	if !strings.Contains(text, "Status: LIKELY AVAILABLE") {
		t.Errorf("missing verdict line:\n%s", text)
	}
	if !strings.Contains(text, "NXDOMAIN") {
		t.Errorf("missing resolution reason:\n%s", text)
	}
}

func TestCheckDomain_MissingDomain(t *testing.T) {
	_, err := newTestToolSet().Call("check_domain", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for missing domain")
	}
}

func TestCheckMultipleDomains_OrderedTable(t *testing.T) {
	domains := []string{"taken.com", "fresh.io", "taken.net"}
	text := call(t, newTestToolSet(), "check_multiple_domains",
		map[string]interface{}{"domains": domains})

	// Table rows appear in input order.
	lastIdx := -1
	for _, d := range domains {
		idx := strings.Index(text, d)
		if idx < 0 {
			t.Fatalf("domain %q missing from output:\n%s", d, text)
		}
		if idx < lastIdx {
			t.Errorf("domain %q out of order", d)
		}
		lastIdx = idx
	}
	if !strings.Contains(text, "Detailed results:") {
		t.Errorf("missing detail section:\n%s", text)
	}
}

func TestCheckMultipleDomains_EmptyList(t *testing.T) {
	_, err := newTestToolSet().Call("check_multiple_domains", json.RawMessage(`{"domains":[]}`))
	if err == nil {
		t.Fatal("expected error for empty domain list")
	}
}

func TestCheckDomainVariations_Defaults(t *testing.T) {
	text := call(t, newTestToolSet(), "check_domain_variations",
		map[string]string{"base_name": "mybrand"})

	for _, ext := range availability.DefaultExtensions {
		if !strings.Contains(text, "mybrand"+ext) {
			t.Errorf("missing variation %q:\n%s", "mybrand"+ext, text)
		}
	}
}

func TestCheckDomainVariations_CustomExtensions(t *testing.T) {
	text := call(t, newTestToolSet(), "check_domain_variations",
		map[string]interface{}{"base_name": "mybrand", "extensions": []string{".ai"}})

	if !strings.Contains(text, "mybrand.ai") {
		t.Errorf("missing variation mybrand.ai:\n%s", text)
	}
	if strings.Contains(text, "mybrand.com") {
		t.Errorf("default extensions should not apply when custom ones are given:\n%s", text)
	}
}

func TestCheckDomainVariations_MissingBaseName(t *testing.T) {
	_, err := newTestToolSet().Call("check_domain_variations", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for missing base_name")
	}
}

func TestCall_UnknownTool(t *testing.T) {
	_, err := newTestToolSet().Call("nope", json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestToolDefinitionsHaveSchemas(t *testing.T) {
	for _, tool := range newTestToolSet().Tools() {
		if tool.Name == "" || tool.Description == "" {
			t.Errorf("tool missing name or description: %+v", tool)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("tool %s schema is not an object", tool.Name)
		}
	}
}
