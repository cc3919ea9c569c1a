package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"

	"github.com/namescout/domain-tools-mcp/internal/availability"
)

// DefaultWHOISTimeout bounds a single WHOIS query, covering both the
// connection and the read.
const DefaultWHOISTimeout = 10 * time.Second

// rawExcerptLimit caps the raw record excerpt attached to ambiguous
// responses.
const rawExcerptLimit = 500

// whoisQuerier matches the likexian/whois client surface this backend uses.
type whoisQuerier interface {
	Whois(domain string, servers ...string) (string, error)
}

// WHOIS checks domain registration state through the WHOIS protocol.
type WHOIS struct {
	client whoisQuerier
}

// NewWHOIS creates a WHOIS backend with the given query timeout.
// A non-positive timeout falls back to DefaultWHOISTimeout.
func NewWHOIS(timeout time.Duration) *WHOIS {
	if timeout <= 0 {
		timeout = DefaultWHOISTimeout
	}
	client := whois.NewClient()
	client.SetTimeout(timeout)
	return &WHOIS{client: client}
}

// CheckRegistration queries the registry for the domain and classifies the
// response. Query failures (network, timeout) come back as an
// indeterminate signal, never as an error.
func (w *WHOIS) CheckRegistration(ctx context.Context, domain string) (availability.RegistrationSignal, error) {
	raw, err := w.client.Whois(domain)
	if err != nil {
		return availability.RegistrationSignal{
			State:  availability.RegistrationUnknown,
			Reason: fmt.Sprintf("whois lookup failed: %v", err),
		}, nil
	}
	return classifyRecord(raw), nil
}

// classifyRecord turns a raw WHOIS response into a registration signal.
//
// A response the parser rejects as unparseable is classified as likely
// unregistered: registries answer queries for nonexistent domains with
// free-form "no match" text that no parser fully covers. The cost is a
// known false positive: a malformed record for a registered domain looks
// identical to no registration at all.
func classifyRecord(raw string) availability.RegistrationSignal {
	info, err := whoisparser.Parse(raw)

	switch {
	case err == nil:
		// Classified below.
	case errors.Is(err, whoisparser.ErrNotFoundDomain):
		return availability.RegistrationSignal{
			State:  availability.LikelyUnregistered,
			Reason: "no record found",
		}
	case errors.Is(err, whoisparser.ErrReservedDomain):
		return availability.RegistrationSignal{
			State:  availability.RegisteredActive,
			Reason: "domain is reserved by the registry",
		}
	case errors.Is(err, whoisparser.ErrPremiumDomain):
		return availability.RegistrationSignal{
			State:  availability.RegisteredActive,
			Reason: "domain is premium, held by the registry",
		}
	case errors.Is(err, whoisparser.ErrBlockedDomain):
		return availability.RegistrationSignal{
			State:  availability.RegisteredActive,
			Reason: "domain is blocked by the registry",
		}
	default:
		return availability.RegistrationSignal{
			State:  availability.LikelyUnregistered,
			Reason: fmt.Sprintf("whois parse error: %v", err),
		}
	}

	if info.Domain != nil && len(info.Domain.Status) > 0 {
		sig := availability.RegistrationSignal{
			State:       availability.RegisteredActive,
			Reason:      "domain has active status",
			StatusCodes: info.Domain.Status,
			CreatedDate: info.Domain.CreatedDate,
		}
		if info.Registrar != nil {
			sig.Registrar = info.Registrar.Name
		}
		return sig
	}

	if info.Registrar != nil && info.Registrar.Name != "" {
		return availability.RegistrationSignal{
			State:     availability.RegisteredActive,
			Reason:    "domain has registrar",
			Registrar: info.Registrar.Name,
		}
	}

	return availability.RegistrationSignal{
		State:      availability.RegistrationUnknown,
		Reason:     "record present but status unclear",
		RawExcerpt: truncate(raw, rawExcerptLimit),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
