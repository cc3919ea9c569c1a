package lookup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/namescout/domain-tools-mcp/internal/availability"
)

// DefaultDNSTimeout bounds a single address lookup.
const DefaultDNSTimeout = 5 * time.Second

// hostLookuper matches the net.Resolver surface this backend uses.
type hostLookuper interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DNSConfig tunes the DNS backend.
type DNSConfig struct {
	// Timeout bounds each lookup. Non-positive means DefaultDNSTimeout.
	Timeout time.Duration

	// Server optionally pins lookups to a specific DNS server
	// ("8.8.8.8" or "8.8.8.8:53"). Empty uses the system resolver.
	Server string
}

// DNS checks whether a domain resolves to addresses.
type DNS struct {
	resolver hostLookuper
	timeout  time.Duration
}

// NewDNS creates a DNS backend from the given configuration.
func NewDNS(cfg DNSConfig) *DNS {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}

	resolver := &net.Resolver{PreferGo: true}
	if cfg.Server != "" {
		server := cfg.Server
		if !strings.Contains(server, ":") {
			server += ":53"
		}
		resolver.Dial = func(ctx context.Context, network, _ string) (net.Conn, error) {
			d := net.Dialer{Timeout: timeout}
			return d.DialContext(ctx, network, server)
		}
	}

	return &DNS{resolver: resolver, timeout: timeout}
}

// CheckResolution looks up address records for the domain. NXDOMAIN maps
// to DoesNotResolve; any other lookup failure maps to an indeterminate
// signal carrying the cause.
func (d *DNS) CheckResolution(ctx context.Context, domain string) (availability.ResolutionSignal, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	addrs, err := d.resolver.LookupHost(ctx, domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return availability.ResolutionSignal{
				State:  availability.DoesNotResolve,
				Reason: "NXDOMAIN",
			}, nil
		}
		return availability.ResolutionSignal{
			State:  availability.ResolutionUnknown,
			Reason: fmt.Sprintf("dns lookup failed: %v", err),
		}, nil
	}

	return availability.ResolutionSignal{
		State:     availability.Resolves,
		Reason:    "resolves to addresses",
		Addresses: addrs,
	}, nil
}
