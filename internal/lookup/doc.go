// Package lookup implements the network backends behind availability
// checks: a WHOIS registration lookup and a DNS resolution lookup.
//
// Both backends absorb expected network failures into indeterminate
// signals instead of returning errors, so a flaky registry or resolver
// degrades precision rather than failing the check. Every query is bounded
// by a timeout; an unreachable upstream can never block a check forever.
package lookup
