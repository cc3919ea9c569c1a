// Package availability decides whether a domain name looks available for
// registration by combining two independent signals: a WHOIS-style
// registration lookup and a DNS resolution lookup.
//
// # Verdicts
//
// The two signals are reduced through a fixed decision table:
//
//   - Available     requires the registration signal to be "likely
//     unregistered" AND the resolution signal to be anything other than
//     "resolves". A domain with live DNS is never reported available, even
//     when no registry record was found.
//   - NotAvailable  requires the registration signal to be "registered
//     active", regardless of the resolution signal.
//   - Unclear       covers every other combination.
//
// There is no scoring or weighting; the table is the whole heuristic.
//
// # Failure model
//
// ResolveOne never returns an error. Backend failures degrade the affected
// signal to its indeterminate state with a human-readable reason, and the
// verdict degrades to Unclear. Batch resolution isolates per-domain
// failures: one domain's broken lookup never affects its siblings, and
// output order always matches input order.
package availability
