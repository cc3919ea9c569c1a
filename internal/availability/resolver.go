package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrEmptyBatch is returned when a batch operation is called with no
// domains. It is the only hard error the resolver surfaces; everything
// else degrades into the result itself.
var ErrEmptyBatch = errors.New("availability: domain list is empty")

// DefaultExtensions is the extension list used by ResolveVariations when
// the caller supplies none.
var DefaultExtensions = []string{".com", ".net", ".org", ".io", ".app", ".dev", ".tech"}

// defaultMaxConcurrent bounds batch fan-out. WHOIS registries rate-limit
// aggressively, so unbounded concurrency trades correctness for speed.
const defaultMaxConcurrent = 8

// RegistrationChecker queries registry record data for a domain.
//
// Implementations absorb expected lookup failures into the returned signal
// (state RegistrationUnknown with a reason). A non-nil error is reserved
// for failures the backend could not classify at all.
type RegistrationChecker interface {
	CheckRegistration(ctx context.Context, domain string) (RegistrationSignal, error)
}

// ResolutionChecker resolves a domain name to addresses.
type ResolutionChecker interface {
	CheckResolution(ctx context.Context, domain string) (ResolutionSignal, error)
}

// Resolver combines a registration backend and a resolution backend into
// availability verdicts.
type Resolver struct {
	reg           RegistrationChecker
	res           ResolutionChecker
	maxConcurrent int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxConcurrent overrides the batch fan-out bound. Values below 1 are
// ignored.
func WithMaxConcurrent(n int) Option {
	return func(r *Resolver) {
		if n >= 1 {
			r.maxConcurrent = n
		}
	}
}

// New creates a Resolver using the given lookup backends.
func New(reg RegistrationChecker, res ResolutionChecker, opts ...Option) *Resolver {
	r := &Resolver{
		reg:           reg,
		res:           res,
		maxConcurrent: defaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveOne checks a single domain and always returns a usable Result.
//
// Backend errors never propagate: an unexpected failure leaves the
// affected signal indeterminate, records the error text on the result, and
// still applies the decision table to whatever is known.
func (r *Resolver) ResolveOne(ctx context.Context, domain string) Result {
	result := Result{Domain: domain}

	reg, err := r.reg.CheckRegistration(ctx, domain)
	if err != nil {
		reg = RegistrationSignal{
			State:  RegistrationUnknown,
			Reason: fmt.Sprintf("registration lookup failed: %v", err),
		}
		result.Err = err.Error()
	}
	result.Registration = reg

	res, err := r.res.CheckResolution(ctx, domain)
	if err != nil {
		res = ResolutionSignal{
			State:  ResolutionUnknown,
			Reason: fmt.Sprintf("resolution lookup failed: %v", err),
		}
		if result.Err == "" {
			result.Err = err.Error()
		}
	}
	result.Resolution = res

	result.Verdict = Decide(result.Registration, result.Resolution)
	return result
}

// ResolveMany checks every domain concurrently and returns verdicts in
// input order, regardless of completion order. A panicking backend is
// converted into an error-carrying result for that domain only.
func (r *Resolver) ResolveMany(ctx context.Context, domains []string) ([]Result, error) {
	if len(domains) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]Result, len(domains))
	sem := make(chan struct{}, r.maxConcurrent)
	var wg sync.WaitGroup

	for i, domain := range domains {
		wg.Add(1)
		go func(idx int, d string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = r.resolveSafe(ctx, d)
		}(i, domain)
	}

	wg.Wait()
	return results, nil
}

// ResolveVariations builds base+extension domains for each extension (the
// default list when exts is empty) and delegates to ResolveMany.
func (r *Resolver) ResolveVariations(ctx context.Context, base string, exts []string) ([]Result, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	domains := make([]string, len(exts))
	for i, ext := range exts {
		domains[i] = base + ext
	}
	return r.ResolveMany(ctx, domains)
}

// resolveSafe shields the batch from a panicking backend. The recovered
// domain keeps its name and error text with both signals indeterminate.
func (r *Resolver) resolveSafe(ctx context.Context, domain string) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Domain:       domain,
				Verdict:      Unclear,
				Registration: RegistrationSignal{State: RegistrationUnknown, Reason: "check aborted"},
				Resolution:   ResolutionSignal{State: ResolutionUnknown, Reason: "check aborted"},
				Err:          fmt.Sprintf("check panicked: %v", rec),
			}
		}
	}()
	return r.ResolveOne(ctx, domain)
}
