package availability

// RegistrationState classifies the outcome of a registry record lookup.
type RegistrationState string

const (
	// RegisteredActive means the registry shows a live registration
	// (active status codes or a registrar on record).
	RegisteredActive RegistrationState = "registered_active"

	// LikelyUnregistered means no registry record was found for the domain.
	LikelyUnregistered RegistrationState = "likely_unregistered"

	// RegistrationUnknown means the lookup failed or the record was too
	// ambiguous to classify.
	RegistrationUnknown RegistrationState = "indeterminate"
)

// ResolutionState classifies the outcome of a DNS address lookup.
type ResolutionState string

const (
	// Resolves means the domain currently resolves to one or more addresses.
	Resolves ResolutionState = "resolves"

	// DoesNotResolve means the nameservers answered NXDOMAIN.
	DoesNotResolve ResolutionState = "does_not_resolve"

	// ResolutionUnknown means the lookup failed for reasons unrelated to
	// the domain's existence (timeout, network error).
	ResolutionUnknown ResolutionState = "indeterminate"
)

// Verdict is the tri-state availability conclusion.
type Verdict string

const (
	Available    Verdict = "available"
	NotAvailable Verdict = "not_available"
	Unclear      Verdict = "unclear"
)

// RegistrationSignal is the registration half of an availability check.
type RegistrationSignal struct {
	State  RegistrationState `json:"state"`
	Reason string            `json:"reason"`

	// Optional structured detail, populated when the registry record
	// carried the corresponding fields.
	Registrar   string   `json:"registrar,omitempty"`
	CreatedDate string   `json:"created_date,omitempty"`
	StatusCodes []string `json:"status_codes,omitempty"`

	// RawExcerpt holds up to 500 characters of the raw record when the
	// record was present but could not be classified.
	RawExcerpt string `json:"raw_excerpt,omitempty"`
}

// ResolutionSignal is the DNS half of an availability check.
type ResolutionSignal struct {
	State     ResolutionState `json:"state"`
	Reason    string          `json:"reason"`
	Addresses []string        `json:"addresses,omitempty"`
}

// Result is the full outcome of checking one domain.
type Result struct {
	Domain       string             `json:"domain"`
	Verdict      Verdict            `json:"verdict"`
	Registration RegistrationSignal `json:"registration"`
	Resolution   ResolutionSignal   `json:"resolution"`

	// Err records an unexpected failure that was not already absorbed into
	// a signal. The verdict is still the best effort for what is known.
	Err string `json:"error,omitempty"`
}

// Decide applies the fixed decision table to the two signals.
func Decide(reg RegistrationSignal, res ResolutionSignal) Verdict {
	switch {
	case reg.State == RegisteredActive:
		return NotAvailable
	case reg.State == LikelyUnregistered && res.State != Resolves:
		return Available
	default:
		return Unclear
	}
}
