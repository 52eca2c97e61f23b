package ai

// Status distinguishes the three outcomes of a model-service call.
// Keeping them explicit (instead of overloading a nil result) preserves
// the operator-facing difference between "nothing to do" and "failed".
type Status int

const (
	// StatusOK means the call succeeded and the value is present.
	StatusOK Status = iota + 1

	// StatusDisabled means the call was skipped before any network
	// activity: blank API key, blank model identifier, or blank input.
	StatusDisabled

	// StatusFailed means the call was attempted and did not produce a
	// usable value: transport error, non-2xx status, or a response body
	// with no recognizable payload. Failures are soft; the enclosing
	// sweep continues.
	StatusFailed
)

// String returns the status name for log lines.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDisabled:
		return "disabled"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TextResult is the outcome of a caption or summary request.
type TextResult struct {
	Status Status
	Text   string
	Reason string // populated for Disabled and Failed
}

// Ok reports whether the result carries a usable text value.
func (r TextResult) Ok() bool {
	return r.Status == StatusOK && r.Text != ""
}

// OkText wraps a successful text value.
func OkText(text string) TextResult {
	return TextResult{Status: StatusOK, Text: text}
}

// DisabledText marks a skipped call with the skip reason.
func DisabledText(reason string) TextResult {
	return TextResult{Status: StatusDisabled, Reason: reason}
}

// FailedText marks a soft failure with its cause.
func FailedText(reason string) TextResult {
	return TextResult{Status: StatusFailed, Reason: reason}
}

// VectorResult is the outcome of an embedding request. The vector
// length is determined by the configured model; callers must not assume
// a fixed dimension.
type VectorResult struct {
	Status Status
	Vector []float32
	Reason string // populated for Disabled and Failed
}

// Ok reports whether the result carries a usable vector.
func (r VectorResult) Ok() bool {
	return r.Status == StatusOK && len(r.Vector) > 0
}

// OkVector wraps a successful embedding vector.
func OkVector(vector []float32) VectorResult {
	return VectorResult{Status: StatusOK, Vector: vector}
}

// DisabledVector marks a skipped embedding call with the skip reason.
func DisabledVector(reason string) VectorResult {
	return VectorResult{Status: StatusDisabled, Reason: reason}
}

// FailedVector marks a soft embedding failure with its cause.
func FailedVector(reason string) VectorResult {
	return VectorResult{Status: StatusFailed, Reason: reason}
}
