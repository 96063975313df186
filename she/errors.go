package she

import "errors"

// Sentinel errors identifying the error kinds the scheme's operations can
// raise. Callers that need to branch on the kind of failure should use
// errors.Is against these.
var (
	// ErrInvalidBase is returned by KeyGenerator.GenEvalKey when the
	// eval-key base lies outside [2, 62]. The encoding package reports an
	// out-of-range encoding base with its own error, not with this sentinel.
	ErrInvalidBase = errors.New("she: base outside supported range [2, 62]")

	// ErrCiphertextFull is returned by an encryption call that would push
	// a ciphertext beyond its D-slot capacity.
	ErrCiphertextFull = errors.New("she: ciphertext is already at maximum length")

	// ErrLengthUnsupported is returned by EvalMul and Relinearize when an
	// operand's length makes the operation meaningless: fewer than 2
	// elements, a product that would exceed D, or a relinearize target
	// whose length isn't exactly 3.
	ErrLengthUnsupported = errors.New("she: ciphertext length unsupported for this operation")

	// ErrIO is returned when a key file cannot be written or parsed.
	ErrIO = errors.New("she: key file I/O error")
)
