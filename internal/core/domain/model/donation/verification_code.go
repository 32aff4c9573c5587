package donation

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"foodshare/internal/pkg/errs"
)

const (
	// VerificationCodeLength is the exact number of ASCII digits in a code.
	VerificationCodeLength = 6

	verificationCodeMin = 100000
	verificationCodeMax = 999999
)

// VerificationCode is the six-digit code minted at reservation time and
// shared out-of-band between donor and organization. Codes are scoped to a
// single donation; two donations may legitimately carry the same code.
type VerificationCode struct {
	value string
}

// NewVerificationCode validates and wraps a stored code value.
func NewVerificationCode(value string) (VerificationCode, error) {
	value = strings.TrimSpace(value)
	if len(value) != VerificationCodeLength {
		return VerificationCode{}, errs.NewValueIsInvalidErrorWithCause(
			"verification code", fmt.Errorf("must be exactly %d digits", VerificationCodeLength))
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return VerificationCode{}, errs.NewValueIsInvalidErrorWithCause(
				"verification code", fmt.Errorf("%q is not a digit", r))
		}
	}
	return VerificationCode{value: value}, nil
}

// String returns the code's digits.
func (c VerificationCode) String() string {
	return c.value
}

// Validate checks the code was created through a constructor.
func (c VerificationCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError(
			"verification code must be created via NewVerificationCode or a CodeGenerator")
	}
	return nil
}

// Matches reports whether the supplied input, after trimming surrounding
// whitespace, exactly equals the code.
func (c VerificationCode) Matches(input string) bool {
	return c.value != "" && strings.TrimSpace(input) == c.value
}

// CodeGenerator mints verification codes. It is injected into the
// reservation flow so tests can substitute a deterministic source.
type CodeGenerator interface {
	Generate() VerificationCode
}

// RandomCodeGenerator produces codes uniformly distributed in
// [100000, 999999].
type RandomCodeGenerator struct{}

// NewRandomCodeGenerator creates the default production code generator.
func NewRandomCodeGenerator() RandomCodeGenerator {
	return RandomCodeGenerator{}
}

// Generate returns a fresh random six-digit code.
func (RandomCodeGenerator) Generate() VerificationCode {
	n := verificationCodeMin + rand.IntN(verificationCodeMax-verificationCodeMin+1) //nolint:gosec // codes are shared out-of-band, not cryptographic secrets
	return VerificationCode{value: fmt.Sprintf("%06d", n)}
}

// FixedCodeGenerator always returns the same code; intended for tests.
type FixedCodeGenerator struct {
	Code VerificationCode
}

// Generate returns the fixed code.
func (g FixedCodeGenerator) Generate() VerificationCode {
	return g.Code
}
