package reward

import (
	"crypto/rand"
	"io"
	"regexp"
	"strings"
	"time"

	"brainbox-retailplus/internal/pkg/errs"
)

const (
	slipPrefix     = "RW"
	slipCodeLength = 6
	// no I, O, 0 or 1 so slips survive being read aloud at the till
	slipAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

var slipPattern = regexp.MustCompile(`^RW-\d{8}-[A-HJ-NP-Z2-9]{6}$`)

// Slip is the human-presentable code a cashier types in to redeem a reward.
type Slip string

func (s Slip) String() string {
	return string(s)
}

// IsWellFormed reports whether s has the RW-YYYYMMDD-XXXXXX shape.
func (s Slip) IsWellFormed() bool {
	return slipPattern.MatchString(string(s))
}

// ParseSlip normalizes user input. Lookups with an unknown slip fail later with
// ErrRedemptionNotFound, so malformed input is not rejected here.
func ParseSlip(s string) Slip {
	return Slip(strings.ToUpper(strings.TrimSpace(s)))
}

type SlipGenerator interface {
	Generate(now time.Time) (Slip, error)
}

type RandomSlipGenerator struct {
	rnd io.Reader
}

func NewRandomSlipGenerator() *RandomSlipGenerator {
	return &RandomSlipGenerator{rnd: rand.Reader}
}

// NewSlipGeneratorFrom builds a generator over a fixed byte source.
func NewSlipGeneratorFrom(r io.Reader) *RandomSlipGenerator {
	return &RandomSlipGenerator{rnd: r}
}

func (g *RandomSlipGenerator) Generate(now time.Time) (Slip, error) {
	buf := make([]byte, slipCodeLength)
	if _, err := io.ReadFull(g.rnd, buf); err != nil {
		return "", errs.Wrap(err, "reading slip entropy")
	}

	var b strings.Builder
	b.WriteString(slipPrefix)
	b.WriteByte('-')
	b.WriteString(now.Format("20060102"))
	b.WriteByte('-')
	for _, c := range buf {
		// len(slipAlphabet) divides 256, so the modulo keeps the distribution uniform
		b.WriteByte(slipAlphabet[int(c)%len(slipAlphabet)])
	}
	return Slip(b.String()), nil
}
