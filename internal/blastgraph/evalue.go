package blastgraph

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// EValueSaturation is the -log10(E-value) stored when the aligner rounded
// an E-value to exactly zero. BLAST 2.2.28+ rounds E-values smaller than
// 1e-180 to zero, so 181 sits just above any value it can still report.
const EValueSaturation = 181.0

// parseEValue reads an E-value column into an arbitrary-precision float.
// strconv.ParseFloat reports underflow for values like 1e-400 long before
// BLAST stops reporting them; big.Float keeps the exponent so negLog10
// stays finite all the way down to a true zero.
func parseEValue(field string) (*big.Float, error) {
	ev, _, err := big.ParseFloat(field, 10, 53, big.ToNearestEven)
	if err != nil {
		return nil, errors.Wrapf(err, "bad E-value %q", field)
	}
	if ev.Sign() < 0 {
		return nil, errors.Errorf("negative E-value %q", field)
	}
	return ev, nil
}

// negLog10 returns -log10(ev) for a non-negative E-value, +Inf when the
// E-value is zero. With ev = mant * 2**exp and mant in [0.5, 1), the
// mantissa converts to float64 exactly and the exponent contributes
// exp*log10(2) without ever forming the (possibly underflowing) float64
// value of ev itself.
func negLog10(ev *big.Float) float64 {
	if ev.Sign() == 0 {
		return math.Inf(1)
	}

	mant := new(big.Float)
	exp := ev.MantExp(mant)
	m, _ := mant.Float64()

	return -(math.Log10(m) + float64(exp)*math.Log10(2))
}
