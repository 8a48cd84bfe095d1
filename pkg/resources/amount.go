package resources

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// amountPrecision is the number of decimal places carried by wire amounts.
// One display unit equals 10^7 base units (stroops).
const amountPrecision = 7

const stroopsPerUnit = 10_000_000

// Amount is a quantity of an asset, stored as an integer count of stroops.
// The wire form is a decimal string with seven fractional digits, e.g.
// "100.0000000".
type Amount int64

// NewAmount builds an amount from a stroop count.
func NewAmount(stroops int64) Amount {
	return Amount(stroops)
}

// Stroops returns the raw base-unit count.
func (a Amount) Stroops() int64 {
	return int64(a)
}

// String renders the amount in display units with seven decimal places.
func (a Amount) String() string {
	stroops := int64(a)
	sign := ""
	if stroops < 0 {
		sign = "-"
		stroops = -stroops
	}
	return fmt.Sprintf("%s%d.%07d", sign, stroops/stroopsPerUnit, stroops%stroopsPerUnit)
}

// ParseAmount parses a decimal display string with up to seven fractional
// digits into an Amount.
func ParseAmount(s string) (Amount, error) {
	sign := int64(1)
	rest := s
	if strings.HasPrefix(rest, "-") {
		sign = -1
		rest = rest[1:]
	}

	whole, frac := rest, ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		whole, frac = rest[:i], rest[i+1:]
	}
	if whole == "" || len(frac) > amountPrecision {
		return 0, fmt.Errorf("malformed amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %v", s, err)
	}

	stroops := units * stroopsPerUnit
	if frac != "" {
		padded := frac + strings.Repeat("0", amountPrecision-len(frac))
		fracStroops, err := strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed amount %q: %v", s, err)
		}
		stroops += fracStroops
	}
	return Amount(sign * stroops), nil
}

// MarshalJSON implements json.Marshaler, emitting the quoted decimal form.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler, accepting the quoted decimal
// form.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
