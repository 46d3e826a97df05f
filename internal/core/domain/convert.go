package domain

import (
	"bytes"
	"math"
	"strconv"
)

// FlexFloat is a float64 that tolerates whatever numeric shape the upstream
// backend emits: integer JSON numbers, floating-point JSON numbers, quoted
// numbers, or null (decoded as zero). The nutrition backend is not consistent
// about int vs double, so every numeric field crossing the wire boundary goes
// through this type instead of a plain float64.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			*f = 0
			return nil
		}
		if unquoted == "" {
			*f = 0
			return nil
		}
		data = []byte(unquoted)
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// tolerate garbage rather than failing the whole payload
		*f = 0
		return nil
	}

	// ParseFloat accepts quoted "NaN" and "Inf"; a non-finite value would
	// poison every aggregate it is summed into and make the snapshot
	// unserializable, so it gets the garbage treatment too.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}

	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'g', -1, 64)), nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}
