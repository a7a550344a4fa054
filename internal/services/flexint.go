package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// FlexInt is an integer request field that also accepts a numeric string,
// so both 2020 and "2020" decode to 2020. Values that are not integers
// (null, "abc", 1.5, objects) decode as zero instead of failing the body.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	*n = 0

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		data = []byte(s)
	}

	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*n = FlexInt(v)
		return nil
	}
	// 1e3 and 7.0 are integers written as floats.
	if f, err := strconv.ParseFloat(string(data), 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		*n = FlexInt(f)
	}
	return nil
}

// ID returns the value as a record id, or 0 when it cannot name a record.
func (n FlexInt) ID() uint {
	if n <= 0 || n > math.MaxUint32 {
		return 0
	}
	return uint(n)
}
