package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const unitSep = "_unit_"

// UnitKey addresses one document in the documents partition. A course/unit
// pair encodes as "{courseID}_unit_{unit}"; records written before units
// existed are keyed by the bare course id (Legacy).
type UnitKey struct {
	CourseID string
	Unit     int
	Legacy   bool
}

// DocKey builds the key for a (course, unit) pair.
func DocKey(courseID string, unit int) UnitKey {
	return UnitKey{CourseID: courseID, Unit: unit}
}

// LegacyDocKey builds the key for a pre-unit record, addressed by course only.
func LegacyDocKey(courseID string) UnitKey {
	return UnitKey{CourseID: courseID, Legacy: true}
}

func (k UnitKey) String() string {
	if k.Legacy {
		return k.CourseID
	}
	return k.CourseID + unitSep + strconv.Itoa(k.Unit)
}

// ParseUnitKey is the single inverse of String. Any key without a well-formed
// "_unit_N" suffix is a legacy key.
func ParseUnitKey(s string) (UnitKey, error) {
	if s == "" {
		return UnitKey{}, fmt.Errorf("empty document key")
	}
	idx := strings.LastIndex(s, unitSep)
	if idx <= 0 {
		return LegacyDocKey(s), nil
	}
	unit, err := strconv.Atoi(s[idx+len(unitSep):])
	if err != nil {
		return LegacyDocKey(s), nil
	}
	return UnitKey{CourseID: s[:idx], Unit: unit}, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
