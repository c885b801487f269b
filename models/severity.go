// File: /models/severity.go
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Severity is the pollution-intensity rank of a zone. The wire format is
// heterogeneous (some sources send the numeric rank, others the symbolic
// name), so it is normalized here, at ingestion, and never compared raw.
type Severity int

const (
	SeverityUnknown Severity = 0
	SeverityLow     Severity = 1
	SeverityMedium  Severity = 2
	SeverityHigh    Severity = 3
)

var severityNames = map[string]Severity{
	"LOW":    SeverityLow,
	"MEDIUM": SeverityMedium,
	"HIGH":   SeverityHigh,
}

// UnmarshalJSON accepts either the numeric rank (1..3) or the symbolic name
// ("LOW"/"MEDIUM"/"HIGH"). Anything else decodes to SeverityUnknown rather
// than failing the whole payload.
func (s *Severity) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = SeverityUnknown
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = severityNames[strings.ToUpper(name)]
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil || n < int(SeverityLow) || n > int(SeverityHigh) {
		*s = SeverityUnknown
		return nil
	}
	*s = Severity(n)
	return nil
}

// RewardPoints maps severity to the default event reward.
func (s Severity) RewardPoints() int {
	switch s {
	case SeverityLow:
		return 10
	case SeverityHigh:
		return 50
	default:
		// MEDIUM and unrecognized severities both pay the middle reward
		return 25
	}
}

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}
