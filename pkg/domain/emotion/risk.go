package emotion

import "fmt"

// RiskLevel is the model's (or the crisis detector's) assessment of
// self-harm risk. Ordering: Low < High < Critical.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func ParseRiskLevel(value string) (RiskLevel, bool) {
	switch RiskLevel(value) {
	case RiskLow, RiskHigh, RiskCritical:
		return RiskLevel(value), true
	default:
		return "", false
	}
}

func RiskLevelNames() []string {
	return []string{string(RiskLow), string(RiskHigh), string(RiskCritical)}
}

func (r RiskLevel) Valid() bool {
	_, ok := ParseRiskLevel(string(r))
	return ok
}

func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 1
	case RiskCritical:
		return 2
	default:
		return 0
	}
}

// Escalated reports whether the level warrants the emergency interface.
func (r RiskLevel) Escalated() bool {
	return r == RiskHigh || r == RiskCritical
}

// Max returns the more severe of the two levels.
func (r RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.Rank() > r.Rank() {
		return other
	}
	return r
}

func (r RiskLevel) String() string {
	return string(r)
}

func (r RiskLevel) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

func (r *RiskLevel) UnmarshalText(text []byte) error {
	parsed, ok := ParseRiskLevel(string(text))
	if !ok {
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalidValue, string(text))
	}
	*r = parsed
	return nil
}
