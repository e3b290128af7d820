package taxfolio

import "fmt"

// NA is rendered in place of values that cannot be computed.
const NA = "N/A"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// PercentString renders an optional percentage, N/A when absent.
func PercentString(p *Percent) string {
	if p == nil {
		return NA
	}
	return p.SignedString()
}
