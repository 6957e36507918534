package btctrack

import "fmt"

// CostBasisMethod selects how disposals are matched against acquisitions.
type CostBasisMethod int

const (
	// AverageCost attributes to every disposed sat the average acquisition
	// cost over the whole history.
	AverageCost CostBasisMethod = iota
	// FIFO (First-In, First-Out) consumes acquisition lots oldest first.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch s {
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}
