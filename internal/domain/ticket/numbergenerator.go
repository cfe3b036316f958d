package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// NumberPrefix starts every ticket number, followed by five zero-padded digits.
const NumberPrefix = "RB"

// NumberGenerator allocates the next ticket number.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// FormatNumber renders seq as RB00001.
func FormatNumber(seq int) string {
	return fmt.Sprintf("%s%05d", NumberPrefix, seq)
}

// ParseNumber extracts the sequence from a ticket number.
func ParseNumber(number string) (int, error) {
	if !strings.HasPrefix(number, NumberPrefix) {
		return 0, fmt.Errorf("invalid ticket number: %s", number)
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(number, NumberPrefix))
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid ticket number: %s", number)
	}
	return seq, nil
}
