package readmodel

import (
	"math"
	"strconv"
	"strings"

	"github.com/NiraJ01010101/chaiBackend/internal/apperr"
)

// Page is a 1-based window.
type Page struct {
	Number int64
	Limit  int64
}

func NewPage(number, limit int64) (Page, error) {
	if number < 1 || limit < 1 {
		return Page{}, apperr.InvalidArgument("page and limit must be greater than zero")
	}
	// (number-1)*limit must fit in an int64 $skip.
	if number-1 > math.MaxInt64/limit {
		return Page{}, apperr.InvalidArgument("page is out of range")
	}
	return Page{Number: number, Limit: limit}, nil
}

func (p Page) Skip() int64 { return (p.Number - 1) * p.Limit }

// ParsePage reads raw query values. Empty values take the defaults, a limit
// above max is clamped, anything non-numeric or below 1 is rejected.
func ParsePage(rawPage, rawLimit string, defaultLimit, maxLimit int64) (Page, error) {
	number, err := parsePositive(rawPage, 1, "page")
	if err != nil {
		return Page{}, err
	}
	limit, err := parsePositive(rawLimit, defaultLimit, "limit")
	if err != nil {
		return Page{}, err
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return NewPage(number, limit)
}

func parsePositive(raw string, def int64, name string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.InvalidArgument(name + " must be a number")
	}
	if n < 1 {
		return 0, apperr.InvalidArgument("page and limit must be greater than zero")
	}
	return n, nil
}
