package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"finadvisor/internal/models"
)

// flexID is an identifier sent either as a JSON number or a numeric string.
// null and "" decode to zero, which binding treats as missing.
type flexID uint

func (id *flexID) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if blank(raw) {
		*id = 0
		return nil
	}
	if f, ok := raw.(float64); ok && f != math.Trunc(f) {
		return fmt.Errorf("invalid id %s: not a whole number", b)
	}
	n, err := cast.ToUintE(raw)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = flexID(n)
	return nil
}

// blank reports whether a decoded JSON value counts as not supplied.
func blank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// parseAmount reads a JSON number or numeric string as a decimal. present
// is false when the value was omitted, null or empty.
func parseAmount(v interface{}) (amount decimal.Decimal, present bool, err error) {
	if blank(v) {
		return decimal.Zero, false, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero, true, err
	}
	amount, err = decimal.NewFromString(strings.TrimSpace(s))
	return amount, true, err
}

// queryID reads a positive integer query parameter. ok is false when the
// parameter is missing or not a positive integer.
func queryID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	id, err := cast.ToUintE(raw)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDate parses a validated YYYY-MM-DD field.
func parseDate(s string) (time.Time, error) {
	return models.ParseDate(strings.TrimSpace(s))
}
