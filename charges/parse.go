package charges

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRule reads "20" as a flat rule and "0.025%" as a percentage.
func ParseRule(s string) (Rule, error) {
	v := strings.TrimSpace(s)
	pct := strings.HasSuffix(v, "%")
	v = strings.TrimSpace(strings.TrimSuffix(v, "%"))

	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Rule{}, fmt.Errorf("charge %q: %w", s, err)
	}
	if amount < 0 {
		return Rule{}, fmt.Errorf("charge %q: %w", s, ErrNegativeAmount)
	}
	if pct {
		return Percent(amount), nil
	}
	return Flat(amount), nil
}

// ParseOverride reads a "category=rule" pair such as "stt=0.025%" or
// "buy_brokerage=20".
func ParseOverride(s string) (Category, Rule, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, Rule{}, fmt.Errorf("charge override %q: want category=amount", s)
	}
	c, err := ParseCategory(name)
	if err != nil {
		return 0, Rule{}, err
	}
	r, err := ParseRule(value)
	if err != nil {
		return 0, Rule{}, err
	}
	return c, r, nil
}

// Override applies each "category=rule" pair to s in order.
func (s Schedule) Override(pairs ...string) (Schedule, error) {
	for _, p := range pairs {
		c, r, err := ParseOverride(p)
		if err != nil {
			return s, err
		}
		if s, err = s.With(c, r); err != nil {
			return s, err
		}
	}
	return s, nil
}
