package cardstate

import "strconv"

// CardType describes one card brand: how numbers start, how they are grouped
// for display and which lengths are complete.
type CardType struct {
	Name     string
	Patterns []Pattern
	Gaps     []int
	Lengths  []int
	CodeName string
	CodeSize int
	// Luhn is false for brands whose numbers are not checksummed.
	Luhn bool
}

// Pattern is an inclusive prefix range. Min and Max have the same number of
// digits; a single prefix has Min == Max.
type Pattern struct {
	Min string
	Max string
}

func prefix(p string) Pattern           { return Pattern{Min: p, Max: p} }
func prefixRange(lo, hi string) Pattern { return Pattern{Min: lo, Max: hi} }

// MaxLength is the longest complete number for the brand.
func (c CardType) MaxLength() int {
	n := 0
	for _, l := range c.Lengths {
		n = max(n, l)
	}
	return n
}

func (c CardType) hasLength(n int) bool {
	for _, l := range c.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// fallbackType formats numbers before a brand is known.
var fallbackType = CardType{
	Gaps:     []int{4, 8, 12},
	Lengths:  []int{16},
	CodeSize: 4,
	Luhn:     true,
}

// CardTypes lists the detected brands. Names match the widget's icon keys.
var CardTypes = []CardType{
	{
		Name:     "visa",
		Patterns: []Pattern{prefix("4")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16, 18, 19},
		CodeName: "CVV",
		CodeSize: 3,
		Luhn:     true,
	},
	{
		Name: "master-card",
		Patterns: []Pattern{
			prefixRange("51", "55"),
			prefixRange("2221", "2229"),
			prefixRange("223", "229"),
			prefixRange("23", "26"),
			prefixRange("270", "271"),
			prefix("2720"),
		},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16},
		CodeName: "CVC",
		CodeSize: 3,
		Luhn:     true,
	},
	{
		Name:     "american-express",
		Patterns: []Pattern{prefix("34"), prefix("37")},
		Gaps:     []int{4, 10},
		Lengths:  []int{15},
		CodeName: "CID",
		CodeSize: 4,
		Luhn:     true,
	},
	{
		Name:     "diners-club",
		Patterns: []Pattern{prefixRange("300", "305"), prefix("36"), prefix("38"), prefix("39")},
		Gaps:     []int{4, 10},
		Lengths:  []int{14, 16, 19},
		CodeName: "CVV",
		CodeSize: 3,
		Luhn:     true,
	},
	{
		Name:     "discover",
		Patterns: []Pattern{prefix("6011"), prefixRange("644", "649"), prefix("65")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16, 19},
		CodeName: "CID",
		CodeSize: 3,
		Luhn:     true,
	},
	{
		Name:     "jcb",
		Patterns: []Pattern{prefix("2131"), prefix("1800"), prefixRange("3528", "3589")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{16, 17, 18, 19},
		CodeName: "CVV",
		CodeSize: 3,
		Luhn:     true,
	},
	{
		Name:     "unionpay",
		Patterns: []Pattern{prefixRange("620", "629"), prefix("81")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{14, 15, 16, 17, 18, 19},
		CodeName: "CVN",
		CodeSize: 3,
		Luhn:     false,
	},
	{
		Name:     "maestro",
		Patterns: []Pattern{prefix("493698"), prefixRange("500000", "504174"), prefixRange("504176", "506698"), prefixRange("506779", "508999"), prefixRange("56", "59"), prefix("63"), prefix("67"), prefix("6")},
		Gaps:     []int{4, 8, 12},
		Lengths:  []int{12, 13, 14, 15, 16, 17, 18, 19},
		CodeName: "CVC",
		CodeSize: 3,
		Luhn:     true,
	},
}

// match reports whether digits could start a number of this pattern. strength
// is the pattern length when digits already cover it, 0 for a partial match.
func (p Pattern) match(digits string) (ok bool, strength int) {
	n := len(p.Min)
	if len(digits) >= n {
		v := digits[:n]
		return v >= p.Min && v <= p.Max, n
	}
	// digits is shorter than the pattern: compare against the truncated bounds
	v, _ := strconv.Atoi(digits)
	lo, _ := strconv.Atoi(p.Min[:len(digits)])
	hi, _ := strconv.Atoi(p.Max[:len(digits)])
	return v >= lo && v <= hi, 0
}

type candidate struct {
	t        CardType
	strength int
}

// candidates returns every brand digits could still belong to.
func candidates(digits string) []candidate {
	if digits == "" {
		return nil
	}
	var out []candidate
	for _, t := range CardTypes {
		best, found := 0, false
		for _, p := range t.Patterns {
			if ok, s := p.match(digits); ok {
				found = true
				best = max(best, s)
			}
		}
		if found {
			out = append(out, candidate{t: t, strength: best})
		}
	}
	return out
}

// Detect returns the brand of a digits-only number. When several brands match,
// the one with the longest fully matched prefix wins, but only once every
// candidate's prefix is fully matched.
func Detect(digits string) (CardType, bool) {
	cs := candidates(digits)
	switch len(cs) {
	case 0:
		return CardType{}, false
	case 1:
		return cs[0].t, true
	}
	best := -1
	for i, c := range cs {
		if c.strength == 0 {
			return CardType{}, false
		}
		if best < 0 || c.strength > cs[best].strength {
			best = i
		}
	}
	return cs[best].t, true
}

// TypeByName looks a brand up by its name.
func TypeByName(name string) (CardType, bool) {
	for _, t := range CardTypes {
		if t.Name == name {
			return t, true
		}
	}
	return CardType{}, false
}
