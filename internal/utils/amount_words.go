package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// AmountInWords spells a whole rupee amount using the Indian numbering
// system (Crore, Lakh, Thousand, Hundred). Negative amounts are spelled by
// magnitude.
func AmountInWords(n int64) string {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if crore := n / 10000000; crore > 0 {
		// Crores can exceed 99, so spell the count itself in full.
		parts = append(parts, AmountInWords(crore), "Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, belowHundred(lakh), "Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(thousand), "Thousand")
		n %= 1000
	}
	if hundreds := n / 100; hundreds > 0 {
		parts = append(parts, onesWords[hundreds], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}

// RupeesInWords renders the receipt line for an amount, rounded to the
// nearest rupee.
func RupeesInWords(amount decimal.Decimal) string {
	return AmountInWords(amount.Round(0).IntPart()) + " Rupees Only"
}

// FormatIndianAmount formats an amount with two decimals and Indian digit
// grouping, e.g. 150000 -> "1,50,000.00".
func FormatIndianAmount(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	if len(intPart) <= 3 {
		b.WriteString(intPart)
		b.WriteString(frac)
		return b.String()
	}

	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	// Leading groups are two digits wide.
	groups := []string{tail}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	b.WriteString(strings.Join(groups, ","))
	b.WriteString(frac)
	return b.String()
}
