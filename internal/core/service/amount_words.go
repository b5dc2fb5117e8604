package service

import "strings"

var (
	onesWords = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	tensWords = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	teenWords = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
)

// AmountInWords renders a non-negative rupee amount in English words using
// the Indian grouping: crore (10^7), lakh (10^5), thousand, then
// hundreds/tens/ones. Fractional paise must be truncated by the caller.
//
//	AmountInWords(0)       == "Zero Rupees Only"
//	AmountInWords(100000)  == "One Lakh Rupees Only"
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero Rupees Only"
	}

	crore := n / 10_000_000
	n %= 10_000_000
	lakh := n / 100_000
	n %= 100_000
	thousand := n / 1000
	n %= 1000

	var parts []string
	if crore > 0 {
		parts = append(parts, belowThousand(crore)+" Crore")
	}
	if lakh > 0 {
		parts = append(parts, belowThousand(lakh)+" Lakh")
	}
	if thousand > 0 {
		parts = append(parts, belowThousand(thousand)+" Thousand")
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}

	return strings.Join(parts, " ") + " Rupees Only"
}

func belowThousand(num int64) string {
	switch {
	case num == 0:
		return ""
	case num < 10:
		return onesWords[num]
	case num < 20:
		return teenWords[num-10]
	case num < 100:
		s := tensWords[num/10]
		if num%10 != 0 {
			s += " " + onesWords[num%10]
		}
		return s
	default:
		s := onesWords[num/100] + " Hundred"
		if num%100 != 0 {
			s += " " + belowThousand(num%100)
		}
		return s
	}
}
