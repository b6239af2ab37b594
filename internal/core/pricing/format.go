package pricing

import "strconv"

// FormatCurrency renders a whole-naira amount as the currency code followed
// by the digit-grouped value, e.g. 170000 -> "NGN 170,000". The form is
// stable so exports and tests can rely on it.
func FormatCurrency(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return "NGN " + sign + string(out)
}
