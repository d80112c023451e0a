package booking

import "math"

// usdToINR is the fixed conversion rate applied when handing amounts to the
// payment collaborator.
const usdToINR = 83

// ToPaise converts a display-currency amount to INR minor units (paise) for
// the payment boundary.
func ToPaise(amount int) int64 {
	return int64(math.Round(float64(amount) * usdToINR * 100))
}

// ToINR converts a display-currency amount to whole rupees.
func ToINR(amount int) int {
	return int(math.Round(float64(amount) * usdToINR))
}
