package review

import "math"

// Summarize computes the rating summary of productID over the full review
// collection. The mean is rounded half-up to one decimal; no reviews yields
// {0, 0}.
func Summarize(all []Review, productID int) Summary {
	var sum, n int
	for _, r := range all {
		if r.ProductID != productID {
			continue
		}
		sum += r.Rating
		n++
	}
	return Summary{Average: RoundedMean(sum, n), Count: n}
}

// RoundedMean is sum/n rounded half-up to one decimal, or 0 when n is 0.
func RoundedMean(sum, n int) float64 {
	if n == 0 {
		return 0
	}
	mean := float64(sum) / float64(n)
	return math.Floor(mean*10+0.5) / 10
}

// ForProduct filters all down to productID, keeping stored order.
func ForProduct(all []Review, productID int) []Review {
	out := make([]Review, 0)
	for _, r := range all {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}
