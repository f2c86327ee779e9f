package dataset

import "fmt"

/*
Distribution holds the number of failing and passing samples of a set.
*/
type Distribution struct {
	Fail int `json:"fail"`
	Pass int `json:"pass"`
}

// Total returns the number of samples in the distribution
func (d Distribution) Total() int {
	return d.Fail + d.Pass
}

/*
PassRate returns the percentage of passing samples, or 0 when the
distribution is empty.
*/
func (d Distribution) PassRate() float64 {
	total := d.Total()
	if total == 0 {
		return 0.0
	}
	return float64(d.Pass) / float64(total) * 100.0
}

/*
Passed returns the majority outcome of the distribution. Passing samples must
strictly outnumber failing ones; ties resolve to not passed.
*/
func (d Distribution) Passed() bool {
	return d.Pass > d.Fail
}

// Add returns the sum of both distributions
func (d Distribution) Add(o Distribution) Distribution {
	return Distribution{d.Fail + o.Fail, d.Pass + o.Pass}
}

// Count adds a sample with the given outcome to the distribution
func (d *Distribution) Count(passed bool) {
	if passed {
		d.Pass++
	} else {
		d.Fail++
	}
}

func (d Distribution) String() string {
	return fmt.Sprintf("(%d, %d)", d.Fail, d.Pass)
}
