package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-bass/dsp/effects"
)

func ExampleDelay_ProcessStereo() {
	delay, err := effects.NewDelay(1000)
	if err != nil {
		fmt.Println("error")
		return
	}
	delay.SetTime(0.002)
	delay.SetFeedback(0.5)
	delay.SetMix(1)

	for i := range 7 {
		var x float64
		if i == 0 {
			x = 1
		}
		l, r := delay.ProcessStereo(x, 0)
		fmt.Printf("%.2f %.2f\n", l, r)
	}
	// Output:
	// 1.00 0.00
	// 0.00 0.00
	// 1.00 1.00
	// 0.00 0.00
	// 0.50 0.50
	// 0.00 0.00
	// 0.25 0.25
}
