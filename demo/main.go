// Package main demonstrates the tsagen anomaly generators.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/sartorproj/tsagen/anomaly"
	"github.com/sartorproj/tsagen/timeseries"
)

func main() {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("tsagen demonstration - synthetic time series anomalies")
	fmt.Println(strings.Repeat("=", 72))

	template := sineTemplate(48)
	host := sineTemplate(240)
	fmt.Printf("\nTemplate: %d points in [%.2f, %.2f]\n", template.Len(), template.Min(), template.Max())

	noisy, err := anomaly.NewNoisy(0, 0.4, anomaly.WithSeed(42))
	if err != nil {
		panic(err)
	}
	point, err := anomaly.NewPoint(0.5, 0, 0.2, 6, anomaly.WithSeed(42))
	if err != nil {
		panic(err)
	}
	freq, err := anomaly.NewFrequencyShift(1.0 / 3)
	if err != nil {
		panic(err)
	}

	generators := []anomaly.Generator{
		noisy,
		anomaly.NewRangeShift(0.5),
		anomaly.NewAmplitudeShift(1.0 / 3),
		point,
		freq,
		anomaly.NewCompound(freq, anomaly.NewAmplitudeShift(1.0/3), anomaly.NewRangeShift(0.5)),
	}

	for _, gen := range generators {
		res, err := anomaly.Apply(gen, template)
		if err != nil {
			fmt.Printf("   %s failed: %v\n", gen.Kind(), err)
			continue
		}
		fmt.Printf("\n%s\n", res)
		fmt.Printf("   anomaly: %d points in [%.2f, %.2f]", res.Anomaly.Len(), res.Anomaly.Min(), res.Anomaly.Max())
		if res.Style() == anomaly.StyleMarkers {
			fmt.Printf(" (rendered as discrete markers)")
		}
		fmt.Println()

		spliced, err := res.Insert(host, host.Len()/2)
		if err != nil {
			panic(err)
		}
		fmt.Printf("   spliced into host at %d: %d -> %d points\n", host.Len()/2, host.Len(), spliced.Len())
	}

	fmt.Println("\n" + strings.Repeat("=", 72))
}

// sineTemplate builds a noiseless daily-looking sine wave of n points.
func sineTemplate(n int) *timeseries.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = 10 + 3*math.Sin(2*math.Pi*float64(i)/24)
	}
	return timeseries.New(values)
}
