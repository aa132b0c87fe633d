/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/rotblauer/routecat/geo"
	"github.com/rotblauer/routecat/routefile"
	"github.com/rotblauer/routecat/types/route"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <route-file>",
	Short: "Report route distance and segment statistics",
	Long: `Reads a route file and prints the point count, total distance,
and the distribution of segment lengths. Useful for eyeballing how noisy
a trace is before smoothing it: spiky traces show a fat tail in the
segment length distribution.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		line, err := routefile.Read(args[0])
		if err != nil {
			log.Fatalln(err)
		}
		rt, err := route.New(line)
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("points:   %s\n", humanize.Comma(int64(rt.Len())))
		fmt.Printf("distance: %sm (%skm)\n",
			humanize.CommafWithDigits(rt.TotalDistance(), 0),
			humanize.CommafWithDigits(rt.TotalDistanceKilometers(), 3))

		working := rt.LineString()
		if len(working) < 2 {
			return
		}
		segments := make([]float64, 0, len(working)-1)
		for i := 1; i < len(working); i++ {
			segments = append(segments, geo.Distance(working[i-1], working[i]))
		}
		min, _ := stats.Min(segments)
		mean, _ := stats.Mean(segments)
		median, _ := stats.Median(segments)
		p95, _ := stats.Percentile(segments, 95)
		max, _ := stats.Max(segments)
		fmt.Printf("segments: n=%d min=%.1fm mean=%.1fm median=%.1fm p95=%.1fm max=%.1fm\n",
			len(segments), min, mean, median, p95, max)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
