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
	"log"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/routecat/params"
	"github.com/rotblauer/routecat/routefile"
	"github.com/rotblauer/routecat/types/route"
	"github.com/spf13/cobra"
)

var optCutoffDistance float64
var optCutoffAngle float64
var optGranularLevel float64
var optOutput string

// smoothCmd represents the smooth command
var smoothCmd = &cobra.Command{
	Use:   "smooth <route-file>",
	Short: "Smoothen a GPS route file",
	Long: `Reads a route file (KML or GeoJSON), removes distance and angle
spikes, simplifies the remainder, and writes the result back.

Without --output the input file is overwritten, matching the sensor
post-processing workflow: the raw trace comes in, the clean trace goes out.

Flags:

  --cutoff-distance  Maximum distance in meters between two accepted
                     coordinates; a candidate farther from the last
                     accepted point is dropped as a spike. (Default 500.)
  --cutoff-angle     Minimum turn angle in degrees at an interior
                     coordinate; sharper turns are dropped as spikes.
                     (Default 45.)
  --granular-level   Simplification aggressiveness; one level is worth
                     about 3.34 meters of allowed deviation. (Default 5.)
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)
		path := args[0]

		line, err := routefile.Read(path)
		if err != nil {
			log.Fatalln(err)
		}
		rt, err := route.New(line)
		if err != nil {
			log.Fatalln(err)
		}

		pointsBefore := rt.Len()
		kmBefore := rt.TotalDistanceKilometers()

		err = rt.Smoothen(&params.SmoothingConfig{
			CutoffDistance: optCutoffDistance,
			CutoffAngle:    optCutoffAngle,
			GranularLevel:  optGranularLevel,
		})
		if err != nil {
			log.Fatalln(err)
		}

		out := optOutput
		if out == "" {
			out = path
		}
		if err := routefile.Write(out, rt.LineString()); err != nil {
			log.Fatalln(err)
		}

		slog.Info("Smoothened route",
			"points", humanize.Comma(int64(pointsBefore))+" -> "+humanize.Comma(int64(rt.Len())),
			"km", humanize.CommafWithDigits(kmBefore, 3)+" -> "+humanize.CommafWithDigits(rt.TotalDistanceKilometers(), 3),
			"wrote", out)
	},
}

func init() {
	rootCmd.AddCommand(smoothCmd)

	defaults := params.DefaultSmoothingConfig
	smoothCmd.Flags().Float64Var(&optCutoffDistance, "cutoff-distance", defaults.CutoffDistance, "maximum meters between accepted coordinates")
	smoothCmd.Flags().Float64Var(&optCutoffAngle, "cutoff-angle", defaults.CutoffAngle, "minimum turn angle in degrees")
	smoothCmd.Flags().Float64Var(&optGranularLevel, "granular-level", defaults.GranularLevel, "simplification granularity")
	smoothCmd.Flags().StringVarP(&optOutput, "output", "o", "", "output file (default: overwrite input)")
}
