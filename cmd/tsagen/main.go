package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sartorproj/tsagen/anomaly"
	"github.com/sartorproj/tsagen/config"
	"github.com/sartorproj/tsagen/timeseries"
)

var (
	buildVersion = "unknown"
	buildDate    = "unknown"
	envPrefix    = "TSAGEN"

	pipelineFile string
	logLevel     string
	inputFile    string
	valueColumn  string
	outputFile   string
	insertAt     int
	seed         int64
	preview      bool
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "tsagen",
	Short: "Generate synthetic anomalies for time series data",
	Long: `tsagen applies a pipeline of anomaly transformations (noise, range shift,
amplitude shift, point outliers, frequency shift) to a template series loaded
from CSV, and optionally splices the result into the host series.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
	SilenceUsage: true,
}

// initConfig applies TSAGEN_* environment variables to unset flags.
func initConfig() {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	bindFlags(rootCmd, v)
	initLogger()
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.Flags().StringVar(&pipelineFile, "pipeline", "", "pipeline definition file (YAML or JSON)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	rootCmd.Flags().StringVar(&inputFile, "input", "", "CSV file holding the template series")
	rootCmd.Flags().StringVar(&valueColumn, "column", "y", "value column in the input CSV")
	rootCmd.Flags().StringVar(&outputFile, "output", "", "CSV file to write the result to (default: stdout summary only)")
	rootCmd.Flags().IntVar(&insertAt, "insert-at", -1, "splice the anomaly into the host at this index (-1 appends; overrides the pipeline file)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic noise (overrides the pipeline file)")
	rootCmd.Flags().BoolVar(&preview, "preview", false, "render a terminal chart of the template and anomaly")
	_ = rootCmd.MarkFlagRequired("pipeline")
	_ = rootCmd.MarkFlagRequired("input")
}

func main() {
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	log.Debugf("starting tsagen, build version %s, build date %s", buildVersion, buildDate)

	pipe, err := config.Load(pipelineFile)
	if err != nil {
		return err
	}

	var opts []anomaly.Option
	if cmd.Flags().Changed("seed") {
		opts = append(opts, anomaly.WithSeed(seed))
	}
	gen, err := pipe.Build(opts...)
	if err != nil {
		return err
	}

	template, err := timeseries.LoadCSVColumn(inputFile, valueColumn)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"input": inputFile, "points": template.Len()}).Info("template loaded")

	res, err := anomaly.Apply(gen, template)
	if err != nil {
		return err
	}
	log.Infof("generated %s: %d -> %d points", res, template.Len(), res.Anomaly.Len())

	out, err := splice(cmd, pipe, res, template)
	if err != nil {
		return err
	}

	if preview {
		renderPreview(res, out)
	}

	if outputFile != "" {
		if err := timeseries.SaveCSV(out, outputFile, true); err != nil {
			return err
		}
		log.WithFields(log.Fields{"output": outputFile, "points": out.Len()}).Info("result written")
	}
	return nil
}

// splice decides what the output series is: the bare anomaly, or the anomaly
// spliced into the host (the input series). The --insert-at flag wins over
// the pipeline file's insert spec.
func splice(cmd *cobra.Command, pipe *config.Pipeline, res *anomaly.Result, host *timeseries.Series) (*timeseries.Series, error) {
	if cmd.Flags().Changed("insert-at") {
		if insertAt < 0 {
			return res.Append(host), nil
		}
		return res.Insert(host, insertAt)
	}
	if pipe.Insert != nil {
		if pipe.Insert.Index == nil {
			return res.Append(host), nil
		}
		return res.Insert(host, *pipe.Insert.Index)
	}
	return res.Anomaly, nil
}

func renderPreview(res *anomaly.Result, out *timeseries.Series) {
	caption := res.String()
	if res.Style() == anomaly.StyleMarkers {
		caption += " (discrete markers)"
	}
	fmt.Println(asciigraph.Plot(out.Values,
		asciigraph.Height(12),
		asciigraph.Caption(caption)))
}
