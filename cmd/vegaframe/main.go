package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vegaframe/vegaframe/pkg/config"
	"github.com/vegaframe/vegaframe/pkg/frame"
	"github.com/vegaframe/vegaframe/pkg/logger"
	"github.com/vegaframe/vegaframe/pkg/plot"
	"github.com/vegaframe/vegaframe/pkg/vegalite"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "vegaframe",
		Short: "vegaframe - tabular data to Vega-Lite chart specifications",
		Long: `vegaframe turns tabular data into declarative Vega-Lite chart
specifications: read a CSV, pick a chart kind, get a spec a Vega-Lite
renderer can draw. No rendering happens here.`,
	}

	root.AddCommand(versionCmd(), kindsCmd(), plotCmd(), histCmd(), scatterMatrixCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vegaframe v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported chart kinds",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Supported chart kinds:")
			for _, k := range plot.Kinds() {
				fmt.Printf("  - %s\n", k)
			}
			fmt.Println("\nAdditional entry points: hist (grid histogram), scatter-matrix")
		},
	}
}

// commonFlags are the flags shared by the chart-building commands.
type commonFlags struct {
	input      string
	output     string
	configFile string
	logLevel   string
	compress   bool
	compact    bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input CSV file (default stdin)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output spec file (default stdout)")
	cmd.Flags().StringVar(&f.configFile, "config", "", "YAML defaults file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.compress, "gzip", false, "gzip the output")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "emit compact JSON")
}

// setup loads defaults and initializes logging.
func (f *commonFlags) setup() (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		if err := config.Load(f.configFile, cfg); err != nil {
			return nil, err
		}
	}
	level := cfg.LogLevel
	if f.logLevel != "" {
		level = f.logLevel
	}
	if err := logger.Init(logger.Config{Level: level, Encoding: "json"}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readTable loads the input CSV into a table.
func (f *commonFlags) readTable() (*frame.Table, error) {
	var r io.Reader = os.Stdin
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return frame.ReadCSV(file)
	}
	return frame.ReadCSV(r)
}

// writeSpec serializes the spec, optionally gzipped.
func (f *commonFlags) writeSpec(spec *vegalite.Spec) error {
	var data []byte
	var err error
	if f.compact {
		data, err = vegalite.Marshal(spec)
	} else {
		data, err = vegalite.MarshalIndent(spec)
	}
	if err != nil {
		return err
	}
	data = append(data, '\n')

	var w io.Writer = os.Stdout
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if f.compress || strings.HasSuffix(f.output, ".gz") {
		gw := gzip.NewWriter(w)
		if _, err := gw.Write(data); err != nil {
			return err
		}
		return gw.Close()
	}

	_, err = w.Write(data)
	return err
}

func plotCmd() *cobra.Command {
	var flags commonFlags
	var (
		kindName    string
		x, y, c, s  string
		color       string
		orientation string
		stacked     string
		alpha       float64
		bins        int
		vert        bool
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Build a chart of the given kind from CSV data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.setup()
			if err != nil {
				return err
			}

			if kindName == "" {
				kindName = cfg.Plot.Kind
			}
			kind, err := plot.ParseKind(kindName)
			if err != nil {
				return err
			}

			opts := plot.Options{
				X:           x,
				Y:           y,
				C:           c,
				S:           s,
				Color:       firstNonEmpty(color, cfg.Plot.Color),
				Orientation: firstNonEmpty(orientation, cfg.Plot.Orientation),
				Alpha:       cfg.Plot.Alpha,
				Bins:        cfg.Plot.Bins,
			}
			if cmd.Flags().Changed("alpha") {
				opts.Alpha = plot.Float(alpha)
			}
			if cmd.Flags().Changed("bins") {
				opts.Bins = plot.Int(bins)
			}
			if stacked != "" {
				opts.Stacked = plot.Bool(stacked == "true")
			}
			if cmd.Flags().Changed("vert") {
				opts.Vert = plot.Bool(vert)
			}

			tbl, err := flags.readTable()
			if err != nil {
				return err
			}

			spec, err := plot.Plot(tbl, kind, opts)
			if err != nil {
				return err
			}
			logger.WithContext(taggedContext(cmd.Context(), string(kind), "plot")).
				Info("chart built", zap.Int("rows", tbl.NumRows()))
			return flags.writeSpec(spec)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "chart kind (line, bar, barh, area, scatter, hist, box)")
	cmd.Flags().StringVar(&x, "x", "", "x field")
	cmd.Flags().StringVar(&y, "y", "", "y field")
	cmd.Flags().StringVar(&c, "c", "", "color field (scatter)")
	cmd.Flags().StringVar(&s, "s", "", "size field (scatter)")
	cmd.Flags().StringVar(&color, "color", "", "mark color or color field")
	cmd.Flags().Float64Var(&alpha, "alpha", 1.0, "mark opacity in [0,1]")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bin count")
	cmd.Flags().StringVar(&orientation, "orientation", "", "histogram orientation (vertical, horizontal)")
	cmd.Flags().StringVar(&stacked, "stacked", "", "stacking mode (true, false)")
	cmd.Flags().BoolVar(&vert, "vert", true, "vertical box plot")
	return cmd
}

func histCmd() *cobra.Command {
	var flags commonFlags
	var (
		bins       int
		rows, cols int
	)

	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Build a grid of histograms, one panel per numeric column",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.setup()
			if err != nil {
				return err
			}

			opts := plot.Options{
				Bins:   cfg.Plot.Bins,
				Layout: &plot.Layout{Rows: rows, Cols: cols},
			}
			if cmd.Flags().Changed("bins") {
				opts.Bins = plot.Int(bins)
			}

			tbl, err := flags.readTable()
			if err != nil {
				return err
			}

			spec, err := plot.HistFrame(tbl, opts)
			if err != nil {
				return err
			}
			logger.WithContext(taggedContext(cmd.Context(), string(plot.KindHist), "hist_frame")).
				Info("chart built", zap.Int("rows", tbl.NumRows()))
			return flags.writeSpec(spec)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bin count")
	cmd.Flags().IntVar(&rows, "rows", -1, "grid rows (-1 to infer)")
	cmd.Flags().IntVar(&cols, "cols", 2, "grid columns (-1 to infer)")
	return cmd
}

func scatterMatrixCmd() *cobra.Command {
	var flags commonFlags
	var (
		color    string
		colormap string
		alpha    float64
		tooltip  []string
	)

	cmd := &cobra.Command{
		Use:   "scatter-matrix",
		Short: "Build a pairwise scatter matrix over the numeric columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.setup()
			if err != nil {
				return err
			}

			opts := plot.Options{
				Color:    firstNonEmpty(color, cfg.Plot.Color),
				Colormap: firstNonEmpty(colormap, cfg.Plot.Colormap),
				Tooltip:  tooltip,
				Alpha:    cfg.Plot.Alpha,
			}
			if cmd.Flags().Changed("alpha") {
				opts.Alpha = plot.Float(alpha)
			}

			tbl, err := flags.readTable()
			if err != nil {
				return err
			}

			spec, err := plot.ScatterMatrix(tbl, opts)
			if err != nil {
				return err
			}
			logger.WithContext(taggedContext(cmd.Context(), string(plot.KindScatter), "scatter_matrix")).
				Info("chart built", zap.Int("rows", tbl.NumRows()))
			return flags.writeSpec(spec)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&color, "color", "", "color field or literal color")
	cmd.Flags().StringVar(&colormap, "colormap", "", "color scheme for a color field")
	cmd.Flags().Float64Var(&alpha, "alpha", 1.0, "mark opacity in [0,1]")
	cmd.Flags().StringSliceVar(&tooltip, "tooltip", nil, "tooltip fields (default all columns)")
	return cmd
}

// taggedContext carries the kind and entry point for context-aware logging.
func taggedContext(ctx context.Context, kind, backend string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, logger.KindKey, kind)
	return context.WithValue(ctx, logger.BackendKey, backend)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
