// Command usas-cli converts USAS-annotated corpora into the uniform JSON
// evaluation dataset format and inspects tag taxonomies.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	usas "github.com/lexisemantics/go-usas"
	"github.com/lexisemantics/go-usas/taxonomy"
)

var (
	flagDebug    bool
	flagFormat   string
	flagTaxonomy string
	flagFilter   []string
	flagWorkers  int
	flagOutput   string
)

func main() {
	root := &cobra.Command{
		Use:           "usas-cli",
		Short:         "Normalize USAS-tagged corpora for WSD evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	convert := &cobra.Command{
		Use:   "convert [corpus file]",
		Short: "Parse a corpus file and emit the JSON evaluation dataset",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convert.Flags().StringVar(&flagFormat, "format", "",
		"Corpus format: benedict-english, benedict-finnish, torch, corcencc (required)")
	convert.Flags().StringVar(&flagTaxonomy, "taxonomy", "",
		"Taxonomy YAML file; enables tag validation against its codes")
	convert.Flags().StringSliceVar(&flagFilter, "filter", nil,
		"Tag strings to suppress (full multi-tag string must match)")
	convert.Flags().IntVar(&flagWorkers, "workers", 1, "Concurrent line validation workers")
	convert.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
	_ = convert.MarkFlagRequired("format")

	taxCmd := &cobra.Command{
		Use:   "taxonomy [taxonomy file]",
		Short: "Flatten a taxonomy YAML file and print its tag codes",
		Args:  cobra.ExactArgs(1),
		RunE:  runTaxonomy,
	}

	root.AddCommand(convert, taxCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if flagDebug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := []usas.Option{
		usas.WithLogger(logger),
		usas.WithWorkers(flagWorkers),
	}
	if flagTaxonomy != "" {
		descriptions, err := taxonomy.LoadFile(flagTaxonomy)
		if err != nil {
			return err
		}
		logger.Info("loaded taxonomy",
			zap.String("path", flagTaxonomy),
			zap.Int("tags", len(descriptions)))
		opts = append(opts, usas.WithTagValidation(descriptions.Codes()))
	}
	if flagFilter != nil {
		opts = append(opts, usas.WithTagFilter(flagFilter))
	}

	var dataset *usas.Dataset
	switch flagFormat {
	case "benedict-english":
		dataset, err = usas.NewBenedictEnglish(opts...).ParseFile(args[0])
	case "benedict-finnish":
		dataset, err = usas.NewBenedictFinnish(opts...).ParseFile(args[0])
	case "torch":
		dataset, err = usas.NewTorch(opts...).ParseFile(args[0])
	case "corcencc":
		dataset, err = usas.NewCorCenCC(opts...).ParseFile(args[0])
	default:
		return fmt.Errorf("unknown format: %s", flagFormat)
	}
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(dataset)
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	descriptions, err := taxonomy.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, code := range descriptions.Codes() {
		fmt.Printf("%s\t%s\n", code, descriptions[code])
	}
	return nil
}
