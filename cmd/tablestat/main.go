package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tabstat/domain/table"
	"tabstat/internal/testkit"
	"tabstat/preprocess"
	"tabstat/stats"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tablestat",
		Short: "Descriptive statistics and preprocessing over a synthetic table",
	}

	rootCmd.AddCommand(
		newProfileCmd(),
		newPreprocessCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generatorFlags(cmd *cobra.Command, config *testkit.GeneratorConfig) {
	cmd.Flags().IntVar(&config.Rows, "rows", config.Rows, "rows to generate")
	cmd.Flags().Int64Var(&config.Seed, "seed", config.Seed, "generator seed")
	cmd.Flags().Float64Var(&config.MissingRate, "missing-rate", config.MissingRate, "fraction of null cells in the score column")
}

func newProfileCmd() *cobra.Command {
	config := testkit.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile every column of a generated table",
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := table.New(testkit.NewGenerator(config).Columns())
			if err != nil {
				return err
			}
			eng := stats.New(tbl)

			for _, name := range tbl.Names() {
				p, err := eng.ProfileColumn(name)
				if err != nil {
					return err
				}
				if p.Numeric {
					stdev, err := eng.Stdev(name)
					if err != nil {
						return err
					}
					fmt.Printf("%-8s rows=%d missing=%.0f%% distinct=%d mean=%.3f stdev=%.3f\n",
						name, p.SampleSize, 100*p.MissingRate, p.Cardinality, p.Mean, stdev)
					continue
				}
				fmt.Printf("%-8s rows=%d missing=%.0f%% distinct=%d\n",
					name, p.SampleSize, 100*p.MissingRate, p.Cardinality)
			}

			freq, err := eng.CumulativeFrequency("segment", stats.FrequencyRelative)
			if err != nil {
				return err
			}
			fmt.Println("segment cumulative relative frequency:")
			for _, entry := range freq {
				fmt.Printf("  %-8s %.3f\n", entry.Value, entry.Count)
			}
			return nil
		},
	}

	generatorFlags(cmd, &config)
	return cmd
}

func newPreprocessCmd() *cobra.Command {
	config := testkit.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Fill, scale, and encode a generated table",
		RunE: func(cmd *cobra.Command, args []string) error {
			prep, err := preprocess.New(testkit.NewGenerator(config).Columns())
			if err != nil {
				return err
			}

			if err := prep.FillNA([]string{"score"}, preprocess.FillMedian, table.Number(0)); err != nil {
				return err
			}
			if err := prep.Scale([]string{"amount", "score"}, preprocess.ScaleStandard); err != nil {
				return err
			}
			if err := prep.Encode([]string{"segment"}, preprocess.EncodeOneHot); err != nil {
				return err
			}

			tbl := prep.Table()
			fmt.Printf("columns after preprocessing: %v\n", tbl.Names())
			for _, name := range []string{"amount", "score"} {
				mean, err := prep.Stats().Mean(name)
				if err != nil {
					return err
				}
				stdev, err := prep.Stats().Stdev(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-8s mean=%+.4f stdev=%.4f\n", name, mean, stdev)
			}
			return nil
		},
	}

	generatorFlags(cmd, &config)
	return cmd
}
