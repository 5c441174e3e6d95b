package main

import (
	"fmt"
	"strings"

	"github.com/atcidulko/HW4-IB/internal/blast"
	"github.com/atcidulko/HW4-IB/internal/fasta"
	"github.com/atcidulko/HW4-IB/internal/nucleic"
	"github.com/atcidulko/HW4-IB/internal/status"

	"github.com/spf13/cobra"
)

func newFastaCommand(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "fasta-oneline",
		Short: "Rewrite a multi-line FASTA file with one sequence line per record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" && len(args) > 0 {
				in = args[0]
			}
			if in == "" {
				return fmt.Errorf("input FASTA is required")
			}
			if out == "" {
				out = fasta.OneLinePath(in)
			}
			n, err := fasta.ConvertFile(in, out)
			if err != nil {
				return err
			}
			a.logger.Info("wrote one-line fasta", "input", in, "output", out, "records", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input FASTA file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output FASTA file (default oneline_<input>)")
	return cmd
}

func newBlastCommand(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "blast",
		Short: "List the unique best-hit descriptions of a text BLAST report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("input BLAST report is required")
			}
			n, err := blast.ConvertFile(in, out)
			if err != nil {
				return err
			}
			a.logger.Info("wrote blast hits", "input", in, "output", out, "hits", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "BLAST text output")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file ('-' for stdout)")
	return cmd
}

func newSeqCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seq <procedure> SEQ...",
		Short: "Apply a DNA/RNA procedure to one or more sequences",
		Long: "Procedures: " + strings.Join(nucleic.Procedures(), ", ") + `.
Invalid sequences print "invalid" instead of a result.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := nucleic.Run(args[0], args[1:]...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				switch {
				case args[0] == "is_nucleic_acid":
					fmt.Fprintf(out, "%s\t%t\n", r.Input, r.Valid)
				case r.Valid:
					fmt.Fprintf(out, "%s\t%s\n", r.Input, r.Sequence)
				default:
					fmt.Fprintf(out, "%s\tinvalid\n", r.Input)
				}
			}
			a.logger.Debug("seq procedure done", "procedure", args[0], "sequences", len(results))
			return nil
		},
	}
	return cmd
}

func newStatusCommand(a *app) *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Count the status tag at the end of each FASTQ header",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("input FASTQ is required")
			}
			counts, err := status.CountFile(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "status\tcount")
			for _, c := range counts.List() {
				fmt.Fprintf(out, "%s\t%d\n", c.Status, c.N)
			}
			a.logger.Info("counted statuses", "input", in, "statuses", len(counts.List()), "reads", counts.Total())
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "input FASTQ file")
	return cmd
}
