package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/landesfeind/procrec/src/samples"
)

func NewSummaryCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print peak and mean usage of recorded samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := samples.Load(v.GetString("input"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summaryTable(samples.Summarize(data)))
			return nil
		},
	}
}

func summaryTable(s samples.Summary) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Metric", "Value").
		Rows(
			[]string{"Samples", strconv.Itoa(s.Count)},
			[]string{"Duration", fmt.Sprintf("%.1fs", s.Duration)},
			[]string{"Max CPU", fmt.Sprintf("%.1f%%", s.MaxCPU)},
			[]string{"Mean CPU", fmt.Sprintf("%.1f%%", s.MeanCPU)},
			[]string{"Max RSS", humanize.IBytes(s.MaxRSS)},
			[]string{"Mean RSS", humanize.IBytes(uint64(s.MeanRSS))},
		).
		String()
}
