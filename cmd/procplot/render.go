package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/landesfeind/procrec/src/logging"
	"github.com/landesfeind/procrec/src/plot"
	"github.com/landesfeind/procrec/src/samples"
	"github.com/landesfeind/procrec/src/telemetry"
	"github.com/landesfeind/procrec/src/types"
)

func NewRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] [-- command...]",
		Short: "Render samples into a dual-axis CPU/RSS chart",
		Long: `
Render reads recorded samples and writes a chart with CPU usage on the left
axis and resident memory on the right axis. A .svg output path produces SVG,
anything else PNG.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, v, args)
		},
	}
	cmd.Flags().StringP("output", "o", "procrec.png", "Chart output path")
	cmd.Flags().Int("pid", 0, "PID of the monitored process; used as title whenever given")
	cmd.Flags().String("metrics-textfile", "", "Write render metrics in Prometheus text format to this path")
	_ = v.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = v.BindPFlag("pid", cmd.Flags().Lookup("pid"))
	_ = v.BindPFlag("metrics_textfile", cmd.Flags().Lookup("metrics-textfile"))
	return cmd
}

func runRender(cmd *cobra.Command, v *viper.Viper, args []string) error {
	layout, err := loadLayout(v.GetString("layout"))
	if err != nil {
		return err
	}
	data, err := samples.Load(v.GetString("input"))
	if err != nil {
		return err
	}

	opts := types.Opts{Command: args, Output: v.GetString("output")}
	if v.IsSet("pid") {
		pid := v.GetInt("pid")
		if pid < 0 {
			return errors.Errorf("invalid --pid %d", pid)
		}
		opts.PID = &pid
	} else if len(args) == 0 {
		logging.Warnf("neither --pid nor a command given; chart will have no title")
	}

	rec := telemetry.NewRecorder()
	start := time.Now()
	err = plot.Plot(data, opts, layout)
	rec.ObserveRender(time.Since(start), len(data), err)
	if path := v.GetString("metrics_textfile"); path != "" {
		if werr := rec.WriteTextfile(path); werr != nil {
			logging.Warnf("write metrics textfile %s: %v", path, werr)
		}
	}
	if err != nil {
		return errors.Wrap(err, "render chart")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d samples)\n", opts.Output, len(data))
	return nil
}
