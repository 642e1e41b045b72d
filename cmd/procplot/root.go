package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/landesfeind/procrec/src/logging"
	"github.com/landesfeind/procrec/src/plot"
)

// NewRootCmd builds the command tree with its own viper instance. Flags are bound to viper
// keys (dashes become underscores) and PROCPLOT_* environment variables override defaults.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "procplot",
		Short:         "Plot recorded process CPU and memory usage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLogLevel(v.GetString("log_level"))
		},
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	root.PersistentFlags().String("layout", "", "YAML file overriding chart layout defaults")
	root.PersistentFlags().StringP("input", "i", "procrec.jsonl", "Recorded samples (.jsonl or .csv)")
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("layout", root.PersistentFlags().Lookup("layout"))
	_ = v.BindPFlag("input", root.PersistentFlags().Lookup("input"))

	v.SetEnvPrefix("procplot")
	v.AutomaticEnv()

	root.AddCommand(NewRenderCmd(v), NewSummaryCmd(v))
	return root
}

func loadLayout(path string) (plot.Layout, error) {
	if path == "" {
		return plot.DefaultLayout(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return plot.Layout{}, errors.Wrap(err, "open layout")
	}
	defer f.Close()
	return plot.LoadLayout(f)
}
