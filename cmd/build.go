package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gamikaru/thecopysocial/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Exports the site as static HTML",
	Long: `The build command renders every page, including one per blog post, to
<outputDir>/<path>/index.html and copies './static/' to <outputDir>/static.
The output directory is cleaned first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildOutput != "" {
			appConfig.OutputDir = buildOutput
		}
		return runBuild(cmd)
	},
}

func runBuild(cmd *cobra.Command) error {
	s, err := loadSite(appConfig, logger)
	if err != nil {
		return err
	}
	n, err := site.Export(cmd.Context(), site.Options{
		Env:       pageEnv(appConfig, s),
		StaticDir: appConfig.StaticDir,
		OutputDir: appConfig.OutputDir,
		Log:       logger,
	})
	if err != nil {
		return err
	}
	logger.Info("build complete", zap.Int("pages", n), zap.String("dir", appConfig.OutputDir))
	return nil
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "output directory (overrides outputDir)")
	rootCmd.AddCommand(buildCmd)
}
