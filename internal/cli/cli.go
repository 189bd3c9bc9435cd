package cli

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cf-utils/ipsync/internal/config"
	"github.com/cf-utils/ipsync/internal/job"
	"github.com/cf-utils/ipsync/pkg/gitrepo"
)

type RootCommand struct{}

func NewRootCommand() *cobra.Command {
	root := &RootCommand{}

	cmd := &cobra.Command{
		Use:               "ipsync",
		Short:             "Fetch published IP range lists and commit any changes",
		PersistentPreRunE: root.persistentPreRunE,
		RunE:              root.runE,
	}

	cmd.PersistentFlags().String("log-level", "info", "Configure log level")
	cmd.PersistentFlags().String("config", "", "Source catalog file (built-in catalog when empty)")
	cmd.PersistentFlags().String("dir", ".", "Work tree the output files are written into")
	cmd.PersistentFlags().Duration("timeout", 10*time.Second, "Timeout per upstream fetch")
	cmd.PersistentFlags().Bool("commit", false, "Commit changed output files")
	cmd.PersistentFlags().Bool("push", false, "Push after committing (implies --commit)")
	cmd.PersistentFlags().String("commit-message", "Update IP range lists", "Commit message")
	cmd.PersistentFlags().String("author-name", "ipsync", "Commit author name")
	cmd.PersistentFlags().String("author-email", "ipsync@localhost", "Commit author email")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func (c *RootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	// best effort, system environment wins
	_ = godotenv.Load()

	// bind flags to viper
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.SetEnvPrefix("ipsync")
	viper.AutomaticEnv()

	return viper.BindPFlags(cmd.Flags())
}

func (c *RootCommand) runE(cmd *cobra.Command, args []string) error {
	logLevel, err := zapcore.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return err
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(logLevel)

	logger, err := zapConfig.Build()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Sugar()

	cfg := config.Default()
	if path := viper.GetString("config"); path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
	}

	dir := viper.GetString("dir")

	opts := []job.Option{
		job.WithBaseDir(dir),
		job.WithTimeout(viper.GetDuration("timeout")),
	}

	if viper.GetBool("commit") || viper.GetBool("push") {
		gate := gitrepo.New(gitrepo.Config{
			Dir:         dir,
			AuthorName:  viper.GetString("author-name"),
			AuthorEmail: viper.GetString("author-email"),
			Message:     viper.GetString("commit-message"),
			Push:        viper.GetBool("push"),
		})
		opts = append(opts, job.WithGate(gate))
	}

	return job.New(cfg, log, opts...).Run(cmd.Context())
}
