package main

import (
	"context"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/bstmap/configuration"
	"github.com/iotaledger/bstmap/ds/bst"
	"github.com/iotaledger/bstmap/ierrors"
	"github.com/iotaledger/bstmap/logger"
	"github.com/iotaledger/bstmap/replay"
)

const (
	envPrefix = "BSTMAP"

	configurationKeyComparator   = "map.comparator"
	configurationKeyTraversal    = "map.traversal"
	configurationKeyDepthWarning = "map.depthWarning"
	configurationKeyScript       = "script"
	configurationKeyStoreConfig  = "storeConfig"
)

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet("bstmap", flag.ContinueOnError)

	flagSet.StringP("config", "c", "", "path to a JSON, YAML or TOML config file")
	flagSet.StringP(configurationKeyScript, "s", "-", "path to the script that is replayed (\"-\" reads from stdin)")
	flagSet.String(configurationKeyStoreConfig, "", "store the effective configuration to this JSON, YAML or TOML file")

	flagSet.String(configurationKeyComparator, replay.ComparatorModeLexical, "the comparator mode (lexical, numeric)")
	flagSet.String(configurationKeyTraversal, "inorder", "the traversal order of keys, values and entries (inorder, preorder)")
	flagSet.Int(configurationKeyDepthWarning, 0, "log a warning once an entry is inserted deeper than this (0 disables it)")

	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.Bool(logger.ConfigurationKeyDisableCaller, true, "stop annotating logs with the caller")
	flagSet.Bool(logger.ConfigurationKeyDisableStacktrace, false, "disable automatic stacktrace capturing")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (json, console)")
	flagSet.StringSlice(logger.ConfigurationKeyOutputPaths, []string{"stderr"}, "the URLs or file paths to write logging output to")

	return flagSet
}

// loadConfiguration merges the config file, the command line flags and the environment (in ascending priority, with
// command line flags that were set explicitly winning over everything else).
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if configFilePath, _ := flagSet.GetString("config"); configFilePath != "" {
		if err := config.LoadFile(configFilePath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "failed to load environment variables")
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, ierrors.Wrap(err, "failed to load flags")
	}

	return config, nil
}

func newMap(config *configuration.Configuration, log *logger.Logger) (*bst.Map[string, string], error) {
	comparator, err := replay.ComparatorForMode(config.String(configurationKeyComparator))
	if err != nil {
		return nil, err
	}

	order, err := replay.ParseTraversalOrder(config.String(configurationKeyTraversal))
	if err != nil {
		return nil, err
	}

	return bst.New[string, string](comparator,
		bst.WithTraversalOrder[string, string](order),
		bst.WithLogger[string, string](log.Named("bst")),
		bst.WithDepthWarningThreshold[string, string](config.Int(configurationKeyDepthWarning)),
	), nil
}

func newLogger(config *configuration.Configuration) (*logger.Logger, error) {
	cfg := logger.DefaultCfg
	if err := config.Unmarshal("logger", &cfg); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse logger config")
	}

	return logger.NewRootLogger(cfg)
}

func openScript(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}

	script, err := os.Open(path)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to open script %s", path)
	}

	return script, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	config, err := loadConfiguration(flagSet)
	if err != nil {
		return err
	}

	log, err := newLogger(config)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debugf("effective configuration: %v", config.All())

	if storeConfigPath := config.String(configurationKeyStoreConfig); storeConfigPath != "" {
		if err := config.StoreFile(storeConfigPath, 0o600); err != nil {
			return err
		}
	}

	storage, err := newMap(config, log)
	if err != nil {
		return err
	}

	script, err := openScript(config.String(configurationKeyScript), stdin)
	if err != nil {
		return err
	}
	defer script.Close()

	return replay.NewRunner(storage, stdout, replay.WithLogger(log.Named("replay"))).Run(ctx, script)
}
