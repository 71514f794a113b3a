// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/windowsampler/app"
	"github.com/ava-labs/windowsampler/config"
	"github.com/ava-labs/windowsampler/utils/logging"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	rootCmd := newCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed %v\n", config.AppName, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "Draws window indices from a gaussian mixture over window positions",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runFunc,
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}

func runFunc(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return fmt.Errorf("couldn't configure flags: %w", err)
	}

	cfg, err := config.GetConfig(v)
	if err != nil {
		return fmt.Errorf("couldn't load config: %w", err)
	}

	logFactory := logging.NewFactory(cfg.Logging)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return fmt.Errorf("couldn't initialize log: %w", err)
	}

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		log.Warn("couldn't marshal config",
			zap.Error(err),
		)
	} else {
		log.Info("loaded config",
			zap.ByteString("config", cfgJSON),
		)
	}

	samplerApp, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("couldn't create app",
			zap.Error(err),
		)
		logFactory.Close()
		return err
	}

	exitCode := app.Run(samplerApp)
	logFactory.Close()
	os.Exit(exitCode)
	return nil
}
