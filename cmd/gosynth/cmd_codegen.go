package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gosynth/codegen"
)

func runCodegen(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	prompt := codegen.BuildPrompt(cfg)
	if !codegenCall {
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	client, err := codegen.NewClient()
	if err != nil {
		return err
	}

	logrus.Debug("sending prompt to OpenAI")
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	code, err := client.GenerateCode(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
