package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML, so a user can
// start a config file from the defaults.
func runConfig(args []string, env *Environment) error {
	fs := flag.NewFlagSet(cmdConfig, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var name string
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: config takes no arguments", ErrInvalidArgs)
	}

	cfg, err := loadConfig(name, env)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
