package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"strokeview/internal/commands"
	"strokeview/internal/logger"
	"strokeview/internal/picker"
)

const listTimeout = 30 * time.Second

func registerPick(reg *commands.Registry) {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	var src sourceFlags
	src.register(fs)
	reg.Register("pick", "choose a drawing in the terminal, then view it", fs, func(args []string) error {
		cfg, err := src.load(0, 0)
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogPath, 0)
		s, err := openSource(cfg, log)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		items, err := s.List(ctx)
		if err != nil {
			return err
		}
		id, err := picker.Run(items)
		if err != nil || id == "" {
			return err
		}
		return runView(cfg, id)
	})
}

func registerList(reg *commands.Registry) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var src sourceFlags
	src.register(fs)
	reg.Register("list", "print the available drawings", fs, func(args []string) error {
		cfg, err := src.load(0, 0)
		if err != nil {
			return err
		}
		log := logger.New(cfg.LogPath, 0)
		s, err := openSource(cfg, log)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
		defer cancel()
		items, err := s.List(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, picker.Table(items))
		return nil
	})
}
