package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"rosterdb/config"
	"rosterdb/console"
	"rosterdb/store"
	"rosterdb/version"
)

func main() {
	var (
		cfgPath   string
		indexKind string
		seed      bool
	)

	rootCmd := &cobra.Command{
		Use:          "rosterdb",
		Short:        "In-memory student roster and conduct register on an ordered index",
		Version:      version.Tag,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("index") {
				cfg.Index.Kind = indexKind
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			return runConsole(cfg)
		},
	}
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a rosterdb.yaml")
	rootCmd.Flags().StringVar(&indexKind, "index", "", "index kind: bst, avl or btree")
	rootCmd.Flags().BoolVar(&seed, "seed", false, "load the sample records on startup")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the rosterdb version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}

	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConsole(cfg *config.Config) error {
	opts := store.Options{
		IndexKind:   cfg.Index.Kind,
		BTreeDegree: cfg.Index.BTreeDegree,
	}
	if cfg.Bloom.Enabled {
		opts.BloomSize = cfg.Bloom.Size
		opts.BloomHashes = cfg.Bloom.Hashes
	}
	st := store.Open(opts)
	if cfg.Seed {
		log.Printf("seeded %d sample records", store.Seed(st))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received %v, shutting down...", sig)
		cancel()
	}()

	return console.New(st, cfg, os.Stdin, os.Stdout).Run(ctx)
}
