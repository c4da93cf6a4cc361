// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// openInput returns the file named by args[0], or stdin when args is empty.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func main() {
	banner := fmt.Sprintf("avlindex %s - an ordered in-memory index on a self-balancing AVL tree", version)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = newDefaultConfig()
	}

	demo := func(cmd *cobra.Command, args []string) {
		order, _ := cmd.Flags().GetString("order")
		showTree, _ := cmd.Flags().GetBool("tree")
		if err := runDemo(os.Stdout, config.Demo.Keys, order, showTree); err != nil {
			log.Fatalf("Error running demo: %v", err)
		}
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Seed a tree with the configured keys and print it",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Demo inserts the configured key sequence and prints a traversal"),
		Args:  cobra.NoArgs,
		Run:   demo,
	}

	var cmdExec = &cobra.Command{
		Use:   "exec [script]",
		Short: "Run an operation script against a fresh tree",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Exec reads operations from the script file, or stdin when omitted"),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keyType, _ := cmd.Flags().GetString("keys")
			showTree, _ := cmd.Flags().GetBool("tree")

			in, err := openInput(args)
			if err != nil {
				log.Fatalf("Error opening script: %v", err)
			}
			defer in.Close()

			if err := runScript(in, os.Stdout, keyType, showTree); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", styles.Error.Render("error:"), err)
				os.Exit(1)
			}
		},
	}
	cmdExec.Flags().String("keys", "int", "key type: int, float or string")
	cmdExec.Flags().Bool("tree", false, "print the final tree structure")

	var cmdIndex = &cobra.Command{
		Use:   "index [file]",
		Short: "Load lines into a string index and search by prefix",
		Long:  fmt.Sprintf("%s\n\n%s", banner, "Index stores every line of the file (or stdin) and prints those matching --match"),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			match, _ := cmd.Flags().GetString("match")
			showStats, _ := cmd.Flags().GetBool("stats")

			in, err := openInput(args)
			if err != nil {
				log.Fatalf("Error opening input: %v", err)
			}
			defer in.Close()

			if err := runIndex(in, os.Stdout, config.Index, match, showStats); err != nil {
				log.Fatalf("Error building index: %v", err)
			}
		},
	}
	cmdIndex.Flags().String("match", "", "match string prefix to look up in the index")
	cmdIndex.Flags().Bool("stats", false, "print index statistics")

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert and delete random keys while checking invariants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetInt64("seed")
			progress, _ := cmd.Flags().GetBool("progress")

			res, err := runBench(count, seed, progress)
			if err != nil {
				log.Fatalf("Bench failed: %v", err)
			}

			fmt.Println(styles.Heading.Render("🌳 Bench results"))
			fmt.Printf("  inserted %d keys in %s\n", res.Inserted, res.InsertTime)
			fmt.Printf("  height %d (bound %d)\n", res.Height, res.MaxHeight)
			fmt.Printf("  deleted %d keys in %s, %d remain\n", res.Deleted, res.DeleteTime, res.Remaining)
			fmt.Println(styles.Success.Render("  all invariants held"))
		},
	}
	cmdBench.Flags().Int("count", config.Bench.Count, "number of keys to insert")
	cmdBench.Flags().Int64("seed", config.Bench.Seed, "random seed")
	cmdBench.Flags().Bool("progress", true, "show a progress bar")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show avlindex configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlindex usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlindex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlindex",
		Version: version,
		Long:    banner,
		Args:    cobra.NoArgs,
		// Default to demo when no subcommand is provided
		Run: demo,
	}

	for _, c := range []*cobra.Command{rootCmd, cmdDemo} {
		c.Flags().String("order", config.Demo.Order, "traversal order: in, pre or post")
		c.Flags().Bool("tree", false, "print the tree structure")
	}

	rootCmd.AddCommand(cmdDemo, cmdExec, cmdIndex, cmdBench, cmdConfig, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
