package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Panda381/BigInt/pkg/bernconst"
	"github.com/Panda381/BigInt/pkg/bernoulli"
	"github.com/Panda381/BigInt/pkg/checkpoint"
	"github.com/Panda381/BigInt/pkg/checksum"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// checkpointInterval is the reference policy: checkpoint when wall-clock
// time since the last save exceeds this, triggered from the progress
// callback.
const checkpointInterval = 60 * time.Second

func main() {
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("bernoulli: %v", r)
			os.Exit(1)
		}
	}()

	checksum.SelfCheck()

	rootCmd := &cobra.Command{
		Use:   "bernoulli",
		Short: "Compute exact rational even Bernoulli numbers B2..B2n",
	}
	rootCmd.AddCommand(newGenerateCmd(), newLookupCmd())

	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("bernoulli: %v", err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var format string
	var out string
	var ckptPath string
	var fresh bool

	cmd := &cobra.Command{
		Use:   "generate <n>",
		Short: "Generate B2, B4, ..., B2n, checkpointing every 60 seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid count %q: must be a non-negative integer", args[0])
			}

			tmpPath := ckptPath + ".tmp"
			var s *bernoulli.State
			if !fresh {
				loaded, ok, err := checkpoint.Load(ckptPath, tmpPath)
				if err != nil {
					return err
				}
				if ok {
					fmt.Printf("Resumed from %s: %d of %d produced\n", ckptPath, loaded.Produced, loaded.N)
					s = loaded
				}
			}
			if s == nil {
				s = bernoulli.NewState(n)
			}
			s.Upsize(n)

			lastSave := time.Now()
			s.Run(func(p bernoulli.Progress) {
				fmt.Printf("  %d permille\n", p.Permille)
				if time.Since(lastSave) >= checkpointInterval {
					if err := checkpoint.Save(ckptPath, tmpPath, s); err != nil {
						panic(err)
					}
					lastSave = time.Now()
				}
			})

			if err := checkpoint.Save(ckptPath, tmpPath, s); err != nil {
				return err
			}

			return emit(s, format, out)
		},
	}
	cmd.Flags().StringVar(&format, "format", "none", "Output format: none, csv-tab, csv-comma, csv-semicolon, source")
	cmd.Flags().StringVar(&out, "out", "", "Output file path (stdout if empty and format != none)")
	cmd.Flags().StringVar(&ckptPath, "checkpoint", "Bernoulli.bin", "Checkpoint file path")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "Ignore any existing checkpoint and start over")
	return cmd
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <k>",
		Short: "Look up Bk for a single even index k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: must be an integer", args[0])
			}
			num, den := bernconst.Lookup(k)
			fmt.Printf("B%d = %s/%s\n", k, num.Text(), den.Text())
			return nil
		},
	}
	return cmd
}
