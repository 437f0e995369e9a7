package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zerfoo/softfloat/testcase"
)

func main() {
	var dataDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "softfloat-test [files...]",
		Short: "Run softfloat test-case files",
		Long: "softfloat-test executes text test-case files against the softfloat\n" +
			"kernels. With no arguments every .txt file under --data is run.\n" +
			"The first failing case stops the run with a non-zero exit status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				var err error
				files, err = filepath.Glob(filepath.Join(dataDir, "*.txt"))
				if err != nil {
					return err
				}
				sort.Strings(files)
			}
			if len(files) == 0 {
				return fmt.Errorf("no test-case files found in %s", dataDir)
			}
			for _, file := range files {
				if verbose {
					fmt.Printf("running %s\n", file)
				}
				if err := testcase.RunFile(file); err != nil {
					var failure *testcase.Failure
					if errors.As(err, &failure) {
						fmt.Fprintln(os.Stderr, failure.Error())
						os.Exit(1)
					}
					return err
				}
			}
			fmt.Printf("all %d file(s) passed\n", len(files))
			return nil
		},
	}
	rootCmd.Flags().StringVar(&dataDir, "data", "test_data", "directory of test-case files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each file as it runs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
