package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for problems",
	Long: `Verifies the pieces a pipeline run needs: configuration, the model
API key, the output directory, and the SQL dataset, plus a short
system report.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := func(label string) { fmt.Fprintf(out, "  ✓ %s\n", label) }
	bad := func(label string) { fmt.Fprintf(out, "  ✗ %s\n", label) }

	fmt.Fprintln(out, "System")
	fmt.Fprintf(out, "  go: %s, %s/%s, %d CPUs\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	if info, err := host.Info(); err == nil {
		fmt.Fprintf(out, "  host: %s %s (%s)\n", info.Platform, info.PlatformVersion, info.KernelVersion)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(out, "  memory: %.1f GB total, %.0f%% used\n",
			float64(vm.Total)/(1<<30), vm.UsedPercent)
	}

	fmt.Fprintln(out, "Configuration")
	cfg, _, err := loadConfig()
	if err != nil {
		bad(fmt.Sprintf("config: %v", err))
		return err
	}
	ok(fmt.Sprintf("config valid (model %s)", cfg.Model.Model))

	failures := 0

	if cfg.Model.APIKey == "" {
		bad("GEMINI_API_KEY not set; model calls will fail")
		failures++
	} else {
		ok("model API key present")
	}

	if st, err := os.Stat(cfg.Output.Dir); err != nil {
		bad(fmt.Sprintf("output directory %q: %v", cfg.Output.Dir, err))
		failures++
	} else if !st.IsDir() {
		bad(fmt.Sprintf("output path %q is not a directory", cfg.Output.Dir))
		failures++
	} else {
		ok(fmt.Sprintf("output directory %q writable target", cfg.Output.Dir))
	}

	if _, err := os.Stat(cfg.Dataset.Path); err != nil {
		ok(fmt.Sprintf("dataset %q will be created on first ask", cfg.Dataset.Path))
	} else {
		ok(fmt.Sprintf("dataset present at %q", cfg.Dataset.Path))
	}

	if failures > 0 {
		return fmt.Errorf("%d problem(s) found", failures)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}
