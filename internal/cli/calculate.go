package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/powkit/internal/config"
	"github.com/agbru/powkit/internal/fibonacci"
	"github.com/agbru/powkit/internal/ui"
)

// GetCalculatorsToRun resolves cfg.Algo against factory. "all" returns every
// registered calculator in name order; an unknown name returns nil.
func GetCalculatorsToRun(cfg config.AppConfig, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	if cfg.Algo == config.DefaultAlgo {
		names := factory.List()
		calculators := make([]fibonacci.Calculator, 0, len(names))
		for _, name := range names {
			if calc, err := factory.Get(name); err == nil {
				calculators = append(calculators, calc)
			}
		}
		return calculators
	}
	if calc, err := factory.Get(cfg.Algo); err == nil {
		return []fibonacci.Calculator{calc}
	}
	return nil
}

// CPUFeatures lists the arithmetic-relevant instruction set extensions of
// the host, or "none detected".
func CPUFeatures() string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasAVX2, "AVX2")
		add(cpu.X86.HasAVX512F, "AVX-512F")
		add(cpu.X86.HasBMI2, "BMI2")
		add(cpu.X86.HasADX, "ADX")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "ASIMD")
		add(cpu.ARM64.HasSVE, "SVE")
	}
	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, ", ")
}

// PrintExecutionConfig prints what is about to be computed and on which
// machine.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	t := ui.CurrentTheme()
	fmt.Fprintln(out, t.Paint(t.Heading, "--- Execution Configuration ---"))
	switch cfg.Mode {
	case config.ModeFibonacci:
		fmt.Fprintf(out, "Calculating %s with a timeout of %s.\n",
			t.Paint(t.Value, fmt.Sprintf("F(%d)", cfg.N)), t.Paint(t.Warning, cfg.Timeout.String()))
	case config.ModePower:
		operand := fmt.Sprint(cfg.Base)
		if cfg.Op == config.OpRoman {
			operand = cfg.Roman
		}
		fmt.Fprintf(out, "Raising %s to the power %s under '%s'.\n",
			t.Paint(t.Value, operand), t.Paint(t.Value, fmt.Sprint(cfg.Exp)), cfg.Op)
	default:
		fmt.Fprintf(out, "Computing %s on the sample graph with a timeout of %s.\n",
			t.Paint(t.Value, cfg.Mode), t.Paint(t.Warning, cfg.Timeout.String()))
	}
	fmt.Fprintf(out, "Environment: %s logical processors, Go %s, %s/%s.\n",
		t.Paint(t.Value, fmt.Sprint(runtime.NumCPU())), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "CPU features: %s.\n", t.Paint(t.Muted, CPUFeatures()))
}

// PrintExecutionMode says whether one calculator runs or several are
// compared.
func PrintExecutionMode(calculators []fibonacci.Calculator, out io.Writer) {
	t := ui.CurrentTheme()
	switch len(calculators) {
	case 0:
		fmt.Fprintln(out, "Execution mode: no calculator selected.")
	case 1:
		fmt.Fprintf(out, "Execution mode: single calculation with %s.\n", t.Paint(t.Success, calculators[0].Description()))
	default:
		fmt.Fprintf(out, "Execution mode: parallel comparison of %d calculators.\n", len(calculators))
	}
	fmt.Fprintln(out, t.Paint(t.Heading, "\n--- Starting Execution ---"))
}
