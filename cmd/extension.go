package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// RunExtension attempts to find and execute an external folio-<subcommand> binary.
// Global flags are passed to it as environment variables.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "folio-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvPrices+"="+*pricesFile,
		EnvPriceColumn+"="+*priceColumn,
		EnvPricesPath+"="+*pricesPath,
		EnvPortfolio+"="+*portfolioFile,
		EnvCurrency+"="+*currency,
		EnvVerbose+"="+strconv.FormatBool(*verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
