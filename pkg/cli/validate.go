package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/cli/config"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate reference data TOML files without touching any store",
		ArgsUsage: "[file ...]",
		Action: func(ctx context.Context, c *cli.Command) error {
			paths := c.Args().Slice()

			// Without arguments the embedded dataset is checked, which
			// guards the defaults shipped in the binary.
			if len(paths) == 0 {
				ref, err := config.ParseReferenceData(defaultReferenceTOML)
				if err != nil {
					return goerr.Wrap(err, "embedded reference data is broken")
				}
				color.Green("embedded reference data: OK (%d strategies, %d factors)",
					len(ref.Strategies), len(ref.Factors))
				return nil
			}

			var failed int
			for _, path := range paths {
				ref, err := config.LoadReferenceData(path)
				if err != nil {
					failed++
					color.Red("%s: NG", path)
					logging.Default().Error("reference data validation failed",
						"path", path, "error", err.Error())
					continue
				}
				color.Green("%s: OK (%d strategies, %d factors)",
					path, len(ref.Strategies), len(ref.Factors))
			}

			if failed > 0 {
				return goerr.New("reference data validation failed", goerr.V("files", failed))
			}
			return nil
		},
	}
}
