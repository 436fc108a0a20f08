package cli

import (
	"context"
	_ "embed"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/cli/config"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

//go:embed reference.toml
var defaultReferenceTOML []byte

func cmdSeed() *cli.Command {
	var mitigationsPath string
	var factorsPath string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "mitigations",
			Usage:       "TOML file whose strategies replace the embedded defaults",
			Sources:     cli.EnvVars("TALOS_SEED_MITIGATIONS"),
			Destination: &mitigationsPath,
		},
		&cli.StringFlag{
			Name:        "risk-factors",
			Usage:       "TOML file whose factors replace the embedded defaults",
			Sources:     cli.EnvVars("TALOS_SEED_RISK_FACTORS"),
			Destination: &factorsPath,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Seed reference data (mitigation strategies and risk factors)",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ref, err := loadSeedData(mitigationsPath, factorsPath)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Put is an upsert on the natural key, so re-seeding is safe
			strategies := ref.StrategyModels()
			for _, strategy := range strategies {
				if err := repo.Mitigation().Put(ctx, strategy); err != nil {
					return goerr.Wrap(err, "failed to store mitigation strategy",
						goerr.V("title", strategy.Title))
				}
			}

			factors := ref.FactorModels()
			for _, factor := range factors {
				if err := repo.Factor().Put(ctx, factor); err != nil {
					return goerr.Wrap(err, "failed to store risk factor",
						goerr.V("factor", factor.FactorName))
				}
			}

			color.New(color.FgGreen, color.Bold).Println("Seed completed")
			color.Green("  mitigation strategies: %d", len(strategies))
			color.Green("  risk factors: %d", len(factors))

			return nil
		},
	}
}

// loadSeedData resolves the reference dataset. Without overrides the embedded
// defaults are used; a mitigations file contributes its strategies and a
// risk-factors file its factors.
func loadSeedData(mitigationsPath, factorsPath string) (*config.ReferenceData, error) {
	if mitigationsPath == "" && factorsPath == "" {
		ref, err := config.ParseReferenceData(defaultReferenceTOML)
		if err != nil {
			return nil, goerr.Wrap(err, "embedded reference data is broken")
		}
		return ref, nil
	}

	var ref config.ReferenceData
	if mitigationsPath != "" {
		loaded, err := config.LoadReferenceData(mitigationsPath)
		if err != nil {
			return nil, err
		}
		ref.Strategies = loaded.Strategies
	}
	if factorsPath != "" {
		loaded, err := config.LoadReferenceData(factorsPath)
		if err != nil {
			return nil, err
		}
		ref.Factors = loaded.Factors
	}

	return &ref, nil
}
