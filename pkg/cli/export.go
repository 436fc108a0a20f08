package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/talos/pkg/cli/config"
	"github.com/secmon-lab/talos/pkg/domain/types"
	"github.com/secmon-lab/talos/pkg/service/export"
	"github.com/secmon-lab/talos/pkg/usecase"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var dataType string
	var format string
	var clean bool
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "data-type",
			Usage:       "Dataset to export (assessments, strategies, factors, all)",
			Value:       "all",
			Sources:     cli.EnvVars("TALOS_EXPORT_DATA_TYPE"),
			Destination: &dataType,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Export format (json or csv)",
			Value:       "json",
			Sources:     cli.EnvVars("TALOS_EXPORT_FORMAT"),
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "clean",
			Usage:       "Run the cleaning pipeline over assessments before export",
			Destination: &clean,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Output destination: '-' for stdout, a file path, or gs://bucket/prefix",
			Value:       "-",
			Sources:     cli.EnvVars("TALOS_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export a dataset snapshot",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dt, err := types.ParseExportDataType(dataType)
			if err != nil {
				return goerr.Wrap(err, "invalid --data-type")
			}
			ft, err := types.ParseExportFormat(format)
			if err != nil {
				return goerr.Wrap(err, "invalid --format")
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

			uc := usecase.New(repo)
			result, err := uc.ExportData(ctx, dt, ft, clean)
			if err != nil {
				if errors.Is(err, export.ErrNoData) {
					return goerr.Wrap(err, "nothing to export", goerr.V("dataType", dataType))
				}
				return err
			}

			dest, err := writeExport(ctx, output, result)
			if err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Println("Export completed")
			color.Green("  dataset: %s (%s)", dataType, format)
			color.Green("  written: %s (%d bytes)", dest, len(result.Data))

			return nil
		},
	}
}

// writeExport delivers the payload to stdout, a local file, or a GCS object
// and returns the destination it wrote to.
func writeExport(ctx context.Context, output string, result *export.Result) (string, error) {
	switch {
	case output == "" || output == "-":
		if _, err := os.Stdout.Write(result.Data); err != nil {
			return "", goerr.Wrap(err, "failed to write export to stdout")
		}
		return "stdout", nil

	case strings.HasPrefix(output, "gs://"):
		return writeExportToGCS(ctx, output, result)

	default:
		if err := os.WriteFile(output, result.Data, 0600); err != nil {
			return "", goerr.Wrap(err, "failed to write export file", goerr.V("path", output))
		}
		return output, nil
	}
}

// writeExportToGCS uploads the payload to gs://bucket/object. A bare bucket
// or a trailing slash gets the generated filename appended.
func writeExportToGCS(ctx context.Context, url string, result *export.Result) (string, error) {
	bucket, object, found := strings.Cut(strings.TrimPrefix(url, "gs://"), "/")
	if bucket == "" {
		return "", goerr.New("gs:// output needs a bucket name", goerr.V("output", url))
	}
	if !found || object == "" {
		object = result.Filename
	} else if strings.HasSuffix(object, "/") {
		object += result.Filename
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create storage client")
	}
	defer func() {
		if err := client.Close(); err != nil {
			logging.Default().Error("failed to close storage client", "error", err.Error())
		}
	}()

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = result.ContentType
	if _, err := w.Write(result.Data); err != nil {
		return "", goerr.Wrap(err, "failed to upload export",
			goerr.V("bucket", bucket), goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize upload",
			goerr.V("bucket", bucket), goerr.V("object", object))
	}

	return "gs://" + bucket + "/" + object, nil
}
