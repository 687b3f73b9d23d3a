package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/webmanifest/pkg/config"
	pkgio "github.com/matzehuels/webmanifest/pkg/io"
	"github.com/matzehuels/webmanifest/pkg/manifest"
)

// buildOpts holds options for the build command.
type buildOpts struct {
	output  string
	compact bool
	link    string
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <definition>",
		Short: "Build a manifest from a definition file",
		Long: `Build a web app manifest from a TOML or YAML definition file.

The manifest is written to stdout unless --output names a file.`,
		Example: `  webmanifest build site.toml
  webmanifest build site.yaml -o public/manifest.webmanifest --link /manifest.webmanifest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty or -)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "write without whitespace")
	cmd.Flags().StringVar(&opts.link, "link", "", "print the <link> tag for this manifest URL")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, path string, opts buildOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	m, err := loadManifest(path)
	if err != nil {
		return err
	}

	layout := layoutFor(opts.compact)
	stderr := cmd.ErrOrStderr()
	if opts.output == "" || opts.output == "-" {
		if err := pkgio.WriteManifest(m, layout, cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		if err := pkgio.ExportManifest(m, layout, opts.output); err != nil {
			return err
		}
		printSuccess(stderr, "Built manifest for %s", StyleTitle.Render(m.Name()))
		printFile(stderr, opts.output)
	}

	if opts.link != "" {
		printKeyValue(stderr, "link", manifest.LinkTag(opts.link))
	}

	prog.done("Built manifest",
		"definition", path,
		"icons", strconv.Itoa(len(m.Icons())),
		"related", strconv.Itoa(len(m.RelatedApplications())),
	)
	return nil
}

// loadManifest reads a definition file and turns it into a manifest builder.
func loadManifest(path string) (manifest.Manifest, error) {
	def, err := config.Load(path)
	if err != nil {
		return manifest.Manifest{}, err
	}
	return def.Manifest()
}
