package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/webmanifest/pkg/io"
	"github.com/matzehuels/webmanifest/pkg/manifest"
)

// exampleManifest is the manifest printed by the example command.
func exampleManifest() manifest.Manifest {
	return manifest.New("My Cool Application").
		ShortName("my app").
		BgColor("#000").
		Icon(manifest.NewIcon("/icon.png", "48x48")).
		Related(manifest.NewRelated("play", "https://play.google.com/store/apps/details?id=cheeaun.hackerweb"))
}

// exampleCommand creates the example command.
func (c *CLI) exampleCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print a sample manifest",
		Long:  `Print the manifest of a small sample application, indented by default.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pkgio.WriteManifest(exampleManifest(), layoutFor(compact), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print without whitespace")

	return cmd
}

func layoutFor(compact bool) pkgio.Layout {
	if compact {
		return pkgio.Compact
	}
	return pkgio.Indented
}
