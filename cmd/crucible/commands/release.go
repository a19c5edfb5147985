package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/crucible/internal/app"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release [miniapps...]",
		Short: "Release MiniApps to a deployment track",
		Long: `Release reconciles the given MiniApps against the last recorded release,
generates a composite bundle and publishes it over the air.

MiniApps are given as package refs, e.g. "@acme/cart@1.2.0". Refs without a
version are resolved to the latest published version.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			descriptor, _ := cmd.Flags().GetString("descriptor")
			deployment, _ := cmd.Flags().GetString("deployment")
			targetBinary, _ := cmd.Flags().GetString("target-binary-version")
			mandatory, _ := cmd.Flags().GetBool("mandatory")
			rollout, _ := cmd.Flags().GetInt("rollout")
			yes, _ := cmd.Flags().GetBool("yes")

			release, err := c.app.Release(cmd.Context(), app.ReleaseOptions{
				Descriptor:          descriptor,
				MiniApps:            args,
				Deployment:          deployment,
				TargetBinaryVersion: targetBinary,
				Mandatory:           mandatory,
				Rollout:             rollout,
				SkipConfirm:         yes,
			})
			if err != nil {
				return err
			}

			cmd.Printf("released %s\n", release.Label)
			return nil
		},
	}

	cmd.Flags().StringP("descriptor", "d", "", "Native application descriptor (app:platform:version)")
	cmd.Flags().String("deployment", "", "Deployment track to release to")
	cmd.Flags().StringP("target-binary-version", "t", "", "Semver constraint on installable native binaries")
	cmd.Flags().BoolP("mandatory", "m", false, "Mark the update as mandatory")
	cmd.Flags().IntP("rollout", "r", 0, "Rollout percentage, 1-100 (default full rollout)")
	cmd.Flags().BoolP("yes", "y", false, "Publish without asking for confirmation")

	return cmd
}
