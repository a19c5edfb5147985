package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/crucible/internal/app"
)

func (c *CLI) newPromoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Promote a recorded release to another deployment track",
		Long: `Promote republishes a release recorded on the source track to the target
track, reconciling its packages against the target's current baseline.

Without --label the latest source release is promoted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			descriptor, _ := cmd.Flags().GetString("descriptor")
			source, _ := cmd.Flags().GetString("source")
			target, _ := cmd.Flags().GetString("target")
			label, _ := cmd.Flags().GetString("label")
			targetBinary, _ := cmd.Flags().GetString("target-binary-version")
			mandatory, _ := cmd.Flags().GetBool("mandatory")
			rollout, _ := cmd.Flags().GetInt("rollout")
			yes, _ := cmd.Flags().GetBool("yes")

			release, err := c.app.Promote(cmd.Context(), app.PromoteOptions{
				Descriptor:          descriptor,
				SourceDeployment:    source,
				TargetDeployment:    target,
				Label:               label,
				TargetBinaryVersion: targetBinary,
				Mandatory:           mandatory,
				Rollout:             rollout,
				SkipConfirm:         yes,
			})
			if err != nil {
				return err
			}

			cmd.Printf("promoted as %s\n", release.Label)
			return nil
		},
	}

	cmd.Flags().StringP("descriptor", "d", "", "Native application descriptor (app:platform:version)")
	cmd.Flags().String("source", "", "Deployment track to promote from")
	cmd.Flags().String("target", "", "Deployment track to promote to")
	cmd.Flags().StringP("label", "l", "", "Source release label (default latest)")
	cmd.Flags().StringP("target-binary-version", "t", "", "Override the semver constraint carried from the source release")
	cmd.Flags().BoolP("mandatory", "m", false, "Mark the update as mandatory")
	cmd.Flags().IntP("rollout", "r", 0, "Rollout percentage, 1-100 (default full rollout)")
	cmd.Flags().BoolP("yes", "y", false, "Publish without asking for confirmation")

	return cmd
}
