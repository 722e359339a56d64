package cmd

import (
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
	shareImage   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Save a QR code as an image",
	Long: `Renders the QR code with its colors, logo and frame. Without --out the
file is written to the export directory as qr-<hash>.<ext>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunExport(cmd.Context(), args[0], exportFormat, exportOut)
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Copy a QR code to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunShare(cmd.Context(), args[0], shareImage)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "png", "image format: png or jpeg")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file or directory")
	shareCmd.Flags().BoolVar(&shareImage, "image", false, "copy the rendered image instead of the payload")

	rootCmd.AddCommand(exportCmd, shareCmd)
}
