package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	addTemplate   string
	batchFile     string
	batchTemplate string
	listSort      string
	getPreview    bool
	deleteForce   bool
	clearForce    bool
)

var addCmd = &cobra.Command{
	Use:   "add <url|wifi|vcard|email|phone|sms|event>",
	Short: "Create a QR code from a form",
	Long: `Prompts for the fields of the chosen QR type, encodes them and stores the
result at the top of the history. WiFi passwords are read without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var typeName string
		if len(args) > 0 {
			typeName = args[0]
		}
		return app.RunAdd(cmd.Context(), typeName, addTemplate)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Create one QR code per line of input",
	Long: `Reads lines from --file or standard input. Blank lines are skipped and
at most 50 items are created; the rest is reported and dropped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunBatch(cmd.Context(), batchFile, batchTemplate)
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the history",
	Args:    cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return app.RunList(listSort)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find QR codes by content or type",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.RunSearch(strings.Join(args, " "))
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a QR code",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return app.RunGet(args[0], getPreview)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the content or look of a QR code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunEdit(cmd.Context(), args[0])
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a QR code",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.RunDelete(cmd.Context(), args[0], deleteForce)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.RunClear(cmd.Context(), clearForce)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addTemplate, "template", "t", "", "color template id")
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "read items from file instead of stdin")
	batchCmd.Flags().StringVarP(&batchTemplate, "template", "t", "", "color template id")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "newest", "order: newest, oldest, modified or type")
	getCmd.Flags().BoolVarP(&getPreview, "preview", "p", true, "draw the QR code in the terminal")
	deleteCmd.Flags().BoolVarP(&deleteForce, "yes", "y", false, "do not ask for confirmation")
	clearCmd.Flags().BoolVarP(&clearForce, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(addCmd, batchCmd, listCmd, searchCmd, getCmd, editCmd, deleteCmd, clearCmd)
}
