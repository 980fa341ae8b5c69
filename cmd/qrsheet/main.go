// Command qrsheet generates a printable PDF of QR labels from a switching
// plan XML file. Invoked without arguments it prompts for the input file;
// choosing nothing exits cleanly without side effects.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/qrsheet"
)

func main() {
	cmd := newRootCmd()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "qrsheet",
		Short: "Generate a QR label sheet from a switching plan XML file",
		Long: `qrsheet extracts protection point identifiers from a switching plan,
encodes each as a QR code and lays them out with captions on A4 pages.

Points are included when they carry an identifier, have an ordered entry
of type "kein Abbau", and the identifier does not contain "gl".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, inputPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "switching plan XML file (prompted for if omitted)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", qrsheet.DefaultOutputFilename, "output PDF file")
	return cmd
}

func run(cmd *cobra.Command, inputPath, outputPath string) error {
	if inputPath == "" {
		inputPath = promptForFile(cmd)
	}
	if inputPath == "" {
		cmd.Println("No XML file selected. Exiting.")
		return nil
	}
	cmd.Printf("Selected XML file: %s\n", inputPath)

	labels, warnings, err := qrsheet.Open(inputPath).Labels()
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), qrsheet.FormatWarnings(warnings))
	}
	if len(labels) == 0 {
		cmd.Println("No relevant data found in the XML file to generate QR codes (after filtering).")
		return nil
	}
	cmd.Printf("Found %d items to encode (after filtering).\n", len(labels))

	result, _, err := qrsheet.FromLabels(labels).Output(outputPath).Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	cmd.Printf("PDF generated successfully: %s (%d pages)\n", result.Path, result.Pages)
	return nil
}

// promptForFile asks for an input path on stdin. An empty line means the
// user declined.
func promptForFile(cmd *cobra.Command) string {
	fmt.Fprint(cmd.OutOrStdout(), "Switching plan XML file: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
