package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newExportCmd(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:       "export <pdf|xml>",
		Short:     "Descargar la carta en PDF o el feed XML",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"pdf", "xml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			if output == "" {
				output = "menu." + format
			}

			var body []byte
			switch format {
			case "pdf":
				b, err := e.client.ExportPDF(cmd.Context())
				if err != nil {
					return err
				}
				body = b
			case "xml":
				b, digest, err := e.client.ExportXML(cmd.Context())
				if err != nil {
					return err
				}
				sum := sha256.Sum256(b)
				if local := hex.EncodeToString(sum[:]); digest != "" && digest != local {
					return fmt.Errorf("digest del feed no coincide: servidor %s, local %s", digest, local)
				}
				body = b
			}

			if err := os.WriteFile(output, body, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", output, humanize.Bytes(uint64(len(body))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Archivo de salida (por defecto menu.<formato>)")
	return cmd
}
