package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-qc/internal/domain"
	"github.com/jhoicas/invoice-qc/pkg/jwt"
)

// NewExtractCmd extract: documentos de un directorio -> arreglo JSON de registros.
func NewExtractCmd(deps Deps) *cobra.Command {
	var inputDir, output string

	cmd := &cobra.Command{
		Use:     "extract",
		Short:   "Extrae facturas de los documentos .txt de un directorio",
		Example: "  invoiceqc extract --input-dir invoices --output extracted.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			docs, err := deps.Reader.ReadDir(cmd.Context(), inputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Extrayendo facturas de %s...\n", inputDir)
			records, err := deps.QC.Extract(cmd.Context(), docs)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("no se extrajo ninguna factura de %s: %w", inputDir, domain.ErrNoDocuments)
			}
			if err := deps.Records.SaveRecords(output, records); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ %d facturas extraídas en %s\n", len(records), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "directorio con documentos .txt (requerido)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo JSON de salida (requerido)")
	_ = cmd.MarkFlagRequired("input-dir")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// NewValidateCmd validate: arreglo JSON de registros -> informe. Termina con error si hay inválidas.
func NewValidateCmd(deps Deps) *cobra.Command {
	var input, report string

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   "Valida las facturas de un archivo JSON",
		Example: "  invoiceqc validate --input extracted.json --report report.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cargando facturas de %s...\n", input)
			records, err := deps.Records.LoadRecords(input)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("%s no contiene facturas: %w", input, domain.ErrNoDocuments)
			}
			fmt.Fprintf(out, "Validando %d facturas...\n", len(records))
			rep, err := deps.QC.Validate(cmd.Context(), records)
			if err != nil {
				return err
			}
			if err := deps.Records.SaveReport(report, rep); err != nil {
				return err
			}
			printSummary(out, rep.Summary)
			printInvalid(out, rep.Results)
			fmt.Fprintf(out, "\n✓ Informe guardado en %s\n", report)
			return invalidError(rep.Summary.InvalidInvoices)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "archivo JSON con facturas (requerido)")
	cmd.Flags().StringVarP(&report, "report", "r", "", "archivo JSON del informe (requerido)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}

// NewFullRunCmd full-run: extracción y validación en un paso.
func NewFullRunCmd(deps Deps) *cobra.Command {
	var inputDir, report string

	cmd := &cobra.Command{
		Use:     "full-run",
		Short:   "Extrae y valida en un solo paso",
		Example: "  invoiceqc full-run --input-dir invoices --report report.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			docs, err := deps.Reader.ReadDir(cmd.Context(), inputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Paso 1: extrayendo facturas de %s...\n", inputDir)
			res, err := deps.QC.ExtractAndValidate(cmd.Context(), docs)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ %d facturas extraídas\n", len(res.Records))
			fmt.Fprintf(out, "Paso 2: validando %d facturas...\n", len(res.Records))
			if err := deps.Records.SaveReport(report, res.Report); err != nil {
				return err
			}
			printSummary(out, res.Report.Summary)
			fmt.Fprintf(out, "\n✓ Proceso completo. Informe guardado en %s\n", report)
			return invalidError(res.Report.Summary.InvalidInvoices)
		},
	}
	cmd.Flags().StringVarP(&inputDir, "input-dir", "d", "", "directorio con documentos .txt (requerido)")
	cmd.Flags().StringVarP(&report, "report", "r", "", "archivo JSON del informe (requerido)")
	_ = cmd.MarkFlagRequired("input-dir")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}

// NewTokenCmd token: emite un Bearer token para la API HTTP.
func NewTokenCmd(deps Deps) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Genera un token para la API HTTP (requiere JWT_SECRET)",
		RunE: func(cmd *cobra.Command, args []string) error {
			jc := deps.Config.JWT
			if !jc.Enabled() {
				return fmt.Errorf("JWT_SECRET no configurado: la API no exige token")
			}
			tok, err := jwt.Generate(jc.Secret, subject, jc.Issuer, jc.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "cliente que usará el token (requerido)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func invalidError(invalid int) error {
	if invalid > 0 {
		return fmt.Errorf("%d facturas inválidas: %w", invalid, domain.ErrInvalidRecords)
	}
	return nil
}
