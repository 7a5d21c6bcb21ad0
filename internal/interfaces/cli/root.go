package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-qc/internal/application/ports"
	"github.com/jhoicas/invoice-qc/internal/application/qc"
	"github.com/jhoicas/invoice-qc/internal/infrastructure/document"
	"github.com/jhoicas/invoice-qc/internal/infrastructure/recordfile"
	"github.com/jhoicas/invoice-qc/pkg/config"
	"github.com/jhoicas/invoice-qc/pkg/logger"
)

// Version inyectada en build vía ldflags.
var Version = "dev"

// Deps dependencias compartidas por los subcomandos.
type Deps struct {
	Config  *config.Config
	Logger  *logger.Logger
	Reader  ports.DocumentReader
	Records ports.RecordRepository
	QC      *qc.UseCase
}

// NewDeps arma las dependencias a partir de la configuración.
func NewDeps(cfg *config.Config, log *logger.Logger) Deps {
	return Deps{
		Config:  cfg,
		Logger:  log,
		Reader:  document.NewReader(cfg.QC.MaxDocumentBytes),
		Records: recordfile.NewStore(),
		QC:      qc.NewUseCase(log, cfg.QC.ExtractWorkers),
	}
}

// NewRootCommand crea el comando raíz con todos los subcomandos.
func NewRootCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invoiceqc",
		Short:         "Extracción y control de calidad de facturas",
		Long:          "invoiceqc extrae registros de factura desde documentos de texto y valida\nsu forma, completitud, formato, reglas de negocio y duplicados.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		NewExtractCmd(deps),
		NewValidateCmd(deps),
		NewFullRunCmd(deps),
		NewTokenCmd(deps),
	)
	return cmd
}
