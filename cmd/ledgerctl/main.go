// ledgerctl herramienta de operación del libro financiero contra el almacén configurado.
//
// Uso:
//
//	ledgerctl pending
//	ledgerctl approve <restock-id> --as <user-id>
//	ledgerctl balance
//	ledgerctl watch
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/refnet-api/internal/domain"
)

// exitErr lleva el código de salida por el camino de errores de cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags flags compartidos por todos los subcomandos.
type globalFlags struct {
	userID  string
	email   string
	verbose bool
}

func main() {
	_ = godotenv.Load()

	var gf globalFlags
	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Operación del libro financiero y de las reposiciones",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&gf.userID, "as", os.Getenv("LEDGERCTL_USER"), "ID del usuario de finanzas que firma los asientos")
	pf.StringVar(&gf.email, "email", "", "Email del usuario (solo para el token)")
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "Log de depuración a stderr")

	root.AddCommand(
		approveCmd(&gf),
		declineCmd(&gf),
		pendingCmd(&gf),
		balanceCmd(&gf),
		watchCmd(&gf),
		tokenCmd(&gf),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode 2 = la operación fue rechazada por el estado de los datos; 3 = requiere conciliación.
func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrReconciliation):
		return 3
	case errors.Is(err, domain.ErrAlreadyProcessed),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		return 2
	}
	return 1
}
