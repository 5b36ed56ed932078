package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/refnet-api/internal/application/ledger"
	"github.com/jhoicas/refnet-api/internal/application/live"
	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/session"
	"github.com/jhoicas/refnet-api/internal/domain/entity"
	domledger "github.com/jhoicas/refnet-api/internal/domain/ledger"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/bootstrap"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
	"github.com/jhoicas/refnet-api/pkg/config"
	pkgjwt "github.com/jhoicas/refnet-api/pkg/jwt"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// env dependencias abiertas para un subcomando.
type env struct {
	cfg    *config.Config
	log    *logger.Logger
	client store.Client
	ledger *ledger.UseCase
	close  func()
}

func open(ctx context.Context, gf *globalFlags) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, codeError(1, "cargar configuración: %s", err)
	}
	level := "warn"
	if gf.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Output: os.Stderr})

	client, closeFn, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, codeError(1, "abrir almacén: %s", err)
	}
	uc := ledger.NewUseCase(
		storerepo.NewTxRunner(client),
		storerepo.NewRestockRepository(client),
		storerepo.NewProductRepository(client),
		storerepo.NewFinancialRecordRepository(client),
		notify.NewLogNotifier(log),
		log,
	)
	return &env{cfg: cfg, log: log, client: client, ledger: uc, close: closeFn}, nil
}

func (gf *globalFlags) session() session.Session {
	return session.Session{UserID: gf.userID, Email: gf.email, Role: session.RoleFinanceManager}
}

func approveCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <restock-id>",
		Short: "Aprueba una reposición y registra su costo en el libro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context(), gf)
			if err != nil {
				return err
			}
			defer e.close()

			res, err := e.ledger.ApproveRestock(cmd.Context(), gf.session(), args[0])
			if err != nil {
				return err
			}
			verb := "Asiento registrado"
			if res.Resumed {
				verb = "Aprobación completada sobre asiento existente"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s  monto %s  saldo %s\n",
				verb, res.Record.ID,
				ledger.FormatAmount(res.Record.Amount),
				ledger.FormatAmount(res.Record.Balance))
			return nil
		},
	}
}

func declineCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decline <restock-id>",
		Short: "Rechaza una reposición pendiente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(cmd.Context(), gf)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.ledger.DeclineRestock(cmd.Context(), gf.session(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reposición %s rechazada\n", args[0])
			return nil
		},
	}
}

func pendingCmd(gf *globalFlags) *cobra.Command {
	var (
		filter string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Lista reposiciones por estado financiero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), gf)
			if err != nil {
				return err
			}
			defer e.close()

			list, err := e.ledger.ListRestocks(cmd.Context(), filter, page)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCTO\tCANTIDAD\tCOSTO\tFINANZAS\tESTADO")
			for _, r := range list.Page.Items {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
					r.ID, productName(r), r.StockAmount, restockCost(r), r.FinanceApproval, r.Status)
			}
			_ = w.Flush()
			s := list.Stats
			fmt.Fprintf(cmd.OutOrStdout(), "\nPágina %d/%d  total %d  pendientes %d  aprobadas %d  rechazadas %d\n",
				list.Page.Page, list.Page.TotalPages, s.Total, s.Pending, s.Approved, s.Declined)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(entity.FinanceApprovalPending), "pending, approved, declined o all")
	cmd.Flags().IntVar(&page, "page", 1, "Página (1-based)")
	return cmd
}

func balanceCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Muestra saldo, ingresos, egresos y utilidad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := open(cmd.Context(), gf)
			if err != nil {
				return err
			}
			defer e.close()

			s, err := e.ledger.Summary(cmd.Context())
			if err != nil {
				return err
			}
			printSummary(cmd, s)
			return nil
		},
	}
}

// watch mantiene una vista viva del libro: cada cambio en financial_records vuelve a
// pedir la lista completa y reimprime el resumen.
func watchCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reimprime el resumen cada vez que cambia el libro",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e, err := open(ctx, gf)
			if err != nil {
				return err
			}
			defer e.close()

			view := live.NewView(e.ledger.ListRecords, e.log, func(items []*entity.FinancialRecord) {
				fmt.Fprintf(cmd.OutOrStdout(), "── %s ──\n", time.Now().Format(time.TimeOnly))
				printSummary(cmd, ledger.Summarize(items))
			})
			if err := view.Refresh(ctx); err != nil {
				return err
			}

			feed := live.NewFeed(e.client, e.log, view)
			if err := feed.Start(ctx, store.TableFinancialRecords); err != nil {
				return err
			}
			defer feed.Stop()

			<-ctx.Done()
			view.Wait()
			return nil
		},
	}
}

func tokenCmd(gf *globalFlags) *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT de desarrollo firmado con JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return codeError(1, "cargar configuración: %s", err)
			}
			if cfg.JWT.Secret == "" {
				return codeError(1, "JWT_SECRET no definido")
			}
			if gf.userID == "" {
				return codeError(1, "--as es obligatorio")
			}
			tok, err := pkgjwt.Generate(cfg.JWT.Secret, gf.userID, gf.email, role, cfg.JWT.Issuer, cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(session.RoleFinanceManager), "driver, finance_manager, supplier o technician")
	return cmd
}

func printSummary(cmd *cobra.Command, s *ledger.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Saldo\t%s\n", s.BalanceLabel)
	fmt.Fprintf(w, "Ingresos\t%s\t%s%%\n", ledger.FormatAmount(s.Revenue), s.RevenuePct.StringFixed(2))
	fmt.Fprintf(w, "Egresos\t%s\t%s%%\n", ledger.FormatAmount(s.Expenses), s.ExpensesPct.StringFixed(2))
	fmt.Fprintf(w, "Utilidad\t%s\n", s.ProfitLabel)
	fmt.Fprintf(w, "Registros\t%d\n", s.Records)
	_ = w.Flush()
}

func productName(r *entity.RestockRequest) string {
	if r.Product == nil {
		return "(sin producto)"
	}
	return r.Product.Name
}

func restockCost(r *entity.RestockRequest) string {
	if r.Product == nil {
		return "-"
	}
	return ledger.FormatAmount(domledger.RestockCost(r.Product.Price, r.StockAmount))
}
