package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/internal/scheduler"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
)

type clientFactory func() *apiClient

func newSyncCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <platform>",
		Short: "Agenda o resync de uma plataforma",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePlatform(args[0])
			if err != nil {
				return err
			}

			var accepted struct {
				Status string `json:"status"`
			}
			if err := newClient().send(cmd.Context(), "POST", "/api/campaigns/sync/"+string(p), nil, &accepted); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "resync de %s %s\n", p, accepted.Status)
			return nil
		},
	}
}

func newStatusCmd(newClient clientFactory, asJSON func() bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Mostra o estado dos workers de resync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status []scheduler.PlatformSyncStatus
			if err := newClient().get(cmd.Context(), "/api/campaigns/sync/status", nil, &status); err != nil {
				return err
			}

			if asJSON() {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(status))
				return nil
			}
			return printStatus(cmd.OutOrStdout(), status)
		},
	}
}

func printStatus(out io.Writer, status []scheduler.PlatformSyncStatus) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLATFORM\tRUNNING\tPENDING\tRUNS\tFAILURES\tLAST COMPLETED\tLAST ERROR")
	for _, s := range status {
		completed := "-"
		if s.LastCompletedAt != nil {
			completed = s.LastCompletedAt.Local().Format(time.DateTime)
		}
		fmt.Fprintf(w, "%s\t%t\t%t\t%d\t%d\t%s\t%s\n",
			s.Platform, s.Running, s.Pending, s.Runs, s.Failures, completed, s.LastError)
	}
	return w.Flush()
}

func newBudgetCmd(newClient clientFactory) *cobra.Command {
	var (
		entityType string
		previous   int64
	)

	cmd := &cobra.Command{
		Use:   "budget <platform> <entity-id> <cents>",
		Short: "Altera o orçamento diário de uma campanha ou conjunto de anúncios",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePlatform(args[0])
			if err != nil {
				return err
			}
			cents, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return errors.Errorf("orçamento inválido: %q", args[2])
			}

			body := map[string]any{
				"new_budget_cents": cents,
				"entity_type":      entityType,
			}
			if cmd.Flags().Changed("previous") {
				body["previous_budget_cents"] = previous
			}

			var resp struct {
				Key           string `json:"entity_key"`
				MutationState string `json:"mutation_state"`
			}
			path := fmt.Sprintf("/api/campaigns/live/%s/%s/budget", p, url.PathEscape(args[1]))
			if err := newClient().send(cmd.Context(), "PATCH", path, body, &resp); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.Key, resp.MutationState)
			return nil
		},
	}

	cmd.Flags().StringVar(&entityType, "type", string(domain.EntityTypeAdset), "campaign ou adset")
	cmd.Flags().Int64Var(&previous, "previous", 0, "orçamento atual esperado, em centavos")

	return cmd
}

func newActivityCmd(newClient clientFactory, asJSON func() bool) *cobra.Command {
	var limit uint64

	cmd := &cobra.Command{
		Use:   "activity <entity-id>",
		Short: "Lista o histórico de mutações de uma entidade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if limit > 0 {
				query.Set("limit", strconv.FormatUint(limit, 10))
			}

			var entries []domain.ActivityLogEntryResponse
			path := fmt.Sprintf("/api/campaigns/live/%s/activity-log", url.PathEscape(args[0]))
			if err := newClient().get(cmd.Context(), path, query, &entries); err != nil {
				return err
			}

			if asJSON() {
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(entries))
				return nil
			}
			return printActivity(cmd.OutOrStdout(), entries)
		},
	}

	cmd.Flags().Uint64Var(&limit, "limit", 20, "quantidade máxima de registros")

	return cmd
}

func printActivity(out io.Writer, entries []domain.ActivityLogEntryResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPLATFORM\tTYPE\tACTION\tOLD\tNEW\tDELTA")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format(time.DateTime), e.Platform, e.EntityType, e.Action,
			cents(e.OldBudget), cents(e.NewBudget), delta(e))
	}
	return w.Flush()
}

func cents(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", float64(*v)/100)
}

func delta(e domain.ActivityLogEntryResponse) string {
	if e.BudgetDeltaCents == nil {
		return "-"
	}
	if e.BudgetChangePct == nil {
		return cents(e.BudgetDeltaCents)
	}
	return fmt.Sprintf("%s (%+.1f%%)", cents(e.BudgetDeltaCents), *e.BudgetChangePct)
}
