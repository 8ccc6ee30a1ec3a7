package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/ads-ops-api/pkg/log"
)

const envPrefix = "LIVECTL"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "livectl",
		Short:         "Operação das campanhas ao vivo pela API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(v.GetString("log-level"))
		},
	}

	flags := root.PersistentFlags()
	flags.String("url", "http://localhost:8000", "endereço da API (LIVECTL_URL)")
	flags.String("token", "", "token JWT de um usuário admin ou supervisor (LIVECTL_TOKEN)")
	flags.String("log-level", "warn", "nível de log")
	flags.Bool("json", false, "imprime a resposta da API em JSON")
	_ = v.BindPFlags(flags)

	newClient := func() *apiClient {
		return newAPIClient(v.GetString("url"), v.GetString("token"))
	}

	asJSON := func() bool { return v.GetBool("json") }

	root.AddCommand(
		newSyncCmd(newClient),
		newStatusCmd(newClient, asJSON),
		newBudgetCmd(newClient),
		newActivityCmd(newClient, asJSON),
	)

	return root
}
