package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/ads-ops-api/infrastructure/integrator/meta/domain"
)

// GetAdAccount busca o nome da conta de anúncios, usado na listagem de campanhas
func (c *MetaClient) GetAdAccount(ctx context.Context, accountID string) (*metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name")

	var account metadomain.AdAccount
	if err := c.get(ctx, fmt.Sprintf("%s/%s", c.cfg.URL, actID(accountID)), params, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// actID normaliza o id da conta para o formato act_<id>
func actID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
