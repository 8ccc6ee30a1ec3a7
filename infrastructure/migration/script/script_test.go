package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccounts(t *testing.T) {
	input := `external_id,name,nickname,origin
1444838296485002,IVS RIO BRANCO,Rio Branco,meta

7100000000001,Loja TikTok,,tiktok
99,Sem origem
`

	accounts, err := parseAccounts(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, Account{ExternalID: "1444838296485002", Name: "IVS RIO BRANCO", Nickname: "Rio Branco", Origin: "meta"}, accounts[0])
	assert.Equal(t, "tiktok", accounts[1].Origin)
	assert.Empty(t, accounts[1].Nickname)
	assert.Equal(t, "meta", accounts[2].Origin)
}

func TestParseAccounts_OrigemDesconhecida(t *testing.T) {
	_, err := parseAccounts(strings.NewReader("1,Conta,,orkut\n"))

	assert.Error(t, err)
}
