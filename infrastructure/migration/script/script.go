package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-ops-api/internal/config"
	"github.com/vfg2006/ads-ops-api/internal/domain"
	"github.com/vfg2006/ads-ops-api/pkg/log"
	"github.com/vfg2006/ads-ops-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id          VARCHAR(12) PRIMARY KEY,
		external_id VARCHAR(64) NOT NULL,
		name        TEXT NOT NULL,
		nickname    TEXT,
		origin      VARCHAR(32) NOT NULL,
		status      VARCHAR(16) NOT NULL DEFAULT 'ACTIVE'
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		lastname      TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL,
		avatar_url    TEXT,
		deleted       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_account_map (
		campaign_id VARCHAR(64) PRIMARY KEY,
		platform    VARCHAR(16) NOT NULL DEFAULT '',
		account_id  VARCHAR(12) NOT NULL REFERENCES accounts (id),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campaign_account_map_account ON campaign_account_map (account_id)`,
	`CREATE TABLE IF NOT EXISTS campaign_activity_log (
		id          VARCHAR(12) PRIMARY KEY,
		platform    VARCHAR(16) NOT NULL,
		entity_type VARCHAR(16) NOT NULL,
		entity_id   VARCHAR(64) NOT NULL,
		action      VARCHAR(32) NOT NULL,
		old_budget  BIGINT,
		new_budget  BIGINT,
		user_id     INTEGER REFERENCES users (id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Account é uma linha do CSV de carga inicial: external_id,name,nickname,origin
type Account struct {
	ExternalID string
	Name       string
	Nickname   string
	Origin     string
}

func main() {
	accountsFile := flag.String("accounts", "", "CSV com as contas internas a carregar")
	adminEmail := flag.String("admin-email", "", "e-mail do usuário administrador a criar")
	adminPassword := flag.String("admin-password", "", "senha do usuário administrador")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTables(ctx, tx); err != nil {
			return err
		}
		if err := addActivityLogIndex(ctx, tx); err != nil {
			return err
		}

		if *accountsFile != "" {
			accounts, err := readAccountsFile(*accountsFile)
			if err != nil {
				return err
			}
			if err := insertAccounts(ctx, tx, accounts); err != nil {
				return err
			}
		}

		if *adminEmail != "" {
			return insertAdmin(ctx, tx, *adminEmail, *adminPassword)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}

func createTables(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar tabela: %w", err)
		}
	}
	logrus.Infof("%d tabelas verificadas", len(schema))
	return nil
}

// addActivityLogIndex cria o índice do histórico por entidade quando ainda não existe
func addActivityLogIndex(ctx context.Context, tx *sql.Tx) error {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_indexes
			WHERE tablename = 'campaign_activity_log'
			AND indexname = 'campaign_activity_log_entity_idx'
		)
	`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar índice existente: %w", err)
	}

	if exists {
		logrus.Info("Índice do histórico de atividades já existe")
		return nil
	}

	_, err = tx.ExecContext(ctx, `CREATE INDEX campaign_activity_log_entity_idx ON campaign_activity_log (entity_id, created_at DESC)`)
	if err != nil {
		return fmt.Errorf("erro ao criar índice: %w", err)
	}

	logrus.Info("Índice do histórico de atividades criado")
	return nil
}

func readAccountsFile(path string) ([]Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer f.Close()

	return parseAccounts(f)
}

// parseAccounts ignora o cabeçalho e linhas em branco; origin vazio vira meta
func parseAccounts(r io.Reader) ([]Account, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV inválido: %w", err)
	}

	var accounts []Account
	for i, record := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "external_id") {
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		a := Account{
			ExternalID: strings.TrimSpace(record[0]),
			Name:       strings.TrimSpace(record[1]),
			Origin:     string(domain.PlatformMeta),
		}
		if len(record) > 2 {
			a.Nickname = strings.TrimSpace(record[2])
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			p, err := domain.ParsePlatform(record[3])
			if err != nil {
				return nil, fmt.Errorf("linha %d: %w", i+1, err)
			}
			a.Origin = string(p)
		}

		accounts = append(accounts, a)
	}

	return accounts, nil
}

func insertAccounts(ctx context.Context, tx *sql.Tx, accounts []Account) error {
	logrus.Infof("Iniciando inserção de %d contas...", len(accounts))

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO accounts (id, external_id, name, nickname, origin)
		SELECT $1, $2, $3, NULLIF($4, ''), $5
		WHERE NOT EXISTS (SELECT 1 FROM accounts WHERE external_id = $2 AND origin = $5)
	`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para accounts: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, a := range accounts {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		res, err := stmt.ExecContext(ctx, id, a.ExternalID, a.Name, a.Nickname, a.Origin)
		if err != nil {
			return fmt.Errorf("erro ao inserir conta %s: %w", a.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	logrus.Infof("Inserção de contas concluída. Novas: %d, já existentes: %d", inserted, len(accounts)-inserted)
	return nil
}

func insertAdmin(ctx context.Context, tx *sql.Tx, email, password string) error {
	if len(password) < 8 {
		return fmt.Errorf("a senha do administrador precisa de pelo menos 8 caracteres")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role_id)
		VALUES ('Admin', $1, $2, 1)
		ON CONFLICT (email) DO NOTHING
	`, strings.ToLower(strings.TrimSpace(email)), string(hash))
	if err != nil {
		return fmt.Errorf("erro ao criar administrador: %w", err)
	}

	logrus.WithField("email", email).Info("Usuário administrador verificado")
	return nil
}
