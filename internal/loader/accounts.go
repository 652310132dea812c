package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/sqlgen"
)

const (
	insertAccountSQL = `INSERT INTO accounts (name, type, code, normal_side, extra_data, parent_id)
VALUES ($1, $2, $3, $4, $5::jsonb, NULL)
RETURNING id`
	selectAccountSQL = `SELECT id FROM accounts WHERE code = $1`
	linkParentSQL    = `UPDATE accounts SET parent_id = $1 WHERE id = $2`
)

// AccountsResult summarizes LoadAccounts.
type AccountsResult struct {
	Inserted   int
	Linked     int
	Unresolved []string // codes whose parent could not be found
}

// LoadAccounts inserts every account, then links parents in a second pass.
// Parents are looked up among the new rows first and then among rows already
// in the table, so insert order does not matter.
func (l *Loader) LoadAccounts(ctx context.Context, q Querier, accounts []model.Account) (AccountsResult, error) {
	var res AccountsResult
	ids := make(map[string]int64, len(accounts))

	for _, acct := range accounts {
		extra, err := model.EncodeJSON(acct.Extra)
		if err != nil {
			return res, fmt.Errorf("account %s: %w", acct.Code, err)
		}

		var id int64
		err = q.QueryRow(ctx, insertAccountSQL,
			acct.Name, sqlgen.TypeLabel(acct.Type), acct.Code, sqlgen.SideLabel(acct.NormalSide), extra,
		).Scan(&id)
		if err != nil {
			return res, fmt.Errorf("inserting account %s: %w", acct.Code, err)
		}
		ids[acct.Code] = id
		res.Inserted++
	}

	for _, acct := range accounts {
		if !acct.HasParent() {
			continue
		}

		parentID, ok := ids[acct.ParentCode]
		if !ok {
			err := q.QueryRow(ctx, selectAccountSQL, acct.ParentCode).Scan(&parentID)
			if errors.Is(err, pgx.ErrNoRows) {
				l.log.Warn().Str("code", acct.Code).Str("parent", acct.ParentCode).Msg("parent account not found")
				res.Unresolved = append(res.Unresolved, acct.Code)
				continue
			}
			if err != nil {
				return res, fmt.Errorf("looking up parent %s: %w", acct.ParentCode, err)
			}
		}

		if _, err := q.Exec(ctx, linkParentSQL, parentID, ids[acct.Code]); err != nil {
			return res, fmt.Errorf("linking account %s: %w", acct.Code, err)
		}
		res.Linked++
	}

	l.log.Info().Int("inserted", res.Inserted).Int("linked", res.Linked).Msg("accounts loaded")
	return res, nil
}
