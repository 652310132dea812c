package sqlgen

import (
	"fmt"
	"io"

	"github.com/cleared-dev/ledgerload/internal/model"
)

// WriteAccounts writes one INSERT per account, in the given order, wrapped in
// a transaction. parent_id is resolved by code when the statement runs, so a
// parent must come before its children.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	p := &printer{w: w}
	p.printf("-- Insert accounts in hierarchical order\n")
	p.printf("BEGIN;\n")

	for _, acct := range accounts {
		extra, err := jsonb(acct.Extra)
		if err != nil {
			return fmt.Errorf("account %s: %w", acct.Code, err)
		}

		parent := "NULL"
		if acct.HasParent() {
			parent = fmt.Sprintf("(SELECT id FROM accounts WHERE code = %s)", Literal(acct.ParentCode))
		}

		p.printf("INSERT INTO accounts (name, type, code, normal_side, extra_data, parent_id)\n")
		p.printf("VALUES (%s, '%s', %s, '%s', %s, %s);\n",
			Literal(acct.Name), TypeLabel(acct.Type), Literal(acct.Code), SideLabel(acct.NormalSide), extra, parent)
	}

	p.printf("\nCOMMIT;\n")
	return p.err
}
