package ledger

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tidygl-dev/tidygl/internal/config"
	"github.com/tidygl-dev/tidygl/internal/csvio"
	"github.com/tidygl-dev/tidygl/internal/model"
	"github.com/tidygl-dev/tidygl/internal/refdata"
	"github.com/tidygl-dev/tidygl/internal/report"
)

// Result bundles every in-memory derivation of a ledger run.
type Result struct {
	Amounts       []model.AmountRow
	GeneralLedger []model.GeneralLedgerRow
	TrialBalance  []model.MonthlyAccountSummary
	SubAccounts   []SubAccountSummary
	Departments   []DepartmentSummary
	BS            []RollupRecord
	PL            []RollupRecord
}

// Run executes the whole derivation pipeline for a parameters file and
// writes the export CSVs into the configured output directory.
func Run(p *config.Params, log zerolog.Logger) (*Result, error) {
	if p.Title != "" {
		log.Info().Str("title", p.Title).Msg("ledger run started")
	}

	ref, err := refdata.LoadAll(p)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("accounts", ref.Accounts.Len()).Msg("reference tables loaded")

	records, err := csvio.ReadFile(p.Resolve(p.Files.TidyGL), p.Encoding)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	rep := report.New("normalize")
	result.Amounts, err = NewNormalizer(p, ref, rep).Normalize(records)
	rep.Flush(log)
	if err != nil {
		return nil, err
	}
	log.Info().Int("rows", len(result.Amounts)).Msg("journal lines normalized")

	glRep := report.New("general-ledger")
	result.GeneralLedger = BuildGeneralLedger(result.Amounts, ref.Balances, ref.Accounts, glRep)
	glRep.Flush(log)
	log.Info().Int("postings", len(result.GeneralLedger)).Msg("general ledger built")

	tbRep := report.New("trial-balance")
	result.TrialBalance = BuildTrialBalance(result.Amounts, ref.Balances, ref.Accounts, p.Lang, tbRep)
	tbRep.Flush(log)
	log.Info().Int("rows", len(result.TrialBalance)).Msg("trial balance built")

	result.SubAccounts = BuildSubAccountSummary(result.Amounts)
	result.Departments = BuildDepartmentSummary(result.Amounts)
	log.Debug().
		Int("sub_accounts", len(result.SubAccounts)).
		Int("departments", len(result.Departments)).
		Msg("breakdown summaries built")

	totals := TotalsFromRows(result.Amounts, ref.Balances)

	if ref.BSTemplate != nil {
		bsRep := report.New("bs-rollup")
		result.BS, err = RollupBS(ref.BSTemplate, totals, bsRep)
		bsRep.Flush(log)
		if err != nil {
			return nil, fmt.Errorf("BS roll-up: %w", err)
		}
		log.Info().Int("nodes", len(result.BS)).Msg("balance sheet rolled up")
	}

	if ref.PLTemplate != nil {
		plRep := report.New("pl-rollup")
		result.PL, err = RollupPL(ref.PLTemplate, totals, plRep)
		plRep.Flush(log)
		if err != nil {
			return nil, fmt.Errorf("PL roll-up: %w", err)
		}
		log.Info().Int("nodes", len(result.PL)).Msg("profit and loss rolled up")
	}

	if err := Export(p.OutDir, result); err != nil {
		return nil, err
	}
	log.Info().Str("dir", p.OutDir).Msg("derivations exported")

	return result, nil
}
