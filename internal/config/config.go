// Package config loads the per-run parameters file. The file names every
// input CSV, the output directory, and the run flags; it is JSON by
// convention but YAML is accepted by extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Files names the input CSVs of a ledger run, relative to BaseDir unless
// absolute.
type Files struct {
	TidyGL           string `json:"tidy_gl" yaml:"tidy_gl"`
	AccountMapping   string `json:"account_mapping" yaml:"account_mapping"`
	TaxCategory      string `json:"tax_category,omitempty" yaml:"tax_category,omitempty"`
	TradingPartner   string `json:"trading_partner,omitempty" yaml:"trading_partner,omitempty"`
	BeginningBalance string `json:"beginning_balance,omitempty" yaml:"beginning_balance,omitempty"`
	BSTemplate       string `json:"bs_template,omitempty" yaml:"bs_template,omitempty"`
	PLTemplate       string `json:"pl_template,omitempty" yaml:"pl_template,omitempty"`
}

// SalesAccounts configures the digital-sales split. When Sales is empty the
// split is disabled and rows pass through untouched.
type SalesAccounts struct {
	Sales      string `json:"sales" yaml:"sales"`
	Digital    string `json:"digital" yaml:"digital"`
	NonDigital string `json:"non_digital" yaml:"non_digital"`
}

// Params is the parameters file for a run.
type Params struct {
	Title    string            `json:"title,omitempty" yaml:"title,omitempty"`
	BaseDir  string            `json:"base_dir,omitempty" yaml:"base_dir,omitempty"`
	OutDir   string            `json:"out_dir" yaml:"out_dir"`
	Encoding string            `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Lang     string            `json:"lang,omitempty" yaml:"lang,omitempty"`
	Currency string            `json:"currency,omitempty" yaml:"currency,omitempty"`
	Debug    bool              `json:"DEBUG,omitempty" yaml:"DEBUG,omitempty"`
	Trace    bool              `json:"TRACE,omitempty" yaml:"TRACE,omitempty"`
	Files    Files             `json:"files" yaml:"files"`
	Sales    SalesAccounts     `json:"sales_accounts,omitempty" yaml:"sales_accounts,omitempty"`
	Columns  map[string]string `json:"columns,omitempty" yaml:"columns,omitempty"`
}

// Load reads a parameters file. ".yaml"/".yml" parse as YAML, everything
// else as JSON.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameters: %w", err)
	}

	p := &Params{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing parameters %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("parsing parameters %s: %w", path, err)
		}
	}

	p.applyDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Params) applyDefaults() {
	if p.Lang == "" {
		p.Lang = "ja"
	}
	if p.Currency == "" {
		p.Currency = "JPY"
	}
	if p.OutDir == "" {
		p.OutDir = "out"
	}
}

func (p *Params) validate() error {
	if p.Files.TidyGL == "" {
		return fmt.Errorf("parameters: files.tidy_gl is required")
	}
	if p.Files.AccountMapping == "" {
		return fmt.Errorf("parameters: files.account_mapping is required")
	}
	if p.Lang != "ja" && p.Lang != "en" {
		return fmt.Errorf("parameters: lang must be \"ja\" or \"en\", got %q", p.Lang)
	}
	return nil
}

// Resolve joins a file name with BaseDir unless it is already absolute or
// empty.
func (p *Params) Resolve(name string) string {
	if name == "" || filepath.IsAbs(name) || p.BaseDir == "" {
		return name
	}
	return filepath.Join(p.BaseDir, name)
}

// Column translates a logical tidy-GL column name through the configured
// column mapping, defaulting to the logical name itself.
func (p *Params) Column(logical string) string {
	if actual, ok := p.Columns[logical]; ok && actual != "" {
		return actual
	}
	return logical
}
