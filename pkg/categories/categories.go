package categories

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry maps a category name to the keywords that select it.
type Entry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Table is an ordered list of category entries. Order matters: when a
// description matches keywords from more than one category, the first entry
// in the table wins.
type Table []Entry

// Default is the built-in keyword table. ATM comes before Food on purpose so
// that POS lines naming a store (e.g. "POS SHOPRITE LEKKI") classify as ATM.
var Default = Table{
	{Name: "Salary", Keywords: []string{"salary", "payroll", "wages", "payment for"}},
	{Name: "ATM", Keywords: []string{"atm", "pos", "withdrawal"}},
	{Name: "Transfer", Keywords: []string{"transfer", "trf", "xfer", "fip"}},
	{Name: "Bills", Keywords: []string{"dstv", "gotv", "electricity", "water", "utility", "bill", "phcn"}},
	{Name: "Food", Keywords: []string{"restaurant", "food", "cafe", "dining", "shoprite", "spar"}},
	{Name: "Shopping", Keywords: []string{"mall", "store", "market", "shop", "jumia", "konga"}},
	{Name: "Transport", Keywords: []string{"uber", "bolt", "taxi", "fare", "transport"}},
	{Name: "Airtime", Keywords: []string{"airtime", "data", "mtn", "glo", "airtel", "9mobile"}},
	{Name: "Entertainment", Keywords: []string{"cinema", "movie", "game", "netflix", "bet9ja", "betting"}},
	{Name: "Health", Keywords: []string{"hospital", "pharmacy", "medical", "drug", "clinic"}},
	{Name: "Bank Charges", Keywords: []string{"charge", "fee", "commission", "vat"}},
}

// Fallback is returned when no keyword matches a description.
const Fallback = "Others"

// Uncategorized is the category assigned during aggregation to expense
// transactions that carry no category at all.
const Uncategorized = "Uncategorized"

// Categorize returns the first category whose keywords match the description.
func (t Table) Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, entry := range t {
		for _, keyword := range entry.Keywords {
			if strings.Contains(desc, keyword) {
				return entry.Name
			}
		}
	}
	return Fallback
}

type tableFile struct {
	Categories []Entry `yaml:"categories"`
}

// Load reads a category table from a YAML file of the form:
//
//	categories:
//	  - name: Groceries
//	    keywords: [shoprite, spar]
//
// Entries keep file order, so precedence can be tuned per deployment.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse categories yaml: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("categories file has no entries")
	}
	return Table(f.Categories), nil
}
