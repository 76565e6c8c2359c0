package hledgerweb

import (
	"context"
	"strings"
)

// fakeRunner serves canned hledger outputs keyed by subcommand and records
// every invocation, so report operations are tested without a hledger binary.
type fakeRunner struct {
	outputs map[string]string
	err     error
	calls   [][]string
}

func (r *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	r.calls = append(r.calls, args)
	if r.err != nil {
		return nil, r.err
	}
	// Args always start with "-f <file> <subcommand>".
	return []byte(r.outputs[args[2]]), nil
}

// count returns how many recorded calls ran the given subcommand.
func (r *fakeRunner) count(subcommand string) int {
	n := 0
	for _, call := range r.calls {
		if len(call) > 2 && call[2] == subcommand {
			n++
		}
	}
	return n
}

// lastCall returns the arguments of the most recent invocation, joined.
func (r *fakeRunner) lastCall() string {
	if len(r.calls) == 0 {
		return ""
	}
	return strings.Join(r.calls[len(r.calls)-1], " ")
}

func newTestService(file string, runner Runner) *Service {
	cache := NewCache()
	return &Service{
		Config:  Config{File: file},
		Runner:  runner,
		Cache:   cache,
		Mutator: NewMutator(cache),
	}
}

// printJSON is a two-entry `hledger print -O json` payload: an opening
// balance and a vnd expense whose quantity hits the thousands-separator
// ambiguity (mantissa 139400, 3 decimal places).
const printJSON = `[
  {
    "tindex": 1,
    "tdate": "2025-08-01",
    "tdate2": "",
    "tdescription": "Opening balance",
    "tcomment": "",
    "tpostings": [
      {
        "paccount": "assets:bank:checking",
        "pamount": [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 5000000, "decimalPlaces": 0, "floatingPoint": 5000000}}],
        "pcomment": "",
        "pbalanceassertion": null
      },
      {
        "paccount": "equity:opening",
        "pamount": [],
        "pcomment": "",
        "pbalanceassertion": null
      }
    ],
    "tsourcepos": [
      {"sourceName": "main.journal", "sourceLine": 1, "sourceColumn": 1},
      {"sourceName": "main.journal", "sourceLine": 4, "sourceColumn": 1}
    ]
  },
  {
    "tindex": 2,
    "tdate": "2025-08-03",
    "tdate2": "",
    "tdescription": "Pho lunch",
    "tcomment": "trip:hanoi\n",
    "tpostings": [
      {
        "paccount": "expenses:food",
        "pamount": [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 139400, "decimalPlaces": 3, "floatingPoint": 139.4}}],
        "pcomment": "paid:cash",
        "pbalanceassertion": null
      },
      {
        "paccount": "assets:cash",
        "pamount": [{"acommodity": "vnd", "aquantity": {"decimalMantissa": -139400, "decimalPlaces": 3, "floatingPoint": -139.4}}],
        "pcomment": "",
        "pbalanceassertion": {"baamount": {"acommodity": "vnd", "aquantity": {"decimalMantissa": 4860600, "decimalPlaces": 0, "floatingPoint": 4860600}}}
      }
    ],
    "tsourcepos": [
      {"sourceName": "main.journal", "sourceLine": 5, "sourceColumn": 1},
      {"sourceName": "main.journal", "sourceLine": 9, "sourceColumn": 1}
    ]
  }
]`

// balJSON is a `hledger bal --tree -O json` payload: rows then totals.
const balJSON = `[
  [
    ["assets", "assets", 1, [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 4860600, "decimalPlaces": 0, "floatingPoint": 4860600}}]],
    ["assets:bank", "bank", 2, [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 5000000, "decimalPlaces": 0, "floatingPoint": 5000000}}]],
    ["expenses:food", "food", 1, [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 139400, "decimalPlaces": 3, "floatingPoint": 139.4}}]]
  ],
  [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 5000000, "decimalPlaces": 0, "floatingPoint": 5000000}}]
]`

// isJSON is a `hledger is -O json` compound payload. The second subreport's
// row name uses the nested-list encoding some versions emit.
const isJSON = `{
  "cbrTitle": "Income Statement 2025-08-01..2025-08-25",
  "cbrSubreports": [
    [
      "Revenues",
      {
        "prRows": [
          {"prrName": "income:salary", "prrAmounts": [[{"acommodity": "vnd", "aquantity": {"decimalMantissa": 20000000, "decimalPlaces": 0, "floatingPoint": 20000000}}]]}
        ],
        "prTotals": {"prrAmounts": [[{"acommodity": "vnd", "aquantity": {"decimalMantissa": 20000000, "decimalPlaces": 0, "floatingPoint": 20000000}}]]}
      },
      false
    ],
    [
      "Expenses",
      {
        "prRows": [
          {"prrName": ["expenses:food", "food"], "prrAmounts": [[{"acommodity": "vnd", "aquantity": {"decimalMantissa": 139400, "decimalPlaces": 3, "floatingPoint": 139.4}}]]}
        ],
        "prTotals": {"prrAmounts": [[{"acommodity": "vnd", "aquantity": {"decimalMantissa": 139400, "decimalPlaces": 3, "floatingPoint": 139.4}}]]}
      },
      true
    ]
  ],
  "cbrTotals": {"prrAmounts": [[{"acommodity": "vnd", "aquantity": {"decimalMantissa": 19860600, "decimalPlaces": 0, "floatingPoint": 19860600}}]]}
}`

// regJSON is a `hledger reg -O json` payload: 5-tuples with a null secondary
// date.
const regJSON = `[
  ["2025-08-01", null, "Opening balance",
    {"paccount": "assets:bank:checking", "pamount": [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 5000000, "decimalPlaces": 0, "floatingPoint": 5000000}}], "pcomment": "", "pbalanceassertion": null},
    [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 5000000, "decimalPlaces": 0, "floatingPoint": 5000000}}]],
  ["2025-08-03", null, "Pho lunch",
    {"paccount": "assets:cash", "pamount": [{"acommodity": "vnd", "aquantity": {"decimalMantissa": -139400, "decimalPlaces": 3, "floatingPoint": -139.4}}], "pcomment": "", "pbalanceassertion": null},
    [{"acommodity": "vnd", "aquantity": {"decimalMantissa": 4860600, "decimalPlaces": 0, "floatingPoint": 4860600}}]]
]`

const accountsText = "assets:bank:checking\nassets:cash\nexpenses:food\nincome:salary\n"
