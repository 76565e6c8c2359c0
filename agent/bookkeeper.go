package agent

import (
	"context"

	"github.com/tdvan/hledgerweb"
	"github.com/tdvan/hledgerweb/renderer"
	"google.golang.org/genai"
)

// NewBookkeeper creates the expert that reads the user's journal through the
// core service. All its tools are read-only report operations; the assistant
// never writes to the ledger.
func NewBookkeeper(svc *hledgerweb.Service) *Expert {
	lib := []Function{
		balancesFunc(svc),
		incomeStatementFunc(svc),
		transactionsFunc(svc),
		accountsFunc(svc),
	}
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He reads the user's accounting
		journal and can report account balances, the income statement, the
		list of accounts and the raw transactions for any date range.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's plain-text
				accounting journal. Use the tools to fetch real figures; never
				invent amounts. Dates use YYYY-MM-DD; date ranges are begin
				inclusive, end exclusive. Account names are colon-separated
				hierarchies like expenses:food:groceries.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

var dateParams = map[string]*genai.Schema{
	"begin": {
		Type:        genai.TypeString,
		Description: "Start of the date range, inclusive, YYYY-MM-DD. Empty for no lower bound.",
	},
	"end": {
		Type:        genai.TypeString,
		Description: "End of the date range, exclusive, YYYY-MM-DD. Empty for no upper bound.",
	},
}

func balancesFunc(svc *hledgerweb.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Balances",
			Description: "Account balances as a tree, one row per account with its amounts per commodity.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {Type: genai.TypeString, Description: "hledger account query, empty for all accounts."},
					"begin": dateParams["begin"],
					"end":   dateParams["end"],
				},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown balance table."},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			rows, err := svc.Balances(ctx, stringArg(args, "query"), 0, stringArg(args, "begin"), stringArg(args, "end"))
			if err != nil {
				return errResponse(id, "Balances", err)
			}
			return okResponse(id, "Balances", renderer.BalancesMarkdown(rows))
		},
	}
}

func incomeStatementFunc(svc *hledgerweb.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "IncomeStatement",
			Description: "Revenues and expenses over a date range, with per-section and net totals.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: dateParams,
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown income statement."},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			report, err := svc.IncomeStatement(ctx, 0, stringArg(args, "begin"), stringArg(args, "end"))
			if err != nil {
				return errResponse(id, "IncomeStatement", err)
			}
			return okResponse(id, "IncomeStatement", renderer.CompoundMarkdown(report, "Net"))
		},
	}
}

func transactionsFunc(svc *hledgerweb.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Transactions",
			Description: "Journal entries matching a query and date range, with their postings and amounts.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {Type: genai.TypeString, Description: "hledger query, empty for all entries."},
					"begin": dateParams["begin"],
					"end":   dateParams["end"],
				},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown transaction list."},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			txs, err := svc.Transactions(ctx, stringArg(args, "query"), stringArg(args, "begin"), stringArg(args, "end"))
			if err != nil {
				return errResponse(id, "Transactions", err)
			}
			return okResponse(id, "Transactions", renderer.TransactionsMarkdown(txs))
		},
	}
}

func accountsFunc(svc *hledgerweb.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Accounts",
			Description: "All account names used in the journal.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response:    &genai.Schema{Type: genai.TypeString, Description: "One account name per line."},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			accounts, err := svc.Accounts(ctx)
			if err != nil {
				return errResponse(id, "Accounts", err)
			}
			out := ""
			for _, a := range accounts {
				out += a + "\n"
			}
			return okResponse(id, "Accounts", out)
		},
	}
}
