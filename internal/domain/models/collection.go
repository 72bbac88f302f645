package models

// Collection describes one entity collection served by the generic entity
// access layer. Records are schema-free documents; CreateRules lists the
// fields validated on create (validator ValidateMap rules).
type Collection struct {
	Name           string
	Store          string
	OwnerField     string
	OwnerScoped    bool
	ViewPermission string
	EditPermission string
	CreateRules    map[string]interface{}
}

const SharedUsersCollection = "shared-users"

// DefaultOwnerField is stamped on every created record with the resolved
// effective owner key (a lowercased email).
const DefaultOwnerField = "created_by"

var Collections = map[string]Collection{
	"accounts": {
		Name: "accounts", Store: "accounts",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"name": "required"},
	},
	"positions": {
		Name: "positions", Store: "positions",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"symbol": "required"},
	},
	"day-trades": {
		Name: "day-trades", Store: "day_trades",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"symbol": "required"},
	},
	"transactions": {
		Name: "transactions", Store: "transactions",
		ViewPermission: PermissionViewExpenses, EditPermission: PermissionEditExpenses,
		CreateRules: map[string]interface{}{"amount": "required"},
	},
	"budgets": {
		Name: "budgets", Store: "budgets",
		ViewPermission: PermissionViewBudgets, EditPermission: PermissionEditBudgets,
		CreateRules: map[string]interface{}{"name": "required"},
	},
	"categories": {
		Name: "categories", Store: "categories",
		ViewPermission: PermissionViewExpenses, EditPermission: PermissionEditExpenses,
		CreateRules: map[string]interface{}{"name": "required"},
	},
	"cards": {
		Name: "cards", Store: "cards",
		ViewPermission: PermissionViewExpenses, EditPermission: PermissionEditExpenses,
		CreateRules: map[string]interface{}{"name": "required"},
	},
	"goals": {
		Name: "goals", Store: "financial_goals",
		ViewPermission: PermissionViewGoals, EditPermission: PermissionEditGoals,
		CreateRules: map[string]interface{}{"name": "required"},
	},
	"dashboard-widgets": {
		Name: "dashboard-widgets", Store: "dashboard_widgets",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"widget_type": "required"},
	},
	"page-layouts": {
		Name: "page-layouts", Store: "page_layouts",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"page": "required"},
	},
	SharedUsersCollection: {
		Name: SharedUsersCollection, Store: "shared_users",
		ViewPermission: PermissionViewSettings, EditPermission: PermissionManageUsers,
		CreateRules: map[string]interface{}{"invitedEmail": "required,email"},
	},
	"snapshots": {
		Name: "snapshots", Store: "portfolio_snapshots",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"date": "required"},
	},
	"notes": {
		Name: "notes", Store: "notes",
		ViewPermission: PermissionViewNotes, EditPermission: PermissionEditNotes,
		CreateRules: map[string]interface{}{"title": "required"},
	},
	"portfolio-transactions": {
		Name: "portfolio-transactions", Store: "portfolio_transactions",
		ViewPermission: PermissionViewPortfolio, EditPermission: PermissionEditPortfolio,
		CreateRules: map[string]interface{}{"symbol": "required", "type": "required"},
	},
}

func init() {
	for name, col := range Collections {
		if col.OwnerField == "" {
			col.OwnerField = DefaultOwnerField
		}
		col.OwnerScoped = true
		Collections[name] = col
	}
}

func FindCollection(name string) (Collection, bool) {
	col, ok := Collections[name]
	return col, ok
}
