package qa

import (
	"context"

	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/common/logger"
)

type handlerFunc func(ctx context.Context, q *Question) (*Answer, error)

// route binds trigger keywords to a domain handler. A question matches when
// it contains any keyword and none of the excludes; excludes keep overlapping
// vocabularies apart, e.g. "לקוח" inside an order question.
type route struct {
	domain   string
	keywords []string
	excludes []string
	handle   handlerFunc
}

func (r route) matches(q *Question) bool {
	for _, ex := range r.excludes {
		if q.Has(ex) {
			return false
		}
	}
	for _, kw := range r.keywords {
		if q.Has(kw) {
			return true
		}
	}
	return false
}

// Engine routes questions across the business domains. Route order is
// significant: the first matching route wins, so broader vocabularies sit
// below the more specific ones that share their keywords.
type Engine struct {
	store  store.Store
	log    logger.Logger
	routes []route
}

func NewEngine(st store.Store, log logger.Logger) *Engine {
	e := &Engine{store: st, log: log}
	e.routes = []route{
		{domain: "budgets", keywords: []string{"תקציב"}, handle: e.answerBudgets},
		{domain: "orders", keywords: []string{"הזמנה", "הזמנות"}, handle: e.answerOrders},
		{domain: "customers", keywords: []string{"לקוח"}, excludes: []string{"הזמנה"}, handle: e.answerCustomers},
		{domain: "departments", keywords: []string{"מחלקה"}, handle: e.answerDepartments},
		{domain: "employees", keywords: []string{"עובד"}, handle: e.answerEmployees},
		{domain: "events", keywords: []string{"אירוע"}, handle: e.answerEvents},
		{domain: "finances", keywords: []string{"הכנסות", "הוצאות"}, handle: e.answerFinances},
		{domain: "inventories", keywords: []string{"מלאי"}, handle: e.answerInventories},
		{domain: "payments", keywords: []string{"תשלום", "שילמנו"}, handle: e.answerPayments},
		{domain: "proposals", keywords: []string{"הצעת רכש"}, handle: e.answerProposals},
		{domain: "procurements", keywords: []string{"תעודת הרכש", "po"}, handle: e.answerProcurements},
		{domain: "products", keywords: []string{"מוצר"}, handle: e.answerProducts},
		{domain: "projects", keywords: []string{"פרויקט"}, handle: e.answerProjects},
		{domain: "suppliers", keywords: []string{"ספק"}, excludes: []string{"תעודת הרכש"}, handle: e.answerSuppliers},
		{domain: "tasks", keywords: []string{"משימה", "משימות"}, handle: e.answerTasks},
	}
	return e
}

// Answer dispatches the question to the first matching route. It returns
// (nil, nil) when no route matches; the caller decides whether to fall back
// to similarity search.
func (e *Engine) Answer(ctx context.Context, q *Question) (*Answer, error) {
	for _, r := range e.routes {
		if !r.matches(q) {
			continue
		}
		ans, err := r.handle(ctx, q)
		if err != nil {
			return nil, err
		}
		if ans != nil {
			ans.Domain = r.domain
		}
		return ans, nil
	}
	return nil, nil
}
