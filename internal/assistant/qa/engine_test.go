package qa

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/models"
)

func newTestEngine(t *testing.T) (*Engine, *store.Fake) {
	fake := store.NewFake()
	return NewEngine(fake, logger.NewTestLogger(t)), fake
}

func ask(t *testing.T, e *Engine, companyID primitive.ObjectID, message string) *Answer {
	t.Helper()
	ans, err := e.Answer(context.Background(), NewQuestion(companyID, message))
	require.NoError(t, err)
	return ans
}

func TestAnswerNoRouteMatches(t *testing.T) {
	e, _ := newTestEngine(t)
	ans := ask(t, e, primitive.NewObjectID(), "מה מזג האוויר היום?")
	assert.Nil(t, ans, "unrouted questions fall through to similarity search")
}

func TestBudgetAmount(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollBudgets, models.Budget{
		ID:                      primitive.NewObjectID(),
		CompanyID:               companyID,
		DepartmentOrProjectName: "שיווק",
		Amount:                  50000,
	})

	ans := ask(t, e, companyID, "כמה תקציב יש למחלקת שיווק?")
	require.NotNil(t, ans)
	assert.Equal(t, "budgets", ans.Domain)
	assert.Equal(t, OutcomeAnswered, ans.Outcome)
	assert.Equal(t, `סכום התקציב של שיווק הוא 50000 ש"ח.`, ans.Text)
}

func TestBudgetNotFound(t *testing.T) {
	e, _ := newTestEngine(t)
	ans := ask(t, e, primitive.NewObjectID(), "מה התקציב של מחלקת כספים?")
	require.NotNil(t, ans)
	assert.Equal(t, OutcomeNotFound, ans.Outcome)
	assert.Contains(t, ans.Text, "לא מצאתי תקציב עבור כספים")
}

func TestBudgetYearFilter(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollBudgets,
		models.Budget{
			ID:                      primitive.NewObjectID(),
			CompanyID:               companyID,
			DepartmentOrProjectName: "שיווק",
			Amount:                  10000,
			StartDate:               time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		models.Budget{
			ID:                      primitive.NewObjectID(),
			CompanyID:               companyID,
			DepartmentOrProjectName: "שיווק",
			Amount:                  20000,
			StartDate:               time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	)

	ans := ask(t, e, companyID, "כמה תקציב היה בשנת 2024 למחלקת שיווק?")
	require.NotNil(t, ans)
	assert.Equal(t, `סכום התקציב של שיווק הוא 20000 ש"ח.`, ans.Text)
}

func TestOrdersWinOverCustomers(t *testing.T) {
	e, _ := newTestEngine(t)
	ans := ask(t, e, primitive.NewObjectID(), "מה הסטטוס של הזמנה של לקוח אורן?")
	require.NotNil(t, ans)
	assert.Equal(t, "orders", ans.Domain)
}

func TestCustomerCrossTenantIsolation(t *testing.T) {
	e, fake := newTestEngine(t)
	companyA := primitive.NewObjectID()
	companyB := primitive.NewObjectID()
	fake.Add(store.CollCustomers, models.Customer{
		ID:        primitive.NewObjectID(),
		CompanyID: companyB,
		Name:      "גלובל",
		Email:     "info@global.example",
	})

	ans := ask(t, e, companyA, "מה המייל של לקוח גלובל?")
	require.NotNil(t, ans)
	assert.Equal(t, OutcomeNotFound, ans.Outcome)
	assert.Equal(t, "לא מצאתי את הלקוח גלובל.", ans.Text)
}

func TestEmployeeLastNameRegex(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollEmployees, models.Employee{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		Name:      "דנה",
		LastName:  "לוי",
		Role:      "מנהלת כספים",
	})

	ans := ask(t, e, companyID, "מה התפקיד של עובד לוי?")
	require.NotNil(t, ans)
	assert.Equal(t, "תפקידו של דנה לוי הוא מנהלת כספים.", ans.Text)
}

func TestEmployeeNameMatchCaseInsensitive(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollEmployees, models.Employee{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		Name:      "Dana",
		LastName:  "Levi",
		Email:     "dana@corp.example",
	})

	// Questions are lowercased before matching, stored names are not.
	ans := ask(t, e, companyID, "מה המייל של עובד Dana?")
	require.NotNil(t, ans)
	assert.Equal(t, "כתובת המייל של Dana Levi היא dana@corp.example.", ans.Text)
}

func TestFinancesSumsAllRecords(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	for _, amount := range []float64{100, 200, 300} {
		fake.Add(store.CollFinances, models.Finance{
			ID:                primitive.NewObjectID(),
			CompanyID:         companyID,
			TransactionType:   models.TransactionIncome,
			TransactionAmount: amount,
			TransactionDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	fake.Add(store.CollFinances, models.Finance{
		ID:                primitive.NewObjectID(),
		CompanyID:         companyID,
		TransactionType:   models.TransactionExpense,
		TransactionAmount: 999,
		TransactionDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	ans := ask(t, e, companyID, "מה היה סכום ההכנסות בשנת 2024 בסך הכל?")
	require.NotNil(t, ans)
	assert.Equal(t, `הכנסות ב-2024 הכוללות הן 600 ש"ח.`, ans.Text)
}

func TestFinancesNotFoundKeepsContext(t *testing.T) {
	e, _ := newTestEngine(t)
	ans := ask(t, e, primitive.NewObjectID(), "מה היה סכום ההוצאות בשנת 2021 בסך הכל?")
	require.NotNil(t, ans)
	assert.Equal(t, "לא מצאתי הוצאות ב-2021.", ans.Text)
}

func TestResolverUnknownSentinel(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	otherCompany := primitive.NewObjectID()
	creator := primitive.NewObjectID()
	// The creator exists, but under a different tenant.
	fake.Add(store.CollEmployees, models.Employee{
		ID:        creator,
		CompanyID: otherCompany,
		Name:      "רוני",
		LastName:  "כהן",
	})
	fake.Add(store.CollBudgets, models.Budget{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		CreatedBy: creator,
	})

	ans := ask(t, e, companyID, "מי יצר את התקציב?")
	require.NotNil(t, ans)
	assert.Contains(t, ans.Text, "לא ידוע")
	assert.NotContains(t, ans.Text, "רוני")
}

func TestProcurementBySupplierKeyword(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollProcurements, models.Procurement{
		ID:            primitive.NewObjectID(),
		CompanyID:     companyID,
		PurchaseOrder: "po-118",
		SupplierName:  "אלקטרוניקה בע\"מ",
	})

	// No trailing question mark: the purchase-order token is taken verbatim.
	ans := ask(t, e, companyID, "מי הספק של תעודת הרכש PO-118")
	require.NotNil(t, ans)
	assert.Equal(t, "procurements", ans.Domain)
	assert.Equal(t, "הספק של תעודת הרכש po-118 הוא אלקטרוניקה בע\"מ.", ans.Text)
}

func TestSupplierEmptyRatings(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollSuppliers, models.Supplier{
		ID:           primitive.NewObjectID(),
		CompanyID:    companyID,
		SupplierName: "אלפא",
	})

	ans := ask(t, e, companyID, "מה הדירוג של ספק אלפא?")
	require.NotNil(t, ans)
	assert.Equal(t, "דירוגים של הספק אלפא:\nאין דירוגים", ans.Text)
}

func TestTaskStatus(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollTasks, models.Task{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		Title:     "חפירת יסודות",
		Status:    "בתהליך",
	})

	ans := ask(t, e, companyID, "מה הסטטוס של המשימה?")
	require.NotNil(t, ans)
	assert.Equal(t, "tasks", ans.Domain)
	assert.Equal(t, "סטטוס המשימה חפירת יסודות הוא בתהליך.", ans.Text)
}

func TestProjectTaskQuestionRoutesToProjects(t *testing.T) {
	e, fake := newTestEngine(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollProjects, models.Project{
		ID:        primitive.NewObjectID(),
		CompanyID: companyID,
		Name:      "הקמה",
		Status:    "פעיל",
	})

	// "פרויקט" wins over "משימות": the projects route sits first.
	ans := ask(t, e, companyID, "מה הסטטוס של משימות פרויקט הקמה?")
	require.NotNil(t, ans)
	assert.Equal(t, "projects", ans.Domain)
	assert.Equal(t, "סטטוס הפרויקט הקמה הוא פעיל.", ans.Text)
}

func TestFormatRows(t *testing.T) {
	assert.Equal(t, "אין נתונים", formatRows(nil))
	rows := [][]cell{
		{{"שם", "א"}, {"כמות", "2"}},
		{{"שם", "ב"}, {"כמות", "3"}},
	}
	assert.Equal(t, "שם: א - כמות: 2\nשם: ב - כמות: 3", formatRows(rows))
}
