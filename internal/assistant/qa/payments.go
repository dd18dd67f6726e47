package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerPayments(ctx context.Context, q *Question) (*Answer, error) {
	planName := extract.ValueAfterKeyword(q.Text, "תוכנית")
	filter := bson.M{"companyId": q.CompanyID}
	if planName != "" {
		filter["planName"] = planName
	}

	var payments []models.Payment
	if err := e.store.Find(ctx, store.CollPayments, filter, &payments); err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי תשלומים עבור תוכנית %s.", orText(planName, "תוכנית"))), nil
	}

	p := payments[0]
	plan := orUnknown(p.PlanName)

	switch {
	case q.Has("סכום"):
		return answered(fmt.Sprintf("סכום התשלום עבור תוכנית %s הוא %s %s.", plan, fmtAmount(p.Amount), currencyOf(p.Currency))), nil
	case q.Has("מטבע"):
		return answered(fmt.Sprintf("מטבע התשלום של תוכנית %s הוא %s.", plan, currencyOf(p.Currency))), nil
	case q.Has("תאריך תשלום"):
		return answered(fmt.Sprintf("תאריך התשלום של תוכנית %s הוא %s.", plan, fmtDate(p.PaymentDate))), nil
	case q.Has("תאריך התחלה"):
		return answered(fmt.Sprintf("תאריך ההתחלה של תוכנית %s הוא %s.", plan, fmtDate(p.StartDate))), nil
	case q.Has("תאריך סיום"):
		return answered(fmt.Sprintf("תאריך הסיום של תוכנית %s הוא %s.", plan, fmtDate(p.EndDate))), nil
	case q.Has("הוחזר"):
		return answered(fmt.Sprintf("התשלום עבור תוכנית %s הוחזר: %s.", plan, fmtBool(p.Refunded))), nil
	case q.Has("מזהה סשן"):
		return answered(fmt.Sprintf("מזהה הסשן של התשלום עבור תוכנית %s הוא %s.", plan, orUnavailable(p.SessionID))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על התשלום עבור תוכנית %s:\n%s", plan, dump(p))), nil
}
