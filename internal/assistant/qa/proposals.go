package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerProposals(ctx context.Context, q *Question) (*Answer, error) {
	proposalTitle := extract.ValueAfterKeyword(q.Text, "הצעת רכש")
	filter := bson.M{"companyId": q.CompanyID}
	if proposalTitle != "" {
		filter["title"] = proposalTitle
	}

	var proposals []models.ProcurementProposal
	if err := e.store.Find(ctx, store.CollProposals, filter, &proposals); err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את הצעת הרכש %s.", orText(proposalTitle, "הצעה"))), nil
	}

	p := proposals[0]
	title := orUnknown(p.Title)

	switch {
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור הצעת הרכש %s הוא %s.", title, orUnavailable(p.Description))), nil
	case q.Has("פריטים"):
		return answered(fmt.Sprintf("פריטים בהצעת הרכש %s:\n%s", title, e.procurementItemRows(ctx, q.CompanyID, p.Items))), nil
	case q.Has("עלות משוערת"):
		return answered(fmt.Sprintf(`עלות משוערת של הצעת הרכש %s היא %s ש"ח.`, title, fmtAmount(p.TotalEstimatedCost))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס הצעת הרכש %s הוא %s.", title, orUnknown(p.Status))), nil
	case q.Has("מי יצר"):
		return answered(fmt.Sprintf("הצעת הרכש %s נוצרה על ידי %s.", title, e.employeeName(ctx, q.CompanyID, p.CreatedBy))), nil
	case q.Has("תאריך בקשה"):
		return answered(fmt.Sprintf("תאריך הבקשה של הצעת הרכש %s הוא %s.", title, fmtDate(p.RequestedDate))), nil
	case q.Has("תאריך משלוח צפוי"):
		return answered(fmt.Sprintf("תאריך המשלוח הצפוי של הצעת הרכש %s הוא %s.", title, fmtDate(p.ExpectedDeliveryDate))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות של הצעת הרכש %s:\n%s", title, orText(p.Notes, noNotes))), nil
	case q.Has("קבצים"):
		rows := make([][]cell, 0, len(p.Attachments))
		for _, a := range p.Attachments {
			rows = append(rows, []cell{{"שם קובץ", orUnknown(a.FileName)}})
		}
		return answered(fmt.Sprintf("קבצים של הצעת הרכש %s:\n%s", title, formatRows(rows))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על הצעת הרכש %s:\n%s", title, dump(p))), nil
}
