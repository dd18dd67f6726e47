package qa

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerFinances(ctx context.Context, q *Question) (*Answer, error) {
	base := "הוצאות"
	transactionType := models.TransactionExpense
	if q.Has("הכנסות") {
		base = "הכנסות"
		transactionType = models.TransactionIncome
	}

	filter := bson.M{"companyId": q.CompanyID, "transactionType": transactionType}
	year, hasYear := extract.Year(q.Text)
	if hasYear {
		filter["transactionDate"] = yearRange(year)
	}

	subject := base
	if hasYear {
		subject = base + " ב-" + strconv.Itoa(year)
	}

	var records []models.Finance
	if err := e.store.Find(ctx, store.CollFinances, filter, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי %s.", subject)), nil
	}

	first := records[0]

	switch {
	case q.Has("סכום"):
		var total float64
		for _, r := range records {
			total += r.TransactionAmount
		}
		return answered(fmt.Sprintf("%s הכוללות הן %s %s.", subject, fmtAmount(total), currencyOf(first.TransactionCurrency))), nil
	case q.Has("תאריך"):
		return answered(fmt.Sprintf("תאריך העסקה של %s הוא %s.", subject, fmtDate(first.TransactionDate))), nil
	case q.Has("סוג"):
		return answered(fmt.Sprintf("סוג העסקה של %s הוא %s.", subject, orUnknown(first.TransactionType))), nil
	case q.Has("מטבע"):
		return answered(fmt.Sprintf("מטבע העסקה של %s הוא %s.", subject, currencyOf(first.TransactionCurrency))), nil
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור העסקה של %s הוא %s.", subject, orUnavailable(first.TransactionDescription))), nil
	case q.Has("קטגוריה"):
		return answered(fmt.Sprintf("קטגוריית העסקה של %s היא %s.", subject, orUnavailable(first.Category))), nil
	case q.Has("חשבון בנק"):
		return answered(fmt.Sprintf("חשבון הבנק של העסקה של %s הוא %s.", subject, orUnavailable(first.BankAccount))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס העסקה של %s הוא %s.", subject, orUnknown(first.TransactionStatus))), nil
	case q.Has("סוג רשומה"):
		return answered(fmt.Sprintf("סוג הרשומה של העסקה של %s הוא %s.", subject, orUnknown(first.RecordType))), nil
	case q.Has("צד העסקה"):
		party := unknown
		switch first.RecordType {
		case "employee":
			party = e.employeeName(ctx, q.CompanyID, first.PartyID)
		case "supplier":
			party = e.supplierName(ctx, q.CompanyID, first.PartyID)
		}
		return answered(fmt.Sprintf("צד העסקה של %s הוא %s.", subject, party)), nil
	case q.Has("קבצים"):
		return answered(fmt.Sprintf("קבצים של העסקה של %s:\n%s", subject, bulletList(first.AttachmentURL, "אין קבצים"))), nil
	case q.Has("מספר חשבונית"):
		return answered(fmt.Sprintf("מספר החשבונית של העסקה של %s הוא %s.", subject, orUnavailable(first.InvoiceNumber))), nil
	case q.Has("פרטים נוספים"):
		return answered(fmt.Sprintf("פרטים נוספים של העסקה של %s:\n%s", subject, orText(first.OtherDetails, "אין פרטים"))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על %s:\n%s", subject, dump(first))), nil
}
