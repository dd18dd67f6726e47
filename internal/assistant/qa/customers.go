package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerCustomers(ctx context.Context, q *Question) (*Answer, error) {
	customerName := extract.ValueAfterKeyword(q.Text, "לקוח")
	filter := bson.M{"companyId": q.CompanyID}
	if customerName != "" {
		filter["name"] = customerName
	}

	var customers []models.Customer
	if err := e.store.Find(ctx, store.CollCustomers, filter, &customers); err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את הלקוח %s.", orText(customerName, "לקוח"))), nil
	}

	c := customers[0]
	name := orUnknown(c.Name)

	switch {
	case q.Has("מייל"):
		return answered(fmt.Sprintf("כתובת המייל של %s היא %s.", name, orUnavailable(c.Email))), nil
	case q.Has("טלפון"):
		return answered(fmt.Sprintf("מספר הטלפון של %s הוא %s.", name, orUnavailable(c.Phone))), nil
	case q.Has("כתובת"):
		return answered(fmt.Sprintf("כתובת הלקוח %s היא %s.", name, orUnavailable(c.Address))), nil
	case q.Has("חברה"):
		return answered(fmt.Sprintf("שם החברה של %s הוא %s.", name, orUnavailable(c.Company))), nil
	case q.Has("אתר"):
		return answered(fmt.Sprintf("אתר האינטרנט של %s הוא %s.", name, orUnavailable(c.Website))), nil
	case q.Has("תעשייה"):
		return answered(fmt.Sprintf("תעשיית הלקוח %s היא %s.", name, orUnavailable(c.Industry))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס הלקוח %s הוא %s.", name, orUnknown(c.Status))), nil
	case q.Has("סוג"):
		return answered(fmt.Sprintf("סוג הלקוח %s הוא %s.", name, orUnknown(c.CustomerType))), nil
	case q.Has("תאריך לידה"):
		return answered(fmt.Sprintf("תאריך הלידה של %s הוא %s.", name, fmtDate(c.DateOfBirth))), nil
	case q.Has("מין"):
		return answered(fmt.Sprintf("מין הלקוח %s הוא %s.", name, orUnknown(c.Gender))), nil
	case q.Has("שיטת קשר"):
		return answered(fmt.Sprintf("שיטת הקשר המועדפת של %s היא %s.", name, orUnavailable(c.PreferredContactMethod))), nil
	case q.Has("תאריך קשר אחרון"):
		return answered(fmt.Sprintf("תאריך הקשר האחרון עם %s הוא %s.", name, fmtDate(c.LastContacted))), nil
	case q.Has("לקוח מאז"):
		return answered(fmt.Sprintf("%s הוא לקוח מאז %s.", name, fmtDate(c.CustomerSince))), nil
	case q.Has("אנשי קשר"):
		rows := make([][]cell, 0, len(c.Contacts))
		for _, p := range c.Contacts {
			rows = append(rows, []cell{
				{"שם", orUnknown(p.Name)},
				{"תפקיד", orUnknown(p.Position)},
				{"מייל", orUnknown(p.Email)},
				{"טלפון", orUnknown(p.Phone)},
			})
		}
		return answered(fmt.Sprintf("אנשי הקשר של %s:\n%s", name, formatRows(rows))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות על %s:\n%s", name, orText(c.Notes, noNotes))), nil
	case q.Has("מי יצר"):
		return answered(fmt.Sprintf("הלקוח %s נוצר על ידי %s.", name, e.employeeName(ctx, q.CompanyID, c.CreatedBy))), nil
	case q.Has("מי עודכן"):
		return answered(fmt.Sprintf("הלקוח %s עודכן על ידי %s.", name, e.employeeName(ctx, q.CompanyID, c.UpdatedBy))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על הלקוח %s:\n%s", name, dump(c))), nil
}
