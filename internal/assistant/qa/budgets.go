package qa

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerBudgets(ctx context.Context, q *Question) (*Answer, error) {
	subject := extract.FirstValueAfter(q.Text, "מחלקת", "פרויקט")
	filter := bson.M{"companyId": q.CompanyID}
	if subject != "" {
		filter["departmentOrProjectName"] = subject
	}
	year, hasYear := extract.Year(q.Text)
	if hasYear {
		filter["startDate"] = yearRange(year)
	}

	var budgets []models.Budget
	if err := e.store.Find(ctx, store.CollBudgets, filter, &budgets); err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		yearPart := ""
		if hasYear {
			yearPart = "לשנת " + strconv.Itoa(year)
		}
		return notFound(fmt.Sprintf("לא מצאתי תקציב עבור %s %s.", orText(subject, "התקציב"), yearPart)), nil
	}

	b := budgets[0]
	subject = orText(subject, "התקציב")

	switch {
	case q.Has("סכום") || q.Has("כמה"):
		return answered(fmt.Sprintf("סכום התקציב של %s הוא %s %s.", subject, fmtAmount(b.Amount), currencyOf(b.Currency))), nil
	case q.Has("סכום שהוצא"):
		return answered(fmt.Sprintf("הסכום שהוצא מתקציב %s הוא %s %s.", subject, fmtAmount(b.SpentAmount), currencyOf(b.Currency))), nil
	case q.Has("מטבע"):
		return answered(fmt.Sprintf("המטבע של התקציב של %s הוא %s.", subject, currencyOf(b.Currency))), nil
	case q.Has("תקופה"):
		return answered(fmt.Sprintf("תקופת התקציב של %s היא %s.", subject, orUnavailable(b.Period))), nil
	case q.Has("תאריך התחלה"):
		return answered(fmt.Sprintf("תאריך ההתחלה של התקציב של %s הוא %s.", subject, fmtDate(b.StartDate))), nil
	case q.Has("תאריך סיום"):
		return answered(fmt.Sprintf("תאריך הסיום של התקציב של %s הוא %s.", subject, fmtDate(b.EndDate))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס התקציב של %s הוא %s.", subject, orUnknown(b.Status))), nil
	case q.Has("קטגוריות"):
		rows := make([][]cell, 0, len(b.Categories))
		for _, c := range b.Categories {
			rows = append(rows, []cell{
				{"שם", orUnknown(c.Name)},
				{"סכום", fmtAmount(c.AllocatedAmount)},
			})
		}
		return answered(fmt.Sprintf("קטגוריות התקציב של %s:\n%s", subject, formatRows(rows))), nil
	case q.Has("פריטים"):
		rows := make([][]cell, 0, len(b.Items))
		for _, item := range b.Items {
			rows = append(rows, []cell{
				{"מוצר", e.productName(ctx, q.CompanyID, item.ProductID)},
				{"כמות", fmtAmount(item.Quantity)},
				{"מחיר יחידה", fmtAmount(item.UnitPrice)},
				{`סה"כ`, fmtAmount(item.TotalPrice)},
			})
		}
		return answered(fmt.Sprintf("פריטים בתקציב של %s:\n%s", subject, formatRows(rows))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות התקציב של %s:\n%s", subject, orText(b.Notes, noNotes))), nil
	case q.Has("מי יצר"):
		return answered(fmt.Sprintf("התקציב של %s נוצר על ידי %s.", subject, e.employeeName(ctx, q.CompanyID, b.CreatedBy))), nil
	case q.Has("מי עודכן"):
		return answered(fmt.Sprintf("התקציב של %s עודכן על ידי %s.", subject, e.employeeName(ctx, q.CompanyID, b.UpdatedBy))), nil
	case q.Has("אישורים"):
		rows := make([][]cell, 0, len(b.Approvals))
		for _, a := range b.Approvals {
			rows = append(rows, []cell{
				{"מאשר", e.employeeName(ctx, q.CompanyID, a.ApprovedBy)},
				{"תאריך", fmtDate(a.ApprovedAt)},
				{"הערה", orUnknown(a.Comment)},
			})
		}
		return answered(fmt.Sprintf("אישורים לתקציב של %s:\n%s", subject, formatRows(rows))), nil
	case q.Has("חתימות נוכחיות"):
		return answered(fmt.Sprintf("מספר החתימות הנוכחיות של התקציב של %s הוא %d.", subject, b.CurrentSignatures)), nil
	case q.Has("אינדקס חותם"):
		return answered(fmt.Sprintf("אינדקס החותם הנוכחי של התקציב של %s הוא %d.", subject, b.CurrentSignerIndex)), nil
	case q.Has("חותמים"):
		return answered(fmt.Sprintf("חותמים לתקציב של %s:\n%s", subject, e.signerRows(ctx, q.CompanyID, b.Signers))), nil
	case q.Has("מחלקה"):
		return answered(fmt.Sprintf("מחלקת התקציב של %s היא %s.", subject, e.departmentName(ctx, q.CompanyID, b.DepartmentID))), nil
	case q.Has("פרויקט"):
		return answered(fmt.Sprintf("פרויקט התקציב של %s הוא %s.", subject, e.projectName(ctx, q.CompanyID, b.ProjectID))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על התקציב של %s:\n%s", subject, dump(b))), nil
}

// signerRows renders a signature chain; budgets and procurements share it.
func (e *Engine) signerRows(ctx context.Context, companyID primitive.ObjectID, signers []models.Signer) string {
	rows := make([][]cell, 0, len(signers))
	for _, s := range signers {
		rows = append(rows, []cell{
			{"עובד", e.employeeName(ctx, companyID, s.EmployeeID)},
			{"שם", orUnknown(s.Name)},
			{"תפקיד", orUnknown(s.Role)},
			{"סדר", fmtInt(s.Order)},
			{"חתם", fmtBool(s.HasSigned)},
		})
	}
	return formatRows(rows)
}
