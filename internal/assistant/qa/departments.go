package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerDepartments(ctx context.Context, q *Question) (*Answer, error) {
	deptName := extract.FirstValueAfter(q.Text, "מחלקת", "מחלקה")
	filter := bson.M{"companyId": q.CompanyID}
	if deptName != "" {
		filter["name"] = deptName
	}

	var departments []models.Department
	if err := e.store.Find(ctx, store.CollDepartments, filter, &departments); err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את מחלקת %s.", orText(deptName, "מחלקה"))), nil
	}

	d := departments[0]
	name := orUnknown(d.Name)

	switch {
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור מחלקת %s הוא %s.", name, orText(d.Description, "אין תיאור זמין"))), nil
	case q.Has("מנהל"):
		return answered(fmt.Sprintf("המנהל של מחלקת %s הוא %s.", name, e.employeeName(ctx, q.CompanyID, d.DepartmentManager))), nil
	case q.Has("עובדים"):
		rows := make([][]cell, 0, len(d.TeamMembers))
		for _, m := range d.TeamMembers {
			rows = append(rows, []cell{{"עובד", e.employeeName(ctx, q.CompanyID, m.EmployeeID)}})
		}
		return answered(fmt.Sprintf("העובדים במחלקת %s:\n%s", name, formatRows(rows))), nil
	case q.Has("פרויקטים"):
		rows := make([][]cell, 0, len(d.Projects))
		for _, p := range d.Projects {
			rows = append(rows, []cell{{"פרויקט", e.projectName(ctx, q.CompanyID, p.ProjectID)}})
		}
		return answered(fmt.Sprintf("הפרויקטים של מחלקת %s:\n%s", name, formatRows(rows))), nil
	case q.Has("תקציבים"):
		rows := make([][]cell, 0, len(d.Budgets))
		for _, b := range d.Budgets {
			value := unknown
			if !b.BudgetID.IsZero() {
				value = b.BudgetID.Hex()
			}
			rows = append(rows, []cell{{"תקציב", value}})
		}
		return answered(fmt.Sprintf("התקציבים של מחלקת %s:\n%s", name, formatRows(rows))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על מחלקת %s:\n%s", name, dump(d))), nil
}
