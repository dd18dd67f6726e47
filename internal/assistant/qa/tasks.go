package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerTasks(ctx context.Context, q *Question) (*Answer, error) {
	projectName := extract.ValueAfterKeyword(q.Text, "פרויקט")
	filter := bson.M{"companyId": q.CompanyID}
	if projectName != "" {
		var project models.Project
		found, err := e.store.FindOne(ctx, store.CollProjects, bson.M{"companyId": q.CompanyID, "name": projectName}, &project)
		if err != nil {
			return nil, err
		}
		if found {
			filter["projectId"] = project.ID
		}
	}

	var tasks []models.Task
	if err := e.store.Find(ctx, store.CollTasks, filter, &tasks); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי משימות עבור %s.", orText(projectName, "פרויקט"))), nil
	}

	t := tasks[0]
	title := orUnknown(t.Title)

	switch {
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור המשימה %s הוא %s.", title, orUnavailable(t.Description))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס המשימה %s הוא %s.", title, orUnknown(t.Status))), nil
	case q.Has("עדיפות"):
		return answered(fmt.Sprintf("עדיפות המשימה %s היא %s.", title, orUnavailable(t.Priority))), nil
	case q.Has("תאריך יעד"):
		return answered(fmt.Sprintf("תאריך היעד של המשימה %s הוא %s.", title, fmtDate(t.DueDate))), nil
	case q.Has("מי שובץ"):
		rows := make([][]cell, 0, len(t.AssignedTo))
		for _, id := range t.AssignedTo {
			rows = append(rows, []cell{{"עובד", e.employeeName(ctx, q.CompanyID, id)}})
		}
		return answered(fmt.Sprintf("מי ששובץ למשימה %s:\n%s", title, formatRows(rows))), nil
	case q.Has("מזהה הזמנה"):
		orderID := unavailable
		if !t.OrderID.IsZero() {
			orderID = t.OrderID.Hex()
		}
		return answered(fmt.Sprintf("מזהה ההזמנה של המשימה %s הוא %s.", title, orderID)), nil
	case q.Has("פריטי הזמנה"):
		rows := make([][]cell, 0, len(t.OrderItems))
		for _, item := range t.OrderItems {
			rows = append(rows, []cell{
				{"מוצר", e.productName(ctx, q.CompanyID, item.ProductID)},
				{"שם", orUnknown(item.ProductName)},
				{"כמות", fmtAmount(item.Quantity)},
			})
		}
		return answered(fmt.Sprintf("פריטי ההזמנה של המשימה %s:\n%s", title, formatRows(rows))), nil
	case q.Has("מחלקה"):
		return answered(fmt.Sprintf("מחלקת המשימה %s היא %s.", title, e.departmentName(ctx, q.CompanyID, t.DepartmentID))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על המשימה %s:\n%s", title, dump(t))), nil
}
