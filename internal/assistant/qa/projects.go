package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerProjects(ctx context.Context, q *Question) (*Answer, error) {
	projectName := extract.ValueAfterKeyword(q.Text, "פרויקט")
	filter := bson.M{"companyId": q.CompanyID}
	if projectName != "" {
		filter["name"] = projectName
	}

	var projects []models.Project
	if err := e.store.Find(ctx, store.CollProjects, filter, &projects); err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את הפרויקט %s.", orText(projectName, "פרויקט"))), nil
	}

	p := projects[0]
	name := orUnknown(p.Name)

	switch {
	case q.Has("מנהל"):
		return answered(fmt.Sprintf("מנהל הפרויקט %s הוא %s.", name, e.employeeName(ctx, q.CompanyID, p.ProjectManager))), nil
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור הפרויקט %s הוא %s.", name, orUnavailable(p.Description))), nil
	case q.Has("תאריך התחלה"):
		return answered(fmt.Sprintf("תאריך ההתחלה של הפרויקט %s הוא %s.", name, fmtDate(p.StartDate))), nil
	case q.Has("תאריך סיום"):
		return answered(fmt.Sprintf("תאריך הסיום של הפרויקט %s הוא %s.", name, fmtDate(p.EndDate))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס הפרויקט %s הוא %s.", name, orUnknown(p.Status))), nil
	case q.Has("מחלקה"):
		return answered(fmt.Sprintf("מחלקת הפרויקט %s היא %s.", name, e.departmentName(ctx, q.CompanyID, p.DepartmentID))), nil
	case q.Has("חברי צוות"):
		rows := make([][]cell, 0, len(p.TeamMembers))
		for _, m := range p.TeamMembers {
			rows = append(rows, []cell{{"עובד", e.employeeName(ctx, q.CompanyID, m.EmployeeID)}})
		}
		return answered(fmt.Sprintf("חברי הצוות של הפרויקט %s:\n%s", name, formatRows(rows))), nil
	case q.Has("תקציב"):
		return answered(fmt.Sprintf(`תקציב הפרויקט %s הוא %s ש"ח.`, name, fmtAmount(p.Budget))), nil
	case q.Has("עדיפות"):
		return answered(fmt.Sprintf("עדיפות הפרויקט %s היא %s.", name, orUnavailable(p.Priority))), nil
	case q.Has("משימות"):
		rows := make([][]cell, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			value := unknown
			if !t.TaskID.IsZero() {
				value = t.TaskID.Hex()
			}
			rows = append(rows, []cell{{"משימה", value}})
		}
		return answered(fmt.Sprintf("משימות הפרויקט %s:\n%s", name, formatRows(rows))), nil
	case q.Has("מסמכים"):
		return answered(fmt.Sprintf("מסמכים של הפרויקט %s:\n%s", name, bulletList(p.Documents, "אין מסמכים"))), nil
	case q.Has("תגיות"):
		return answered(fmt.Sprintf("תגיות של הפרויקט %s:\n%s", name, bulletList(p.Tags, "אין תגיות"))), nil
	case q.Has("הערות"):
		rows := make([][]cell, 0, len(p.Comments))
		for _, c := range p.Comments {
			user := unknown
			if !c.User.IsZero() {
				user = c.User.Hex()
			}
			rows = append(rows, []cell{
				{"משתמש", user},
				{"טקסט", orUnknown(c.Text)},
				{"תאריך", fmtDate(c.CreatedAt)},
			})
		}
		return answered(fmt.Sprintf("הערות של הפרויקט %s:\n%s", name, formatRows(rows))), nil
	case q.Has("התקדמות"):
		return answered(fmt.Sprintf("התקדמות הפרויקט %s היא %s%%.", name, fmtAmount(p.Progress))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על הפרויקט %s:\n%s", name, dump(p))), nil
}
