package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerEmployees(ctx context.Context, q *Question) (*Answer, error) {
	employeeName := extract.ValueAfterKeyword(q.Text, "עובד")
	filter := bson.M{"companyId": q.CompanyID}
	if employeeName != "" {
		// A bare name can be either a first or a last name.
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": employeeName, "$options": "i"}},
			{"lastName": bson.M{"$regex": employeeName, "$options": "i"}},
		}
	}

	var employees []models.Employee
	if err := e.store.Find(ctx, store.CollEmployees, filter, &employees); err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את העובד %s.", orText(employeeName, "עובד"))), nil
	}

	emp := employees[0]
	fullName := orUnknown(emp.Name) + " " + orUnknown(emp.LastName)

	switch {
	case q.Has("שם"):
		return answered(fmt.Sprintf("שם העובד הוא %s.", fullName)), nil
	case q.Has("מין"):
		return answered(fmt.Sprintf("מין העובד %s הוא %s.", fullName, orUnknown(emp.Gender))), nil
	case q.Has("תעודת זהות"):
		return answered(fmt.Sprintf("תעודת הזהות של %s היא %s.", fullName, orUnavailable(emp.Identity))), nil
	case q.Has("מייל"):
		return answered(fmt.Sprintf("כתובת המייל של %s היא %s.", fullName, orUnavailable(emp.Email))), nil
	case q.Has("תפקיד"):
		return answered(fmt.Sprintf("תפקידו של %s הוא %s.", fullName, orUnavailable(emp.Role))), nil
	case q.Has("טלפון"):
		return answered(fmt.Sprintf("מספר הטלפון של %s הוא %s.", fullName, orUnavailable(emp.Phone))), nil
	case q.Has("תמונת פרופיל"):
		return answered(fmt.Sprintf("תמונת הפרופיל של %s היא %s.", fullName, orUnavailable(emp.ProfileImage))), nil
	case q.Has("מחלקה"):
		return answered(fmt.Sprintf("מחלקתו של %s היא %s.", fullName, e.departmentName(ctx, q.CompanyID, emp.Department))), nil
	case q.Has("פרויקטים"):
		rows := make([][]cell, 0, len(emp.Projects))
		for _, p := range emp.Projects {
			rows = append(rows, []cell{
				{"פרויקט", e.projectName(ctx, q.CompanyID, p.ProjectID)},
				{"תפקיד", orUnknown(p.Role)},
			})
		}
		return answered(fmt.Sprintf("הפרויקטים של %s:\n%s", fullName, formatRows(rows))), nil
	case q.Has("הטבות"):
		return answered(fmt.Sprintf("הטבות של %s:\n%s", fullName, bulletList(emp.Benefits, "אין הטבות"))), nil
	case q.Has("ביקורות ביצועים"):
		rows := make([][]cell, 0, len(emp.PerformanceReviews))
		for _, r := range emp.PerformanceReviews {
			review := unknown
			if !r.ReviewID.IsZero() {
				review = r.ReviewID.Hex()
			}
			rows = append(rows, []cell{
				{"ביקורת", review},
				{"ציון", fmtAmount(r.Score)},
			})
		}
		return answered(fmt.Sprintf("ביקורות הביצועים של %s:\n%s", fullName, formatRows(rows))), nil
	case q.Has("נוכחות"):
		rows := make([][]cell, 0, len(emp.Attendance))
		for _, a := range emp.Attendance {
			rows = append(rows, []cell{
				{"תאריך", fmtDate(a.Date)},
				{"סטטוס", orUnknown(a.Status)},
			})
		}
		return answered(fmt.Sprintf("נוכחות של %s:\n%s", fullName, formatRows(rows))), nil
	case q.Has("כתובת"):
		return answered(fmt.Sprintf("כתובת של %s: %s, %s, %s", fullName,
			orUnavailable(emp.Address.City), orUnavailable(emp.Address.Street), orUnavailable(emp.Address.Country))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס של %s הוא %s.", fullName, orUnknown(emp.Status))), nil
	case q.Has("התחברות אחרונה"):
		return answered(fmt.Sprintf("התחברות אחרונה של %s היא %s.", fullName, fmtDate(emp.LastLogin))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על %s:\n%s", fullName, dump(emp))), nil
}
