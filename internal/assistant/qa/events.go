package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerEvents(ctx context.Context, q *Question) (*Answer, error) {
	eventTitle := extract.ValueAfterKeyword(q.Text, "אירוע")
	filter := bson.M{"companyId": q.CompanyID}
	if eventTitle != "" {
		filter["title"] = eventTitle
	}

	var events []models.Event
	if err := e.store.Find(ctx, store.CollEvents, filter, &events); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את האירוע %s.", orText(eventTitle, "אירוע"))), nil
	}

	ev := events[0]
	title := orUnknown(ev.Title)

	switch {
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור האירוע %s הוא %s.", title, orUnavailable(ev.Description))), nil
	case q.Has("תאריך התחלה"):
		return answered(fmt.Sprintf("תאריך ההתחלה של האירוע %s הוא %s.", title, fmtDate(ev.StartDate))), nil
	case q.Has("תאריך סיום"):
		return answered(fmt.Sprintf("תאריך הסיום של האירוע %s הוא %s.", title, fmtDate(ev.EndDate))), nil
	case q.Has("שעת התחלה"):
		return answered(fmt.Sprintf("שעת ההתחלה של האירוע %s היא %s.", title, orUnavailable(ev.StartTime))), nil
	case q.Has("שעת סיום"):
		return answered(fmt.Sprintf("שעת הסיום של האירוע %s היא %s.", title, orUnavailable(ev.EndTime))), nil
	case q.Has("כל היום"):
		return answered(fmt.Sprintf("האירוע %s הוא כל היום: %s.", title, fmtBool(ev.AllDay))), nil
	case q.Has("מיקום"):
		return answered(fmt.Sprintf("מיקום האירוע %s הוא %s.", title, orUnavailable(ev.Location))), nil
	case q.Has("קישור"):
		return answered(fmt.Sprintf("קישור הפגישה של האירוע %s הוא %s.", title, orUnavailable(ev.MeetingURL))), nil
	case q.Has("סוג"):
		return answered(fmt.Sprintf("סוג האירוע %s הוא %s.", title, orUnknown(ev.EventType))), nil
	case q.Has("משתתפים"):
		rows := make([][]cell, 0, len(ev.Participants))
		for _, id := range ev.Participants {
			rows = append(rows, []cell{{"משתתף", e.employeeName(ctx, q.CompanyID, id)}})
		}
		return answered(fmt.Sprintf("משתתפים באירוע %s:\n%s", title, formatRows(rows))), nil
	case q.Has("משתתפים חיצוניים"):
		rows := make([][]cell, 0, len(ev.ExternalParticipants))
		for _, p := range ev.ExternalParticipants {
			rows = append(rows, []cell{
				{"שם", orUnknown(p.Name)},
				{"מייל", orUnknown(p.Email)},
				{"טלפון", orUnknown(p.Phone)},
			})
		}
		return answered(fmt.Sprintf("משתתפים חיצוניים באירוע %s:\n%s", title, formatRows(rows))), nil
	case q.Has("חזרה"):
		return answered(fmt.Sprintf("חזרת האירוע %s היא %s.", title, orUnavailable(ev.Recurrence))), nil
	case q.Has("קבצים"):
		rows := make([][]cell, 0, len(ev.Attachments))
		for _, a := range ev.Attachments {
			rows = append(rows, []cell{
				{"שם קובץ", orUnknown(a.FileName)},
				{"קישור", orUnknown(a.FileURL)},
			})
		}
		return answered(fmt.Sprintf("קבצים של האירוע %s:\n%s", title, formatRows(rows))), nil
	case q.Has("מי יצר"):
		return answered(fmt.Sprintf("האירוע %s נוצר על ידי %s.", title, e.employeeName(ctx, q.CompanyID, ev.CreatedBy))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות האירוע %s:\n%s", title, orText(ev.Notes, noNotes))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על האירוע %s:\n%s", title, dump(ev))), nil
}
