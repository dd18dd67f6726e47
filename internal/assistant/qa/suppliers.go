package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerSuppliers(ctx context.Context, q *Question) (*Answer, error) {
	supplierName := extract.ValueAfterKeyword(q.Text, "ספק")
	filter := bson.M{"companyId": q.CompanyID}
	if supplierName != "" {
		filter["SupplierName"] = supplierName
	}

	var suppliers []models.Supplier
	if err := e.store.Find(ctx, store.CollSuppliers, filter, &suppliers); err != nil {
		return nil, err
	}
	if len(suppliers) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את הספק %s.", orText(supplierName, "ספק"))), nil
	}

	s := suppliers[0]
	name := orUnknown(s.SupplierName)

	switch {
	case q.Has("איש קשר"):
		return answered(fmt.Sprintf("איש הקשר של הספק %s הוא %s.", name, orUnavailable(s.Contact))), nil
	case q.Has("טלפון"):
		return answered(fmt.Sprintf("מספר הטלפון של הספק %s הוא %s.", name, orUnavailable(s.Phone))), nil
	case q.Has("מייל"):
		return answered(fmt.Sprintf("כתובת המייל של הספק %s היא %s.", name, orUnavailable(s.Email))), nil
	case q.Has("כתובת"):
		return answered(fmt.Sprintf("כתובת הספק %s היא %s.", name, orUnavailable(s.Address))), nil
	case q.Has("חשבון בנק"):
		return answered(fmt.Sprintf("חשבון הבנק של הספק %s הוא %s.", name, orUnavailable(s.BankAccount))), nil
	case q.Has("דירוג"):
		ratings := make([]string, 0, len(s.Rating))
		for _, r := range s.Rating {
			ratings = append(ratings, fmtAmount(r))
		}
		return answered(fmt.Sprintf("דירוגים של הספק %s:\n%s", name, bulletList(ratings, "אין דירוגים"))), nil
	case q.Has("מטבע"):
		return answered(fmt.Sprintf("מטבע הבסיס של הספק %s הוא %s.", name, orUnavailable(s.BaseCurrency))), nil
	case q.Has("פעיל"):
		return answered(fmt.Sprintf("הספק %s פעיל: %s.", name, fmtBool(s.IsActive))), nil
	case q.Has("חשבון אישור"):
		return answered(fmt.Sprintf("חשבון האישור של הספק %s הוא %s.", name, orUnavailable(s.ConfirmationAccount))), nil
	case q.Has("קבצים"):
		rows := make([][]cell, 0, len(s.Attachments))
		for _, a := range s.Attachments {
			rows = append(rows, []cell{
				{"שם קובץ", orUnknown(a.FileName)},
				{"קישור", orUnknown(a.FileURL)},
			})
		}
		return answered(fmt.Sprintf("קבצים של הספק %s:\n%s", name, formatRows(rows))), nil
	case q.Has("מוצרים"):
		rows := make([][]cell, 0, len(s.ProductsSupplied))
		for _, p := range s.ProductsSupplied {
			rows = append(rows, []cell{{"מוצר", e.productName(ctx, q.CompanyID, p.ProductID)}})
		}
		return answered(fmt.Sprintf("מוצרים שמספק הספק %s:\n%s", name, formatRows(rows))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על הספק %s:\n%s", name, dump(s))), nil
}
