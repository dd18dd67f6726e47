package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerProducts(ctx context.Context, q *Question) (*Answer, error) {
	productName := extract.ValueAfterKeyword(q.Text, "מוצר")
	filter := bson.M{"companyId": q.CompanyID}
	if productName != "" {
		filter["productName"] = productName
	}

	var products []models.Product
	if err := e.store.Find(ctx, store.CollProducts, filter, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את המוצר %s.", orText(productName, "מוצר"))), nil
	}

	p := products[0]
	name := orUnknown(p.ProductName)

	switch {
	case q.Has("מקט"):
		return answered(fmt.Sprintf(`מק"ט של המוצר %s הוא %s.`, name, orUnavailable(p.SKU))), nil
	case q.Has("ברקוד"):
		return answered(fmt.Sprintf("ברקוד של המוצר %s הוא %s.", name, orUnavailable(p.Barcode))), nil
	case q.Has("תיאור"):
		return answered(fmt.Sprintf("תיאור המוצר %s הוא %s.", name, orUnavailable(p.ProductDescription))), nil
	case q.Has("מחיר"):
		return answered(fmt.Sprintf(`מחיר המוצר %s הוא %s ש"ח.`, name, fmtAmount(p.UnitPrice))), nil
	case q.Has("קטגוריה"):
		return answered(fmt.Sprintf("קטגוריית המוצר %s היא %s.", name, orUnavailable(p.Category))), nil
	case q.Has("ספק"):
		return answered(fmt.Sprintf("הספק של המוצר %s הוא %s.", name, e.supplierName(ctx, q.CompanyID, p.SupplierID))), nil
	case q.Has("אורך"):
		return answered(fmt.Sprintf("אורך המוצר %s הוא %s.", name, fmtDim(p.Length))), nil
	case q.Has("רוחב"):
		return answered(fmt.Sprintf("רוחב המוצר %s הוא %s.", name, fmtDim(p.Width))), nil
	case q.Has("גובה"):
		return answered(fmt.Sprintf("גובה המוצר %s הוא %s.", name, fmtDim(p.Height))), nil
	case q.Has("נפח"):
		return answered(fmt.Sprintf("נפח המוצר %s הוא %s.", name, fmtDim(p.Volume))), nil
	case q.Has("שם ספק"):
		return answered(fmt.Sprintf("שם הספק של המוצר %s הוא %s.", name, orUnavailable(p.SupplierName))), nil
	case q.Has("תמונה"):
		return answered(fmt.Sprintf("תמונת המוצר %s היא %s.", name, orUnavailable(p.ProductImage))), nil
	case q.Has("קבצים"):
		rows := make([][]cell, 0, len(p.Attachments))
		for _, a := range p.Attachments {
			rows = append(rows, []cell{
				{"שם קובץ", orUnknown(a.FileName)},
				{"קישור", orUnknown(a.FileURL)},
			})
		}
		return answered(fmt.Sprintf("קבצים של המוצר %s:\n%s", name, formatRows(rows))), nil
	case q.Has("סוג"):
		return answered(fmt.Sprintf("סוג המוצר %s הוא %s.", name, orUnknown(p.ProductType))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על המוצר %s:\n%s", name, dump(p))), nil
}
