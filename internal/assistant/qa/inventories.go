package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerInventories(ctx context.Context, q *Question) (*Answer, error) {
	productName := extract.ValueAfterKeyword(q.Text, "מוצר")
	filter := bson.M{"companyId": q.CompanyID}
	if productName != "" {
		var product models.Product
		found, err := e.store.FindOne(ctx, store.CollProducts, bson.M{"companyId": q.CompanyID, "productName": productName}, &product)
		if err != nil {
			return nil, err
		}
		if found {
			filter["productId"] = product.ID
		}
	}

	var inventories []models.Inventory
	if err := e.store.Find(ctx, store.CollInventories, filter, &inventories); err != nil {
		return nil, err
	}
	if len(inventories) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי מלאי עבור %s.", orText(productName, "מוצר"))), nil
	}

	inv := inventories[0]
	name := e.productName(ctx, q.CompanyID, inv.ProductID)

	switch {
	case q.Has("כמות"):
		return answered(fmt.Sprintf("כמות המלאי של %s היא %s יחידות.", name, fmtAmount(inv.Quantity))), nil
	case q.Has("מינימום"):
		return answered(fmt.Sprintf("רמת המלאי המינימלית של %s היא %s יחידות.", name, fmtAmount(inv.MinStockLevel))), nil
	case q.Has("כמות להזמנה"):
		return answered(fmt.Sprintf("כמות ההזמנה מחדש של %s היא %s יחידות.", name, fmtAmount(inv.ReorderQuantity))), nil
	case q.Has("מספר אצווה"):
		return answered(fmt.Sprintf("מספר האצווה של %s הוא %s.", name, orUnavailable(inv.BatchNumber))), nil
	case q.Has("תאריך תפוגה"):
		return answered(fmt.Sprintf("תאריך התפוגה של %s הוא %s.", name, fmtDate(inv.ExpirationDate))), nil
	case q.Has("מיקום מדף"):
		return answered(fmt.Sprintf("מיקום המדף של %s הוא %s.", name, orUnavailable(inv.ShelfLocation))), nil
	case q.Has("תאריך הזמנה אחרון"):
		return answered(fmt.Sprintf("תאריך ההזמנה האחרון של %s הוא %s.", name, fmtDate(inv.LastOrderDate))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על המלאי של %s:\n%s", name, dump(inv))), nil
}
