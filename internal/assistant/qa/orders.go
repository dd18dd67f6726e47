package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerOrders(ctx context.Context, q *Question) (*Answer, error) {
	customerName := extract.ValueAfterKeyword(q.Text, "לקוח")
	filter := bson.M{"companyId": q.CompanyID}
	if customerName != "" {
		var cust models.Customer
		found, err := e.store.FindOne(ctx, store.CollCustomers, bson.M{"companyId": q.CompanyID, "name": customerName}, &cust)
		if err != nil {
			return nil, err
		}
		if found {
			filter["customer"] = cust.ID
		}
	}

	var orders []models.CustomerOrder
	if err := e.store.Find(ctx, store.CollCustomerOrders, filter, &orders); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי הזמנות עבור %s.", orText(customerName, "לקוח"))), nil
	}

	order := orders[0]
	displayName := unknown
	if !order.Customer.IsZero() {
		var cust models.Customer
		found, err := e.store.FindOne(ctx, store.CollCustomers, bson.M{"_id": order.Customer, "companyId": q.CompanyID}, &cust)
		if err != nil {
			return nil, err
		}
		if found {
			displayName = orUnknown(cust.Name)
		}
	}

	switch {
	case q.Has("סכום"):
		return answered(fmt.Sprintf(`סכום ההזמנה של %s הוא %s ש"ח.`, displayName, fmtAmount(order.OrderTotal))), nil
	case q.Has("תאריך הזמנה"):
		return answered(fmt.Sprintf("תאריך ההזמנה של %s הוא %s.", displayName, fmtDate(order.OrderDate))), nil
	case q.Has("תאריך משלוח"):
		return answered(fmt.Sprintf("תאריך המשלוח של ההזמנה של %s הוא %s.", displayName, fmtDate(order.DeliveryDate))), nil
	case q.Has("פריטים"):
		rows := make([][]cell, 0, len(order.Items))
		for _, item := range order.Items {
			rows = append(rows, []cell{
				{"מוצר", e.productName(ctx, q.CompanyID, item.Product)},
				{"כמות", fmtAmount(item.Quantity)},
				{"מחיר יחידה", fmtAmount(item.UnitPrice)},
				{"הנחה", fmtAmount(item.Discount)},
				{`סה"כ`, fmtAmount(item.TotalPrice)},
			})
		}
		return answered(fmt.Sprintf("פריטים בהזמנה של %s:\n%s", displayName, formatRows(rows))), nil
	case q.Has("הנחה"):
		return answered(fmt.Sprintf("הנחה גלובלית של ההזמנה של %s היא %s%%.", displayName, fmtAmount(order.GlobalDiscount))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס ההזמנה של %s הוא %s.", displayName, orUnknown(order.Status))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות ההזמנה של %s:\n%s", displayName, orText(order.Notes, noNotes))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על ההזמנה של %s:\n%s", displayName, dump(order))), nil
}
