package qa

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/extract"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/models"
)

func (e *Engine) answerProcurements(ctx context.Context, q *Question) (*Answer, error) {
	poNumber := extract.PurchaseOrder(q.Text)
	filter := bson.M{"companyId": q.CompanyID}
	if poNumber != "" {
		filter["PurchaseOrder"] = poNumber
	}

	var procurements []models.Procurement
	if err := e.store.Find(ctx, store.CollProcurements, filter, &procurements); err != nil {
		return nil, err
	}
	if len(procurements) == 0 {
		return notFound(fmt.Sprintf("לא מצאתי את תעודת הרכש %s.", orText(poNumber, "תעודה"))), nil
	}

	p := procurements[0]
	po := orUnknown(p.PurchaseOrder)

	switch {
	case q.Has("ספק"):
		return answered(fmt.Sprintf("הספק של תעודת הרכש %s הוא %s.", po, orUnknown(p.SupplierName))), nil
	case q.Has("מוצרים"):
		return answered(fmt.Sprintf("מוצרים בתעודת הרכש %s:\n%s", po, e.procurementItemRows(ctx, q.CompanyID, p.Products))), nil
	case q.Has("שיטת תשלום"):
		return answered(fmt.Sprintf("שיטת התשלום של תעודת הרכש %s היא %s.", po, orUnavailable(p.PaymentMethod))), nil
	case q.Has("תנאי תשלום"):
		return answered(fmt.Sprintf("תנאי התשלום של תעודת הרכש %s הם %s.", po, orUnavailable(p.PaymentTerms))), nil
	case q.Has("כתובת משלוח"):
		return answered(fmt.Sprintf("כתובת המשלוח של תעודת הרכש %s היא %s.", po, orUnavailable(p.DeliveryAddress))), nil
	case q.Has("שיטת משלוח"):
		return answered(fmt.Sprintf("שיטת המשלוח של תעודת הרכש %s היא %s.", po, orUnavailable(p.ShippingMethod))), nil
	case q.Has("תאריך רכישה"):
		return answered(fmt.Sprintf("תאריך הרכישה של תעודת הרכש %s הוא %s.", po, fmtDate(p.PurchaseDate))), nil
	case q.Has("תאריך משלוח"):
		return answered(fmt.Sprintf("תאריך המשלוח של תעודת הרכש %s הוא %s.", po, fmtDate(p.DeliveryDate))), nil
	case q.Has("סטטוס הזמנה"):
		return answered(fmt.Sprintf("סטטוס ההזמנה של תעודת הרכש %s הוא %s.", po, orUnknown(p.OrderStatus))), nil
	case q.Has("סטטוס אישור"):
		return answered(fmt.Sprintf("סטטוס האישור של תעודת הרכש %s הוא %s.", po, orUnknown(p.ApprovalStatus))), nil
	case q.Has("הערות"):
		return answered(fmt.Sprintf("הערות של תעודת הרכש %s:\n%s", po, orText(p.Notes, noNotes))), nil
	case q.Has("סטטוס תשלום"):
		return answered(fmt.Sprintf("סטטוס התשלום של תעודת הרכש %s הוא %s.", po, orUnknown(p.PaymentStatus))), nil
	case q.Has("עלות משלוח"):
		return answered(fmt.Sprintf("עלות המשלוח של תעודת הרכש %s היא %s %s.", po, fmtAmount(p.ShippingCost), currencyOf(p.Currency))), nil
	case q.Has("מטבע"):
		return answered(fmt.Sprintf("מטבע התשלום של תעודת הרכש %s הוא %s.", po, currencyOf(p.Currency))), nil
	case q.Has("מכס"):
		return answered(fmt.Sprintf("האם נדרש מכס לתעודת הרכש %s: %s.", po, fmtBool(p.RequiresCustoms))), nil
	case q.Has("תאריך תפוגת אחריות"):
		return answered(fmt.Sprintf("תאריך תפוגת האחריות של תעודת הרכש %s הוא %s.", po, fmtDate(p.WarrantyExpiration))), nil
	case q.Has("תאריך קבלה"):
		return answered(fmt.Sprintf("תאריך הקבלה של תעודת הרכש %s הוא %s.", po, fmtDate(p.ReceivedDate))), nil
	case q.Has("עלות כוללת"):
		return answered(fmt.Sprintf("עלות כוללת של תעודת הרכש %s היא %s %s.", po, fmtAmount(p.TotalCost), currencyOf(p.Currency))), nil
	case q.Has("סיכום"):
		return answered(fmt.Sprintf("סיכום תעודת הרכש %s:\n%s", po, orUnavailable(p.SummaryProcurement))), nil
	case q.Has("חתימות נוכחיות"):
		return answered(fmt.Sprintf("מספר החתימות הנוכחיות של תעודת הרכש %s הוא %d.", po, p.CurrentSignatures)), nil
	case q.Has("אינדקס חותם"):
		return answered(fmt.Sprintf("אינדקס החותם הנוכחי של תעודת הרכש %s הוא %d.", po, p.CurrentSignerIndex)), nil
	case q.Has("חותמים"):
		return answered(fmt.Sprintf("חותמים של תעודת הרכש %s:\n%s", po, e.signerRows(ctx, q.CompanyID, p.Signers))), nil
	case q.Has("סטטוס"):
		return answered(fmt.Sprintf("סטטוס כללי של תעודת הרכש %s הוא %s.", po, orUnknown(p.Status))), nil
	}
	return answered(fmt.Sprintf("מצאתי את המידע הבא על תעודת הרכש %s:\n%s", po, dump(p))), nil
}

// procurementItemRows renders purchase line items; proposals and purchase
// orders share the same item shape.
func (e *Engine) procurementItemRows(ctx context.Context, companyID primitive.ObjectID, items []models.ProcurementItem) string {
	rows := make([][]cell, 0, len(items))
	for _, item := range items {
		rows = append(rows, []cell{
			{"מוצר", e.productName(ctx, companyID, item.ProductID)},
			{"שם", orUnknown(item.ProductName)},
			{"כמות", fmtAmount(item.Quantity)},
			{"מחיר יחידה", fmtAmount(item.UnitPrice)},
			{`סה"כ`, fmtAmount(item.Total)},
		})
	}
	return formatRows(rows)
}
