package order

import "laundry/internal/core/domain/model/kernel"

// Flat surcharges applied once per order, in cents.
const (
	deliverySurchargeCents int64 = 500
	expressSurchargeCents  int64 = 300
)

// DeliverySurcharge returns the flat fee for the Delivery handoff method.
func DeliverySurcharge() kernel.Money {
	return kernel.MustNewMoney(deliverySurchargeCents)
}

// ExpressSurcharge returns the flat fee for express turnaround.
func ExpressSurcharge() kernel.Money {
	return kernel.MustNewMoney(expressSurchargeCents)
}

// ComputeTotal derives the order total from its line items and delivery
// terms. The total is never stored, it is recalculated on demand so it can
// not drift from the items it is derived from.
//
// Each line item contributes unit price times quantity plus its flat
// modifier surcharges. Delivery and express add one flat surcharge each.
func ComputeTotal(items []LineItem, terms DeliveryTerms) (kernel.Money, error) {
	if err := terms.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := kernel.MustNewMoney(0)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, err
		}

		subtotal, err := item.Subtotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total = total.Add(subtotal)
	}

	if terms.Method() == Delivery {
		total = total.Add(DeliverySurcharge())
	}
	if terms.IsExpress() {
		total = total.Add(ExpressSurcharge())
	}

	return total, nil
}
