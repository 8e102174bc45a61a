package email

import (
	"fmt"
	"html"
	"storefront/entities"
	"strings"
)

const Subject = "Order Successfully Placed"

// RenderOrderPlaced builds the HTML body of the confirmation email: one row
// per order line with quantity, unit price and subtotal, plus a grand total.
func RenderOrderPlaced(order entities.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Your order #%s has been successfully placed!</p><br>\n", order.OrderID)

	b.WriteString(`<table style="border-collapse: collapse; border: 1px solid black;">
<thead>
<tr>
<th style="border: 1px solid black; padding: 8px;">Product</th>
<th style="border: 1px solid black; padding: 8px;">Qty</th>
<th style="border: 1px solid black; padding: 8px;">Price</th>
<th style="border: 1px solid black; padding: 8px;">Subtotal</th>
</tr>
</thead>
<tbody>
`)

	for _, line := range order.Lines {
		fmt.Fprintf(&b, `<tr>
<td style="border: 1px solid black; padding: 8px;">%s</td>
<td style="border: 1px solid black; padding: 8px;">%d</td>
<td style="border: 1px solid black; padding: 8px;">&#8369;%s</td>
<td style="border: 1px solid black; padding: 8px;">&#8369;%s</td>
</tr>
`, html.EscapeString(line.Name), line.Quantity, line.Price.Format(), line.Subtotal().Format())
	}

	fmt.Fprintf(&b, `<tr>
<td style="padding: 8px;">Total</td>
<td></td>
<td></td>
<td style="padding: 8px;">&#8369;%s</td>
</tr>
</tbody>
</table>
`, order.TotalAmount.Format())

	return b.String()
}
