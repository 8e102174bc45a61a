package fulfillment

import (
	"context"
	"fmt"
	"storefront/entities"
	"time"

	"github.com/google/uuid"
)

// Catalog is the read side of the product store.
type Catalog interface {
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
}

// StockLedger owns the available quantity per product. TryReserve decrements
// stock by min(quantity, available) as one indivisible operation and returns
// the amount actually reserved, which may be zero.
type StockLedger interface {
	TryReserve(ctx context.Context, productID uuid.UUID, quantity int) (reserved int, remaining int, err error)
}

type Allocation struct {
	Lines    []entities.OrderLine
	Waitlist []entities.WaitlistEntry
}

type Allocator struct {
	catalog Catalog
	ledger  StockLedger
}

func NewAllocator(catalog Catalog, ledger StockLedger) Allocator {
	if catalog == nil {
		panic("missing catalog")
	}
	if ledger == nil {
		panic("missing ledger")
	}
	return Allocator{
		catalog: catalog,
		ledger:  ledger,
	}
}

// Allocate splits every cart line into a fulfilled part and a backordered
// remainder. All products are looked up before any reservation is made, so a
// missing product aborts the allocation without stock having moved. Once
// reservations start they are not compensated: a later failure leaves the
// reserved stock decremented.
func (a Allocator) Allocate(ctx context.Context, cart entities.Cart) (Allocation, error) {
	products := make(map[uuid.UUID]entities.Product, len(cart.Lines))
	for _, line := range cart.Lines {
		if _, ok := products[line.ProductID]; ok {
			continue
		}
		product, err := a.catalog.ProductByID(ctx, line.ProductID)
		if err != nil {
			return Allocation{}, fmt.Errorf("could not look up product %s: %w", line.ProductID, err)
		}
		products[line.ProductID] = product
	}

	var alloc Allocation
	for _, line := range cart.Lines {
		product := products[line.ProductID]

		reserved, _, err := a.ledger.TryReserve(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return Allocation{}, fmt.Errorf("could not reserve stock for product %s: %w", line.ProductID, err)
		}

		if reserved > 0 {
			alloc.Lines = append(alloc.Lines, entities.OrderLine{
				ProductID:   product.ProductID,
				Name:        product.Name,
				Description: product.Description,
				Quantity:    reserved,
				Price:       product.Price,
			})
		}

		if backordered := line.Quantity - reserved; backordered > 0 {
			alloc.Waitlist = append(alloc.Waitlist, entities.WaitlistEntry{
				EntryID:     uuid.New(),
				ProductID:   product.ProductID,
				Name:        product.Name,
				Description: product.Description,
				Quantity:    backordered,
				Price:       product.Price,
				CreatedAt:   time.Now().UTC(),
			})
		}
	}

	return alloc, nil
}
